package app

import (
	"context"
	"time"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/studentlib/app/submit"
	"github.com/xhd2015/studentlib/models"
	"github.com/xhd2015/studentlib/models/states"
)

const (
	CtrlCExitDelayMs = 1000
)

// ForumTab selects what the forums page lists
type ForumTab int

const (
	ForumTab_Topics ForumTab = iota
	ForumTab_Recent
	ForumTab_Popular
)

func (c ForumTab) Title() string {
	switch c {
	case ForumTab_Topics:
		return "Topics"
	case ForumTab_Recent:
		return "Recent"
	case ForumTab_Popular:
		return "Popular"
	}
	return ""
}

func (c ForumTab) Next() ForumTab {
	return (c + 1) % 3
}

// DashboardTab selects which resources the dashboard lists
type DashboardTab int

const (
	DashboardTab_Recent DashboardTab = iota
	DashboardTab_Recommended
)

func (c DashboardTab) Title() string {
	if c == DashboardTab_Recommended {
		return "Recommended"
	}
	return "Recently viewed"
}

func (c DashboardTab) Next() DashboardTab {
	return (c + 1) % 2
}

// ProfileTab selects what the profile page lists
type ProfileTab int

const (
	ProfileTab_Favorites ProfileTab = iota
	ProfileTab_Uploads
	ProfileTab_Achievements
)

func (c ProfileTab) Title() string {
	switch c {
	case ProfileTab_Favorites:
		return "Favorites"
	case ProfileTab_Uploads:
		return "Uploads"
	case ProfileTab_Achievements:
		return "Achievements"
	}
	return ""
}

func (c ProfileTab) Next() ProfileTab {
	return (c + 1) % 3
}

type StatusBar struct {
	Storage string
	Error   string
	Info    string
}

type State struct {
	Library *models.Library
	Profile *models.Profile

	Page states.PageType

	Input       models.InputState
	SearchQuery string

	SelectedKey      string
	SelectFromSource states.SelectedSource

	DashboardTab       DashboardTab
	ProfileTab         ProfileTab
	ForumTab           ForumTab
	ResourceType       models.ResourceType
	ShowCompletedPlans bool
	ExpandedPlans      *states.MutexMap
	// plan the /task command adds to, 0 means the selected plan
	TargetPlanID int64

	StatusBar StatusBar
	Submit    *submit.SubmitState[string]

	Quit    func()
	Refresh func()

	OnVote           func(ctx context.Context, list models.ThreadList, id int64, delta int64) error
	OnTogglePlanTask func(ctx context.Context, planID int64, taskID int64) error
	OnToggleSchedule func(ctx context.Context, id int64) error
	OnCreateThread   func(ctx context.Context, payload models.ThreadPayload) error
	OnCreatePlan     func(ctx context.Context, payload models.PlanPayload) error
	OnAddTask        func(ctx context.Context, planID int64, payload models.TaskPayload) error
	OnShare          func(thread models.ForumThread) error
	OnReload         func(ctx context.Context) error

	LastCtrlC time.Time

	// runs Enqueue'd work synchronously when set, used by tests
	Sync bool
}

func NewState(lib *models.Library) *State {
	state := &State{
		Library:       lib,
		ExpandedPlans: states.NewMutexMap(),
	}
	state.Submit = submit.NewSubmitState(func(line string) {
		state.Input.Value = line
		state.Input.CursorPosition = len([]rune(line))
	})
	return state
}

func (state *State) ClearSearch() {
	state.SearchQuery = ""
	state.Input.Reset()
}

// SwitchPage changes page, keeping the search query
func (state *State) SwitchPage(page states.PageType) {
	state.Page = page
	state.SelectedKey = ""
	state.SelectFromSource = states.SelectedSource_Default
}

// Enqueue runs fn off the render loop and reports its error in the status bar
func (state *State) Enqueue(fn func(ctx context.Context) error) {
	run := func() {
		err := fn(context.Background())
		if err != nil {
			state.StatusBar.Error = err.Error()
		}
		if state.Refresh != nil {
			state.Refresh()
		}
	}
	if state.Sync {
		run()
		return
	}
	go run()
}

func App(state *State, window *dom.Window) *dom.Node {
	return dom.Div(dom.DivProps{
		OnKeyDown: func(event *dom.DOMEvent) {
			keyEvent := event.KeydownEvent
			if keyEvent == nil {
				return
			}
			switch keyEvent.KeyType {
			case dom.KeyTypeCtrlC:
				if time.Since(state.LastCtrlC) < time.Millisecond*CtrlCExitDelayMs {
					state.Quit()
					return
				}
				state.LastCtrlC = time.Now()

				go func() {
					time.Sleep(time.Millisecond * CtrlCExitDelayMs)
					if state.Refresh != nil {
						state.Refresh()
					}
				}()
			}
		},
	},
		dom.H1(dom.DivProps{}, dom.Text("Student Library", styles.Style{
			Bold:        true,
			BorderColor: "orange",
		})),
		PageTabs(state),
		RenderPage(state, window),
		AppStatusBar(state),
		func() *dom.Node {
			if time.Since(state.LastCtrlC) < time.Millisecond*CtrlCExitDelayMs {
				return dom.Text("press Ctrl-C again to exit", styles.Style{
					Bold:  true,
					Color: "1",
				})
			}
			return dom.Text("tab switch page  1-5 jump  t change list  / search  j/k move  space toggle  +/- vote  q exit", styles.Style{
				Color: colors.GREY_TEXT,
			})
		}(),
	)
}

func PageTabs(state *State) *dom.Node {
	var nodes []*dom.Node
	for i, page := range states.Pages {
		if i > 0 {
			nodes = append(nodes, dom.Text(" | ", styles.Style{Color: colors.GREY_TEXT}))
		}
		style := styles.Style{Color: colors.GREY_TEXT}
		if page == state.Page {
			style = styles.Style{Bold: true, Color: colors.GREEN_SUCCESS}
		}
		nodes = append(nodes, dom.Text(page.Title(), style))
	}
	return dom.HDiv(dom.DivProps{}, nodes...)
}

func AppStatusBar(state *State) *dom.Node {
	var nodes []*dom.Node
	nodes = append(nodes, dom.Text("•", styles.Style{
		Bold:  true,
		Color: colors.GREEN_SUCCESS,
	}))
	if state.StatusBar.Storage != "" {
		nodes = append(nodes, dom.Text(state.StatusBar.Storage, styles.Style{
			Bold:  true,
			Color: colors.GREY_TEXT,
		}))
	}
	if state.StatusBar.Error != "" {
		nodes = append(nodes, dom.Text("  "+state.StatusBar.Error, styles.Style{
			Bold:  true,
			Color: colors.RED_ERROR,
		}))
	} else if state.StatusBar.Info != "" {
		nodes = append(nodes, dom.Text("  "+state.StatusBar.Info, styles.Style{
			Color: colors.GREEN_SUCCESS,
		}))
	}
	if state.Submit != nil && state.Submit.IsSubmitting() {
		nodes = append(nodes, dom.Text("  Request...", styles.Style{
			Bold:  true,
			Color: colors.GREEN_SUCCESS,
		}))
	}
	return dom.HDiv(dom.DivProps{}, nodes...)
}
