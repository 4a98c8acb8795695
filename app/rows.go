package app

import (
	"context"
	"fmt"

	"github.com/xhd2015/studentlib/data/transform"
	"github.com/xhd2015/studentlib/models"
	"github.com/xhd2015/studentlib/models/states"
	"github.com/xhd2015/studentlib/ui/render"
	"github.com/xhd2015/studentlib/ui/search"
)

// Row is one selectable line of a page
type Row struct {
	Key    string
	Prefix string
	Text   string
	Done   bool
	// Query is highlighted in Text when non-empty
	Query string

	OnToggle func()
	OnVote   func(delta int64)
	OnEnter  func()
	OnShare  func()
}

func PageRows(state *State) []Row {
	if state.Library == nil {
		return nil
	}
	switch state.Page {
	case states.PageType_Dashboard:
		return dashboardRows(state)
	case states.PageType_Resources:
		return resourceRows(state)
	case states.PageType_Forums:
		return forumRows(state)
	case states.PageType_Plans:
		return planRows(state)
	case states.PageType_Profile:
		return profileRows(state)
	}
	return nil
}

func dashboardRows(state *State) []Row {
	rows := make([]Row, 0, len(state.Library.Schedule))
	for _, task := range state.Library.Schedule {
		rows = append(rows, Row{
			Key:    fmt.Sprintf("schedule:%d", task.ID),
			Prefix: task.Time + "  " + checkMark(task.Completed),
			Text:   fmt.Sprintf("%s [%s, %s]", render.Sanitize(task.Title), task.Subject, task.Duration),
			Done:   task.Completed,
			OnToggle: func() {
				state.Enqueue(func(ctx context.Context) error {
					return state.OnToggleSchedule(ctx, task.ID)
				})
			},
		})
	}
	return rows
}

func resourceRows(state *State) []Row {
	resources := search.FilterResources(search.FilterResourcesByType(state.Library.Resources, state.ResourceType), state.SearchQuery)
	rows := make([]Row, 0, len(resources))
	for _, r := range resources {
		rows = append(rows, Row{
			Key:    fmt.Sprintf("resource:%d", r.ID),
			Prefix: "•",
			Text:   render.ResourceLine(r, false),
			Query:  state.SearchQuery,
		})
	}
	return rows
}

func forumRows(state *State) []Row {
	if state.ForumTab == ForumTab_Topics {
		topics := search.FilterTopics(state.Library.Topics, state.SearchQuery)
		rows := make([]Row, 0, len(topics))
		for _, t := range topics {
			rows = append(rows, Row{
				Key:    fmt.Sprintf("topic:%d", t.ID),
				Prefix: "#",
				Text:   fmt.Sprintf("%s (%d posts) %s", render.Sanitize(t.Title), t.Posts, render.Sanitize(t.Description)),
				Query:  state.SearchQuery,
			})
		}
		return rows
	}

	list := models.ThreadList_Recent
	if state.ForumTab == ForumTab_Popular {
		list = models.ThreadList_Popular
	}
	threads := search.FilterThreads(state.Library.Threads(list), state.SearchQuery)
	rows := make([]Row, 0, len(threads))
	for _, t := range threads {
		rows = append(rows, Row{
			Key:    fmt.Sprintf("%s:%d", list, t.ID),
			Prefix: fmt.Sprintf("%+4d", t.Votes),
			Text:   fmt.Sprintf("%s · %s · by %s %s", render.Sanitize(t.Title), t.Category, t.Author, t.DatePosted),
			Query:  state.SearchQuery,
			OnVote: func(delta int64) {
				state.Enqueue(func(ctx context.Context) error {
					return state.OnVote(ctx, list, t.ID, delta)
				})
			},
			OnShare: func() {
				if state.OnShare == nil {
					return
				}
				if err := state.OnShare(t); err != nil {
					state.StatusBar.Error = err.Error()
					return
				}
				state.StatusBar.Info = "copied " + t.Title
			},
		})
	}
	return rows
}

func profileRows(state *State) []Row {
	if state.Profile == nil {
		return nil
	}
	var rows []Row
	switch state.ProfileTab {
	case ProfileTab_Favorites, ProfileTab_Uploads:
		kind := "favorite"
		resources := transform.ResourcesByID(state.Library.Resources, state.Profile.FavoriteIDs)
		if state.ProfileTab == ProfileTab_Uploads {
			kind = "upload"
			resources = state.Profile.Uploads
		}
		for _, r := range search.FilterResources(resources, state.SearchQuery) {
			rows = append(rows, Row{
				Key:    fmt.Sprintf("%s:%d", kind, r.ID),
				Prefix: "•",
				Text:   render.ResourceLine(r, false),
				Query:  state.SearchQuery,
			})
		}
	case ProfileTab_Achievements:
		for _, a := range state.Profile.Achievements {
			rows = append(rows, Row{
				Key:    fmt.Sprintf("achievement:%d", a.ID),
				Prefix: "★",
				Text:   fmt.Sprintf("%s · %s · %s", render.Sanitize(a.Title), render.Sanitize(a.Description), a.Date),
			})
		}
	}
	return rows
}

func planRows(state *State) []Row {
	plans := search.FilterPlans(state.Library.Plans, state.SearchQuery)
	if state.ShowCompletedPlans {
		plans = transform.CompletedPlans(plans)
	} else {
		plans = transform.ActivePlans(plans)
	}

	var rows []Row
	for _, plan := range plans {
		expanded := state.ExpandedPlans.Get(plan.ID)
		marker := "▸"
		if expanded {
			marker = "▾"
		}
		rows = append(rows, Row{
			Key:    fmt.Sprintf("plan:%d", plan.ID),
			Prefix: marker,
			Text:   fmt.Sprintf("%s · %s · due %s  %s", render.Sanitize(plan.Title), plan.Subject, plan.Deadline, render.ProgressBar(plan.Progress)),
			Done:   plan.Progress >= 100,
			Query:  state.SearchQuery,
			OnEnter: func() {
				state.ExpandedPlans.Toggle(plan.ID)
			},
		})
		if !expanded {
			continue
		}
		for i, task := range plan.Tasks {
			connector := "├─"
			if i == len(plan.Tasks)-1 {
				connector = "└─"
			}
			rows = append(rows, Row{
				Key:    fmt.Sprintf("task:%d:%d", plan.ID, task.ID),
				Prefix: "  " + connector + checkMark(task.Completed),
				Text:   fmt.Sprintf("%s (%s, %s)", render.Sanitize(task.Title), task.Duration, task.Priority),
				Done:   task.Completed,
				OnToggle: func() {
					state.Enqueue(func(ctx context.Context) error {
						return state.OnTogglePlanTask(ctx, plan.ID, task.ID)
					})
				},
			})
		}
	}
	return rows
}

func checkMark(done bool) string {
	if done {
		return "✓"
	}
	return "•"
}

// selectedIndex is the index of SelectedKey in rows, or -1
func selectedIndex(rows []Row, key string) int {
	for i, row := range rows {
		if row.Key == key {
			return i
		}
	}
	return -1
}

// selectedPlanID returns the plan of the selected plan or task row
func selectedPlanID(state *State) int64 {
	var planID, taskID int64
	if _, err := fmt.Sscanf(state.SelectedKey, "plan:%d", &planID); err == nil {
		return planID
	}
	if _, err := fmt.Sscanf(state.SelectedKey, "task:%d:%d", &planID, &taskID); err == nil {
		return planID
	}
	return 0
}
