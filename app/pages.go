package app

import (
	"fmt"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/studentlib/data/transform"
	"github.com/xhd2015/studentlib/models"
	"github.com/xhd2015/studentlib/models/states"
	"github.com/xhd2015/studentlib/ui/render"
	"github.com/xhd2015/studentlib/ui/search"
)

// title, tabs, page header, input, status bar and help line
const fixedFrameHeight = 7

func RenderPage(state *State, window *dom.Window) *dom.Node {
	rows := PageRows(state)
	height := 20
	if window != nil {
		height = window.Height - fixedFrameHeight - pageHeaderHeight(state)
	}
	if height < 3 {
		height = 3
	}

	return dom.Fragment(
		PageHeader(state),
		RowList(state, rows, height),
		SearchInput(state, rows),
	)
}

func pageHeaderHeight(state *State) int {
	return len(pageHeaderLines(state))
}

func PageHeader(state *State) *dom.Node {
	return dom.Div(dom.DivProps{}, pageHeaderLines(state)...)
}

func pageHeaderLines(state *State) []*dom.Node {
	grey := styles.Style{Color: colors.GREY_TEXT}
	bold := styles.Style{Bold: true}
	switch state.Page {
	case states.PageType_Dashboard:
		if state.Library == nil {
			return nil
		}
		nodes := []*dom.Node{dom.Text("Quick stats", bold)}
		for _, stat := range transform.DashboardStats(state.Library) {
			nodes = append(nodes, dom.Text("  "+render.StatLine(stat)))
		}
		nodes = append(nodes, dom.Text(state.DashboardTab.Title()+"  (t to change)", bold))
		resources := transform.RecentlyViewed(state.Library.Resources)
		if state.DashboardTab == DashboardTab_Recommended {
			resources = transform.Recommended(state.Library.Resources, transform.RecommendedCount)
		}
		for _, r := range resources {
			nodes = append(nodes, dom.Text("  "+render.ResourceLine(r, false), grey))
		}
		nodes = append(nodes, dom.Text("Active study plans", bold))
		for _, plan := range transform.ActivePlans(state.Library.Plans) {
			nodes = append(nodes, dom.Text(fmt.Sprintf("  %s  %s", render.ProgressBar(plan.Progress), render.Sanitize(plan.Title))))
		}
		nodes = append(nodes, dom.Text("Reminders", bold))
		for _, r := range state.Library.Reminders {
			nodes = append(nodes, dom.Text("  "+render.ReminderLine(r), grey))
		}
		nodes = append(nodes, dom.Text(fmt.Sprintf("Today's schedule (%d hours remaining)", transform.RemainingHours(state.Library.Schedule)), bold))
		return nodes
	case states.PageType_Profile:
		if state.Profile == nil {
			return nil
		}
		var nodes []*dom.Node
		for _, line := range render.ProfileHeader(state.Profile) {
			nodes = append(nodes, dom.Text(line, grey))
		}
		return append(nodes, dom.Text("showing: "+state.ProfileTab.Title()+"  (t to change)", grey))
	}
	return []*dom.Node{pageHint(state)}
}

func pageHint(state *State) *dom.Node {
	grey := styles.Style{Color: colors.GREY_TEXT}
	switch state.Page {
	case states.PageType_Resources:
		label := "All"
		switch state.ResourceType {
		case models.ResourceType_PDF:
			label = "Books & PDFs"
		case models.ResourceType_Video:
			label = "Videos"
		}
		return dom.Text("showing: "+label+"  (t to change)", grey)
	case states.PageType_Forums:
		return dom.Text("showing: "+state.ForumTab.Title()+"  (t to change, s to share)", grey)
	case states.PageType_Plans:
		label := "Active"
		if state.ShowCompletedPlans {
			label = "Completed"
		}
		return dom.Text("showing: "+label+"  (t to change, enter to expand)", grey)
	}
	return dom.Fragment()
}

// visibleWindow returns the [start,end) range of n rows that fits height
// and keeps selected in view
func visibleWindow(n int, selected int, height int) (int, int) {
	if n <= height {
		return 0, n
	}
	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	end := start + height
	if end > n {
		end = n
		start = n - height
	}
	return start, end
}

func RowList(state *State, rows []Row, height int) *dom.Node {
	if len(rows) == 0 {
		msg := "nothing here"
		if state.SearchQuery != "" {
			msg = fmt.Sprintf("no match for %q", state.SearchQuery)
		}
		return dom.Text(msg, styles.Style{Color: colors.GREY_TEXT})
	}

	selected := selectedIndex(rows, state.SelectedKey)
	start, end := visibleWindow(len(rows), selected, height)

	var items []*dom.Node
	if start > 0 {
		items = append(items, dom.Text(fmt.Sprintf("↑ (%d above)", start), styles.Style{Color: colors.GREY_TEXT}))
	}
	for i := start; i < end; i++ {
		items = append(items, RowItem(state, rows, i, i == selected))
	}
	if end < len(rows) {
		items = append(items, dom.Text(fmt.Sprintf("↓ (%d below)", len(rows)-end), styles.Style{Color: colors.GREY_TEXT}))
	}
	return dom.Ul(dom.DivProps{}, items...)
}

func RowItem(state *State, rows []Row, i int, isSelected bool) *dom.Node {
	row := rows[i]
	navigate := func(delta int) {
		next := i + delta
		if next < 0 {
			next = 0
		}
		if next >= len(rows) {
			next = len(rows) - 1
		}
		state.SelectedKey = rows[next].Key
		state.SelectFromSource = states.SelectedSource_NavigateByKey
	}

	return dom.Li(dom.ListItemProps{
		Focusable:  dom.Focusable(true),
		Selected:   isSelected,
		Focused:    isSelected && !state.Input.Focused,
		ItemPrefix: dom.String(row.Prefix),
		OnFocus: func() {
			state.SelectedKey = row.Key
		},
		OnKeyDown: func(e *dom.DOMEvent) {
			if e.Key == "tab" {
				state.SwitchPage(state.Page.Next())
				return
			}
			keyEvent := e.KeydownEvent
			if keyEvent == nil {
				return
			}
			switch keyEvent.KeyType {
			case dom.KeyTypeUp:
				navigate(-1)
			case dom.KeyTypeDown:
				navigate(1)
			case dom.KeyTypeSpace:
				if row.OnToggle != nil {
					row.OnToggle()
				}
			case dom.KeyTypeEnter:
				if row.OnEnter != nil {
					row.OnEnter()
				}
			case dom.KeyTypeEsc:
				if state.SearchQuery != "" {
					state.ClearSearch()
				}
			default:
				HandleListKey(state, string(keyEvent.Runes), row, navigate)
			}
		},
	}, highlighted(row, isSelected))
}

// HandleListKey applies a printable key pressed on row
func HandleListKey(state *State, key string, row Row, navigate func(delta int)) {
	switch key {
	case "j":
		navigate(1)
	case "k":
		navigate(-1)
	case "/":
		state.Input.Focused = true
	case "+", "=":
		if row.OnVote != nil {
			row.OnVote(transform.VoteUp)
		}
	case "-":
		if row.OnVote != nil {
			row.OnVote(transform.VoteDown)
		}
	case "s":
		if row.OnShare != nil {
			row.OnShare()
		}
	case "t":
		switch state.Page {
		case states.PageType_Dashboard:
			state.DashboardTab = state.DashboardTab.Next()
		case states.PageType_Profile:
			state.ProfileTab = state.ProfileTab.Next()
		case states.PageType_Resources:
			state.ResourceType = nextResourceType(state.ResourceType)
		case states.PageType_Forums:
			state.ForumTab = state.ForumTab.Next()
		case states.PageType_Plans:
			state.ShowCompletedPlans = !state.ShowCompletedPlans
		}
		state.SelectedKey = ""
	case "]":
		state.SwitchPage(state.Page.Next())
	case "1", "2", "3", "4", "5":
		state.SwitchPage(states.Pages[key[0]-'1'])
	case "q":
		state.Quit()
	}
}

func nextResourceType(t models.ResourceType) models.ResourceType {
	switch t {
	case "":
		return models.ResourceType_PDF
	case models.ResourceType_PDF:
		return models.ResourceType_Video
	}
	return ""
}

func highlighted(row Row, isSelected bool) *dom.Node {
	color := ""
	if isSelected {
		color = colors.GREEN_SUCCESS
	}
	segments := search.Highlight(row.Text, row.Query)
	if len(segments) == 0 {
		return dom.Text(row.Text, styles.Style{
			Color:         color,
			Strikethrough: row.Done,
		})
	}
	nodes := make([]*dom.Node, 0, len(segments))
	for _, seg := range segments {
		style := styles.Style{Color: color, Strikethrough: row.Done}
		if seg.Match {
			style.Bold = true
			style.Color = "orange"
		}
		nodes = append(nodes, dom.Text(seg.Text, style))
	}
	return dom.HDiv(dom.DivProps{}, nodes...)
}
