package app

import (
	"strings"

	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/studentlib/models/states"
)

func SearchInput(state *State, rows []Row) *dom.Node {
	placeholder := "search (/ for commands)"
	if state.SearchQuery != "" {
		placeholder = "search (ESC to clear)"
	}
	input := &state.Input

	return dom.Input(dom.InputProps{
		Placeholder:    placeholder,
		Value:          input.Value,
		Focused:        input.Focused,
		CursorPosition: input.CursorPosition,
		Focusable:      dom.Focusable(true),
		OnFocus: func() {
			input.Focused = true
		},
		OnBlur: func() {
			input.Focused = false
		},
		OnChange: func(value string) {
			input.Value = value
			if !strings.HasPrefix(value, "/") {
				state.SearchQuery = strings.TrimSpace(value)
			}
		},
		OnCursorMove: func(position int) {
			if position < 0 {
				position = 0
			}
			if n := len([]rune(input.Value)); position > n+1 {
				position = n + 1
			}
			input.CursorPosition = position
		},
		OnKeyDown: func(event *dom.DOMEvent) {
			keyEvent := event.KeydownEvent
			if keyEvent == nil {
				return
			}
			switch keyEvent.KeyType {
			case dom.KeyTypeEnter:
				SubmitInput(state, rows)
			case dom.KeyTypeEsc:
				state.ClearSearch()
				input.Focused = false
			case dom.KeyTypeDown:
				if len(rows) > 0 {
					input.Focused = false
					event.PreventDefault()
				}
			}
		},
	})
}

// SubmitInput handles enter in the input line
func SubmitInput(state *State, rows []Row) {
	value := strings.TrimSpace(state.Input.Value)
	if value == "" {
		return
	}
	if strings.HasPrefix(value, "/") {
		state.Input.Reset()
		if !RunCommand(state, value) {
			state.Input.Value = value
			state.Input.CursorPosition = len([]rune(value))
		}
		return
	}
	if value == "exit" || value == "quit" || value == "q" {
		state.Quit()
		return
	}
	// keep the query and jump to the first match
	if len(rows) > 0 {
		state.SelectedKey = rows[0].Key
		state.SelectFromSource = states.SelectedSource_Search
		state.Input.Focused = false
	}
}
