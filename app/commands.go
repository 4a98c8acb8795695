package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/xhd2015/studentlib/app/submit"
	"github.com/xhd2015/studentlib/models"
)

const commandHelp = "commands: /thread title | category | content, /plan title | subject | deadline, /task title | duration | priority, /reload"

// splitFields splits "a | b | c" into exactly n trimmed fields
func splitFields(s string, n int) ([]string, error) {
	parts := strings.Split(s, "|")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d fields separated by |, got %d", n, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

func ParseThreadCommand(args string) (models.ThreadPayload, error) {
	fields, err := splitFields(args, 3)
	if err != nil {
		return models.ThreadPayload{}, err
	}
	payload := models.ThreadPayload{Title: fields[0], Category: fields[1], Content: fields[2]}
	return payload, submit.ValidateThread(payload)
}

func ParsePlanCommand(args string) (models.PlanPayload, error) {
	fields, err := splitFields(args, 3)
	if err != nil {
		return models.PlanPayload{}, err
	}
	payload := models.PlanPayload{Title: fields[0], Subject: fields[1], Deadline: fields[2]}
	return payload, submit.ValidatePlan(payload)
}

func ParseTaskCommand(args string) (models.TaskPayload, error) {
	fields, err := splitFields(args, 3)
	if err != nil {
		return models.TaskPayload{}, err
	}
	payload := models.TaskPayload{Title: fields[0], Duration: fields[1], Priority: models.Priority(strings.ToLower(fields[2]))}
	return payload, submit.ValidateTask(payload)
}

// RunCommand executes a "/" command line. Invalid input is reported in
// the status bar and the line is kept in the input.
func RunCommand(state *State, line string) bool {
	name, args, _ := strings.Cut(strings.TrimPrefix(line, "/"), " ")
	state.StatusBar.Error = ""
	state.StatusBar.Info = ""

	var action func(ctx context.Context) error
	switch name {
	case "thread":
		payload, err := ParseThreadCommand(args)
		if err != nil {
			state.StatusBar.Error = err.Error()
			return false
		}
		action = func(ctx context.Context) error { return state.OnCreateThread(ctx, payload) }
	case "plan":
		payload, err := ParsePlanCommand(args)
		if err != nil {
			state.StatusBar.Error = err.Error()
			return false
		}
		action = func(ctx context.Context) error { return state.OnCreatePlan(ctx, payload) }
	case "task":
		planID := state.TargetPlanID
		if planID == 0 {
			planID = selectedPlanID(state)
		}
		if planID == 0 {
			state.StatusBar.Error = "select a plan first"
			return false
		}
		payload, err := ParseTaskCommand(args)
		if err != nil {
			state.StatusBar.Error = err.Error()
			return false
		}
		action = func(ctx context.Context) error { return state.OnAddTask(ctx, planID, payload) }
	case "reload":
		if state.OnReload == nil {
			return true
		}
		action = state.OnReload
	case "exit", "quit":
		state.Quit()
		return true
	default:
		state.StatusBar.Error = "unknown command: /" + name + "; " + commandHelp
		return false
	}

	state.Enqueue(func(ctx context.Context) error {
		return state.Submit.Do(ctx, line, func(string) error {
			return action(ctx)
		})
	})
	return true
}
