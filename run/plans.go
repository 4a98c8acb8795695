package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/studentlib/app/submit"
	"github.com/xhd2015/studentlib/data/transform"
	"github.com/xhd2015/studentlib/models"
	"github.com/xhd2015/studentlib/ui/render"
)

const plansHelp = `
plans - Manage study plans and their tasks

Usage:
  studentlib plans [--query <text>] [--completed] [--json]
  studentlib plans create --title <title> --subject <subject> --deadline <deadline>
  studentlib plans add-task <plan-id> --title <title> --duration <duration> --priority <high|medium|low>
  studentlib plans toggle <plan-id> <task-id>

Options:
  --query <text>               filter by title or subject
  --completed                  show completed plans instead of active ones
  --all                        show active and completed plans
  --json                       output raw JSON
  --show-id                    show record ids
  --storage <type>             storage backend: memory (default), file, sqlite or server
  --server-addr <addr>         server address (required when --storage=server)
  --server-token <token>       server authentication token
  -h,--help                    show this help message

Examples:
  studentlib plans --show-id
  studentlib plans toggle 1 103
  studentlib plans add-task 1 --title "Review limits" --duration "1 hour" --priority low
`

func handlePlans(args []string) error {
	var storageType string
	var serverAddr string
	var serverToken string
	var query string
	var completed bool
	var all bool
	var jsonOutput bool
	var showID bool
	var title string
	var subject string
	var deadline string
	var duration string
	var priority string

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		String("--query", &query).
		String("--title", &title).
		String("--subject", &subject).
		String("--deadline", &deadline).
		String("--duration", &duration).
		String("--priority", &priority).
		Bool("--completed", &completed).
		Bool("--all", &all).
		Bool("--json", &jsonOutput).
		Bool("--show-id", &showID).
		Help("-h,--help", plansHelp).
		Parse(args)
	if err != nil {
		return err
	}

	cmd := "list"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	var planID, taskID int64
	planPayload := models.PlanPayload{Title: title, Subject: subject, Deadline: deadline}
	taskPayload := models.TaskPayload{Title: title, Duration: duration, Priority: models.Priority(strings.ToLower(priority))}
	switch cmd {
	case "list":
		if len(args) > 0 {
			return fmt.Errorf("unrecognized extra argument: %s", strings.Join(args, " "))
		}
	case "create":
		if err := submit.ValidatePlan(planPayload); err != nil {
			return err
		}
	case "add-task":
		if len(args) != 1 {
			return fmt.Errorf("usage: plans add-task <plan-id> --title <title> --duration <duration> --priority <priority>")
		}
		if planID, err = parseID("plan id", args[0]); err != nil {
			return err
		}
		if err := submit.ValidateTask(taskPayload); err != nil {
			return err
		}
	case "toggle":
		if len(args) != 2 {
			return fmt.Errorf("usage: plans toggle <plan-id> <task-id>")
		}
		if planID, err = parseID("plan id", args[0]); err != nil {
			return err
		}
		if taskID, err = parseID("task id", args[1]); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown plans command: %s", cmd)
	}

	ctx := context.Background()
	manager, err := CreateLibraryManager(ctx, storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}
	defer manager.LibraryService.Close()

	isTTY := stdoutIsTTY()
	switch cmd {
	case "list":
		plans := selectPlans(manager.Plans(query), completed, all)
		if jsonOutput {
			return outputJSON(os.Stdout, plans)
		}
		renderPlans(os.Stdout, isTTY, plans, showID)
	case "create":
		plan, err := manager.CreatePlan(ctx, planPayload)
		if err != nil {
			return err
		}
		fmt.Printf("created plan %d: %s\n", plan.ID, plan.Title)
	case "add-task":
		plan, found, err := manager.AddTask(ctx, planID, taskPayload)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("plan %d not found", planID)
		}
		renderPlans(os.Stdout, isTTY, []models.StudyPlan{plan}, true)
	case "toggle":
		plan, found, err := manager.TogglePlanTask(ctx, planID, taskID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("task %d not found in plan %d", taskID, planID)
		}
		renderPlans(os.Stdout, isTTY, []models.StudyPlan{plan}, true)
	}
	return nil
}

func selectPlans(plans []models.StudyPlan, completed bool, all bool) []models.StudyPlan {
	if all {
		return plans
	}
	if completed {
		return transform.CompletedPlans(plans)
	}
	return transform.ActivePlans(plans)
}

func renderPlans(out io.Writer, isTTY bool, plans []models.StudyPlan, showID bool) {
	if len(plans) == 0 {
		writeLines(out, "no study plans found")
		return
	}
	for i, plan := range plans {
		if i > 0 {
			writeLines(out, "")
		}
		writeLines(out, render.PlanLines(plan, showID, isTTY)...)
	}
}
