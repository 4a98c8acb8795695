package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/studentlib/models"
	"github.com/xhd2015/studentlib/ui/render"
)

const scheduleHelp = `
schedule - Show or update today's study schedule

Usage:
  studentlib schedule [--json]
  studentlib schedule toggle <id>

Options:
  --json                       output raw JSON
  --show-id                    show record ids
  --storage <type>             storage backend: memory (default), file, sqlite or server
  --server-addr <addr>         server address (required when --storage=server)
  --server-token <token>       server authentication token
  -h,--help                    show this help message
`

func handleSchedule(args []string) error {
	var storageType string
	var serverAddr string
	var serverToken string
	var jsonOutput bool
	var showID bool

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		Bool("--json", &jsonOutput).
		Bool("--show-id", &showID).
		Help("-h,--help", scheduleHelp).
		Parse(args)
	if err != nil {
		return err
	}

	var toggleID int64
	if len(args) > 0 {
		if args[0] != "toggle" || len(args) != 2 {
			return fmt.Errorf("unrecognized arguments: %s", strings.Join(args, " "))
		}
		if toggleID, err = parseID("task id", args[1]); err != nil {
			return err
		}
	}

	ctx := context.Background()
	manager, err := CreateLibraryManager(ctx, storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}
	defer manager.LibraryService.Close()

	if toggleID != 0 {
		_, found, err := manager.ToggleScheduleTask(ctx, toggleID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("schedule task %d not found", toggleID)
		}
	}

	schedule := manager.Schedule()
	if jsonOutput {
		return outputJSON(os.Stdout, struct {
			Schedule       []models.ScheduleTask `json:"schedule"`
			RemainingHours int                   `json:"remaining_hours"`
		}{schedule, manager.RemainingHours()})
	}
	renderSchedule(os.Stdout, stdoutIsTTY(), schedule, showID || toggleID != 0)
	return nil
}

func renderSchedule(out io.Writer, isTTY bool, schedule []models.ScheduleTask, showID bool) {
	if len(schedule) == 0 {
		writeLines(out, "nothing scheduled today")
		return
	}
	for _, task := range schedule {
		writeLines(out, render.ScheduleLine(task, showID, isTTY))
	}
}
