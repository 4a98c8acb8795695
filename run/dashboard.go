package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/studentlib/data/transform"
	"github.com/xhd2015/studentlib/models"
	"github.com/xhd2015/studentlib/ui/render"
)

const dashboardHelp = `
dashboard - Quick stats, recently viewed and recommended resources, active plans, today's schedule and reminders

Options:
  --storage <type>             storage backend: memory (default), file, sqlite or server
  --server-addr <addr>         server address (required when --storage=server)
  --server-token <token>       server authentication token
  -h,--help                    show this help message
`

func handleDashboard(args []string) error {
	var storageType string
	var serverAddr string
	var serverToken string

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		Help("-h,--help", dashboardHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra argument: %s", strings.Join(args, " "))
	}

	ctx := context.Background()
	manager, err := CreateLibraryManager(ctx, storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}
	defer manager.LibraryService.Close()

	renderDashboard(os.Stdout, stdoutIsTTY(), manager.Library())
	return nil
}

func renderDashboard(out io.Writer, isTTY bool, lib *models.Library) {
	writeLines(out, "Quick stats")
	for _, stat := range transform.DashboardStats(lib) {
		writeLines(out, "  "+render.StatLine(stat))
	}

	writeLines(out, "", "Recently viewed")
	writeResources(out, transform.RecentlyViewed(lib.Resources))

	writeLines(out, "", "Recommended")
	writeResources(out, transform.Recommended(lib.Resources, transform.RecommendedCount))

	writeLines(out, "", "Active study plans")
	active := transform.ActivePlans(lib.Plans)
	if len(active) == 0 {
		writeLines(out, "  none")
	}
	for _, plan := range active {
		writeLines(out, fmt.Sprintf("  %s  %s", render.ProgressBar(plan.Progress), plan.Title))
	}

	writeLines(out, "", fmt.Sprintf("Today's schedule (%d hours remaining)", transform.RemainingHours(lib.Schedule)))
	for _, task := range lib.Schedule {
		writeLines(out, "  "+render.ScheduleLine(task, false, isTTY))
	}

	writeLines(out, "", "Reminders")
	for _, r := range lib.Reminders {
		writeLines(out, "  "+render.ReminderLine(r))
	}
}

func writeResources(out io.Writer, resources []models.Resource) {
	if len(resources) == 0 {
		writeLines(out, "  none")
	}
	for _, r := range resources {
		writeLines(out, "  "+render.ResourceLine(r, false))
	}
}
