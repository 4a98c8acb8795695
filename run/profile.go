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

const profileHelp = `
profile - Show the student profile, favorites, uploads and achievements

Usage:
  studentlib profile [--json]

Options:
  --json                       output raw JSON
  --show-id                    show record ids
  --storage <type>             storage backend: memory (default), file, sqlite or server
  --server-addr <addr>         server address (required when --storage=server)
  --server-token <token>       server authentication token
  -h,--help                    show this help message
`

func handleProfile(args []string) error {
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
		Help("-h,--help", profileHelp).
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

	profile := manager.Profile()
	favorites := manager.Favorites()
	if jsonOutput {
		return outputJSON(os.Stdout, struct {
			Profile   *models.Profile   `json:"profile"`
			Favorites []models.Resource `json:"favorites"`
		}{profile, favorites})
	}
	renderProfile(os.Stdout, profile, favorites, showID)
	return nil
}

func renderProfile(out io.Writer, profile *models.Profile, favorites []models.Resource, showID bool) {
	writeLines(out, render.ProfileHeader(profile)...)

	writeLines(out, "", "Favorites")
	for _, r := range favorites {
		writeLines(out, "  "+render.ResourceLine(r, showID))
	}
	writeLines(out, "", "Uploads")
	for _, r := range profile.Uploads {
		writeLines(out, "  "+render.ResourceLine(r, showID))
	}
	writeLines(out, "", "Achievements")
	for _, a := range profile.Achievements {
		writeLines(out, "  "+render.AchievementLine(a))
	}
}
