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

const resourcesHelp = `
resources - List study resources

Options:
  --query <text>               only show resources whose title, author, subject or class contain text
  --type <pdf|video>           only show one kind of resource
  --json                       output raw JSON
  --show-id                    show record ids
  --storage <type>             storage backend: memory (default), file, sqlite or server
  --server-addr <addr>         server address (required when --storage=server)
  --server-token <token>       server authentication token
  -h,--help                    show this help message

Examples:
  studentlib resources --query calculus
  studentlib resources --type video --json
`

func parseResourceType(s string) (models.ResourceType, error) {
	switch strings.ToLower(s) {
	case "", "all":
		return "", nil
	case "pdf", "book", "books":
		return models.ResourceType_PDF, nil
	case "video", "videos":
		return models.ResourceType_Video, nil
	}
	return "", fmt.Errorf("unknown resource type: %s, available: pdf, video", s)
}

func handleResources(args []string) error {
	var storageType string
	var serverAddr string
	var serverToken string
	var query string
	var typ string
	var jsonOutput bool
	var showID bool

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		String("--query", &query).
		String("--type", &typ).
		Bool("--json", &jsonOutput).
		Bool("--show-id", &showID).
		Help("-h,--help", resourcesHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra argument: %s", strings.Join(args, " "))
	}
	resourceType, err := parseResourceType(typ)
	if err != nil {
		return err
	}

	ctx := context.Background()
	manager, err := CreateLibraryManager(ctx, storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}
	defer manager.LibraryService.Close()

	resources := manager.Resources(query, resourceType)
	if jsonOutput {
		return outputJSON(os.Stdout, resources)
	}
	renderResources(os.Stdout, resources, showID)
	return nil
}

func renderResources(out io.Writer, resources []models.Resource, showID bool) {
	if len(resources) == 0 {
		writeLines(out, "no resources found")
		return
	}
	for _, r := range resources {
		writeLines(out, render.ResourceLine(r, showID))
	}
}
