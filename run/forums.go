package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/studentlib/app/submit"
	"github.com/xhd2015/studentlib/data/transform"
	"github.com/xhd2015/studentlib/models"
	"github.com/xhd2015/studentlib/ui/render"
)

const forumsHelp = `
forums - Browse and take part in the discussion forums

Usage:
  studentlib forums topics [--query <text>] [--json]
  studentlib forums recent [--query <text>] [--json]
  studentlib forums popular [--query <text>] [--json]
  studentlib forums vote <recent|popular> <id> <up|down>
  studentlib forums create --title <title> --category <category> --content <text>
  studentlib forums share <recent|popular> <id>

Options:
  --query <text>               filter by title, author or category (description for topics)
  --json                       output raw JSON
  --show-id                    show record ids
  --storage <type>             storage backend: memory (default), file, sqlite or server
  --server-addr <addr>         server address (required when --storage=server)
  --server-token <token>       server authentication token
  -h,--help                    show this help message

Categories:
  Mathematics, Computer Science, Study Tips & Techniques,
  Biology & Life Sciences, App Feedback & Support
`

func handleForums(args []string) error {
	var storageType string
	var serverAddr string
	var serverToken string
	var query string
	var jsonOutput bool
	var showID bool
	var payload models.ThreadPayload

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		String("--query", &query).
		String("--title", &payload.Title).
		String("--category", &payload.Category).
		String("--content", &payload.Content).
		Bool("--json", &jsonOutput).
		Bool("--show-id", &showID).
		Help("-h,--help", forumsHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("requires sub command: topics, recent, popular, vote, create or share")
	}
	cmd, args := args[0], args[1:]

	// validate before touching storage
	switch cmd {
	case "topics", "recent", "popular":
		if len(args) > 0 {
			return fmt.Errorf("unrecognized extra argument: %s", strings.Join(args, " "))
		}
	case "vote":
		if len(args) != 3 {
			return fmt.Errorf("usage: forums vote <recent|popular> <id> <up|down>")
		}
	case "share":
		if len(args) != 2 {
			return fmt.Errorf("usage: forums share <recent|popular> <id>")
		}
	case "create":
		if err := submit.ValidateThread(payload); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown forums command: %s", cmd)
	}

	ctx := context.Background()
	manager, err := CreateLibraryManager(ctx, storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}
	defer manager.LibraryService.Close()

	switch cmd {
	case "topics":
		topics := manager.Topics(query)
		if jsonOutput {
			return outputJSON(os.Stdout, topics)
		}
		renderTopics(os.Stdout, topics, showID)
		return nil
	case "recent", "popular":
		threads := manager.Threads(models.ThreadList(cmd), query)
		if jsonOutput {
			return outputJSON(os.Stdout, threads)
		}
		renderThreads(os.Stdout, threads, showID)
		return nil
	case "vote":
		list, id, err := parseThreadRef(args[0], args[1])
		if err != nil {
			return err
		}
		delta, err := parseVoteDirection(args[2])
		if err != nil {
			return err
		}
		thread, found, err := manager.Vote(ctx, list, id, delta)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("thread %d not found in %s", id, list)
		}
		fmt.Printf("%s: %d votes\n", thread.Title, thread.Votes)
		return nil
	case "share":
		list, id, err := parseThreadRef(args[0], args[1])
		if err != nil {
			return err
		}
		var thread *models.ForumThread
		for _, t := range manager.Threads(list, "") {
			if t.ID == id {
				thread = &t
				break
			}
		}
		if thread == nil {
			return fmt.Errorf("thread %d not found in %s", id, list)
		}
		text := render.ShareText(*thread)
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Printf("copied: %s\n", text)
		return nil
	case "create":
		thread, err := manager.CreateThread(ctx, payload)
		if err != nil {
			return err
		}
		fmt.Printf("created thread %d: %s\n", thread.ID, thread.Title)
		return nil
	}
	return nil
}

func parseThreadRef(listArg string, idArg string) (models.ThreadList, int64, error) {
	list, found := models.ParseThreadList(listArg)
	if !found {
		return "", 0, fmt.Errorf("unknown thread list: %s, available: recent, popular", listArg)
	}
	id, err := parseID("thread id", idArg)
	if err != nil {
		return "", 0, err
	}
	return list, id, nil
}

func parseVoteDirection(s string) (int64, error) {
	switch s {
	case "up", "+":
		return transform.VoteUp, nil
	case "down", "-":
		return transform.VoteDown, nil
	}
	return 0, fmt.Errorf("vote must be up or down, got %s", s)
}

func renderTopics(out io.Writer, topics []models.ForumTopic, showID bool) {
	if len(topics) == 0 {
		writeLines(out, "no topics found")
		return
	}
	for _, t := range topics {
		writeLines(out, render.TopicLine(t, showID))
	}
}

func renderThreads(out io.Writer, threads []models.ForumThread, showID bool) {
	if len(threads) == 0 {
		writeLines(out, "no threads found")
		return
	}
	for _, t := range threads {
		writeLines(out, render.ThreadLine(t, showID))
	}
}
