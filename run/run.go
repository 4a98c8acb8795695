package run

import (
	"fmt"
	"strings"

	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/studentlib/internal/config"
	"github.com/xhd2015/studentlib/log"
)

const help = `
studentlib - Study resources, forums and study plans in the terminal

Usage: studentlib [OPTIONS]
       studentlib <cmd> [OPTIONS]

Available sub commands:
  dashboard                        quick stats, recent and recommended resources, plans, schedule
  profile                          show the student profile
  resources                        list and search study resources
  forums                           browse topics and threads, vote, post and share
  plans                            list, create and update study plans
  schedule                         show or toggle today's schedule
  export <file.json>               export the library
  import <file.json>               replace the library from an export
  serve                            serve the library over HTTP
  config                           show or update saved settings

Options:
  --storage <type>                 storage backend: memory (default), file, sqlite or server
  --server-addr <addr>             server address (required when --storage=server)
  --server-token <token>           server authentication token (optional when --storage=server)
  --debug-log <file>               enable debug logging of the terminal UI to the file
  --show-path                      print the config directory and exit
  -h,--help                        show this help message

Environment:
  STUDENTLIB_STORAGE, STUDENTLIB_SERVER_ADDR, STUDENTLIB_SERVER_TOKEN
  override saved settings, and may also be set in ./.env

Examples:
  studentlib                       run the terminal UI with fresh seed data
  studentlib --storage=sqlite      run with SQLite storage
  studentlib --storage=server --server-addr=http://localhost:8080 --server-token=abc123
  studentlib plans --show-id
  studentlib forums vote popular 5 up
`

func Main(args []string) error {
	if len(args) > 0 {
		arg0 := args[0]
		switch arg0 {
		case "dashboard":
			return handleDashboard(args[1:])
		case "profile":
			return handleProfile(args[1:])
		case "resources":
			return handleResources(args[1:])
		case "forums":
			return handleForums(args[1:])
		case "plans":
			return handlePlans(args[1:])
		case "schedule":
			return handleSchedule(args[1:])
		case "export":
			return handleExport(args[1:])
		case "import":
			return handleImport(args[1:])
		case "serve":
			return handleServe(args[1:])
		case "config":
			return handleConfig(args[1:])
		}
	}

	var debugLogFile string
	var storageType string
	var serverAddr string
	var serverToken string
	var showPath bool

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		String("--debug-log", &debugLogFile).
		Bool("--show-path", &showPath).
		Help("-h,--help", help).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra arguments: %s", strings.Join(args, " "))
	}

	if showPath {
		confDir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		fmt.Println(confDir)
		return nil
	}

	return runTUI(tuiOptions{
		StorageType:  storageType,
		ServerAddr:   serverAddr,
		ServerToken:  serverToken,
		DebugLogFile: debugLogFile,
	})
}

// initLog sends application logs to the config dir
func initLog() error {
	logDir, err := config.GetLogDir()
	if err != nil {
		return err
	}
	return log.Init(logDir)
}
