package run

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/studentlib/data/storage"
	"github.com/xhd2015/studentlib/server"
)

const serveHelp = `
serve - Serve the library over HTTP for --storage=server clients

Options:
  --addr <addr>                listen address (default :8080)
  --token <token>              require "Authorization: Bearer <token>" on every request
  --storage <type>             storage backend of the server: memory (default), file or sqlite
  -h,--help                    show this help message

Examples:
  studentlib serve --storage sqlite --token abc123
  studentlib --storage=server --server-addr=http://localhost:8080 --server-token=abc123
`

func handleServe(args []string) error {
	var storageType string
	var addr string
	var token string

	args, err := flags.String("--storage", &storageType).
		String("--addr", &addr).
		String("--token", &token).
		Help("-h,--help", serveHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra argument: %s", strings.Join(args, " "))
	}
	if addr == "" {
		addr = ":8080"
	}

	conf, err := ApplyConfigDefaults(storageType, "", "")
	if err != nil {
		return err
	}
	if conf.StorageType == storage.StorageType_Server {
		return fmt.Errorf("serve cannot use --storage=server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := initLog(); err != nil {
		return err
	}
	manager, err := openManager(ctx, conf)
	if err != nil {
		return err
	}
	defer manager.LibraryService.Close()

	gin.SetMode(gin.ReleaseMode)
	engine := server.New(manager, server.Options{Token: token})
	fmt.Printf("serving %s library on %s\n", conf.StorageType, addr)
	return server.Serve(ctx, addr, engine)
}
