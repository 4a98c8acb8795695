package run

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xhd2015/go-dom-tui/charm"
	domlog "github.com/xhd2015/go-dom-tui/log"
	"github.com/xhd2015/studentlib/app"
	"github.com/xhd2015/studentlib/data"
	"github.com/xhd2015/studentlib/internal/process"
	"github.com/xhd2015/studentlib/models"
	"github.com/xhd2015/studentlib/ui/render"
)

type tuiOptions struct {
	StorageType  string
	ServerAddr   string
	ServerToken  string
	DebugLogFile string
}

func runTUI(opts tuiOptions) error {
	conf, err := ApplyConfigDefaults(opts.StorageType, opts.ServerAddr, opts.ServerToken)
	if err != nil {
		return err
	}
	if err := initLog(); err != nil {
		return err
	}

	savedConfig, err := data.LoadConfig()
	if err != nil {
		return err
	}
	if savedConfig == nil {
		savedConfig = &models.Config{}
	}
	if err := process.CheckSingleInstance(savedConfig.RunningPID); err != nil {
		return err
	}
	savedConfig.RunningPID = os.Getpid()
	if err := data.SaveConfig(savedConfig); err != nil {
		return err
	}
	defer func() {
		savedConfig.RunningPID = 0
		data.SaveConfig(savedConfig)
	}()

	var openedFile *os.File
	if opts.DebugLogFile != "" {
		file, err := os.OpenFile(opts.DebugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open debug log file: %w", err)
		}
		openedFile = file
		defer openedFile.Close()
		domlog.SetLogger(domlog.NewFileLogger(file))
	}

	ctx := context.Background()
	manager, err := openManager(ctx, conf)
	if err != nil {
		return err
	}
	defer manager.LibraryService.Close()

	var p *tea.Program
	appState := app.NewState(manager.Library())
	appState.Profile = manager.Profile()
	appState.Input.Value = savedConfig.LastQuery
	appState.SearchQuery = savedConfig.LastQuery
	appState.StatusBar.Storage = conf.StorageType
	appState.Refresh = func() {
		if p != nil {
			p.Send(cursor.Blink())
		}
	}
	bindManager(appState, manager)

	model := &Model{
		app: charm.NewCharmApp(appState, app.App),
	}
	appState.Quit = func() {
		model.quit = true
	}

	p = tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	savedConfig.LastQuery = appState.SearchQuery
	return err
}

// bindManager routes the UI callbacks to manager, refreshing the
// rendered snapshot after each change
func bindManager(appState *app.State, manager *data.LibraryManager) {
	reload := func() {
		appState.Library = manager.Library()
	}
	appState.OnVote = func(ctx context.Context, list models.ThreadList, id int64, delta int64) error {
		_, _, err := manager.Vote(ctx, list, id, delta)
		reload()
		return err
	}
	appState.OnTogglePlanTask = func(ctx context.Context, planID int64, taskID int64) error {
		_, _, err := manager.TogglePlanTask(ctx, planID, taskID)
		reload()
		return err
	}
	appState.OnToggleSchedule = func(ctx context.Context, id int64) error {
		_, _, err := manager.ToggleScheduleTask(ctx, id)
		reload()
		return err
	}
	appState.OnCreateThread = func(ctx context.Context, payload models.ThreadPayload) error {
		thread, err := manager.CreateThread(ctx, payload)
		if err != nil {
			return err
		}
		reload()
		appState.StatusBar.Info = fmt.Sprintf("posted thread %d", thread.ID)
		return nil
	}
	appState.OnCreatePlan = func(ctx context.Context, payload models.PlanPayload) error {
		plan, err := manager.CreatePlan(ctx, payload)
		if err != nil {
			return err
		}
		reload()
		appState.TargetPlanID = plan.ID
		appState.StatusBar.Info = fmt.Sprintf("created plan %d, /task adds to it", plan.ID)
		return nil
	}
	appState.OnAddTask = func(ctx context.Context, planID int64, payload models.TaskPayload) error {
		_, found, err := manager.AddTask(ctx, planID, payload)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("plan %d not found", planID)
		}
		reload()
		appState.ExpandedPlans.Set(planID, true)
		return nil
	}
	appState.OnShare = func(thread models.ForumThread) error {
		return clipboard.WriteAll(render.ShareText(thread))
	}
	appState.OnReload = func(ctx context.Context) error {
		if err := manager.Init(ctx); err != nil {
			return err
		}
		reload()
		return nil
	}
}

type Model struct {
	quit bool
	app  *charm.CharmApp[app.State]
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.app.Update(msg)
	if m.quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() string {
	return m.app.Render()
}
