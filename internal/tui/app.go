package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/api"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/store"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/workflow"
)

// Deps wires one store and one workflow per marketplace entity.
type Deps struct {
	Stores    map[string]*store.Store
	Workflows map[string]*workflow.Workflow
	Language  string
}

// NewDeps builds the per-entity stores and workflows over a shared client.
func NewDeps(client *api.Client, userID, language string) Deps {
	stores := make(map[string]*store.Store)
	workflows := make(map[string]*workflow.Workflow)
	for _, entity := range request.Entities() {
		s := store.New(client, entity)
		stores[entity.Name] = s
		workflows[entity.Name] = workflow.New(s, userID)
	}
	return Deps{Stores: stores, Workflows: workflows, Language: language}
}

type screen int

const (
	screenOverview screen = iota
	screenList
	screenDetail
)

// App is the root dashboard model. It owns navigation between the overview,
// list and detail screens and the session-expired exit path.
type App struct {
	ctx    context.Context
	deps   Deps
	screen screen

	overview *overviewModel
	list     *listModel
	detail   *detailModel

	width   int
	height  int
	expired bool
	err     error
}

func NewApp(ctx context.Context, deps Deps) *App {
	return &App{
		ctx:      ctx,
		deps:     deps,
		screen:   screenOverview,
		overview: newOverviewModel(ctx, deps),
	}
}

// Err returns the fatal error that ended the program, if any.
func (a *App) Err() error {
	return a.err
}

// SessionExpired reports whether the program ended because of a 401.
func (a *App) SessionExpired() bool {
	return a.expired
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.overview.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.String() == keyCtrlC {
			return a, tea.Quit
		}

	case sessionExpiredMsg:
		a.expired = true
		return a, tea.Quit

	case openListMsg:
		a.screen = screenList
		a.list = newListModel(a.ctx, a.deps, msg.entity)
		return a, a.list.Init()

	case openDetailMsg:
		a.screen = screenDetail
		a.detail = newDetailModel(a.ctx, a.deps, msg.entity, msg.item, msg.openReject)
		return a, a.detail.Init()

	case backMsg:
		switch a.screen {
		case screenDetail:
			a.screen = screenList
			return a, a.list.reload()
		case screenList:
			a.screen = screenOverview
			return a, a.overview.Init()
		}
		return a, nil
	}

	return a.delegate(msg)
}

func (a *App) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.screen {
	case screenOverview:
		cmd = a.overview.Update(msg)
	case screenList:
		cmd = a.list.Update(msg)
	case screenDetail:
		cmd = a.detail.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if a.expired {
		return toastErrStyle.Render("Session expired. Please login again.") + "\n"
	}

	switch a.screen {
	case screenList:
		return a.list.View()
	case screenDetail:
		return a.detail.View()
	default:
		return a.overview.View()
	}
}
