package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/api"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
)

// overviewModel is the landing screen: every marketplace vertical with its
// pending-review count, fetched in parallel.
type overviewModel struct {
	ctx      context.Context
	deps     Deps
	entities []request.Entity
	counts   map[string]int
	selected int
	loading  bool
	spinner  spinner.Model
	toast    string
}

func newOverviewModel(ctx context.Context, deps Deps) *overviewModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	return &overviewModel{
		ctx:      ctx,
		deps:     deps,
		entities: request.Entities(),
		counts:   map[string]int{},
		loading:  true,
		spinner:  s,
	}
}

func (m *overviewModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.loadCounts(), m.spinner.Tick)
}

func (m *overviewModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case countsLoadedMsg:
		m.loading = false
		m.counts = msg.counts

	case errMsg:
		m.loading = false
		m.toast = msg.err.Error()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return cmd
		}
	}
	return nil
}

func (m *overviewModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case keyUp, "k":
		if m.selected > 0 {
			m.selected--
		}
	case keyDown, "j":
		if m.selected < len(m.entities)-1 {
			m.selected++
		}
	case keyEnter:
		entity := m.entities[m.selected]
		return func() tea.Msg { return openListMsg{entity: entity} }
	case "r":
		return m.Init()
	}
	return nil
}

func (m *overviewModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Salwa Admin — Service Requests"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(fmt.Sprintf("\n %s Loading pending counts...\n", m.spinner.View()))
	} else {
		for i, entity := range m.entities {
			line := fmt.Sprintf("%-24s %d pending", entity.Title, m.counts[entity.Name])
			prefix := "  "
			style := lipgloss.NewStyle()
			if i == m.selected {
				prefix = "> "
				style = selectedRowStyle
			}
			b.WriteString(style.Render(prefix+line) + "\n")
		}
	}

	if m.toast != "" {
		b.WriteString("\n" + toastErrStyle.Render(m.toast))
	}

	b.WriteString(helpStyle.Render("\n↑/↓: Navigate  Enter: Open  r: Refresh  q: Quit"))
	return b.String()
}

// loadCounts asks every entity's list endpoint for a single pending row and
// keeps the reported total.
func (m *overviewModel) loadCounts() tea.Cmd {
	return func() tea.Msg {
		g, ctx := errgroup.WithContext(m.ctx)
		counts := make(map[string]int, len(m.entities))
		results := make([]int, len(m.entities))

		for i, entity := range m.entities {
			i, entity := i, entity
			g.Go(func() error {
				pending := request.StatusPending
				page, err := m.deps.Stores[entity.Name].List(ctx, request.ListParams{
					Page:     1,
					PageSize: 1,
					Status:   &pending,
					Language: m.deps.Language,
				})
				if err != nil {
					return err
				}
				results[i] = page.State.TotalCount
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			if isSessionExpired(err) {
				return sessionExpiredMsg{}
			}
			return errMsg{err: err}
		}

		for i, entity := range m.entities {
			counts[entity.Name] = results[i]
		}
		return countsLoadedMsg{counts: counts}
	}
}

func isSessionExpired(err error) bool {
	return errors.Is(err, api.ErrSessionExpired)
}
