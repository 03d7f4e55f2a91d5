package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/store"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/workflow"
)

// detailModel is one record's detail screen, including the rejection-reason
// modal and the transition toasts.
type detailModel struct {
	ctx    context.Context
	entity request.Entity
	store  *store.Store
	flow   *workflow.Workflow

	item       request.ServiceRequest
	loading    bool
	submitting bool
	notFound   bool
	spinner    spinner.Model

	// rejection modal state; reset on cancel or successful submit
	modalOpen bool
	reason    textinput.Model

	toast    string
	toastErr bool

	pendingReject bool // open the modal as soon as the record arrives
}

func newDetailModel(ctx context.Context, deps Deps, entity request.Entity, item request.ServiceRequest, openReject bool) *detailModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	reason := textinput.New()
	reason.Placeholder = "rejection reason"
	reason.CharLimit = 500

	return &detailModel{
		ctx:           ctx,
		entity:        entity,
		store:         deps.Stores[entity.Name],
		flow:          deps.Workflows[entity.Name],
		item:          item,
		loading:       true,
		spinner:       s,
		reason:        reason,
		pendingReject: openReject,
	}
}

func (m *detailModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.load(), m.spinner.Tick)
}

func (m *detailModel) load() tea.Cmd {
	id := m.item.RequestID
	requestNumber := m.item.RequestNumber
	return func() tea.Msg {
		var item *request.ServiceRequest
		var err error
		if id != 0 {
			item, err = m.store.Get(m.ctx, id)
		} else {
			item, err = m.store.GetByRequestNumber(m.ctx, requestNumber)
		}
		if err != nil {
			if isSessionExpired(err) {
				return sessionExpiredMsg{}
			}
			if errors.Is(err, store.ErrNotFound) {
				return notFoundMsg{}
			}
			return errMsg{err: err}
		}
		return detailLoadedMsg{item: item}
	}
}

func (m *detailModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.modalOpen {
			return m.handleModalKey(msg)
		}
		return m.handleKey(msg)

	case detailLoadedMsg:
		m.loading = false
		m.item = *msg.item
		if m.pendingReject {
			m.pendingReject = false
			if m.flow.CanReject(m.item) {
				return m.openModal()
			}
		}

	case notFoundMsg:
		m.loading = false
		m.notFound = true

	case transitionDoneMsg:
		m.submitting = false
		m.item = *msg.item
		m.toast = msg.toast
		m.toastErr = false
		m.closeModal()

	case errMsg:
		// Pessimistic: the displayed record is untouched on failure.
		m.loading = false
		m.submitting = false
		m.toast = msg.err.Error()
		m.toastErr = true

	case spinner.TickMsg:
		if m.loading || m.submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return cmd
		}
	}
	return nil
}

func (m *detailModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", keyEsc:
		return func() tea.Msg { return backMsg{} }
	case "R":
		m.toast = ""
		return m.Init()
	case "a":
		if m.submitting || !m.flow.CanApprove(m.item) {
			return nil
		}
		return m.runTransition(func() (*request.ServiceRequest, error) {
			return m.flow.Approve(m.ctx, m.item)
		}, "Request approved")
	case "r":
		if m.submitting || !m.flow.CanReject(m.item) {
			return nil
		}
		return m.openModal()
	case "u":
		if m.submitting || !m.flow.CanPublish(m.item) {
			return nil
		}
		return m.runTransition(func() (*request.ServiceRequest, error) {
			return m.flow.Publish(m.ctx, m.item)
		}, "Request published")
	}
	return nil
}

func (m *detailModel) openModal() tea.Cmd {
	m.modalOpen = true
	m.toast = ""
	m.reason.SetValue("")
	m.reason.Focus()
	return textinput.Blink
}

func (m *detailModel) closeModal() {
	m.modalOpen = false
	m.reason.SetValue("")
	m.reason.Blur()
}

func (m *detailModel) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case keyEsc:
		// Cancel discards the reason; no backend call.
		m.closeModal()
		return nil
	case keyEnter:
		if m.submitting {
			return nil
		}
		reason := m.reason.Value()
		return m.runTransition(func() (*request.ServiceRequest, error) {
			return m.flow.Reject(m.ctx, m.item, reason)
		}, "Request rejected")
	}

	var cmd tea.Cmd
	m.reason, cmd = m.reason.Update(msg)
	return cmd
}

func (m *detailModel) runTransition(run func() (*request.ServiceRequest, error), toast string) tea.Cmd {
	m.submitting = true
	m.toast = ""
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		fresh, err := run()
		if err != nil {
			if isSessionExpired(err) {
				return sessionExpiredMsg{}
			}
			return errMsg{err: err}
		}
		return transitionDoneMsg{item: fresh, toast: toast}
	})
}

func (m *detailModel) View() string {
	if m.notFound {
		return m.viewNotFound()
	}
	if m.loading {
		return fmt.Sprintf("\n %s Loading request...\n", m.spinner.View())
	}

	var b strings.Builder
	b.WriteString(m.viewRecord())

	if m.modalOpen {
		b.WriteString("\n" + m.viewModal())
	}

	if m.submitting {
		b.WriteString(fmt.Sprintf("\n %s Submitting...", m.spinner.View()))
	}

	if m.toast != "" {
		style := toastOkStyle
		if m.toastErr {
			style = toastErrStyle
		}
		b.WriteString("\n" + style.Render(m.toast))
	}

	b.WriteString(helpStyle.Render("\n" + m.helpLine()))
	return b.String()
}

func (m *detailModel) viewRecord() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s — %s", m.entity.Title, m.item.RequestNumber)))
	b.WriteString("\n")

	badge := m.item.StatusID.BadgeStyle().Render(m.item.DisplayStatus())

	rows := []struct {
		label string
		value string
	}{
		{"Request #", m.item.RequestNumber},
		{"Status", badge},
		{"Title", m.item.Title},
		{"Contact", m.item.ContactName},
		{"Phone", m.item.ContactPhone},
		{"City", m.item.City},
	}
	if m.item.Quantity > 0 {
		rows = append(rows, struct{ label, value string }{"Quantity", fmt.Sprintf("%d", m.item.Quantity)})
	}
	if m.item.Price > 0 {
		rows = append(rows, struct{ label, value string }{"Price", fmt.Sprintf("%.2f", m.item.Price)})
	}
	if m.item.Reason != "" {
		rows = append(rows, struct{ label, value string }{"Reason", m.item.Reason})
	}
	if m.item.CreatedDate != nil {
		rows = append(rows, struct{ label, value string }{"Created", m.item.CreatedDate.Format("2006-01-02 15:04")})
	}
	if m.item.UpdatedDate != nil {
		rows = append(rows, struct{ label, value string }{"Updated", m.item.UpdatedDate.Format("2006-01-02 15:04")})
	}

	var content strings.Builder
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		content.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", row.label)) + valueStyle.Render(row.value) + "\n")
	}

	b.WriteString(boxStyle.Render(content.String()))
	return b.String()
}

func (m *detailModel) viewModal() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")).Render("Reject Request"))
	b.WriteString("\n\n")
	b.WriteString("Reason: " + m.reason.View())
	b.WriteString("\n\n")
	if m.entity.MinReasonLen > 1 {
		b.WriteString(labelStyle.Render(fmt.Sprintf("At least %d characters. ", m.entity.MinReasonLen)))
	}
	b.WriteString(labelStyle.Render("Enter to submit, Esc to cancel"))
	return modalStyle.Render(b.String())
}

func (m *detailModel) viewNotFound() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.entity.Title))
	b.WriteString("\n")
	b.WriteString(toastErrStyle.Render("Request not found."))
	b.WriteString(helpStyle.Render("\nEsc: Back"))
	return b.String()
}

func (m *detailModel) helpLine() string {
	actions := []string{}
	if m.flow.CanApprove(m.item) {
		actions = append(actions, "a: Approve")
	}
	if m.flow.CanReject(m.item) {
		actions = append(actions, "r: Reject")
	}
	if m.flow.CanPublish(m.item) {
		actions = append(actions, "u: Publish")
	}
	actions = append(actions, "R: Refresh", "Esc: Back")
	return strings.Join(actions, "  ")
}
