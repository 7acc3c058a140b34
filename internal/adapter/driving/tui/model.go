// Package tui implements the terminal GUI driving adapter with bubbletea.
// It is the single catalog screen: three inputs, the pot list and a
// removal confirmation.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ericfisherdev/potcatalog/internal/application"
	"github.com/ericfisherdev/potcatalog/internal/domain/model"
)

// focusArea is the part of the screen receiving key input.
type focusArea int

const (
	focusName focusArea = iota
	focusLocation
	focusFlowers
	focusList
	focusAreaCount
)

var inputFields = [...]application.Field{
	application.FieldName,
	application.FieldLocation,
	application.FieldFlowers,
}

var inputLabels = [...]string{"Name", "Location", "Flowers"}

// Model is the bubbletea model for the catalog screen. It is used through a
// pointer so the form's completion hook can dismiss input focus.
type Model struct {
	ctx       context.Context
	form      *application.FormController
	presenter *application.ListPresenter

	inputs  [3]textinput.Model
	focus   focusArea
	cursor  int
	view    application.ListView
	removal *application.RemovalPrompt
	status  string

	width  int
	styles Styles
}

// NewModel creates the catalog screen with focus on the name input.
func NewModel(ctx context.Context, catalog *application.CatalogService) *Model {
	m := &Model{
		ctx:       ctx,
		presenter: application.NewListPresenter(catalog),
		styles:    DefaultStyles(),
	}
	m.form = application.NewFormController(catalog, m.onSubmitted)

	placeholders := [...]string{"Vaso 1", "Sala", "Rosa, Lírio, Tulipa"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 120
		ti.Width = 40
		ti.Prompt = "> "
		m.inputs[i] = ti
	}
	m.setFocus(focusName)
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.removal != nil {
			return m, m.updateRemoval(msg)
		}
		return m.updateKey(msg)
	}

	if m.focus < focusList {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return m, m.setFocus((m.focus + 1) % focusAreaCount)
	case "shift+tab":
		return m, m.setFocus((m.focus + focusAreaCount - 1) % focusAreaCount)
	}

	if m.focus == focusList {
		return m, m.updateList(msg)
	}

	switch msg.String() {
	case "esc":
		m.setFocus(focusList)
		return m, nil
	case "enter":
		m.submit()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if err := m.form.UpdateField(inputFields[m.focus], m.inputs[m.focus].Value()); err != nil {
		m.status = err.Error()
	}
	return m, cmd
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.view.Rows)-1 {
			m.cursor++
		}
	case "d", "x", "delete":
		if len(m.view.Rows) > 0 {
			m.removal = m.presenter.BeginRemoval(m.ctx, m.view.Rows[m.cursor].ID)
		}
	case "enter", "i":
		return m.setFocus(focusName)
	}
	return nil
}

func (m *Model) updateRemoval(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		removed, err := m.removal.Confirm(m.ctx)
		switch {
		case err != nil:
			m.status = err.Error()
		case removed:
			m.status = "Pot removed."
		}
		m.removal = nil
		m.refresh()
	case "n", "esc":
		_ = m.removal.Cancel()
		m.removal = nil
	}
	return nil
}

func (m *Model) submit() {
	pot, err := m.form.Submit(m.ctx)
	if err != nil {
		if model.IsValidationError(err) {
			m.status = ""
			return
		}
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("Added %s.", pot.Name)
	m.refresh()
}

// onSubmitted clears the inputs and dismisses focus after a successful submit.
func (m *Model) onSubmitted(model.PotRecord) {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.cursor = 0
	m.setFocus(focusList)
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if focusArea(i) == f {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) refresh() {
	m.view = m.presenter.Present(m.ctx)
	if m.cursor >= len(m.view.Rows) {
		m.cursor = max(len(m.view.Rows)-1, 0)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Pot catalog"))
	b.WriteString("\n")

	for i := range m.inputs {
		label := m.styles.Label
		if m.focus == focusArea(i) {
			label = m.styles.FocusedLabel
		}
		b.WriteString(label.Render(inputLabels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	// The prompt belongs to the form buffers and the status to the last
	// action; both stay visible until they change.
	if prompt := m.form.Prompt(); prompt != "" {
		b.WriteString(m.styles.Prompt.Render(prompt))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderList())

	if m.removal != nil {
		b.WriteString(m.renderDialog())
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.helpLine()))
	return b.String()
}

func (m *Model) renderList() string {
	if m.view.Empty {
		return m.styles.Placeholder.Render(m.view.Placeholder) + "\n"
	}

	var b strings.Builder
	for i, row := range m.view.Rows {
		line := row.Name + m.styles.Muted.Render(" · "+row.Location)
		if row.HasFlowers {
			line += m.styles.Muted.Render(" · " + row.Flowers)
		}
		if m.focus == focusList && i == m.cursor {
			b.WriteString(m.styles.SelectedRow.Render("›" + line))
		} else {
			b.WriteString(m.styles.Row.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderDialog() string {
	body := fmt.Sprintf("%s\n%s\n\n[n] %s   [y] %s",
		m.removal.Title(),
		m.removal.Message(),
		application.RemovalCancelLabel,
		application.RemovalConfirmLabel,
	)
	return m.styles.Dialog.Render(body)
}

func (m *Model) helpLine() string {
	switch {
	case m.removal != nil:
		return "y confirm • n cancel"
	case m.focus == focusList:
		return "↑/↓ select • d remove • tab/enter edit • q quit"
	default:
		return "enter add • tab next field • esc done • ctrl+c quit"
	}
}

// Run starts the terminal UI and blocks until the user quits or ctx is done.
func Run(ctx context.Context, catalog *application.CatalogService) error {
	p := tea.NewProgram(NewModel(ctx, catalog), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
