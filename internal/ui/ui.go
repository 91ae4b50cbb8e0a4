package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tarefas/internal/config"
	"tarefas/internal/logging"
	"tarefas/internal/todo"
)

type mode int

const (
	modeAdd mode = iota
	modeList
)

// Model is the page: a header above the to-do list, its form and its summary.
type Model struct {
	cfg    config.Config
	list   *todo.List
	cursor int
	mode   mode
	input  textinput.Model
}

func New(cfg config.Config, list *todo.List) Model {
	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.CharLimit = cfg.CharLimit
	ti.Width = 40
	ti.Focus()

	return Model{
		cfg:   cfg,
		list:  list,
		mode:  modeAdd,
		input: ti,
	}
}

func Run(cfg config.Config, list *todo.List) error {
	program := tea.NewProgram(New(cfg, list))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeAdd {
			return m.updateAddMode(msg.String(), msg)
		}
		return m.updateListMode(msg.String())
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) updateAddMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, m.cfg.Keys.Switch:
		m.mode = modeList
		m.input.Blur()
		m.cursor = clampCursor(m.cursor, m.list.CreatedCount())
		return m, nil
	case m.cfg.Keys.Confirm:
		task, err := m.list.Submit()
		if errors.Is(err, todo.ErrRequired) {
			logging.Debugf("submit rejected: empty draft")
			return m, nil
		}
		logging.Debugf("add %s %q", task.ID, task.Content)
		m.input.SetValue("")
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != m.list.Draft() {
			m.list.SetDraft(v)
		}
		return m, cmd
	}
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	items := m.items()
	switch key {
	case m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		m.cursor = clampCursor(m.cursor+1, len(items))
	case m.cfg.Keys.Up, "up":
		m.cursor = clampCursor(m.cursor-1, len(items))
	case m.cfg.Keys.Add, m.cfg.Keys.Switch:
		m.mode = modeAdd
		cmd := m.input.Focus()
		return m, cmd
	case m.cfg.Keys.Toggle:
		if len(items) == 0 {
			return m, nil
		}
		items[m.cursor].Toggle()
	case m.cfg.Keys.Delete:
		if len(items) == 0 {
			return m, nil
		}
		items[m.cursor].Remove()
		m.cursor = clampCursor(m.cursor, m.list.CreatedCount())
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderForm())
	b.WriteString("\n\n")
	b.WriteString(m.renderSummary())
	b.WriteString("\n\n")
	b.WriteString(m.renderTaskList())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.renderHelp()))

	return b.String()
}

func renderHeader() string {
	return "🚀 " + logoToStyle.Render("to") + logoDoStyle.Render("do")
}

func (m Model) renderForm() string {
	button := buttonStyle.Render("Criar ⊕")
	if m.list.IsSubmitDisabled() {
		button = buttonDisabledStyle.Render("Criar ⊕")
	}
	form := m.input.View() + "  " + button
	if msg := m.list.Validation(); msg != "" {
		form += "\n" + validationStyle.Render(msg)
	}
	return form
}

func (m Model) renderHelp() string {
	k := m.cfg.Keys
	if m.mode == modeAdd {
		return fmt.Sprintf("%s create • %s/%s list • ctrl+c quit", k.Confirm, k.Cancel, k.Switch)
	}
	return fmt.Sprintf("%s/%s move • %q toggle • %s delete • %s/%s new task • %s quit",
		k.Up, k.Down, k.Toggle, k.Delete, k.Add, k.Switch, k.Quit)
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
