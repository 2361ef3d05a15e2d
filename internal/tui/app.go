// Package tui implements the interactive terminal frontend.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/natvega/tasktique/internal/api"
	"github.com/natvega/tasktique/internal/config"
	"github.com/natvega/tasktique/internal/kv"
	"github.com/natvega/tasktique/internal/store"
	"github.com/natvega/tasktique/internal/task"
	"github.com/natvega/tasktique/internal/theme"
)

// mode is the current input mode.
type mode int

const (
	modeList mode = iota
	modeSearch
	modePrompt
	modeAdd
)

// Model is the main Bubble Tea model.
type Model struct {
	tasks  *store.TaskStore
	tags   *store.TagStore
	notify *notifier
	styles Styles

	query   task.Query
	visible []task.Task
	cursor  int
	mode    mode

	input  textinput.Model
	spin   spinner.Model
	notice noticeMsg
	width  int
	height int
}

// Run starts the TUI application.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	kvs, err := kv.Open(cfg.Data.StatePath)
	if err != nil {
		return err
	}

	notify := newNotifier()
	tasks := store.NewTaskStore(api.NewClient(cfg.Service.BaseURL), notify)
	tags, err := store.NewTagStore(kvs, tasks, notify)
	if err != nil {
		return err
	}

	m := newModel(tasks, tags, notify, theme.Load(kvs))
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newModel(tasks *store.TaskStore, tags *store.TagStore, notify *notifier, th theme.Theme) Model {
	input := textinput.New()
	input.CharLimit = 200

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		tasks:  tasks,
		tags:   tags,
		notify: notify,
		styles: NewStyles(th),
		query:  task.Query{Filter: task.FilterAll, SortBy: task.SortDueDate},
		input:  input,
		spin:   spin,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.refreshCmd(), m.notify.wait())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case noticeMsg:
		m.notice = msg
		return m, m.notify.wait()

	case refreshedMsg, mutatedMsg:
		m.reload()
		return m, nil

	case generatedMsg:
		m.reload()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch, modePrompt, modeAdd:
			return m.updateInput(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case "r":
		return m, m.refreshCmd()

	case "f":
		m.query.Filter = nextFilter(m.query.Filter)
		m.reload()

	case "1":
		m.query.Select(task.SortDueDate)
		m.reload()
	case "2":
		m.query.Select(task.SortPriority)
		m.reload()
	case "3":
		m.query.Select(task.SortTitle)
		m.reload()
	case "4":
		m.query.Select(task.SortCreatedAt)
		m.reload()

	case "/":
		m.mode = modeSearch
		m.input.Placeholder = "Search tasks..."
		m.input.SetValue(m.query.Search)
		m.input.Focus()
		return m, textinput.Blink

	case "a":
		m.mode = modeAdd
		m.input.Placeholder = "New task title"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "p":
		m.mode = modePrompt
		m.input.Placeholder = "Describe the tasks to generate..."
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case " ":
		if t, ok := m.selected(); ok {
			return m, m.toggleCmd(t.ID)
		}

	case "x":
		if t, ok := m.selected(); ok {
			return m, m.deleteCmd(t.ID)
		}
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.mode == modeSearch {
			m.query.Search = ""
			m.reload()
		}
		m.mode = modeList
		m.input.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		submitted := m.mode
		m.mode = modeList
		m.input.Blur()

		switch submitted {
		case modeSearch:
			m.query.Search = value
			m.reload()
			return m, nil
		case modeAdd:
			// Title is validated here at the creation boundary; the
			// store never sees an empty draft.
			if value == "" {
				m.notice = noticeMsg{isErr: true, text: task.ErrEmptyTitle.Error()}
				return m, nil
			}
			return m, m.createCmd(value)
		case modePrompt:
			if value == "" {
				return m, nil
			}
			return m, m.promptCmd(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// reload recomputes the visible slice from the store and clamps the
// cursor.
func (m *Model) reload() {
	m.visible = task.Apply(m.tasks.Tasks(), m.query, time.Now())
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return task.Task{}, false
	}
	return m.visible[m.cursor], true
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{err: m.tasks.Refresh(context.Background())}
	}
}

func (m Model) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return mutatedMsg{err: m.tasks.ToggleCompletion(context.Background(), id)}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return mutatedMsg{err: m.tasks.Delete(context.Background(), id)}
	}
}

func (m Model) createCmd(title string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.tasks.Create(context.Background(), task.Draft{
			Title:      title,
			Priority:   task.PriorityMedium,
			Estimation: task.Estimation{Unit: task.UnitHours},
		})
		return mutatedMsg{err: err}
	}
}

func (m Model) promptCmd(text string) tea.Cmd {
	return func() tea.Msg {
		generated, err := m.tasks.ProcessPrompt(context.Background(), text)
		return generatedMsg{count: len(generated), err: err}
	}
}

func nextFilter(f task.Filter) task.Filter {
	for i, candidate := range task.Filters {
		if candidate == f {
			return task.Filters[(i+1)%len(task.Filters)]
		}
	}
	return task.FilterAll
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("TaskTique"))
	b.WriteString("\n")
	b.WriteString(m.statsLine())
	b.WriteString("\n")
	b.WriteString(m.queryLine())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(m.styles.Subtle.Render("No tasks found."))
		b.WriteString("\n")
	}
	for i, t := range m.visible {
		b.WriteString(m.renderRow(t, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar())
	return b.String()
}

func (m Model) statsLine() string {
	s := m.tasks.Stats()
	line := fmt.Sprintf("%d tasks · %d done (%d%%) · %d due today · %d overdue · %s estimated",
		s.Total, s.ByStatus[task.StatusCompleted], s.CompletionRate, s.DueToday, s.Overdue, s.EstimatedTime)
	if m.tasks.Loading() {
		line = m.spin.View() + " " + line
	}
	return m.styles.Subtle.Render(line)
}

func (m Model) queryLine() string {
	direction := "asc"
	if m.query.Desc {
		direction = "desc"
	}
	line := fmt.Sprintf("filter: %s · sort: %s %s", m.query.Filter, m.query.SortBy, direction)
	if m.query.Search != "" {
		line += fmt.Sprintf(" · search: %q", m.query.Search)
	}
	return m.styles.Subtle.Render(line)
}

func (m Model) renderRow(t task.Task, selected bool) string {
	marker := "  "
	if selected {
		marker = m.styles.Selected.Render("> ")
	}

	box := "[ ]"
	if t.Completed() {
		box = "[x]"
	}

	title := t.Title
	switch {
	case t.Completed():
		title = m.styles.Completed.Render(title)
	case t.DueDate != nil && t.DueDate.Before(time.Now()):
		title = m.styles.Overdue.Render(title)
	case t.Priority == task.PriorityHigh:
		title = m.styles.High.Render(title)
	}

	due := ""
	if t.DueDate != nil {
		due = m.styles.Subtle.Render(" · due " + t.DueDate.Local().Format("Jan 2"))
	}

	return fmt.Sprintf("%s%s %s%s%s", marker, box, title, due, m.renderTags(t))
}

// renderTags resolves a task's tag ids to names, each in its tag color.
// Unknown ids are skipped rather than shown raw.
func (m Model) renderTags(t task.Task) string {
	if m.tags == nil || len(t.Tags) == 0 {
		return ""
	}
	var b strings.Builder
	for _, id := range t.Tags {
		tag, ok := m.tags.Get(id)
		if !ok {
			continue
		}
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(tag.Color)).Render("#" + tag.Name))
	}
	return b.String()
}

func (m Model) statusBar() string {
	switch m.mode {
	case modeSearch, modeAdd, modePrompt:
		return m.input.View()
	}

	notice := ""
	if m.notice.text != "" {
		if m.notice.isErr {
			notice = m.styles.Error.Render(m.notice.text) + "  "
		} else {
			notice = m.styles.Success.Render(m.notice.text) + "  "
		}
	}
	help := "space toggle · a add · x delete · f filter · 1-4 sort · / search · p ai · r refresh · q quit"
	return notice + m.styles.StatusBar.Render(help)
}
