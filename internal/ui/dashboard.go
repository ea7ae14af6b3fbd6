package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"userdash/internal/store"
	"userdash/internal/taskctl"
	"userdash/internal/validation"
)

// dashMode identifies what the dashboard is showing: the task list or
// the add/edit form overlay.
type dashMode int

const (
	dashList dashMode = iota
	dashAdd
	dashEdit
)

// dashKeys are the task-list key bindings.
type dashKeys struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Profile key.Binding
	Theme   key.Binding
	Logout  key.Binding
	Quit    key.Binding
}

var defaultDashKeys = dashKeys{
	Up:      key.NewBinding(key.WithKeys("up", "k")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Toggle:  key.NewBinding(key.WithKeys(" ", "enter")),
	Add:     key.NewBinding(key.WithKeys("a")),
	Edit:    key.NewBinding(key.WithKeys("e")),
	Delete:  key.NewBinding(key.WithKeys("d")),
	Profile: key.NewBinding(key.WithKeys("p")),
	Theme:   key.NewBinding(key.WithKeys("t")),
	Logout:  key.NewBinding(key.WithKeys("l")),
	Quit:    key.NewBinding(key.WithKeys("q")),
}

// dashboardView holds the dashboard's cursor and the add/edit form.
type dashboardView struct {
	mode      dashMode
	cursor    int
	editID    int64
	title     textinput.Model
	desc      textinput.Model
	formFocus int
	errs      validation.Errors
	keys      dashKeys
}

func newDashboardView() dashboardView {
	title := textinput.New()
	title.Placeholder = "Enter task title"
	title.CharLimit = 200
	title.Width = 40

	desc := textinput.New()
	desc.Placeholder = "Enter task description (optional)"
	desc.CharLimit = 500
	desc.Width = 40

	return dashboardView{
		title: title,
		desc:  desc,
		errs:  validation.Errors{},
		keys:  defaultDashKeys,
	}
}

// visibleTasks returns the dashboard ordering: pending first, then
// completed, each in insertion order.
func (m Model) visibleTasks() []store.Task {
	var pending, completed []store.Task
	for _, task := range m.store.Tasks() {
		if task.Completed {
			completed = append(completed, task)
		} else {
			pending = append(pending, task)
		}
	}
	return append(pending, completed...)
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dash.mode != dashList {
		return m.updateTaskForm(msg)
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	tasks := m.visibleTasks()
	keys := m.dash.keys

	switch {
	case key.Matches(keyMsg, keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Up):
		if m.dash.cursor > 0 {
			m.dash.cursor--
		}
		return m, nil

	case key.Matches(keyMsg, keys.Down):
		if m.dash.cursor < len(tasks)-1 {
			m.dash.cursor++
		}
		return m, nil

	case key.Matches(keyMsg, keys.Toggle):
		if m.dash.cursor < len(tasks) {
			if err := m.store.ToggleTaskComplete(tasks[m.dash.cursor].ID); err != nil {
				m.storageErr = err
			}
		}
		return m, nil

	case key.Matches(keyMsg, keys.Delete):
		if m.dash.cursor < len(tasks) {
			if err := m.store.DeleteTask(tasks[m.dash.cursor].ID); err != nil {
				m.storageErr = err
			}
			if m.dash.cursor > 0 && m.dash.cursor >= len(tasks)-1 {
				m.dash.cursor--
			}
		}
		return m, nil

	case key.Matches(keyMsg, keys.Add):
		m.dash.mode = dashAdd
		m.dash.title.SetValue("")
		m.dash.desc.SetValue("")
		m.dash.errs = validation.Errors{}
		m.dash = m.dash.setFormFocus(0)
		return m, textinput.Blink

	case key.Matches(keyMsg, keys.Edit):
		if m.dash.cursor < len(tasks) {
			task := tasks[m.dash.cursor]
			m.dash.mode = dashEdit
			m.dash.editID = task.ID
			m.dash.title.SetValue(task.Title)
			m.dash.desc.SetValue(task.Description)
			m.dash.errs = validation.Errors{}
			m.dash = m.dash.setFormFocus(0)
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(keyMsg, keys.Profile):
		m = m.navigate(screenProfile)
		return m, textinput.Blink

	case key.Matches(keyMsg, keys.Theme):
		return m.toggleTheme()

	case key.Matches(keyMsg, keys.Logout):
		return m.logout()
	}
	return m, nil
}

func (d dashboardView) setFormFocus(focus int) dashboardView {
	d.formFocus = focus
	d.title.Blur()
	d.desc.Blur()
	if focus == 0 {
		d.title.Focus()
	} else {
		d.desc.Focus()
	}
	return d
}

func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.dash.mode = dashList
			return m, nil
		case tea.KeyTab, tea.KeyDown:
			m.dash = m.dash.setFormFocus((m.dash.formFocus + 1) % 2)
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.dash = m.dash.setFormFocus((m.dash.formFocus + 1) % 2)
			return m, nil
		case tea.KeyEnter:
			if m.dash.formFocus == 0 {
				m.dash = m.dash.setFormFocus(1)
				return m, nil
			}
			return m.submitTaskForm()
		}
	}

	var cmd tea.Cmd
	if m.dash.formFocus == 0 {
		m.dash.title, cmd = m.dash.title.Update(msg)
		if isKey {
			delete(m.dash.errs, "title")
		}
	} else {
		m.dash.desc, cmd = m.dash.desc.Update(msg)
	}
	return m, cmd
}

func (m Model) submitTaskForm() (tea.Model, tea.Cmd) {
	title, desc, errs := taskctl.PrepareUpdate(m.dash.title.Value(), m.dash.desc.Value())
	if !errs.Valid() {
		m.dash.errs = errs
		return m, nil
	}

	var err error
	if m.dash.mode == dashAdd {
		_, err = m.store.AddTask(title, desc)
	} else {
		err = m.store.UpdateTask(m.dash.editID, store.TaskUpdate{Title: &title, Description: &desc})
	}
	if err != nil {
		m.storageErr = err
		return m, nil
	}
	m.dash.mode = dashList
	return m, nil
}

func (m Model) viewDashboard(theme Theme) string {
	user, _ := m.store.User()
	tasks := m.visibleTasks()

	total := len(tasks)
	completed := 0
	for _, task := range tasks {
		if task.Completed {
			completed++
		}
	}
	pending := total - completed

	body := theme.header().Render(fmt.Sprintf("Welcome back, %s!", user.Name)) + "\n"
	body += theme.faint().Render("Here's what you need to do today.") + "\n\n"
	body += theme.accent().Render(fmt.Sprintf("Total %d", total)) + theme.faint().Render("  •  ") +
		theme.normal().Render(fmt.Sprintf("Pending %d", pending)) + theme.faint().Render("  •  ") +
		theme.success().Render(fmt.Sprintf("Completed %d", completed)) + "\n\n"

	if m.dash.mode != dashList {
		formTitle := "Add New Task"
		if m.dash.mode == dashEdit {
			formTitle = "Edit Task"
		}
		form := theme.header().Render(formTitle) + "\n\n"
		form += renderField(theme, "Task Title *", m.dash.title, m.dash.errs, "title")
		form += renderField(theme, "Description (optional)", m.dash.desc, m.dash.errs, "description")
		form += theme.help().Render("enter: save • esc: cancel")
		return theme.box().Render(body + form)
	}

	if len(tasks) == 0 {
		body += theme.faint().Render("No tasks. Get started by creating a new task.") + "\n"
	}
	for i, task := range tasks {
		marker := "[ ]"
		line := task.Title
		style := theme.normal()
		if task.Completed {
			marker = "[x]"
			style = theme.completed()
		}
		if task.Description != "" {
			line += theme.faint().Render(" - ")
		}
		row := fmt.Sprintf("%s %s", marker, style.Render(line))
		if task.Description != "" {
			row += theme.faint().Render(task.Description)
		}
		if i == m.dash.cursor {
			row = theme.selected().Render("> ") + row
		} else {
			row = "  " + row
		}
		body += row + "\n"
	}

	body += "\n" + theme.help().Render("a: add • e: edit • space: toggle • d: delete • p: profile • t: theme • l: logout • q: quit")
	return theme.box().Render(body)
}
