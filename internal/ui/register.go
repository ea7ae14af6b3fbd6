package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"userdash/internal/validation"
)

// registerForm holds the registration screen's inputs and field errors.
type registerForm struct {
	name    textinput.Model
	email   textinput.Model
	pass    textinput.Model
	confirm textinput.Model
	focus   int
	errs    validation.Errors
}

func newRegisterForm() registerForm {
	name := textinput.New()
	name.Placeholder = "Enter your name"
	name.CharLimit = 100
	name.Width = 40
	name.Focus()

	email := textinput.New()
	email.Placeholder = "Enter your email"
	email.CharLimit = 254
	email.Width = 40

	pass := textinput.New()
	pass.Placeholder = "Choose a password"
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	pass.CharLimit = 128
	pass.Width = 40

	confirm := textinput.New()
	confirm.Placeholder = "Confirm your password"
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'
	confirm.CharLimit = 128
	confirm.Width = 40

	return registerForm{
		name:    name,
		email:   email,
		pass:    pass,
		confirm: confirm,
		errs:    validation.Errors{},
	}
}

var registerFieldNames = []string{"name", "email", "password", "confirmPassword"}

func (f registerForm) setFocus(focus int) registerForm {
	f.focus = focus
	f.name.Blur()
	f.email.Blur()
	f.pass.Blur()
	f.confirm.Blur()
	switch focus {
	case 0:
		f.name.Focus()
	case 1:
		f.email.Focus()
	case 2:
		f.pass.Focus()
	case 3:
		f.confirm.Focus()
	}
	return f
}

func (m Model) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.Type {
		case tea.KeyTab, tea.KeyDown:
			m.reg = m.reg.setFocus((m.reg.focus + 1) % len(registerFieldNames))
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.reg = m.reg.setFocus((m.reg.focus + len(registerFieldNames) - 1) % len(registerFieldNames))
			return m, nil
		case tea.KeyEnter:
			if m.reg.focus < len(registerFieldNames)-1 {
				m.reg = m.reg.setFocus(m.reg.focus + 1)
				return m, nil
			}
			return m.submitRegister()
		case tea.KeyEsc:
			m = m.navigate(screenLogin)
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.reg.focus {
	case 0:
		m.reg.name, cmd = m.reg.name.Update(msg)
	case 1:
		m.reg.email, cmd = m.reg.email.Update(msg)
	case 2:
		m.reg.pass, cmd = m.reg.pass.Update(msg)
	case 3:
		m.reg.confirm, cmd = m.reg.confirm.Update(msg)
	}
	if isKey {
		delete(m.reg.errs, registerFieldNames[m.reg.focus])
	}
	return m, cmd
}

func (m Model) submitRegister() (tea.Model, tea.Cmd) {
	name := m.reg.name.Value()
	email := m.reg.email.Value()

	errs := m.ctrl.ValidateRegistration(name, email, m.reg.pass.Value(), m.reg.confirm.Value())
	if !errs.Valid() {
		m.reg.errs = errs
		return m, nil
	}

	m.pendingUser = m.ctrl.NewUser(name, email)
	return m.beginLatency(pendingRegister)
}

func (m Model) viewRegister(theme Theme) string {
	title := theme.header().Render("Create Account")
	subtitle := theme.faint().Render("Register to start organizing your tasks")

	body := title + "\n" + subtitle + "\n\n"
	body += renderField(theme, "Name", m.reg.name, m.reg.errs, "name")
	body += renderField(theme, "Email Address", m.reg.email, m.reg.errs, "email")
	body += renderField(theme, "Password", m.reg.pass, m.reg.errs, "password")
	body += renderField(theme, "Confirm Password", m.reg.confirm, m.reg.errs, "confirmPassword")

	if m.busy {
		body += m.spin.View() + theme.faint().Render(" Creating account...") + "\n"
	} else {
		body += theme.help().Render("tab: next field • enter: sign up • esc: back to login • ctrl+c: quit") + "\n"
	}
	return theme.box().Render(body)
}
