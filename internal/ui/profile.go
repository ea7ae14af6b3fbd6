package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"userdash/internal/store"
	"userdash/internal/validation"
)

// profileForm holds the profile screen's inputs, field errors, and the
// transient success notice.
type profileForm struct {
	name  textinput.Model
	email textinput.Model
	bio   textinput.Model
	focus int
	errs  validation.Errors

	showSuccess bool
}

func newProfileForm() profileForm {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 100
	name.Width = 40
	name.Focus()

	email := textinput.New()
	email.Placeholder = "Your email"
	email.CharLimit = 254
	email.Width = 40

	bio := textinput.New()
	bio.Placeholder = "A short bio (optional)"
	bio.CharLimit = 500
	bio.Width = 40

	return profileForm{
		name:  name,
		email: email,
		bio:   bio,
		errs:  validation.Errors{},
	}
}

// prefill loads the current user into the form, discarding any edits in
// progress. Called on navigation so the form always opens fresh.
func (f profileForm) prefill(st *store.Store) profileForm {
	user, ok := st.User()
	if !ok {
		return f
	}
	f.name.SetValue(user.Name)
	f.email.SetValue(user.Email)
	f.bio.SetValue(user.Bio)
	f.errs = validation.Errors{}
	f.showSuccess = false
	return f.setFocus(0)
}

var profileFieldNames = []string{"name", "email", "bio"}

func (f profileForm) setFocus(focus int) profileForm {
	f.focus = focus
	f.name.Blur()
	f.email.Blur()
	f.bio.Blur()
	switch focus {
	case 0:
		f.name.Focus()
	case 1:
		f.email.Focus()
	case 2:
		f.bio.Focus()
	}
	return f
}

func (m Model) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m = m.navigate(screenDashboard)
			return m, nil
		case tea.KeyTab, tea.KeyDown:
			m.profile = m.profile.setFocus((m.profile.focus + 1) % len(profileFieldNames))
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.profile = m.profile.setFocus((m.profile.focus + len(profileFieldNames) - 1) % len(profileFieldNames))
			return m, nil
		case tea.KeyEnter:
			if m.profile.focus < len(profileFieldNames)-1 {
				m.profile = m.profile.setFocus(m.profile.focus + 1)
				return m, nil
			}
			return m.submitProfile()
		}
	}

	var cmd tea.Cmd
	switch m.profile.focus {
	case 0:
		m.profile.name, cmd = m.profile.name.Update(msg)
	case 1:
		m.profile.email, cmd = m.profile.email.Update(msg)
	case 2:
		m.profile.bio, cmd = m.profile.bio.Update(msg)
	}
	if isKey {
		delete(m.profile.errs, profileFieldNames[m.profile.focus])
		m.profile.showSuccess = false
	}
	return m, cmd
}

func (m Model) submitProfile() (tea.Model, tea.Cmd) {
	name := m.profile.name.Value()
	email := m.profile.email.Value()

	errs := m.ctrl.ValidateProfile(name, email)
	if !errs.Valid() {
		m.profile.errs = errs
		return m, nil
	}

	trimmedName := strings.TrimSpace(name)
	trimmedEmail := strings.TrimSpace(email)
	trimmedBio := strings.TrimSpace(m.profile.bio.Value())
	m.pendingProfile = store.ProfileUpdate{
		Name:  &trimmedName,
		Email: &trimmedEmail,
		Bio:   &trimmedBio,
	}
	return m.beginLatency(pendingProfile)
}

func (m Model) viewProfile(theme Theme) string {
	title := theme.header().Render("Profile")
	subtitle := theme.faint().Render("Edit your profile information")

	body := title + "\n" + subtitle + "\n\n"
	body += renderField(theme, "Name", m.profile.name, m.profile.errs, "name")
	body += renderField(theme, "Email Address", m.profile.email, m.profile.errs, "email")
	body += renderField(theme, "Bio", m.profile.bio, m.profile.errs, "bio")

	switch {
	case m.busy:
		body += m.spin.View() + theme.faint().Render(" Saving...") + "\n"
	case m.profile.showSuccess:
		body += theme.success().Render("Profile updated") + "\n"
	default:
		body += theme.help().Render("tab: next field • enter: save • esc: back to dashboard • ctrl+c: quit") + "\n"
	}
	return theme.box().Render(body)
}
