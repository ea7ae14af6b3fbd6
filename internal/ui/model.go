// Package ui implements the interactive dashboard: a bubbletea program
// with login, register, dashboard, and profile screens over the shared
// persistent store.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"userdash/internal/session"
	"userdash/internal/store"
)

// screen identifies which view is active.
type screen int

const (
	// screenLogin is the anonymous entry point.
	screenLogin screen = iota
	// screenRegister is the account creation form.
	screenRegister
	// screenDashboard is the task list. Requires a session.
	screenDashboard
	// screenProfile is the profile editor. Requires a session.
	screenProfile
)

// mockLatency simulates a backend round trip before login, registration,
// and profile updates report success. Purely user feedback; there is no
// real request behind it.
const mockLatency = time.Second

// successNoticeDuration is how long the profile "updated" notice stays
// visible.
const successNoticeDuration = 3 * time.Second

// latencyElapsedMsg fires when the simulated round trip finishes and the
// pending mutation should be applied.
type latencyElapsedMsg struct{}

// successFadeMsg fires to clear the profile success notice.
type successFadeMsg struct{}

// pendingAction identifies the mutation waiting behind the mock latency.
type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingLogin
	pendingRegister
	pendingProfile
)

// Model is the dashboard's bubbletea model. It holds a reference to the
// store (the single source of truth) and re-reads state on every render,
// so mutations are immediately visible.
type Model struct {
	store *store.Store
	ctrl  *session.Controller

	screen screen
	width  int
	height int

	// Simulated latency: while busy, key input is ignored and a spinner
	// renders next to the submit hint.
	busy           bool
	spin           spinner.Model
	pending        pendingAction
	pendingUser    store.User
	pendingProfile store.ProfileUpdate

	login   loginForm
	reg     registerForm
	dash    dashboardView
	profile profileForm

	// storageErr holds the last write-through failure for the status
	// line. State mutations themselves never fail.
	storageErr error
}

// NewModel creates the dashboard model. The initial screen honors the
// persisted session: authenticated stores resume on the dashboard,
// anonymous ones start at login.
func NewModel(st *store.Store, clock clockwork.Clock) Model {
	m := Model{
		store:   st,
		ctrl:    session.NewController(clock),
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		login:   newLoginForm(),
		reg:     newRegisterForm(),
		dash:    newDashboardView(),
		profile: newProfileForm(),
	}
	if st.IsAuthenticated() {
		m.screen = screenDashboard
	} else {
		m.screen = screenLogin
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case latencyElapsedMsg:
		return m.applyPending()

	case successFadeMsg:
		m.profile.showSuccess = false
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		// Input is disabled while the simulated round trip is running.
		if m.busy {
			return m, nil
		}
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	theme := ForMode(m.store.IsDarkMode())

	var body string
	switch m.screen {
	case screenLogin:
		body = m.viewLogin(theme)
	case screenRegister:
		body = m.viewRegister(theme)
	case screenDashboard:
		body = m.viewDashboard(theme)
	case screenProfile:
		body = m.viewProfile(theme)
	}

	if m.storageErr != nil {
		body += "\n" + theme.fieldError().Render("storage error: "+m.storageErr.Error())
	}
	return body + "\n"
}

// navigate switches screens, enforcing the session guard: authenticated
// views redirect to login when the session is anonymous.
func (m Model) navigate(target screen) Model {
	if (target == screenDashboard || target == screenProfile) && !m.store.IsAuthenticated() {
		target = screenLogin
	}
	if target == screenProfile {
		m.profile = m.profile.prefill(m.store)
	}
	m.screen = target
	return m
}

// beginLatency starts the simulated round trip for the given pending
// action.
func (m Model) beginLatency(action pendingAction) (Model, tea.Cmd) {
	m.busy = true
	m.pending = action
	return m, tea.Batch(
		m.spin.Tick,
		tea.Tick(mockLatency, func(time.Time) tea.Msg { return latencyElapsedMsg{} }),
	)
}

// applyPending applies the mutation that was waiting behind the mock
// latency and navigates accordingly.
func (m Model) applyPending() (tea.Model, tea.Cmd) {
	action := m.pending
	m.busy = false
	m.pending = pendingNone

	switch action {
	case pendingLogin, pendingRegister:
		if err := m.store.Login(m.pendingUser); err != nil {
			m.storageErr = err
			return m, nil
		}
		m.pendingUser = store.User{}
		m.login = newLoginForm()
		m.reg = newRegisterForm()
		m = m.navigate(screenDashboard)
		return m, nil

	case pendingProfile:
		if err := m.store.UpdateProfile(m.pendingProfile); err != nil {
			m.storageErr = err
			return m, nil
		}
		m.pendingProfile = store.ProfileUpdate{}
		m.profile.showSuccess = true
		return m, tea.Tick(successNoticeDuration, func(time.Time) tea.Msg { return successFadeMsg{} })
	}
	return m, nil
}

// logout clears the session and returns to the login screen.
func (m Model) logout() (tea.Model, tea.Cmd) {
	if err := m.store.Logout(); err != nil {
		m.storageErr = err
		return m, nil
	}
	m.dash = newDashboardView()
	m = m.navigate(screenLogin)
	return m, nil
}

// toggleTheme flips the persisted dark-mode preference. The next render
// picks up the other palette.
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if _, err := m.store.ToggleDarkMode(); err != nil {
		m.storageErr = err
	}
	return m, nil
}
