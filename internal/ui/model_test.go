package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdash/internal/store"
	"userdash/internal/testutil"
	"userdash/internal/validation"
)

func newTestModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	st, clock := testutil.NewStore(t)
	return NewModel(st, clock), st
}

func newAuthedModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	st, clock := testutil.LoginStore(t)
	return NewModel(st, clock), st
}

// step feeds one message through Update and returns the next model.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	require.IsType(t, Model{}, next)
	return next.(Model)
}

func keyPress(key tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: key}
}

// typeString delivers a string as individual rune key presses.
func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNewModel_InitialScreen(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, screenLogin, m.screen)

	authed, _ := newAuthedModel(t)
	assert.Equal(t, screenDashboard, authed.screen)
}

func TestLoginFlow(t *testing.T) {
	m, st := newTestModel(t)

	m = typeString(t, m, "jane@example.com")
	m = step(t, m, keyPress(tea.KeyEnter)) // advance to password
	m = typeString(t, m, "secret1")
	m = step(t, m, keyPress(tea.KeyEnter)) // submit

	assert.True(t, m.busy)
	assert.Equal(t, pendingLogin, m.pending)
	assert.False(t, st.IsAuthenticated(), "session must not open before the simulated round trip")

	m = step(t, m, latencyElapsedMsg{})

	assert.False(t, m.busy)
	assert.Equal(t, screenDashboard, m.screen)
	require.True(t, st.IsAuthenticated())
	user, ok := st.User()
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "jane", user.Name)
}

func TestLogin_ValidationErrors(t *testing.T) {
	m, st := newTestModel(t)

	m = typeString(t, m, "bad-email")
	m = step(t, m, keyPress(tea.KeyEnter))
	m = typeString(t, m, "abc")
	m = step(t, m, keyPress(tea.KeyEnter))

	assert.False(t, m.busy)
	assert.Equal(t, screenLogin, m.screen)
	assert.False(t, st.IsAuthenticated())
	require.Contains(t, m.login.errs, "email")
	require.Contains(t, m.login.errs, "password")
	assert.Equal(t, validation.ReasonInvalidFormat, m.login.errs["email"].Reason)
	assert.Equal(t, validation.ReasonTooShort, m.login.errs["password"].Reason)
}

func TestLogin_ErrorClearsOnEdit(t *testing.T) {
	m, _ := newTestModel(t)

	m = step(t, m, keyPress(tea.KeyEnter))
	m = step(t, m, keyPress(tea.KeyEnter))
	require.Contains(t, m.login.errs, "password")

	// Editing the focused field clears its error, not the others.
	m = typeString(t, m, "s")
	assert.NotContains(t, m.login.errs, "password")
	assert.Contains(t, m.login.errs, "email")
}

func TestLogin_SwitchToRegister(t *testing.T) {
	m, _ := newTestModel(t)
	m = step(t, m, keyPress(tea.KeyCtrlN))
	assert.Equal(t, screenRegister, m.screen)

	m = step(t, m, keyPress(tea.KeyEsc))
	assert.Equal(t, screenLogin, m.screen)
}

func TestRegisterFlow(t *testing.T) {
	m, st := newTestModel(t)

	m = step(t, m, keyPress(tea.KeyCtrlN))
	m = typeString(t, m, "Jane Doe")
	m = step(t, m, keyPress(tea.KeyTab))
	m = typeString(t, m, "jane@example.com")
	m = step(t, m, keyPress(tea.KeyTab))
	m = typeString(t, m, "secret1")
	m = step(t, m, keyPress(tea.KeyTab))
	m = typeString(t, m, "secret1")
	m = step(t, m, keyPress(tea.KeyEnter))

	assert.True(t, m.busy)
	assert.Equal(t, pendingRegister, m.pending)

	m = step(t, m, latencyElapsedMsg{})

	assert.Equal(t, screenDashboard, m.screen)
	user, ok := st.User()
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestRegister_MismatchedPasswords(t *testing.T) {
	m, st := newTestModel(t)

	m = step(t, m, keyPress(tea.KeyCtrlN))
	m = typeString(t, m, "Jane Doe")
	m = step(t, m, keyPress(tea.KeyTab))
	m = typeString(t, m, "jane@example.com")
	m = step(t, m, keyPress(tea.KeyTab))
	m = typeString(t, m, "secret1")
	m = step(t, m, keyPress(tea.KeyTab))
	m = typeString(t, m, "secret2")
	m = step(t, m, keyPress(tea.KeyEnter))

	assert.False(t, m.busy)
	assert.Equal(t, screenRegister, m.screen)
	assert.False(t, st.IsAuthenticated())
	require.Contains(t, m.reg.errs, "confirmPassword")
	assert.Equal(t, validation.ReasonMismatch, m.reg.errs["confirmPassword"].Reason)
}

func TestBusyIgnoresKeyInput(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeString(t, m, "jane@example.com")
	m = step(t, m, keyPress(tea.KeyEnter))
	m = typeString(t, m, "secret1")
	m = step(t, m, keyPress(tea.KeyEnter))
	require.True(t, m.busy)

	m = step(t, m, keyPress(tea.KeyCtrlN))
	assert.Equal(t, screenLogin, m.screen)
	assert.True(t, m.busy)
}

func TestNavigateGuard(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, screenLogin, m.navigate(screenDashboard).screen)
	assert.Equal(t, screenLogin, m.navigate(screenProfile).screen)

	authed, _ := newAuthedModel(t)
	assert.Equal(t, screenProfile, authed.navigate(screenProfile).screen)
}

func TestDashboard_AddTask(t *testing.T) {
	m, st := newAuthedModel(t)

	m = typeString(t, m, "a")
	assert.Equal(t, dashAdd, m.dash.mode)

	m = typeString(t, m, "Buy milk")
	m = step(t, m, keyPress(tea.KeyEnter)) // advance to description
	m = typeString(t, m, "2% please")
	m = step(t, m, keyPress(tea.KeyEnter)) // submit

	assert.Equal(t, dashList, m.dash.mode)
	tasks := st.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, "2% please", tasks[0].Description)
	assert.False(t, tasks[0].Completed)
}

func TestDashboard_AddTask_RequiresTitle(t *testing.T) {
	m, st := newAuthedModel(t)

	m = typeString(t, m, "a")
	m = step(t, m, keyPress(tea.KeyEnter))
	m = step(t, m, keyPress(tea.KeyEnter))

	assert.Equal(t, dashAdd, m.dash.mode)
	require.Contains(t, m.dash.errs, "title")
	assert.Equal(t, validation.ReasonRequired, m.dash.errs["title"].Reason)
	assert.Empty(t, st.Tasks())

	m = step(t, m, keyPress(tea.KeyEsc))
	assert.Equal(t, dashList, m.dash.mode)
}

func TestDashboard_ToggleTask(t *testing.T) {
	m, st := newAuthedModel(t)
	task, err := st.AddTask("Buy milk", "")
	require.NoError(t, err)

	m = step(t, m, keyPress(tea.KeyEnter))
	got, ok := st.Task(task.ID)
	require.True(t, ok)
	assert.True(t, got.Completed)

	m = step(t, m, keyPress(tea.KeyEnter))
	got, ok = st.Task(task.ID)
	require.True(t, ok)
	assert.False(t, got.Completed)
}

func TestDashboard_DeleteTask(t *testing.T) {
	m, st := newAuthedModel(t)
	_, err := st.AddTask("Buy milk", "")
	require.NoError(t, err)
	_, err = st.AddTask("Write report", "")
	require.NoError(t, err)

	m = typeString(t, m, "j") // cursor to second task
	m = typeString(t, m, "d")

	tasks := st.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, 0, m.dash.cursor, "cursor moves up when the last row is deleted")
}

func TestDashboard_EditTask(t *testing.T) {
	m, st := newAuthedModel(t)
	task, err := st.AddTask("Buy milk", "2% please")
	require.NoError(t, err)

	m = typeString(t, m, "e")
	assert.Equal(t, dashEdit, m.dash.mode)
	assert.Equal(t, task.ID, m.dash.editID)
	assert.Equal(t, "Buy milk", m.dash.title.Value())
	assert.Equal(t, "2% please", m.dash.desc.Value())

	m = typeString(t, m, " now")
	m = step(t, m, keyPress(tea.KeyEnter))
	m = step(t, m, keyPress(tea.KeyEnter))

	assert.Equal(t, dashList, m.dash.mode)
	got, ok := st.Task(task.ID)
	require.True(t, ok)
	assert.Equal(t, "Buy milk now", got.Title)
	assert.Equal(t, "2% please", got.Description)
}

func TestDashboard_CursorOrdersPendingFirst(t *testing.T) {
	m, st := newAuthedModel(t)
	first, err := st.AddTask("Done already", "")
	require.NoError(t, err)
	require.NoError(t, st.ToggleTaskComplete(first.ID))
	_, err = st.AddTask("Still pending", "")
	require.NoError(t, err)

	tasks := m.visibleTasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "Still pending", tasks[0].Title)
	assert.Equal(t, "Done already", tasks[1].Title)
}

func TestDashboard_ThemeToggle(t *testing.T) {
	m, st := newAuthedModel(t)
	require.False(t, st.IsDarkMode())

	m = typeString(t, m, "t")
	assert.True(t, st.IsDarkMode())

	m = typeString(t, m, "t")
	assert.False(t, st.IsDarkMode())
}

func TestDashboard_Logout(t *testing.T) {
	m, st := newAuthedModel(t)
	_, err := st.AddTask("Buy milk", "")
	require.NoError(t, err)

	m = typeString(t, m, "l")

	assert.Equal(t, screenLogin, m.screen)
	assert.False(t, st.IsAuthenticated())
	assert.Empty(t, st.Tasks())
}

func TestProfileFlow(t *testing.T) {
	m, st := newAuthedModel(t)

	m = typeString(t, m, "p")
	require.Equal(t, screenProfile, m.screen)
	assert.Equal(t, "Jane Doe", m.profile.name.Value())
	assert.Equal(t, "jane@example.com", m.profile.email.Value())

	m = typeString(t, m, " Smith")
	m = step(t, m, keyPress(tea.KeyTab)) // email
	m = step(t, m, keyPress(tea.KeyTab)) // bio
	m = typeString(t, m, "Gopher")
	m = step(t, m, keyPress(tea.KeyEnter)) // submit

	assert.True(t, m.busy)
	assert.Equal(t, pendingProfile, m.pending)

	m = step(t, m, latencyElapsedMsg{})

	assert.True(t, m.profile.showSuccess)
	user, ok := st.User()
	require.True(t, ok)
	assert.Equal(t, "Jane Doe Smith", user.Name)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "Gopher", user.Bio)

	m = step(t, m, successFadeMsg{})
	assert.False(t, m.profile.showSuccess)
}

func TestProfile_ValidationErrors(t *testing.T) {
	m, st := newAuthedModel(t)

	m = typeString(t, m, "p")
	m.profile.name.SetValue("J")
	m = step(t, m, keyPress(tea.KeyTab))
	m = step(t, m, keyPress(tea.KeyTab))
	m = step(t, m, keyPress(tea.KeyEnter))

	assert.False(t, m.busy)
	require.Contains(t, m.profile.errs, "name")
	assert.Equal(t, validation.ReasonTooShort, m.profile.errs["name"].Reason)

	user, _ := st.User()
	assert.Equal(t, "Jane Doe", user.Name, "invalid submit must not touch the store")
}

func TestProfile_EscReturnsToDashboard(t *testing.T) {
	m, _ := newAuthedModel(t)

	m = typeString(t, m, "p")
	m = step(t, m, keyPress(tea.KeyEsc))
	assert.Equal(t, screenDashboard, m.screen)
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(keyPress(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestViewReflectsDarkMode(t *testing.T) {
	m, st := newAuthedModel(t)

	light := m.View()
	assert.NotEmpty(t, light)

	_, err := st.ToggleDarkMode()
	require.NoError(t, err)
	assert.NotEmpty(t, m.View())
}
