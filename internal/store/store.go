// Package store holds the persisted application state: the current
// session, the task collection, and the theme preference. The store is
// the single source of truth; the CLI commands and the dashboard UI both
// read from and mutate it.
//
// Every mutation is write-through: the in-memory change is applied and
// the full persisted record is rewritten to disk before the mutation
// returns. The store is confined to a single goroutine (the CLI call
// path or the UI event loop), so it carries no locking.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
)

// ErrNoSession is returned by UpdateProfile when no user is logged in.
// Merging a profile update onto an anonymous session would fabricate a
// user record out of nothing, so the operation is rejected outright.
var ErrNoSession = errors.New("no active session")

// User is the locally fabricated account record. There is no backend:
// the record is synthesized from form input at login or registration.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// Task is a single task item. Ids are unique and strictly increasing
// within a store; list order is insertion order.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// ProfileUpdate carries the fields of a profile edit. Nil fields are
// left untouched by the merge.
type ProfileUpdate struct {
	Name  *string
	Email *string
	Bio   *string
}

// TaskUpdate carries the fields of a task edit. Nil fields are left
// untouched by the merge.
type TaskUpdate struct {
	Title       *string
	Description *string
}

// record is the durable on-disk shape. Exactly these four fields are
// persisted; transient UI state never lands here.
type record struct {
	User            *User  `json:"user"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	Tasks           []Task `json:"tasks"`
	IsDarkMode      bool   `json:"isDarkMode"`
}

// Store is the state container. Construct with Open; tests construct
// independent stores against temp paths.
type Store struct {
	path   string
	clock  clockwork.Clock
	state  record
	nextID int64
}

// Open loads the store from path, or starts from the zero state
// (anonymous, no tasks, light mode) when the file does not exist yet.
// The task id counter is seeded past the largest persisted id so ids
// stay unique across restarts.
func Open(path string, clock clockwork.Clock) (*Store, error) {
	s := &Store{path: path, clock: clock, nextID: 1}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	if err := json.Unmarshal(data, &s.state); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", path, err)
	}

	for _, task := range s.state.Tasks {
		if task.ID >= s.nextID {
			s.nextID = task.ID + 1
		}
	}
	return s, nil
}

// Path returns the store file path.
func (s *Store) Path() string { return s.path }

// flush rewrites the whole persisted record. Called by every mutation
// before it returns (write-through).
func (s *Store) flush() error {
	data, err := json.MarshalIndent(&s.state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}

// Login establishes an authenticated session with the given user record.
// Validation is the caller's responsibility; the store accepts whatever
// the session controller fabricated.
func (s *Store) Login(user User) error {
	u := user
	s.state.User = &u
	s.state.IsAuthenticated = true
	return s.flush()
}

// Logout clears the session back to anonymous and empties the task
// collection. Tasks are session-scoped in this single-user design even
// though they are durably persisted, so they go with the session.
func (s *Store) Logout() error {
	s.state.User = nil
	s.state.IsAuthenticated = false
	s.state.Tasks = nil
	return s.flush()
}

// UpdateProfile merges the non-nil fields of update into the current
// user. Returns ErrNoSession when anonymous.
func (s *Store) UpdateProfile(update ProfileUpdate) error {
	if s.state.User == nil {
		return ErrNoSession
	}
	if update.Name != nil {
		s.state.User.Name = *update.Name
	}
	if update.Email != nil {
		s.state.User.Email = *update.Email
	}
	if update.Bio != nil {
		s.state.User.Bio = *update.Bio
	}
	return s.flush()
}

// AddTask appends a new task with a fresh id and Completed false, and
// returns it.
func (s *Store) AddTask(title, description string) (Task, error) {
	task := Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		CreatedAt:   s.clock.Now(),
	}
	s.nextID++
	s.state.Tasks = append(s.state.Tasks, task)
	return task, s.flush()
}

// UpdateTask merges the non-nil fields of update into the task matching
// id. A missing id is a no-op.
func (s *Store) UpdateTask(id int64, update TaskUpdate) error {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID != id {
			continue
		}
		if update.Title != nil {
			s.state.Tasks[i].Title = *update.Title
		}
		if update.Description != nil {
			s.state.Tasks[i].Description = *update.Description
		}
		return s.flush()
	}
	return nil
}

// DeleteTask removes the task matching id. A missing id is a no-op, so
// repeated deletes are idempotent.
func (s *Store) DeleteTask(id int64) error {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID != id {
			continue
		}
		s.state.Tasks = append(s.state.Tasks[:i], s.state.Tasks[i+1:]...)
		return s.flush()
	}
	return nil
}

// ToggleTaskComplete flips the completed flag of the task matching id.
// A missing id is a no-op.
func (s *Store) ToggleTaskComplete(id int64) error {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID != id {
			continue
		}
		s.state.Tasks[i].Completed = !s.state.Tasks[i].Completed
		return s.flush()
	}
	return nil
}

// ToggleDarkMode flips the theme preference and returns the new mode.
// The preference has its own lifecycle: it survives logout.
func (s *Store) ToggleDarkMode() (bool, error) {
	s.state.IsDarkMode = !s.state.IsDarkMode
	return s.state.IsDarkMode, s.flush()
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool { return s.state.IsAuthenticated }

// User returns a copy of the current user, and false when anonymous.
func (s *Store) User() (User, bool) {
	if s.state.User == nil {
		return User{}, false
	}
	return *s.state.User, true
}

// Tasks returns a copy of the task collection in insertion order.
func (s *Store) Tasks() []Task {
	tasks := make([]Task, len(s.state.Tasks))
	copy(tasks, s.state.Tasks)
	return tasks
}

// Task returns a copy of the task matching id, and false if absent.
func (s *Store) Task(id int64) (Task, bool) {
	for _, task := range s.state.Tasks {
		if task.ID == id {
			return task, true
		}
	}
	return Task{}, false
}

// IsDarkMode reports the current theme preference.
func (s *Store) IsDarkMode() bool { return s.state.IsDarkMode }
