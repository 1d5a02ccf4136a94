// Package task holds the in-memory task collection and its id policy.
//
// Ids are stable: each task receives the store's next id when it is added
// and keeps it for its whole life. Deleting or clearing tasks never makes
// an id available again.
package task

import (
	"errors"
	"fmt"
	"math"
)

// FirstID is the id assigned to the first task of a fresh store.
const FirstID = 1

var (
	// ErrInvalidID is returned by Restore for ids below FirstID.
	ErrInvalidID = errors.New("invalid task id")

	// ErrDuplicateID is returned by Restore when two tasks share an id.
	ErrDuplicateID = errors.New("duplicate task id")

	// ErrIDsExhausted is returned by Add once the id counter can no
	// longer advance.
	ErrIDsExhausted = errors.New("task ids exhausted")
)

// MaxID is the largest id a task may carry. The counter stops one above it.
const MaxID = math.MaxInt - 1

// Task is a single to-do item.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Store is an ordered collection of tasks plus the next id to hand out.
// The zero value is not ready for use; call NewStore or Restore.
type Store struct {
	tasks  []Task
	nextID int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{nextID: FirstID}
}

// Restore rebuilds a store from persisted state.
// Ids outside [FirstID, MaxID] are rejected with ErrInvalidID.
// If nextID does not exceed every restored id it is raised so that ids
// stay unique for future adds.
func Restore(nextID int, tasks []Task) (*Store, error) {
	s := &Store{
		tasks:  make([]Task, 0, len(tasks)),
		nextID: nextID,
	}
	if s.nextID < FirstID {
		s.nextID = FirstID
	}

	seen := make(map[int]struct{}, len(tasks))
	for _, t := range tasks {
		if t.ID < FirstID || t.ID > MaxID {
			return nil, fmt.Errorf("%w: %d", ErrInvalidID, t.ID)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, t.ID)
		}
		seen[t.ID] = struct{}{}
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
		s.tasks = append(s.tasks, t)
	}
	return s, nil
}

// Add appends a new open task and returns it.
// The description is stored as given, empty strings included.
// Once MaxID has been issued Add returns ErrIDsExhausted and changes nothing.
func (s *Store) Add(description string) (Task, error) {
	if s.nextID > MaxID {
		return Task{}, ErrIDsExhausted
	}
	t := Task{ID: s.nextID, Description: description}
	s.tasks = append(s.tasks, t)
	s.nextID++
	return t, nil
}

// Delete removes the task with the given id.
// It reports whether a task was removed; a missing id is a no-op.
func (s *Store) Delete(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return true
}

// Complete marks the task with the given id as completed.
func (s *Store) Complete(id int) bool {
	return s.setCompleted(id, true)
}

// Uncomplete marks the task with the given id as open again.
func (s *Store) Uncomplete(id int) bool {
	return s.setCompleted(id, false)
}

func (s *Store) setCompleted(id int, completed bool) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Completed = completed
	return true
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// All returns a copy of the tasks in insertion order.
func (s *Store) All() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Clear removes every task. The id counter keeps its value.
func (s *Store) Clear() {
	s.tasks = nil
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// NextID returns the id the next added task will receive.
func (s *Store) NextID() int {
	return s.nextID
}

// index does a linear scan; stores are small.
func (s *Store) index(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
