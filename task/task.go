// Package task provides an optional hierarchical task value for use with
// the matrix package: a free-form property bag plus ordered sub-tasks.
//
// The matrix never inspects task internals; it only needs equality and a
// total order. Store tasks as *Task (identity equality) and order them
// with Compare.
package task

import (
	"strings"
	"time"
)

// Well-known property keys.
const (
	KeyName     = "name"
	KeyNotes    = "notes"
	KeyDate     = "date"
	KeyTime     = "time"
	KeyLocation = "location"
	KeyPriority = "priority"
	KeyImage    = "image"
)

// Task is a free-form property bag with ordered child sub-tasks.
// Properties are not deep-copied anywhere; callers own the values.
// The zero value is a usable, empty task.
type Task struct {
	props    map[string]any
	subtasks []*Task
}

// New returns a Task carrying only a name.
func New(name string) *Task {
	return &Task{props: map[string]any{KeyName: name}}
}

// NewWithDate returns a Task carrying a name and a due date.
func NewWithDate(name string, due time.Time) *Task {
	t := New(name)
	t.props[KeyDate] = due
	return t
}

// Put stores value under key and returns the previous value, if any.
func (t *Task) Put(key string, value any) (prev any) {
	if t.props == nil {
		t.props = make(map[string]any)
	}
	prev = t.props[key]
	t.props[key] = value
	return prev
}

// PutIfAbsent stores value under key only when the key is unset.
// Reports whether the value was stored.
func (t *Task) PutIfAbsent(key string, value any) bool {
	if _, ok := t.props[key]; ok {
		return false
	}
	if t.props == nil {
		t.props = make(map[string]any)
	}
	t.props[key] = value
	return true
}

// Get returns the value stored under key and whether it exists.
func (t *Task) Get(key string) (any, bool) {
	v, ok := t.props[key]
	return v, ok
}

// Has reports whether key is set.
func (t *Task) Has(key string) bool {
	_, ok := t.props[key]
	return ok
}

// Remove deletes key and returns the removed value, if any.
func (t *Task) Remove(key string) (prev any) {
	prev = t.props[key]
	delete(t.props, key)
	return prev
}

// Replace stores value under key only when the key is already set.
// Reports whether a replacement happened.
func (t *Task) Replace(key string, value any) bool {
	if _, ok := t.props[key]; !ok {
		return false
	}
	t.props[key] = value
	return true
}

// Name returns the task name, or "" when unset.
func (t *Task) Name() string {
	if name, ok := t.props[KeyName].(string); ok {
		return name
	}
	return ""
}

// Due returns the task's due date and whether one is set.
func (t *Task) Due() (time.Time, bool) {
	due, ok := t.props[KeyDate].(time.Time)
	return due, ok
}

// AddSubtask appends child to the task's sub-tasks. Nil children are
// ignored.
func (t *Task) AddSubtask(child *Task) {
	if child == nil {
		return
	}
	t.subtasks = append(t.subtasks, child)
}

// Subtasks returns a copy of the direct sub-task list.
func (t *Task) Subtasks() []*Task {
	return append([]*Task{}, t.subtasks...)
}

// Walk visits t and every descendant depth-first in insertion order,
// stopping early when visit returns false.
func (t *Task) Walk(visit func(*Task) bool) {
	t.walk(visit)
}

func (t *Task) walk(visit func(*Task) bool) bool {
	if !visit(t) {
		return false
	}
	for _, child := range t.subtasks {
		if !child.walk(visit) {
			return false
		}
	}
	return true
}

// Compare orders tasks by name, then due date (tasks without a due date
// sort last), then notes. Nil tasks sort first. It is a ready
// matrix.CompareFunc[*Task].
func Compare(a, b *Task) int {
	if a == nil || b == nil {
		switch {
		case a == b:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if c := strings.Compare(a.Name(), b.Name()); c != 0 {
		return c
	}
	if c := compareDue(a, b); c != 0 {
		return c
	}
	an, _ := a.props[KeyNotes].(string)
	bn, _ := b.props[KeyNotes].(string)
	return strings.Compare(an, bn)
}

func compareDue(a, b *Task) int {
	ad, aok := a.Due()
	bd, bok := b.Due()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}
	return ad.Compare(bd)
}
