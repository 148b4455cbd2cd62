package language_groups

import (
	"errors"
	"sync"
)

var ErrGroupIndexOutOfRange = errors.New("group index out of range")

// Publisher receives the full group list after every editor mutation.
// Publish is called with the editor lock held and must not call back into it.
type Publisher interface {
	Publish(groups [][]string)
}

// PublisherFunc adapts a plain function to Publisher.
type PublisherFunc func(groups [][]string)

func (f PublisherFunc) Publish(groups [][]string) {
	f(groups)
}

// Editor is the server side of the grouped language picker. It keeps an
// ordered list of groups and publishes a copy of the whole list after each
// change, so observers never see a half-applied edit.
type Editor struct {
	mu        sync.Mutex
	groups    [][]string
	publisher Publisher
}

// NewEditor starts an editor from existing groups. With none it starts from
// a single empty group, ready for the first selection.
func NewEditor(initial [][]string, publisher Publisher) *Editor {
	groups := cloneGroups(initial)
	if len(groups) == 0 {
		groups = [][]string{{}}
	}
	return &Editor{groups: groups, publisher: publisher}
}

// Groups returns a snapshot of the current groups.
func (e *Editor) Groups() [][]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneGroups(e.groups)
}

// AddGroup appends an empty group.
func (e *Editor) AddGroup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.groups = append(e.groups, []string{})
	e.publishLocked()
}

// RemoveGroup deletes the group at index.
func (e *Editor) RemoveGroup(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.validLocked(index) {
		return ErrGroupIndexOutOfRange
	}
	groups := make([][]string, 0, len(e.groups)-1)
	groups = append(groups, e.groups[:index]...)
	e.groups = append(groups, e.groups[index+1:]...)
	e.publishLocked()
	return nil
}

// ReplaceGroup sets the languages of the group at index.
func (e *Editor) ReplaceGroup(index int, langs []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.validLocked(index) {
		return ErrGroupIndexOutOfRange
	}
	e.groups[index] = append(make([]string, 0, len(langs)), langs...)
	e.publishLocked()
	return nil
}

// MoveGroupUp swaps the group at index with the one before it.
// Moving the first group is a no-op.
func (e *Editor) MoveGroupUp(index int) error {
	return e.swap(index, index-1)
}

// MoveGroupDown swaps the group at index with the one after it.
// Moving the last group is a no-op.
func (e *Editor) MoveGroupDown(index int) error {
	return e.swap(index, index+1)
}

func (e *Editor) swap(index, target int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.validLocked(index) {
		return ErrGroupIndexOutOfRange
	}
	if !e.validLocked(target) {
		return nil
	}
	e.groups[index], e.groups[target] = e.groups[target], e.groups[index]
	e.publishLocked()
	return nil
}

func (e *Editor) validLocked(index int) bool {
	return index >= 0 && index < len(e.groups)
}

func (e *Editor) publishLocked() {
	if e.publisher == nil {
		return
	}
	e.publisher.Publish(cloneGroups(e.groups))
}

func cloneGroups(groups [][]string) [][]string {
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = append(make([]string, 0, len(g)), g...)
	}
	return out
}
