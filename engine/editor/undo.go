package editor

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/npillmayer/punchcut/core/glyph"
	"github.com/npillmayer/punchcut/engine/path"
)

// EditType coarsely classifies a mutation for undo grouping. Consecutive
// edits of the same type merge into a single undo step, so a multi-frame
// drag or a run of identical nudges undoes in one go. EditNormal never
// merges.
type EditType int8

const (
	EditNormal EditType = iota
	EditDrag
	EditNudgeLeft
	EditNudgeRight
	EditNudgeUp
	EditNudgeDown

	editBarrier EditType = -1 // sentinel after undo/redo, merges with nothing
)

// mergesWith decides whether an edit of type t may replace the top undo
// group instead of opening a new one.
func (t EditType) mergesWith(prev EditType) bool {
	if t == EditNormal || t == editBarrier {
		return false
	}
	return t == prev
}

// snapshot captures the undoable state of a session. Path values are shared
// with the live session until the session mutates them, see the
// copy-on-write notes on EditSession.
type snapshot struct {
	paths []path.Path
	sel   *Selection
	g     *glyph.Glyph
}

// UndoStack holds session snapshots. The top of the past stack is always
// the current state, with older states below it; the future stack holds
// states undone since the last fresh edit.
type UndoStack struct {
	past     *arraystack.Stack
	future   *arraystack.Stack
	lastType EditType
}

// newUndoStack creates a stack with initial as its bottom (and current)
// state.
func newUndoStack(initial snapshot) *UndoStack {
	u := &UndoStack{
		past:     arraystack.New(),
		future:   arraystack.New(),
		lastType: editBarrier,
	}
	u.past.Push(initial)
	return u
}

// record pushes the state after an edit. If t merges with the previous
// edit's type, the top group is replaced instead, so undoing returns to
// the state before the whole run. Any redo history is invalidated.
func (u *UndoStack) record(s snapshot, t EditType) {
	if t.mergesWith(u.lastType) {
		u.past.Pop()
	}
	u.past.Push(s)
	u.lastType = t
	u.future.Clear()
}

// endGesture closes the current undo group, so the next edit opens a
// fresh one even if its type would merge. Called on pointer-up, keeping
// two consecutive drags separately undoable.
func (u *UndoStack) endGesture() {
	u.lastType = editBarrier
}

// undo steps back one group and returns the state to restore.
func (u *UndoStack) undo() (snapshot, bool) {
	if u.past.Size() <= 1 {
		return snapshot{}, false
	}
	top, _ := u.past.Pop()
	u.future.Push(top)
	cur, _ := u.past.Peek()
	u.lastType = editBarrier
	return cur.(snapshot), true
}

// redo re-applies the most recently undone group.
func (u *UndoStack) redo() (snapshot, bool) {
	top, ok := u.future.Pop()
	if !ok {
		return snapshot{}, false
	}
	u.past.Push(top)
	u.lastType = editBarrier
	return top.(snapshot), true
}

// depth returns the number of recorded undo groups, not counting the
// initial state.
func (u *UndoStack) depth() int {
	return u.past.Size() - 1
}
