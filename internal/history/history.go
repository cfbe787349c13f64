// Package history implements the two stack undo/redo engine.
package history

// Command is a reversible document mutation. Running Execute, Undo and
// Execute again must leave the document as the first Execute did.
type Command interface {
	Execute()
	Undo()
	Name() string
}

// History records executed commands.
type History struct {
	done   []Command
	undone []Command

	// OnExecute, when set, is told about every command run through History.
	OnExecute func(action string, cmd Command)
}

// New returns an empty History.
func New() *History { return &History{} }

// Execute runs cmd, records it and forgets everything that was undone.
func (h *History) Execute(cmd Command) {
	cmd.Execute()
	h.done = append(h.done, cmd)
	h.undone = nil
	h.report("execute", cmd)
}

// Undo reverts the most recent command. It reports false when there is
// nothing to undo.
func (h *History) Undo() bool {
	if len(h.done) == 0 {
		return false
	}
	cmd := h.done[len(h.done)-1]
	h.done = h.done[:len(h.done)-1]
	cmd.Undo()
	h.undone = append(h.undone, cmd)
	h.report("undo", cmd)
	return true
}

// Redo re-executes the most recently undone command. It reports false
// when there is nothing to redo.
func (h *History) Redo() bool {
	if len(h.undone) == 0 {
		return false
	}
	cmd := h.undone[len(h.undone)-1]
	h.undone = h.undone[:len(h.undone)-1]
	cmd.Execute()
	h.done = append(h.done, cmd)
	h.report("redo", cmd)
	return true
}

func (h *History) report(action string, cmd Command) {
	if h.OnExecute != nil {
		h.OnExecute(action, cmd)
	}
}

func (h *History) CanUndo() bool { return len(h.done) > 0 }

func (h *History) CanRedo() bool { return len(h.undone) > 0 }

// Len returns the number of commands that can be undone.
func (h *History) Len() int { return len(h.done) }

// Names lists the undoable commands oldest first.
func (h *History) Names() []string {
	out := make([]string, len(h.done))
	for i, c := range h.done {
		out[i] = c.Name()
	}
	return out
}
