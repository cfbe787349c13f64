package session

import (
	"log"
	"strings"

	"golang.org/x/mobile/event/key"
)

// Key handles a key press and reports whether it was bound.
func (s *Session) Key(code key.Code, mods key.Modifiers) bool {
	ctrl := mods&(key.ModControl|key.ModMeta) != 0
	shift := mods&key.ModShift != 0
	if !ctrl {
		switch code {
		case key.CodeEscape:
			s.ClearSelection()
		case key.CodeDeleteForward, key.CodeDeleteBackspace:
			s.Delete()
		default:
			return false
		}
		return true
	}
	switch code {
	case key.CodeZ:
		if shift {
			s.Redo()
		} else {
			s.Undo()
		}
	case key.CodeY:
		s.Redo()
	case key.CodeC:
		s.Copy()
	case key.CodeX:
		s.Cut()
	case key.CodeV:
		if !shift {
			s.Paste()
			break
		}
		if _, err := s.ImportClipboard(); err != nil {
			log.Printf("clipboard: %v", err)
		}
	case key.CodeA:
		s.SelectAll()
	default:
		return false
	}
	return true
}

// ParseKey maps a REPL key name such as "ctrl+z", "shift+ctrl+z",
// "escape" or "delete" to a code and modifiers.
func ParseKey(name string) (key.Code, key.Modifiers, bool) {
	var mods key.Modifiers
	var code key.Code
	for _, part := range strings.Split(strings.ToLower(name), "+") {
		switch part {
		case "ctrl", "control":
			mods |= key.ModControl
		case "cmd", "meta":
			mods |= key.ModMeta
		case "shift":
			mods |= key.ModShift
		case "esc", "escape":
			code = key.CodeEscape
		case "delete", "del":
			code = key.CodeDeleteForward
		case "backspace":
			code = key.CodeDeleteBackspace
		default:
			if len(part) != 1 || part[0] < 'a' || part[0] > 'z' {
				return key.CodeUnknown, 0, false
			}
			code = key.CodeA + key.Code(part[0]-'a')
		}
	}
	if code == key.CodeUnknown {
		return key.CodeUnknown, 0, false
	}
	return code, mods, true
}
