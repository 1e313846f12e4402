package form

import (
	"github.com/gdamore/tcell/v2"
)

// TextField holds an editable line of numeric input
type TextField struct {
	Text   []rune
	Cursor int // Position before which cursor sits (0 = before first char)
	MaxLen int
}

// NewTextField creates a field holding initial with the cursor at the end
func NewTextField(initial string, maxLen int) *TextField {
	runes := []rune(initial)
	return &TextField{Text: runes, Cursor: len(runes), MaxLen: maxLen}
}

// Value returns current text as string
func (t *TextField) Value() string {
	return string(t.Text)
}

// SetValue replaces text and moves cursor to end
func (t *TextField) SetValue(s string) {
	t.Text = []rune(s)
	t.Cursor = len(t.Text)
}

// Insert adds rune at cursor position, refusing past MaxLen
func (t *TextField) Insert(r rune) bool {
	if t.MaxLen > 0 && len(t.Text) >= t.MaxLen {
		return false
	}
	t.Text = append(t.Text[:t.Cursor], append([]rune{r}, t.Text[t.Cursor:]...)...)
	t.Cursor++
	return true
}

// DeleteBackward removes rune before cursor
func (t *TextField) DeleteBackward() bool {
	if t.Cursor > 0 {
		t.Text = append(t.Text[:t.Cursor-1], t.Text[t.Cursor:]...)
		t.Cursor--
		return true
	}
	return false
}

// DeleteForward removes rune at cursor
func (t *TextField) DeleteForward() bool {
	if t.Cursor < len(t.Text) {
		t.Text = append(t.Text[:t.Cursor], t.Text[t.Cursor+1:]...)
		return true
	}
	return false
}

// HandleKey edits the field, returns true if state changed.
// Only digits and a leading minus are accepted so negative counts reach validation
func (t *TextField) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		if t.Cursor > 0 {
			t.Cursor--
			return true
		}
	case tcell.KeyRight:
		if t.Cursor < len(t.Text) {
			t.Cursor++
			return true
		}
	case tcell.KeyHome, tcell.KeyCtrlA:
		t.Cursor = 0
		return true
	case tcell.KeyEnd, tcell.KeyCtrlE:
		t.Cursor = len(t.Text)
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return t.DeleteBackward()
	case tcell.KeyDelete:
		return t.DeleteForward()
	case tcell.KeyCtrlU:
		changed := t.Cursor > 0
		t.Text = t.Text[t.Cursor:]
		t.Cursor = 0
		return changed
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r >= '0' && r <= '9':
			return t.Insert(r)
		case r == '-' && t.Cursor == 0:
			return t.Insert(r)
		}
	}
	return false
}
