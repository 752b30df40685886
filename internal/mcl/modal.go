package mcl

import "github.com/gdamore/tcell/v2"

type ModalMode int

const (
	ModalMenu ModalMode = iota
	ModalTextEntry
)

type ModalChoice int

const (
	ChoiceCreate ModalChoice = iota + 1
	ChoiceImport
)

// ModalResult is what a finished modal hands back to the panel that asked
// for it.
type ModalResult struct {
	Choice ModalChoice
	Text   string
}

// Modal is the "New Instance" dialog. While one exists it receives every key;
// the App owns it and drops it once Done reports true.
type Modal struct {
	requester FocusTarget
	mode      ModalMode
	buf       []rune
	result    *ModalResult
	done      bool
}

func newModal(requester FocusTarget) *Modal {
	return &Modal{requester: requester, mode: ModalMenu}
}

func (m *Modal) Requester() FocusTarget { return m.requester }
func (m *Modal) Mode() ModalMode        { return m.mode }
func (m *Modal) Text() string           { return string(m.buf) }
func (m *Modal) Done() bool             { return m.done }

// Result is only set when the modal was confirmed; closing with q or Esc
// from the menu finishes without one.
func (m *Modal) Result() (ModalResult, bool) {
	if m.result == nil {
		return ModalResult{}, false
	}
	return *m.result, true
}

func (m *Modal) HandleKey(ev *tcell.EventKey) {
	if m.done {
		return
	}
	switch m.mode {
	case ModalMenu:
		m.handleMenuKey(ev)
	case ModalTextEntry:
		m.handleTextKey(ev)
	}
}

func (m *Modal) handleMenuKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		m.done = true
		return
	case tcell.KeyRune:
	default:
		return
	}
	switch ev.Rune() {
	case 'q':
		m.done = true
	case 'i', 'I':
		m.mode = ModalTextEntry
		m.buf = m.buf[:0]
	case 'c', 'C':
		m.finish(ModalResult{Choice: ChoiceCreate})
	}
}

func (m *Modal) handleTextKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		m.mode = ModalMenu
		m.buf = m.buf[:0]
	case tcell.KeyEnter:
		m.finish(ModalResult{Choice: ChoiceImport, Text: string(m.buf)})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(m.buf) > 0 {
			m.buf = m.buf[:len(m.buf)-1]
		}
	case tcell.KeyRune:
		m.buf = append(m.buf, ev.Rune())
	}
}

func (m *Modal) finish(res ModalResult) {
	m.result = &res
	m.done = true
}

func modalKeymap(m *Modal) string {
	if m.mode == ModalTextEntry {
		return "[::b]enter[::-] import | [::b]backspace[::-] delete | [::b]esc[::-] back"
	}
	return "[::b]c[::-] create | [::b]i[::-] import | [::b]q/esc[::-] close"
}
