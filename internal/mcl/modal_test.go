package mcl

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func typeText(m *Modal, s string) {
	for _, r := range s {
		m.HandleKey(runeKey(r))
	}
}

func TestModalImportFlow(t *testing.T) {
	m := newModal(FocusProfiles)
	m.HandleKey(runeKey('i'))
	if m.Mode() != ModalTextEntry {
		t.Fatalf("mode after i = %v, want text entry", m.Mode())
	}
	typeText(m, "abc")
	m.HandleKey(specialKey(tcell.KeyBackspace2))
	if got := m.Text(); got != "ab" {
		t.Fatalf("buffer = %q, want %q", got, "ab")
	}
	m.HandleKey(specialKey(tcell.KeyEscape))
	if m.Mode() != ModalMenu {
		t.Fatalf("esc from text entry did not return to menu")
	}
	if m.Done() {
		t.Fatalf("esc from text entry closed the modal")
	}
	m.HandleKey(runeKey('i'))
	if got := m.Text(); got != "" {
		t.Fatalf("re-entered text entry with buffer %q, want empty", got)
	}
	typeText(m, "x")
	m.HandleKey(specialKey(tcell.KeyEnter))
	if !m.Done() {
		t.Fatalf("enter did not finish the modal")
	}
	res, ok := m.Result()
	if !ok || res.Choice != ChoiceImport || res.Text != "x" {
		t.Fatalf("result = %+v,%v want import \"x\"", res, ok)
	}
}

func TestModalMenuKeys(t *testing.T) {
	cases := []struct {
		name       string
		key        *tcell.EventKey
		wantDone   bool
		wantResult bool
		wantChoice ModalChoice
	}{
		{"create lower", runeKey('c'), true, true, ChoiceCreate},
		{"create upper", runeKey('C'), true, true, ChoiceCreate},
		{"quit", runeKey('q'), true, false, 0},
		{"escape", specialKey(tcell.KeyEscape), true, false, 0},
		{"other rune", runeKey('z'), false, false, 0},
		{"enter ignored", specialKey(tcell.KeyEnter), false, false, 0},
		{"ctrl-c ignored", specialKey(tcell.KeyCtrlC), false, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newModal(FocusProfiles)
			m.HandleKey(tc.key)
			if m.Done() != tc.wantDone {
				t.Fatalf("done = %v, want %v", m.Done(), tc.wantDone)
			}
			res, ok := m.Result()
			if ok != tc.wantResult {
				t.Fatalf("has result = %v, want %v", ok, tc.wantResult)
			}
			if ok && res.Choice != tc.wantChoice {
				t.Fatalf("choice = %v, want %v", res.Choice, tc.wantChoice)
			}
		})
	}
}

func TestModalUpperIEntersTextMode(t *testing.T) {
	m := newModal(FocusInstances)
	m.HandleKey(runeKey('I'))
	if m.Mode() != ModalTextEntry {
		t.Fatalf("I did not switch to text entry")
	}
	if m.Requester() != FocusInstances {
		t.Fatalf("requester = %v, want instances", m.Requester())
	}
}

func TestModalBackspaceOnEmptyBuffer(t *testing.T) {
	m := newModal(FocusProfiles)
	m.HandleKey(runeKey('i'))
	m.HandleKey(specialKey(tcell.KeyBackspace))
	m.HandleKey(specialKey(tcell.KeyBackspace2))
	if got := m.Text(); got != "" {
		t.Fatalf("buffer = %q, want empty", got)
	}
	if m.Done() {
		t.Fatalf("backspace closed the modal")
	}
}

func TestModalTextEntryAcceptsCommandLetters(t *testing.T) {
	m := newModal(FocusProfiles)
	m.HandleKey(runeKey('i'))
	typeText(m, "qci1")
	if got := m.Text(); got != "qci1" {
		t.Fatalf("buffer = %q, want %q", got, "qci1")
	}
	if m.Done() {
		t.Fatalf("typing closed the modal")
	}
}

func TestModalIgnoresKeysAfterDone(t *testing.T) {
	m := newModal(FocusProfiles)
	m.HandleKey(runeKey('c'))
	m.HandleKey(runeKey('i'))
	if m.Mode() != ModalMenu {
		t.Fatalf("finished modal changed mode")
	}
}
