package mcl

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type FocusTarget int

const (
	FocusProfiles FocusTarget = iota
	FocusInstances
	FocusContent
	FocusAccount
	FocusDetails
	FocusStatus
	FocusModal
)

// panelOrder is the Tab cycle order. The digit focus keys follow it too.
var panelOrder = []FocusTarget{
	FocusProfiles,
	FocusInstances,
	FocusContent,
	FocusAccount,
	FocusDetails,
	FocusStatus,
}

func (f FocusTarget) String() string {
	switch f {
	case FocusProfiles:
		return "Profiles"
	case FocusInstances:
		return "Instances"
	case FocusContent:
		return "Content"
	case FocusAccount:
		return "Account"
	case FocusDetails:
		return "Details"
	case FocusStatus:
		return "Status"
	case FocusModal:
		return "Modal"
	default:
		return fmt.Sprintf("FocusTarget(%d)", int(f))
	}
}

// Panel is a named screen region. Focus styling is decided by the caller on
// every frame, so panels keep no focus state of their own.
type Panel interface {
	Title() string
	Primitive(focused bool, th Theme) tview.Primitive
}

type KeyHandler interface {
	HandleKey(ev *tcell.EventKey)
}

// ModalRequester is implemented by panels that can open the New Instance
// modal. TakeModalRequest reports a pending request and clears it.
type ModalRequester interface {
	TakeModalRequest() bool
	ApplyModalResult(res ModalResult)
}

type Profile struct {
	ID      string
	Name    string
	Source  string
	Running bool
}

type Instance struct {
	ID      string
	Title   string
	Running bool
}

func runningLabel(running bool) string {
	if running {
		return "Running"
	}
	return "Stopped"
}

// listPanel is a table-backed panel over one ListState. The optional hooks
// decide what "a" and Enter do.
type listPanel[T any] struct {
	title   string
	list    *ListState[T]
	columns []string
	row     func(T) []string

	// placeholder builds the item inserted directly by "a". When nil and
	// fromResult is set, "a" requests the modal instead.
	placeholder func(n int) T
	fromResult  func(res ModalResult, n int) (T, bool)
	onActivate  func(T)

	wantModal bool
}

func (p *listPanel[T]) Title() string { return p.title }

func (p *listPanel[T]) List() *ListState[T] { return p.list }

func (p *listPanel[T]) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyDown:
		p.list.SelectNext()
		return
	case tcell.KeyUp:
		p.list.SelectPrevious()
		return
	case tcell.KeyEnter:
		if p.onActivate != nil {
			if item, ok := p.list.SelectedItem(); ok {
				p.onActivate(item)
			}
		}
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'j':
		p.list.SelectNext()
	case 'k':
		p.list.SelectPrevious()
	case 'd':
		p.list.Clear()
	case 'a':
		switch {
		case p.placeholder != nil:
			p.list.Insert(p.placeholder(p.list.Len() + 1))
		case p.fromResult != nil:
			p.wantModal = true
		}
	}
}

func (p *listPanel[T]) TakeModalRequest() bool {
	want := p.wantModal
	p.wantModal = false
	return want
}

func (p *listPanel[T]) ApplyModalResult(res ModalResult) {
	if p.fromResult == nil {
		return
	}
	if item, ok := p.fromResult(res, p.list.Len()+1); ok {
		p.list.Insert(item)
	}
}

func (p *listPanel[T]) Primitive(focused bool, th Theme) tview.Primitive {
	table := newScrollTable(th)
	for col, name := range p.columns {
		table.SetCell(0, col, tview.NewTableCell(name).
			SetSelectable(false).
			SetTextColor(th.Foreground).
			SetAttributes(tcell.AttrBold).
			SetExpansion(1))
	}
	for i, item := range p.list.Items() {
		bg := th.Background
		if i%2 == 1 {
			bg = th.RowAlternateBg
		}
		for col, text := range p.row(item) {
			table.SetCell(i+1, col, tview.NewTableCell(tview.Escape(text)).
				SetTextColor(th.Foreground).
				SetBackgroundColor(bg).
				SetExpansion(1))
		}
	}
	if idx, ok := p.list.Selected(); ok {
		table.Select(idx+1, 0)
	}
	table.SetScrollbar(p.list.Scrollbar(), p.list.Len() > 0)
	stylePane(table.Box, p.title, focused, th)
	return table
}

func newProfilesPanel(onActivate func(Profile)) *listPanel[Profile] {
	return &listPanel[Profile]{
		title:   "[1]-Profiles",
		list:    NewListState[Profile](),
		columns: []string{"Name", "ID", "State"},
		row: func(p Profile) []string {
			return []string{p.Name, p.ID, runningLabel(p.Running)}
		},
		fromResult: profileFromResult,
		onActivate: onActivate,
	}
}

func profileFromResult(res ModalResult, n int) (Profile, bool) {
	switch res.Choice {
	case ChoiceCreate:
		return Profile{ID: newShortID(), Name: fmt.Sprintf("Profile %d", n)}, true
	case ChoiceImport:
		src := strings.TrimSpace(res.Text)
		if src == "" {
			return Profile{}, false
		}
		return Profile{ID: newShortID(), Name: importName(src), Source: src}, true
	}
	return Profile{}, false
}

// importName derives a display name from a modpack URL or file path.
func importName(src string) string {
	p := src
	if u, err := url.Parse(src); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
	}
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimRight(p, "/")
	if p == "" {
		return src
	}
	base := path.Base(p)
	for _, ext := range []string{".mrpack", ".zip"} {
		if trimmed := strings.TrimSuffix(base, ext); trimmed != "" && trimmed != base {
			return trimmed
		}
	}
	return base
}

func newInstancesPanel() *listPanel[Instance] {
	return &listPanel[Instance]{
		title:   "[2]-Instances",
		list:    NewListState[Instance](),
		columns: []string{"Title", "ID", "State"},
		row: func(in Instance) []string {
			return []string{in.Title, in.ID, runningLabel(in.Running)}
		},
		placeholder: func(n int) Instance {
			return Instance{ID: newShortID(), Title: fmt.Sprintf("Instance %d", n)}
		},
	}
}

// textPanel renders content supplied by the App on every frame.
type textPanel struct {
	title   string
	content func() string
}

func (p *textPanel) Title() string { return p.title }

func (p *textPanel) Primitive(focused bool, th Theme) tview.Primitive {
	view := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	view.SetTextColor(th.Foreground).
		SetBackgroundColor(th.Background)
	view.SetText(p.content())
	stylePane(view.Box, p.title, focused, th)
	return view
}
