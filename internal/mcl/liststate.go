package mcl

// ListState is the selection and scroll state shared by every list panel.
// The zero value is an empty list. The selection is only meaningful while the
// list is non-empty, so "no selection" and "empty list" are the same state.
type ListState[T any] struct {
	items    []T
	selected int
}

// Scrollbar is the (position, total) pair a renderer needs for a
// proportional scroll indicator.
type Scrollbar struct {
	Position int
	Total    int
}

func NewListState[T any](items ...T) *ListState[T] {
	l := &ListState[T]{}
	for _, it := range items {
		l.Insert(it)
	}
	return l
}

func (l *ListState[T]) Insert(item T) {
	l.items = append(l.items, item)
	if len(l.items) == 1 {
		l.selected = 0
	}
}

func (l *ListState[T]) Clear() {
	l.items = nil
	l.selected = 0
}

func (l *ListState[T]) SelectNext() {
	if len(l.items) == 0 {
		return
	}
	if l.selected >= len(l.items)-1 {
		l.selected = 0
		return
	}
	l.selected++
}

func (l *ListState[T]) SelectPrevious() {
	if len(l.items) == 0 {
		return
	}
	if l.selected <= 0 {
		l.selected = len(l.items) - 1
		return
	}
	l.selected--
}

func (l *ListState[T]) Len() int {
	return len(l.items)
}

// Items returns the backing slice. Callers must not modify it.
func (l *ListState[T]) Items() []T {
	return l.items
}

func (l *ListState[T]) Selected() (int, bool) {
	if len(l.items) == 0 {
		return 0, false
	}
	return l.selected, true
}

func (l *ListState[T]) SelectedItem() (T, bool) {
	var zero T
	idx, ok := l.Selected()
	if !ok {
		return zero, false
	}
	return l.items[idx], true
}

func (l *ListState[T]) Scrollbar() Scrollbar {
	idx, ok := l.Selected()
	if !ok {
		return Scrollbar{}
	}
	return Scrollbar{Position: idx, Total: len(l.items) - 1}
}

// Thumb returns the offset of the scrollbar thumb inside a track of the given
// length.
func (s Scrollbar) Thumb(track int) int {
	if track <= 1 || s.Total <= 0 {
		return 0
	}
	pos := s.Position
	if pos < 0 {
		pos = 0
	}
	if pos > s.Total {
		pos = s.Total
	}
	return pos * (track - 1) / s.Total
}
