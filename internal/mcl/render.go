package mcl

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

const (
	titleHeaderHeight = 3
	statusPaneHeight  = 6
	modalWidth        = 60
	modalHeight       = 11
)

func applyTheme(th Theme) {
	tview.Styles.PrimitiveBackgroundColor = th.Background
	tview.Styles.ContrastBackgroundColor = th.Background
	tview.Styles.MoreContrastBackgroundColor = th.Background
	tview.Styles.BorderColor = th.BorderUnfocused
	tview.Styles.TitleColor = th.BorderUnfocused
	tview.Styles.GraphicsColor = th.Scrollbar
	tview.Styles.PrimaryTextColor = th.Foreground
	tview.Styles.SecondaryTextColor = ColorToTcell(ThemeColorSecondary)
	tview.Styles.TertiaryTextColor = ColorToTcell(ThemeColorMuted)
	tview.Styles.InverseTextColor = th.Background
	tview.Styles.ContrastSecondaryTextColor = tcell.ColorRed

	tview.Borders.HorizontalFocus = tview.Borders.Horizontal
	tview.Borders.VerticalFocus = tview.Borders.Vertical
	tview.Borders.TopLeft = tview.BoxDrawingsLightArcDownAndRight
	tview.Borders.TopRight = tview.BoxDrawingsLightArcDownAndLeft
	tview.Borders.BottomLeft = tview.BoxDrawingsLightArcUpAndRight
	tview.Borders.BottomRight = tview.BoxDrawingsLightArcUpAndLeft
	tview.Borders.TopLeftFocus = tview.Borders.TopLeft
	tview.Borders.TopRightFocus = tview.Borders.TopRight
	tview.Borders.BottomLeftFocus = tview.Borders.BottomLeft
	tview.Borders.BottomRightFocus = tview.Borders.BottomRight
}

func stylePane(box *tview.Box, title string, focused bool, th Theme) {
	box.SetBorder(true)
	box.SetBackgroundColor(th.Background)
	if focused {
		box.SetTitle("> " + title)
		box.SetBorderColor(th.BorderFocused)
		box.SetTitleColor(th.BorderFocused)
		return
	}
	box.SetTitle(title)
	box.SetBorderColor(th.BorderUnfocused)
	box.SetTitleColor(th.BorderUnfocused)
}

// scrollTable draws a vertical scrollbar over the right border of a table.
type scrollTable struct {
	*tview.Table
	bar      Scrollbar
	showBar  bool
	barColor tcell.Color
}

func newScrollTable(th Theme) *scrollTable {
	t := &scrollTable{Table: tview.NewTable(), barColor: th.Scrollbar}
	t.SetFixed(1, 0)
	t.SetSelectable(true, false)
	t.SetSelectedStyle(tcell.StyleDefault.
		Foreground(th.RowHighlight).
		Background(th.Background).
		Reverse(true))
	return t
}

func (t *scrollTable) SetScrollbar(bar Scrollbar, show bool) {
	t.bar = bar
	t.showBar = show
}

func (t *scrollTable) Draw(screen tcell.Screen) {
	t.Table.Draw(screen)
	if !t.showBar {
		return
	}
	x, y, w, h := t.GetRect()
	if w < 3 || h < 4 {
		return
	}
	col := x + w - 1
	top := y + 1
	bottom := y + h - 2
	style := tcell.StyleDefault.Foreground(t.barColor).Background(tcell.ColorDefault)
	screen.SetContent(col, top, '▲', nil, style)
	screen.SetContent(col, bottom, '▼', nil, style)
	track := bottom - top - 1
	if track < 1 {
		return
	}
	screen.SetContent(col, top+1+t.bar.Thumb(track), '┃', nil, style)
}

func centered(width, height int, p tview.Primitive) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(
			tview.NewFlex().
				SetDirection(tview.FlexRow).
				AddItem(nil, 0, 1, false).
				AddItem(p, height, 1, true).
				AddItem(nil, 0, 1, false),
			width, 1, true,
		).
		AddItem(nil, 0, 1, false)
}

// opaque clears its area before drawing, so an overlay hides what is below.
type opaque struct {
	tview.Primitive
	bg tcell.Color
}

func (o opaque) Draw(screen tcell.Screen) {
	x, y, w, h := o.GetRect()
	style := tcell.StyleDefault.Background(o.bg)
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
	o.Primitive.Draw(screen)
}

func modalHeader(text string, th Theme) *tview.TextView {
	header := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	header.SetBackgroundColor(th.Background)
	header.SetTextColor(th.Foreground)
	header.SetText(" " + text)
	return header
}

func modalFieldBox(title string, inner tview.Primitive, th Theme) *tview.Flex {
	box := tview.NewFlex().SetDirection(tview.FlexRow)
	box.AddItem(inner, 1, 1, false)
	box.SetBackgroundColor(th.Background)
	box.SetBorder(true)
	box.SetBorderColor(th.BorderFocused)
	box.SetTitle(" " + title + " ")
	box.SetTitleColor(ColorToTcell(ThemeColorSecondary))
	return box
}

func modalView(m *Modal, th Theme) tview.Primitive {
	frame := tview.NewFlex().SetDirection(tview.FlexRow)
	frame.SetBorder(true)
	frame.SetBorderColor(th.BorderFocused)
	frame.SetTitle(" New Instance ")
	frame.SetTitleColor(th.BorderFocused)
	frame.SetBackgroundColor(th.Background)
	frame.SetBorderPadding(1, 0, 1, 1)

	hl := func(active bool) string {
		if active {
			return "[::r]"
		}
		return ""
	}
	frame.AddItem(modalHeader(hl(m.Mode() == ModalMenu)+tview.Escape("[c] Create New Instance")+"[::-]", th), 1, 0, false)
	frame.AddItem(modalHeader(hl(m.Mode() == ModalTextEntry)+tview.Escape("[i] Import Modrinth Modpack")+"[::-]", th), 1, 0, false)
	frame.AddItem(nil, 1, 0, false)

	if m.Mode() == ModalTextEntry {
		input := tview.NewTextView().SetWrap(false)
		input.SetBackgroundColor(th.Background)
		input.SetTextColor(th.Foreground)
		input.SetText(tailFit(m.Text(), modalWidth-6) + "_")
		frame.AddItem(modalFieldBox("Enter URL or Path", input, th), 3, 0, false)
	}
	frame.AddItem(nil, 0, 1, false)
	return opaque{Primitive: frame, bg: th.Background}
}

// tailFit keeps the end of s so that it fits in width cells.
func tailFit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	w := 0
	i := len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > width-1 {
			break
		}
		w += rw
		i--
	}
	return "…" + string(runes[i:])
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	if max <= 3 {
		return runewidth.Truncate(s, max, "")
	}
	return runewidth.Truncate(s, max, "...")
}

func (a *App) footerKeymap() string {
	base := "[::b]1-6/tab[::-] focus | [::b]q[::-] quit"
	if a.modal != nil {
		return modalKeymap(a.modal)
	}
	switch a.focus {
	case FocusProfiles:
		return "[::b]j/k[::-] move | [::b]a[::-] new | [::b]d[::-] clear | [::b]enter[::-] launch | " + base
	case FocusInstances:
		return "[::b]j/k[::-] move | [::b]a[::-] add | [::b]d[::-] clear | " + base
	default:
		return base
	}
}

func levelColorTag(level string) string {
	switch level {
	case "ERROR":
		return "[" + string(ColorRed) + "::b]"
	case "WARN":
		return "[" + string(ColorPurple) + "::b]"
	default:
		return "[" + string(ColorBlue) + "::b]"
	}
}

func (a *App) footer() tview.Primitive {
	level, message := "INFO", "ready"
	if n := len(a.status); n > 0 {
		level, message = a.status[n-1].Level, a.status[n-1].Message
	}
	view := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	view.SetBackgroundColor(a.theme.Background)
	view.SetTextColor(ColorToTcell(ThemeColorMuted))
	view.SetText(fmt.Sprintf("╰─ %s  %s%s[-:-:-]: %s",
		a.footerKeymap(),
		levelColorTag(level), level,
		tview.Escape(message),
	))
	return view
}

func (a *App) titleHeader() tview.Primitive {
	text := fmt.Sprintf("[%s::b]mcl[-:-:-] %s", string(ThemeColorPrimary), versionLabel())
	if p, ok := a.profiles.List().SelectedItem(); ok {
		text += "  |  " + tview.Escape(p.Name)
	}
	view := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	view.SetTextColor(a.theme.Foreground)
	view.SetText(text)
	stylePane(view.Box, "Title", a.focus == FocusContent, a.theme)
	return view
}

func (a *App) panelPrimitive(target FocusTarget) tview.Primitive {
	return a.panels[target].Primitive(a.focus == target, a.theme)
}

// layout builds the frame from current state. It is rebuilt on every draw.
func (a *App) layout() tview.Primitive {
	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.panelPrimitive(FocusProfiles), 0, 1, false).
		AddItem(a.panelPrimitive(FocusInstances), 0, 1, false)
	middle := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.titleHeader(), titleHeaderHeight, 0, false).
		AddItem(a.panelPrimitive(FocusContent), 0, 1, false)
	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.panelPrimitive(FocusAccount), 0, 1, false).
		AddItem(a.panelPrimitive(FocusDetails), 0, 2, false)
	top := tview.NewFlex().
		AddItem(left, 0, 1, false).
		AddItem(middle, 0, 2, false).
		AddItem(right, 0, 1, false)
	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 0, 1, false).
		AddItem(a.panelPrimitive(FocusStatus), statusPaneHeight, 0, false).
		AddItem(a.footer(), 1, 0, false)
}

func (a *App) draw(screen tcell.Screen) {
	w, h := screen.Size()
	screen.SetStyle(tcell.StyleDefault.Background(a.theme.Background).Foreground(a.theme.Foreground))
	screen.Clear()

	root := a.layout()
	root.SetRect(0, 0, w, h)
	root.Draw(screen)

	if a.modal != nil {
		width := modalWidth
		if width > w-2 {
			width = w - 2
		}
		overlay := centered(width, modalHeight, modalView(a.modal, a.theme))
		overlay.SetRect(0, 0, w, h)
		overlay.Draw(screen)
	}
	screen.Show()
}

// Content helpers for the display panels.

func (a *App) contentText() string {
	in, ok := a.instances.List().SelectedItem()
	if !ok {
		return "[::d]No instance selected. Focus Instances and press a to add one.[::-]"
	}
	return fmt.Sprintf("[::b]%s[::-]\nID:     %s\nState:  %s",
		tview.Escape(in.Title), in.ID, runningLabel(in.Running))
}

func (a *App) accountText() string {
	mode := "online"
	if a.cfg.Account.Offline {
		mode = "offline"
	}
	return fmt.Sprintf("User: %s\nMode: %s", tview.Escape(a.cfg.Account.Username), mode)
}

func (a *App) detailsText() string {
	var b strings.Builder
	if p, ok := a.profiles.List().SelectedItem(); ok {
		fmt.Fprintf(&b, "[::b]%s[::-]\nID:      %s\n", tview.Escape(p.Name), p.ID)
		if p.Source != "" {
			fmt.Fprintf(&b, "Source:  %s\n", tview.Escape(truncate(p.Source, 48)))
		}
		fmt.Fprintf(&b, "State:   %s\n\n", runningLabel(p.Running))
	} else {
		b.WriteString("[::d]No profile selected.[::-]\n\n")
	}
	jvm := "None"
	if len(a.cfg.Launch.JVMArgs) > 0 {
		jvm = strings.Join(a.cfg.Launch.JVMArgs, " ")
	}
	fmt.Fprintf(&b, "Memory:      %s\nResolution:  %s\nJVM Args:    %s",
		tview.Escape(a.cfg.Launch.Memory), tview.Escape(a.cfg.Launch.Resolution), tview.Escape(jvm))
	return b.String()
}

func (a *App) statusText() string {
	start := 0
	if len(a.status) > statusPaneHeight-2 {
		start = len(a.status) - (statusPaneHeight - 2)
	}
	lines := make([]string, 0, len(a.status)-start)
	for _, e := range a.status[start:] {
		lines = append(lines, fmt.Sprintf("[::d]%s[::-] %s%s[-:-:-] %s",
			e.Time.Format("15:04:05"), levelColorTag(e.Level), e.Level, tview.Escape(e.Message)))
	}
	return strings.Join(lines, "\n")
}
