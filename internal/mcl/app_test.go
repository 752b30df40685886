package mcl

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

type recordingLauncher struct {
	calls []LaunchOptions
	err   error
}

func (r *recordingLauncher) Launch(opts LaunchOptions) error {
	r.calls = append(r.calls, opts)
	return r.err
}

func newTestApp(t *testing.T) (*App, *recordingLauncher) {
	t.Helper()
	l := &recordingLauncher{}
	a, err := NewApp(DefaultConfig(), l, nil)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return a, l
}

func press(a *App, keys ...*tcell.EventKey) {
	for _, k := range keys {
		a.HandleKey(k)
	}
}

func pressRunes(a *App, s string) {
	for _, r := range s {
		a.HandleKey(runeKey(r))
	}
}

func TestAddOnEmptyInstancesSelectsFirst(t *testing.T) {
	a, _ := newTestApp(t)
	pressRunes(a, "2a")
	l := a.Instances()
	if idx, ok := l.Selected(); !ok || idx != 0 {
		t.Fatalf("selection = %d,%v want 0,true", idx, ok)
	}
	if sb := l.Scrollbar(); sb != (Scrollbar{Position: 0, Total: 0}) {
		t.Fatalf("scrollbar = %+v, want {0 0}", sb)
	}
}

func TestNextWrapsFromLastProfile(t *testing.T) {
	a, _ := newTestApp(t)
	for i := 0; i < 3; i++ {
		pressRunes(a, "ac")
	}
	l := a.Profiles()
	if l.Len() != 3 {
		t.Fatalf("profiles = %d, want 3", l.Len())
	}
	pressRunes(a, "jj")
	if idx, _ := l.Selected(); idx != 2 {
		t.Fatalf("selection = %d, want 2", idx)
	}
	press(a, specialKey(tcell.KeyDown))
	if idx, _ := l.Selected(); idx != 0 {
		t.Fatalf("selection after next = %d, want 0", idx)
	}
}

func TestModalCancelRestoresFocus(t *testing.T) {
	a, _ := newTestApp(t)
	pressRunes(a, "a")
	if a.Focus() != FocusModal || a.Modal() == nil {
		t.Fatalf("focus = %v modal=%v, want modal", a.Focus(), a.Modal())
	}
	press(a, specialKey(tcell.KeyEscape))
	if a.Focus() != FocusProfiles {
		t.Fatalf("focus after cancel = %v, want Profiles", a.Focus())
	}
	if a.Modal() != nil {
		t.Fatalf("modal still present after cancel")
	}
	if a.Profiles().Len() != 0 {
		t.Fatalf("cancel changed the list: len=%d", a.Profiles().Len())
	}
}

func TestModalEraseThroughApp(t *testing.T) {
	a, _ := newTestApp(t)
	pressRunes(a, "aiabc")
	erase := specialKey(tcell.KeyBackspace2)
	press(a, erase, erase)
	if got := a.Modal().Text(); got != "a" {
		t.Fatalf("buffer = %q, want %q", got, "a")
	}
	press(a, erase, erase)
	if got := a.Modal().Text(); got != "" {
		t.Fatalf("buffer = %q, want empty", got)
	}
}

func TestQuitBlockedWhileModalActive(t *testing.T) {
	a, _ := newTestApp(t)
	pressRunes(a, "a")
	pressRunes(a, "1")
	press(a, specialKey(tcell.KeyCtrlC), specialKey(tcell.KeyTab))
	if a.Exiting() {
		t.Fatalf("quit processed while modal active")
	}
	if a.Focus() != FocusModal {
		t.Fatalf("focus moved while modal active: %v", a.Focus())
	}
	pressRunes(a, "q")
	if a.Exiting() {
		t.Fatalf("q inside the modal menu should close the modal, not quit")
	}
	if a.Modal() != nil || a.Focus() != FocusProfiles {
		t.Fatalf("modal not closed: modal=%v focus=%v", a.Modal(), a.Focus())
	}
	pressRunes(a, "q")
	if !a.Exiting() {
		t.Fatalf("quit not processed after modal closed")
	}
}

func TestModalDoesNotLeakKeysToPanels(t *testing.T) {
	a, _ := newTestApp(t)
	pressRunes(a, "ac")
	pressRunes(a, "a")
	pressRunes(a, "dj")
	if a.Profiles().Len() != 1 {
		t.Fatalf("panel saw keys while the modal was open: len=%d", a.Profiles().Len())
	}
}

func TestModalCreateAndImport(t *testing.T) {
	a, _ := newTestApp(t)
	pressRunes(a, "ac")
	pressRunes(a, "ai")
	pressRunes(a, "https://example.com/modpack/cool-pack/")
	press(a, specialKey(tcell.KeyEnter))
	pressRunes(a, "ai")
	press(a, specialKey(tcell.KeyEnter))

	items := a.Profiles().Items()
	if len(items) != 2 {
		t.Fatalf("profiles = %d, want 2: %+v", len(items), items)
	}
	if items[0].Name != "Profile 1" {
		t.Fatalf("created name = %q, want %q", items[0].Name, "Profile 1")
	}
	if items[1].Name != "cool-pack" || items[1].Source != "https://example.com/modpack/cool-pack/" {
		t.Fatalf("imported profile = %+v", items[1])
	}
	if len(items[0].ID) != 8 || items[0].ID == items[1].ID {
		t.Fatalf("unexpected ids: %q %q", items[0].ID, items[1].ID)
	}
	if a.Focus() != FocusProfiles {
		t.Fatalf("focus = %v, want Profiles", a.Focus())
	}
}

func TestFocusKeys(t *testing.T) {
	a, _ := newTestApp(t)
	cases := []struct {
		key  *tcell.EventKey
		want FocusTarget
	}{
		{runeKey('3'), FocusContent},
		{runeKey('6'), FocusStatus},
		{specialKey(tcell.KeyTab), FocusProfiles},
		{specialKey(tcell.KeyBacktab), FocusStatus},
		{runeKey('2'), FocusInstances},
		{specialKey(tcell.KeyTab), FocusContent},
		{runeKey('7'), FocusContent},
	}
	for i, tc := range cases {
		a.HandleKey(tc.key)
		if a.Focus() != tc.want {
			t.Fatalf("step %d: focus = %v, want %v", i, a.Focus(), tc.want)
		}
	}
}

func TestDisplayPanelsIgnoreKeys(t *testing.T) {
	a, _ := newTestApp(t)
	pressRunes(a, "2aa4")
	pressRunes(a, "adjk")
	if a.Instances().Len() != 2 {
		t.Fatalf("display panel key reached a list: len=%d", a.Instances().Len())
	}
	if a.Modal() != nil {
		t.Fatalf("display panel opened a modal")
	}
}

func TestEnterLaunchesSelectedProfile(t *testing.T) {
	a, l := newTestApp(t)
	press(a, specialKey(tcell.KeyEnter))
	if len(l.calls) != 0 {
		t.Fatalf("launched with an empty list")
	}
	pressRunes(a, "ac")
	press(a, specialKey(tcell.KeyEnter))
	if len(l.calls) != 1 || l.calls[0].Profile != "Profile 1" {
		t.Fatalf("launch calls = %+v", l.calls)
	}
	if l.calls[0].Memory != "Default" {
		t.Fatalf("launch did not use config defaults: %+v", l.calls[0])
	}
}

func TestLaunchFailureIsReportedInStatus(t *testing.T) {
	a, l := newTestApp(t)
	l.err = errors.New("boom")
	pressRunes(a, "ac")
	press(a, specialKey(tcell.KeyEnter))
	last := a.status[len(a.status)-1]
	if last.Level != "ERROR" {
		t.Fatalf("last status = %+v, want ERROR", last)
	}
}

func TestRunQuitsOnQ(t *testing.T) {
	a, _ := newTestApp(t)
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(100, 30)

	screen.InjectKey(tcell.KeyRune, '2', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := a.Run(screen); err != nil {
		t.Fatalf("run: %v", err)
	}
	if a.Instances().Len() != 2 {
		t.Fatalf("instances = %d, want 2", a.Instances().Len())
	}
}

type closedScreen struct {
	tcell.Screen
}

func (closedScreen) PollEvent() tcell.Event { return nil }

func TestRunReturnsErrInputClosed(t *testing.T) {
	a, _ := newTestApp(t)
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer sim.Fini()

	err := a.Run(closedScreen{Screen: sim})
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("run err = %v, want ErrInputClosed", err)
	}
}

func TestGlobalKeysIgnoreModifiers(t *testing.T) {
	a, _ := newTestApp(t)
	a.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModAlt))
	if a.Exiting() {
		t.Fatalf("alt-q quit the app")
	}
	a.HandleKey(tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModAlt))
	if a.Focus() != FocusProfiles {
		t.Fatalf("alt-3 moved focus to %v", a.Focus())
	}
	pressRunes(a, "3")
	if a.Focus() != FocusContent {
		t.Fatalf("plain 3 focus = %v, want Content", a.Focus())
	}
}

func TestModalReturnsFocusToInstancesRequester(t *testing.T) {
	a, _ := newTestApp(t)
	a.instances.placeholder = nil
	a.instances.fromResult = func(res ModalResult, n int) (Instance, bool) {
		if res.Choice != ChoiceCreate {
			return Instance{}, false
		}
		return Instance{ID: newShortID(), Title: "Modal Instance"}, true
	}

	pressRunes(a, "2a")
	if a.Focus() != FocusModal || a.Modal().Requester() != FocusInstances {
		t.Fatalf("focus = %v, want modal requested by Instances", a.Focus())
	}
	pressRunes(a, "c")
	if a.Focus() != FocusInstances {
		t.Fatalf("focus after create = %v, want Instances", a.Focus())
	}
	if a.Instances().Len() != 1 || a.Profiles().Len() != 0 {
		t.Fatalf("result went to the wrong list: instances=%d profiles=%d", a.Instances().Len(), a.Profiles().Len())
	}

	pressRunes(a, "a")
	press(a, specialKey(tcell.KeyEscape))
	if a.Focus() != FocusInstances {
		t.Fatalf("focus after cancel = %v, want Instances", a.Focus())
	}
}
