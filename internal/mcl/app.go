package mcl

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

// ErrInputClosed is returned by Run when the screen stops delivering events
// before the user quit.
var ErrInputClosed = errors.New("terminal input closed")

const maxStatusEntries = 100

type statusEntry struct {
	Time    time.Time
	Level   string
	Message string
}

// App owns all UI state: the panel registry, the focus target and the
// optional modal. Only App writes focus.
type App struct {
	cfg      Config
	theme    Theme
	launcher Launcher
	log      *slog.Logger

	profiles  *listPanel[Profile]
	instances *listPanel[Instance]
	panels    map[FocusTarget]Panel

	focus   FocusTarget
	modal   *Modal
	exiting bool
	status  []statusEntry
}

func NewApp(cfg Config, launcher Launcher, logger *slog.Logger) (*App, error) {
	th, err := cfg.Theme()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = discardLogger()
	}
	a := &App{
		cfg:      cfg,
		theme:    th,
		launcher: launcher,
		log:      logger,
		focus:    FocusProfiles,
	}
	a.profiles = newProfilesPanel(a.launchProfile)
	a.instances = newInstancesPanel()
	a.panels = map[FocusTarget]Panel{
		FocusProfiles:  a.profiles,
		FocusInstances: a.instances,
		FocusContent:   &textPanel{title: "[3]-Content", content: a.contentText},
		FocusAccount:   &textPanel{title: "[4]-Account", content: a.accountText},
		FocusDetails:   &textPanel{title: "[5]-Details", content: a.detailsText},
		FocusStatus:    &textPanel{title: "[6]-Status", content: a.statusText},
	}
	return a, nil
}

func (a *App) Focus() FocusTarget { return a.focus }
func (a *App) Exiting() bool      { return a.exiting }

// Modal returns the active modal, or nil.
func (a *App) Modal() *Modal { return a.modal }

func (a *App) Profiles() *ListState[Profile]   { return a.profiles.List() }
func (a *App) Instances() *ListState[Instance] { return a.instances.List() }

// Run draws a frame, waits for one event and handles it until the user quits.
func (a *App) Run(screen tcell.Screen) error {
	applyTheme(a.theme)
	a.setInfo("ready")
	for !a.exiting {
		a.draw(screen)
		ev := screen.PollEvent()
		if ev == nil {
			return ErrInputClosed
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}
		a.HandleEvent(ev)
	}
	return nil
}

func (a *App) HandleEvent(ev tcell.Event) {
	if key, ok := ev.(*tcell.EventKey); ok {
		a.HandleKey(key)
	}
}

func (a *App) HandleKey(ev *tcell.EventKey) {
	if a.modal != nil {
		a.modal.HandleKey(ev)
		if a.modal.Done() {
			a.closeModal()
		}
		return
	}

	if a.handleGlobalKey(ev) {
		return
	}

	if h, ok := a.panels[a.focus].(KeyHandler); ok {
		h.HandleKey(ev)
	}
	if r, ok := a.panels[a.focus].(ModalRequester); ok && r.TakeModalRequest() {
		a.openModal(a.focus)
	}
}

func (a *App) handleGlobalKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		a.exiting = true
		return true
	case tcell.KeyTab:
		a.cycleFocus(1)
		return true
	case tcell.KeyBacktab:
		a.cycleFocus(-1)
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	if ev.Modifiers() != tcell.ModNone {
		return false
	}
	r := ev.Rune()
	switch {
	case r == 'q':
		a.exiting = true
		return true
	case r >= '1' && r < '1'+rune(len(panelOrder)):
		a.setFocus(panelOrder[r-'1'])
		return true
	}
	return false
}

func (a *App) setFocus(target FocusTarget) {
	if a.focus == target {
		return
	}
	a.log.Debug("focus", "from", a.focus.String(), "to", target.String())
	a.focus = target
}

func (a *App) cycleFocus(delta int) {
	idx := 0
	for i, t := range panelOrder {
		if t == a.focus {
			idx = i
			break
		}
	}
	n := len(panelOrder)
	a.setFocus(panelOrder[((idx+delta)%n+n)%n])
}

func (a *App) openModal(requester FocusTarget) {
	a.modal = newModal(requester)
	a.log.Debug("modal opened", "requester", requester.String())
	a.setFocus(FocusModal)
}

// closeModal hands the result, if any, to the panel that opened the modal and
// gives focus back to it.
func (a *App) closeModal() {
	m := a.modal
	a.modal = nil
	if res, ok := m.Result(); ok {
		if r, ok := a.panels[m.Requester()].(ModalRequester); ok {
			r.ApplyModalResult(res)
		}
		switch res.Choice {
		case ChoiceCreate:
			a.setInfo("created new profile")
		case ChoiceImport:
			if strings.TrimSpace(res.Text) == "" {
				a.setWarn("import cancelled: no URL or path given")
			} else {
				a.setInfo("imported %s", res.Text)
			}
		}
	}
	a.log.Debug("modal closed", "requester", m.Requester().String())
	a.setFocus(m.Requester())
}

func (a *App) launchProfile(p Profile) {
	if a.launcher == nil {
		a.setWarn("no launcher configured")
		return
	}
	opts := LaunchOptions{
		Profile:    p.Name,
		Offline:    a.cfg.Account.Offline,
		Memory:     a.cfg.Launch.Memory,
		Resolution: a.cfg.Launch.Resolution,
		ExtraArgs:  a.cfg.Launch.JVMArgs,
		Headless:   a.cfg.Launch.NoWindow,
	}
	if err := a.launcher.Launch(opts); err != nil {
		a.setError("launch %s failed: %v", p.Name, err)
		return
	}
	a.setInfo("launch requested: %s", p.Name)
}

func (a *App) pushStatus(level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.status = append(a.status, statusEntry{Time: time.Now(), Level: level, Message: msg})
	if len(a.status) > maxStatusEntries {
		a.status = a.status[len(a.status)-maxStatusEntries:]
	}
}

func (a *App) setInfo(format string, args ...any) {
	a.pushStatus("INFO", format, args...)
	a.log.Info(fmt.Sprintf(format, args...))
}

func (a *App) setWarn(format string, args ...any) {
	a.pushStatus("WARN", format, args...)
	a.log.Warn(fmt.Sprintf(format, args...))
}

func (a *App) setError(format string, args ...any) {
	a.pushStatus("ERROR", format, args...)
	a.log.Error(fmt.Sprintf(format, args...))
}
