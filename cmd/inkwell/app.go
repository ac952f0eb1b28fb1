package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/inkwell"
	"github.com/iw2rmb/inkwell/export"
	"github.com/iw2rmb/inkwell/internal/config"
	"github.com/iw2rmb/inkwell/pane"
	"github.com/iw2rmb/inkwell/panel"
	"github.com/iw2rmb/inkwell/preview"
	"github.com/iw2rmb/inkwell/richtext"
	"github.com/iw2rmb/inkwell/store"
)

const saveTimeout = 5 * time.Second

type appKeys struct {
	Save   key.Binding
	Drafts key.Binding
	Quit   key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Drafts: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "drafts")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// helpKeys merges the app bindings with the panel's for the help line.
type helpKeys struct {
	app   appKeys
	panel panel.KeyMap
}

func (k helpKeys) ShortHelp() []key.Binding {
	return append([]key.Binding{k.app.Save, k.app.Drafts, k.app.Quit}, k.panel.ShortHelp()...)
}

func (k helpKeys) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.app.Save, k.app.Drafts, k.app.Quit}}, k.panel.FullHelp()...)
}

type configMsg struct {
	cfg config.Config
	err error
}

type savedMsg struct {
	content *richtext.Content
	err     error
}

type app struct {
	cfg   config.Config
	keys  appKeys
	store *store.Store

	panel   panel.Model
	preview preview.Model
	picker  picker
	help    help.Model

	// saved is the content of the last successful save; shown is the content
	// the preview last rendered.
	saved *richtext.Content
	shown *richtext.Content

	status string
	width  int
	height int
}

func newApp(cfg config.Config, st *store.Store, initial *richtext.Content) app {
	pcfg := panel.Config{
		Placeholder:  cfg.Placeholder,
		HistoryLimit: cfg.HistoryLimit,
		Style:        panelStyle(cfg.Theme),
		Icons:        panelIcons(cfg.Icons),
		Clipboard:    panel.SystemClipboard{},
	}
	if initial != nil {
		pcfg.State = richtext.CreateWithOptions(initial, richtext.Options{HistoryLimit: cfg.HistoryLimit})
	}
	a := app{
		cfg:     cfg,
		keys:    defaultAppKeys(),
		store:   st,
		panel:   panel.New(pcfg),
		preview: preview.New(cfg.PreviewStyle),
		picker:  picker{keys: defaultPickerKeys()},
		help:    help.New(),
	}
	a.saved = a.panel.State().CurrentContent()
	a.syncPreview()
	return a
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.layout()
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case a.picker.open:
			return a.updatePicker(msg)
		case key.Matches(msg, a.keys.Save):
			return a, a.save()
		case key.Matches(msg, a.keys.Drafts):
			if a.store == nil {
				a.status = "no draft store"
				return a, nil
			}
			return a, listDrafts(a.store)
		}

	case tea.MouseMsg:
		if a.picker.open {
			return a, nil
		}
		if a.cfg.ShowPreview && msg.X >= a.panel.Width() && a.panel.Width() > 0 {
			msg.X -= a.panel.Width()
			var cmd tea.Cmd
			a.preview, cmd = a.preview.Update(msg)
			return a, cmd
		}

	case configMsg:
		a.applyConfig(msg)
		return a, nil

	case savedMsg:
		if msg.err != nil {
			log.Printf("save: %v", msg.err)
			a.status = "save failed: " + msg.err.Error()
			return a, nil
		}
		a.saved = msg.content
		a.status = fmt.Sprintf("saved %q, exported %s", a.cfg.Store.Draft, a.cfg.Export.Path)
		return a, nil

	case draftsMsg:
		if msg.err != nil {
			log.Printf("drafts: %v", msg.err)
			a.status = msg.err.Error()
			return a, nil
		}
		a.picker = a.picker.withDrafts(msg.drafts)
		if msg.status != "" {
			a.status = msg.status
		}
		return a, nil

	case openedMsg:
		a.switchDraft(msg)
		return a, nil
	}

	var cmd tea.Cmd
	a.panel, cmd = a.panel.Update(msg)
	a.syncPreview()
	return a, cmd
}

func (a app) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.picker.keys
	switch {
	case key.Matches(msg, k.Close):
		a.picker.open = false
	case key.Matches(msg, k.Up):
		a.picker = a.picker.move(-1)
	case key.Matches(msg, k.Down):
		a.picker = a.picker.move(1)
	case key.Matches(msg, k.Open):
		if d, ok := a.picker.selected(); ok {
			return a, openDraft(a.store, d.Name)
		}
	case key.Matches(msg, k.Delete):
		if d, ok := a.picker.selected(); ok {
			return a, deleteDraft(a.store, d.Name)
		}
	}
	return a, nil
}

// switchDraft swaps the editor to a stored draft. Later saves go to that name.
func (a *app) switchDraft(msg openedMsg) {
	if msg.err != nil {
		log.Printf("open draft %q: %v", msg.name, msg.err)
		a.status = fmt.Sprintf("open %q: %v", msg.name, msg.err)
		return
	}
	state := richtext.CreateWithOptions(msg.content, richtext.Options{HistoryLimit: a.cfg.HistoryLimit})
	a.panel = a.panel.SetState(state)
	a.cfg.Store.Draft = msg.name
	a.saved = a.panel.State().CurrentContent()
	a.picker.open = false
	a.status = fmt.Sprintf("opened %q", msg.name)
	a.syncPreview()
}

func (a *app) layout() {
	h := max(a.height-1, 0)
	if !a.cfg.ShowPreview {
		a.panel = a.panel.SetSize(a.width, h)
		return
	}
	w := pane.Widths(a.width, 2)
	a.panel = a.panel.SetSize(w[0], h)
	a.preview = a.preview.SetSize(w[1], h)
}

// syncPreview re-renders the preview only when the document changed.
func (a *app) syncPreview() {
	c := a.panel.State().CurrentContent()
	if c == a.shown {
		return
	}
	a.shown = c
	if a.cfg.ShowPreview {
		a.preview = a.preview.SetContent(c)
	}
}

func (a *app) applyConfig(msg configMsg) {
	if msg.err != nil {
		log.Printf("config reload: %v", msg.err)
		a.status = "config: " + msg.err.Error()
		return
	}
	cfg := msg.cfg
	// Storage targets stay fixed for the session.
	cfg.Store, cfg.Export = a.cfg.Store, a.cfg.Export
	a.cfg = cfg
	a.panel = a.panel.
		SetStyle(panelStyle(cfg.Theme)).
		SetIcons(panelIcons(cfg.Icons)).
		SetPlaceholder(cfg.Placeholder)
	a.preview = a.preview.SetStyle(cfg.PreviewStyle)
	a.shown = nil
	a.syncPreview()
	a.layout()
	a.status = "config reloaded"
}

// save stores the draft and writes the HTML export. Both run off the update
// loop.
func (a app) save() tea.Cmd {
	c := a.panel.State().CurrentContent()
	st, name, path := a.store, a.cfg.Store.Draft, a.cfg.Export.Path
	return func() tea.Msg {
		if st != nil {
			ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
			defer cancel()
			if err := st.Save(ctx, name, c); err != nil {
				return savedMsg{err: err}
			}
		}
		if path != "" {
			html := export.HTML(c, export.Options{})
			if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
				return savedMsg{err: fmt.Errorf("export %s: %w", path, err)}
			}
		}
		return savedMsg{content: c}
	}
}

func (a app) statusLine() string {
	if a.status != "" && a.saved == a.panel.State().CurrentContent() {
		return a.status
	}
	ins, del := richtext.DiffStats(richtext.DiffText(a.saved, a.panel.State().CurrentContent()))
	if ins == 0 && del == 0 {
		return inkwell.Describe()
	}
	return fmt.Sprintf("%s  unsaved +%d -%d", inkwell.Describe(), ins, del)
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

func (a app) View() string {
	var body string
	if a.cfg.ShowPreview {
		body = pane.New(a.panel, a.preview).View()
	} else {
		body = a.panel.View()
	}
	keys := help.KeyMap(helpKeys{app: a.keys, panel: panel.DefaultKeyMap()})
	if a.picker.open {
		body = a.picker.composite(body, a.cfg.Store.Draft, a.width, max(a.height-1, 0))
		keys = a.picker.keys
	}
	footer := statusStyle.Render(a.statusLine()) + "  " + a.help.View(keys)
	return body + "\n" + footer
}
