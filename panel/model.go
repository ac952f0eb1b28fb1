package panel

import (
	"maps"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkwell/richtext"
)

// toolbarRows is the toolbar row plus the blank margin row below it.
const toolbarRows = 2

// Model is a Bubble Tea component rendering a formatting toolbar above an
// editable rich-text surface.
//
// Block type and toggle state are derived: they are recomputed from the
// editor state every time the panel adopts a new one.
type Model struct {
	cfg   Config
	state *richtext.EditorState

	blockType richtext.BlockType
	toggles   Toggles

	focused bool
	width   int
	height  int

	viewport viewport.Model
	lines    []visualLine
	buttons  []toolbarItem

	mouseAnchor   richtext.Pos
	mouseDragging bool
}

func New(cfg Config) Model {
	cfg = withDefaults(cfg)
	st := cfg.State
	if st == nil {
		st = richtext.CreateWithOptions(richtext.ContentFromText(cfg.Text), richtext.Options{HistoryLimit: cfg.HistoryLimit})
	}
	m := Model{
		cfg:      cfg,
		state:    st,
		toggles:  deriveToggles(richtext.StyleSet{}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.derive()
	m.rebuild()
	return m
}

func withDefaults(cfg Config) Config {
	if cfg.Engine == nil {
		cfg.Engine = richtext.RichUtils{}
	}
	if cfg.BlockStyleFn == nil {
		cfg.BlockStyleFn = BlockStyle
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Style.Inline == nil && cfg.Style.Classes == nil {
		cfg.Style = DefaultStyle()
	}
	if cfg.Icons == nil {
		cfg.Icons = DefaultIcons()
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = richtext.DefaultMaxDepth
	}
	return cfg
}

func (m Model) Init() tea.Cmd { return nil }

// State returns the current editor state.
func (m Model) State() *richtext.EditorState { return m.state }

// BlockType returns the type of the block holding the selection start.
func (m Model) BlockType() richtext.BlockType { return m.blockType }

// Toggles returns a copy of the toggle state.
func (m Model) Toggles() Toggles { return maps.Clone(m.toggles) }

func (m Model) Focused() bool { return m.focused }

func (m Model) Width() int  { return m.width }
func (m Model) Height() int { return m.height }

// SetState adopts s as if an edit produced it. Hosts use it to load drafts.
func (m Model) SetState(s *richtext.EditorState) Model {
	m.setState(s)
	return m
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-toolbarRows, 0)
	m.rebuild()
	m.followCursor()
	return m
}

func (m Model) SetStyle(s Style) Model {
	m.cfg.Style = s
	m.rebuild()
	return m
}

// SetPlaceholder replaces the placeholder, e.g. after a config reload.
func (m Model) SetPlaceholder(s string) Model {
	m.cfg.Placeholder = s
	m.rebuild()
	return m
}

func (m Model) SetIcons(icons IconSet) Model {
	if icons == nil {
		icons = DefaultIcons()
	}
	m.cfg.Icons = icons
	m.rebuild()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuild()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.rebuild()
	}
	return m
}

// setState adopts next. It reports false when next is nil or already
// current; nothing is derived or emitted in that case.
func (m *Model) setState(next *richtext.EditorState) bool {
	if next == nil || next == m.state {
		return false
	}
	prev := m.state
	m.state = next
	m.derive()
	m.rebuild()
	m.followCursor()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(prev, m))
	}
	return true
}

func (m *Model) derive() {
	sel := m.state.Selection()
	m.blockType = richtext.Unstyled
	if b := m.state.CurrentContent().BlockForKey(sel.StartKey()); b != nil {
		m.blockType = b.Type()
	}
	m.toggles = deriveToggles(m.state.CurrentInlineStyle())
}

func (m *Model) rebuild() {
	m.lines = m.layout()
	m.buttons = m.layoutToolbar()
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := m.cursorRow()
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func (m Model) View() string {
	body := m.renderContent()
	if m.height > 0 {
		body = m.viewport.View()
	}
	return m.renderToolbar() + "\n\n" + body
}
