package main

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/shapestyle"
	"github.com/gogpu/shapestyle/preview"
	"github.com/gogpu/shapestyle/state"
)

// frameInterval paces animation frames on the shaders page.
const frameInterval = time.Second / 15

// separationStep is how far one key press moves the blend circles.
const separationStep = 10.0

// frameMsg is delivered on every animation tick.
type frameMsg time.Time

// pageItem adapts a page to the sidebar list.
type pageItem struct {
	page shapestyle.Page
}

func (i pageItem) FilterValue() string { return i.page.ID() }
func (i pageItem) Title() string       { return i.page.String() }
func (i pageItem) Description() string { return pageDescriptions[i.page] }

var pageDescriptions = map[shapestyle.Page]string{
	shapestyle.PageColors:  "fills at a weight",
	shapestyle.PageBlends:  "two blended circles",
	shapestyle.PageShaders: "animated effects",
}

// picker is one adjustable control on a page.
type picker struct {
	label string
	value func(state.Selection) string
	step  func(s *state.Store, sel state.Selection, delta int) error
}

var pickers = map[shapestyle.Page][]picker{
	shapestyle.PageColors: {
		{
			label: "Weight",
			value: func(sel state.Selection) string { return sel.Weight.String() },
			step: func(s *state.Store, sel state.Selection, d int) error {
				return s.SetWeight(shapestyle.Weights.Step(sel.Weight, d))
			},
		},
	},
	shapestyle.PageBlends: {
		{
			label: "Left Fill",
			value: func(sel state.Selection) string { return sel.Left.Fill.String() },
			step: func(s *state.Store, sel state.Selection, d int) error {
				return s.SetLeftFill(shapestyle.Fills.Step(sel.Left.Fill, d))
			},
		},
		{
			label: "Left Blend",
			value: func(sel state.Selection) string { return sel.Left.Blend.String() },
			step: func(s *state.Store, sel state.Selection, d int) error {
				return s.SetLeftBlend(shapestyle.BlendModes.Step(sel.Left.Blend, d))
			},
		},
		{
			label: "Right Fill",
			value: func(sel state.Selection) string { return sel.Right.Fill.String() },
			step: func(s *state.Store, sel state.Selection, d int) error {
				return s.SetRightFill(shapestyle.Fills.Step(sel.Right.Fill, d))
			},
		},
		{
			label: "Right Blend",
			value: func(sel state.Selection) string { return sel.Right.Blend.String() },
			step: func(s *state.Store, sel state.Selection, d int) error {
				return s.SetRightBlend(shapestyle.BlendModes.Step(sel.Right.Blend, d))
			},
		},
		{
			label: "Separation",
			value: func(sel state.Selection) string { return fmt.Sprintf("%.0f", sel.Separation) },
			step: func(s *state.Store, sel state.Selection, d int) error {
				s.SetSeparation(sel.Separation + float64(d)*separationStep)
				return nil
			},
		},
	},
	shapestyle.PageShaders: {
		{
			label: "Shader",
			value: func(sel state.Selection) string { return sel.Shader.String() },
			step: func(s *state.Store, sel state.Selection, d int) error {
				return s.SetShader(shapestyle.ShaderKinds.Step(sel.Shader, d))
			},
		},
	},
}

// model is the inspector's Bubble Tea model.
type model struct {
	store    *state.Store
	resolver *shapestyle.Resolver
	renderer *preview.Renderer
	pages    list.Model

	// dirty is set by the store subscription; the preview is re-rendered
	// on the next frame.
	dirty *atomic.Bool

	cursor   int
	width    int
	height   int
	showHelp bool
	help     string
	frame    string
	err      error
}

func newModel(store *state.Store, resolver *shapestyle.Resolver, renderer *preview.Renderer) model {
	items := make([]list.Item, 0, shapestyle.Pages.Len())
	for _, p := range shapestyle.Pages.All() {
		items = append(items, pageItem{page: p})
	}
	pages := list.New(items, list.NewDefaultDelegate(), 20, 12)
	pages.Title = "Pages"
	pages.SetShowStatusBar(false)
	pages.SetShowHelp(false)
	pages.SetFilteringEnabled(false)

	dirty := new(atomic.Bool)
	dirty.Store(true)
	store.Subscribe(func(c state.Change) {
		shapestyle.Logger().Debug("selection changed", "field", c.Field)
		dirty.Store(true)
	})

	return model{
		store:    store,
		resolver: resolver,
		renderer: renderer,
		pages:    pages,
		dirty:    dirty,
	}
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.pages.SetSize(20, max(msg.Height-4, 6))
		m.help = ""
		if m.showHelp {
			m.help, m.err = renderHelp(msg.Width)
		}
		m.dirty.Store(true)
		return m, nil

	case frameMsg:
		sel := m.store.Snapshot()
		if sel.Page == shapestyle.PageShaders || m.dirty.Swap(false) {
			m.frame, m.err = m.render(sel)
		}
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := m.store.Snapshot()
	controls := pickers[sel.Page]
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		if m.showHelp && m.help == "" {
			m.help, m.err = renderHelp(m.width)
		}
	case key.Matches(msg, keys.NextPage), key.Matches(msg, keys.PrevPage):
		d := 1
		if key.Matches(msg, keys.PrevPage) {
			d = -1
		}
		next := shapestyle.Pages.Step(sel.Page, d)
		m.err = m.store.SetPage(next)
		m.pages.Select(shapestyle.Pages.Index(next))
		m.cursor = 0
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(controls)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Left), key.Matches(msg, keys.Right):
		d := 1
		if key.Matches(msg, keys.Left) {
			d = -1
		}
		if m.cursor < len(controls) {
			m.err = controls[m.cursor].step(m.store, sel, d)
		}
	}
	return m, nil
}

// previewSize returns the preview area in pixels: one pixel per column
// and two per row.
func (m model) previewSize() (int, int) {
	w := m.width - 30
	h := (m.height - 12) * 2
	if w < 8 || h < 8 {
		return 48, 32
	}
	return w, h
}

func (m model) render(sel state.Selection) (string, error) {
	w, h := m.previewSize()
	target := preview.NewPixmapTarget(w, h)
	var err error
	switch sel.Page {
	case shapestyle.PageColors:
		err = m.renderer.RenderColors(target, sel.Weight)
	case shapestyle.PageBlends:
		err = m.renderer.RenderBlends(target, sel.Left, sel.Right, sel.Separation)
	default:
		err = m.renderer.RenderShader(target, sel.Shader, m.resolver.Clock().Elapsed())
	}
	if err != nil {
		return "", err
	}
	return halfBlocks(target.Image(), shapestyle.Hex(previewBackdrop)), nil
}

func (m model) View() string {
	if m.showHelp {
		return docStyle.Render(m.help)
	}
	sel := m.store.Snapshot()

	var controls strings.Builder
	controls.WriteString(titleStyle.Render(sel.Page.String()))
	controls.WriteByte('\n')
	for i, p := range pickers[sel.Page] {
		line := fmt.Sprintf("%-12s ‹ %s ›", p.label, p.value(sel))
		if i == m.cursor {
			controls.WriteString(activePickerStyle.Render("> " + line))
		} else {
			controls.WriteString(pickerStyle.Render(line))
		}
		controls.WriteByte('\n')
	}

	content := lipgloss.JoinVertical(lipgloss.Left, controls.String(), m.frame)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebarStyle.Render(m.pages.View()), content)

	status := "tab: page · ↑↓: picker · ←→: value · ?: help · q: quit"
	if m.err != nil {
		status = errorStyle.Render(m.err.Error())
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, statusStyle.Render(status)))
}
