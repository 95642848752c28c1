package main

import (
	"image"
	"image/color"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/shapestyle"
	"github.com/gogpu/shapestyle/preview"
	"github.com/gogpu/shapestyle/state"
)

func newTestModel(t *testing.T) (model, *state.Store) {
	t.Helper()
	resolver := shapestyle.NewResolver()
	renderer, err := preview.NewRenderer(resolver)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	store := state.NewStore()
	return newModel(store, resolver, renderer), store
}

func press(m model, msg tea.KeyMsg) model {
	next, _ := m.Update(msg)
	return next.(model)
}

func TestModel_PageKeys(t *testing.T) {
	m, store := newTestModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if got := store.Snapshot().Page; got != shapestyle.PageBlends {
		t.Errorf("after tab page = %v, want blends", got)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := store.Snapshot().Page; got != shapestyle.PageShaders {
		t.Errorf("after two shift+tab page = %v, want shaders (wrapped)", got)
	}
	if m.pages.Index() != shapestyle.Pages.Index(shapestyle.PageShaders) {
		t.Errorf("sidebar index = %d, want shaders", m.pages.Index())
	}
}

func TestModel_Pickers(t *testing.T) {
	m, store := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyTab}) // blends

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := store.Snapshot().Left.Blend; got != shapestyle.BlendMultiply {
		t.Errorf("left blend = %v, want multiply", got)
	}

	for i := 0; i < 10; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(pickers[shapestyle.PageBlends])-1 {
		t.Fatalf("cursor = %d, want last picker", m.cursor)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := store.Snapshot().Separation; got != state.DefaultSeparation-separationStep {
		t.Errorf("separation = %v, want %v", got, state.DefaultSeparation-separationStep)
	}
	if m.err != nil {
		t.Errorf("err = %v", m.err)
	}
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(model)
	next, _ = m.Update(frameMsg{})
	m = next.(model)
	if m.err != nil {
		t.Fatalf("frame error = %v", m.err)
	}
	if m.frame == "" {
		t.Fatal("frame not rendered")
	}
	v := m.View()
	if !strings.Contains(v, "Weight") || !strings.Contains(v, "Primary") {
		t.Errorf("View() missing the weight picker:\n%s", v)
	}
}

func TestModel_HelpSurvivesResize(t *testing.T) {
	m, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(model)
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !strings.Contains(m.View(), "shapeinspect") {
		t.Fatalf("help view missing title:\n%s", m.View())
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = next.(model)
	if m.err != nil {
		t.Fatalf("resize error = %v", m.err)
	}
	if !strings.Contains(m.View(), "shapeinspect") {
		t.Errorf("help view empty after resize:\n%q", m.View())
	}
}

func TestHelpMarkdown_ListsValues(t *testing.T) {
	md := helpMarkdown()
	for _, want := range []string{"colorDodge", "Quinary", "Channeloffset", "Image"} {
		if !strings.Contains(md, want) {
			t.Errorf("help missing %q", want)
		}
	}
}

func TestHalfBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 4))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	out := halfBlocks(img, shapestyle.Black)
	rows := strings.Split(out, "\n")
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if n := strings.Count(rows[0], halfBlock); n != 3 {
		t.Errorf("cells in first row = %d, want 3", n)
	}
	if got := hexOf(shapestyle.SystemBlue); got != "#007aff" {
		t.Errorf("hexOf(SystemBlue) = %q, want #007aff", got)
	}
}
