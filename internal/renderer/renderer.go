package renderer

import (
	"sync"

	"github.com/dshills/graphsel/internal/geom"
	"github.com/dshills/graphsel/internal/graph"
	"github.com/dshills/graphsel/internal/renderer/backend"
)

// Scene provides the elements to draw. *graph.Body implements it.
type Scene interface {
	NodeIndices() []string
	EdgeIndices() []string
	BasicNode(id string) (*graph.BasicNode, bool)
	BasicEdge(id string) (*graph.BasicEdge, bool)
}

// Projector maps canvas coordinates to screen cells.
// *canvas.Viewport implements it.
type Projector interface {
	ToScreen(p geom.Point) geom.Point
}

// Glyphs used to draw elements.
const (
	GlyphNode         = '●'
	GlyphNodeSelected = '◉'
	GlyphBox          = '■'
	GlyphBoxSelected  = '▣'
	GlyphEdge         = '·'
	GlyphEdgeSelected = '•'
)

// Options configures the renderer.
type Options struct {
	Palette    Palette
	ShowLabels bool
	StatusLine bool
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() Options {
	return Options{
		Palette:    DefaultPalette(),
		ShowLabels: true,
		StatusLine: true,
	}
}

// Renderer draws a Scene through a Projector onto a Backend.
type Renderer struct {
	mu sync.Mutex

	opts    Options
	backend backend.Backend
	scene   Scene
	view    Projector

	frameCount  uint64
	needsRedraw bool
}

// New creates a new renderer.
func New(b backend.Backend, scene Scene, view Projector, opts Options) *Renderer {
	return &Renderer{
		opts:        opts,
		backend:     b,
		scene:       scene,
		view:        view,
		needsRedraw: true,
	}
}

// MarkDirty marks the renderer as needing a redraw.
func (r *Renderer) MarkDirty() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.needsRedraw = true
}

// NeedsRedraw returns true if the renderer needs to redraw.
func (r *Renderer) NeedsRedraw() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.needsRedraw
}

// FrameCount returns the number of frames drawn.
func (r *Renderer) FrameCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frameCount
}

// Render draws a frame if one is needed.
func (r *Renderer) Render(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.needsRedraw {
		return
	}
	r.render(status)
}

// RenderNow draws a frame unconditionally.
func (r *Renderer) RenderNow(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.render(status)
}

func (r *Renderer) render(status string) {
	width, height := r.backend.Size()
	if r.opts.StatusLine {
		height--
	}

	r.backend.Clear()
	r.renderEdges(width, height)
	r.renderNodes(width, height)
	if r.opts.StatusLine && height >= 0 {
		r.renderStatus(status, width, height)
	}
	r.backend.Show()

	r.needsRedraw = false
	r.frameCount++
}

func (r *Renderer) renderEdges(width, height int) {
	pal := r.opts.Palette
	for _, id := range r.scene.EdgeIndices() {
		e, ok := r.scene.BasicEdge(id)
		if !ok {
			continue
		}
		seg, ok := e.Segment()
		if !ok {
			continue
		}
		from, to := r.view.ToScreen(seg.From), r.view.ToScreen(seg.To)

		glyph := GlyphEdge
		if e.Selected() {
			glyph = GlyphEdgeSelected
		}
		style := pal.style(ParseColor(e.Color(), pal.Edge), e.Selected(), e.Hovered())
		for _, c := range line(round(from.X), round(from.Y), round(to.X), round(to.Y)) {
			r.set(c.x, c.y, width, height, backend.Cell{Rune: glyph, Style: style})
		}
	}
}

func (r *Renderer) renderNodes(width, height int) {
	pal := r.opts.Palette
	for _, id := range r.scene.NodeIndices() {
		n, ok := r.scene.BasicNode(id)
		if !ok {
			continue
		}
		p := r.view.ToScreen(n.Position())
		x, y := round(p.X), round(p.Y)

		style := pal.style(ParseColor(n.Color(), pal.Node), n.Selected(), n.Hovered())
		r.set(x, y, width, height, backend.Cell{Rune: nodeGlyph(n), Style: style})

		if r.opts.ShowLabels && n.Label() != "" {
			label := backend.Style{
				Foreground: backend.RGB(pal.Label),
				Background: backend.ColorDefault,
				Bold:       n.Selected(),
			}
			r.text(x+2, y, width, height, n.Label(), label)
		}
	}
}

func nodeGlyph(n *graph.BasicNode) rune {
	_, box := n.Shape().(geom.Rect)
	switch {
	case box && n.Selected():
		return GlyphBoxSelected
	case box:
		return GlyphBox
	case n.Selected():
		return GlyphNodeSelected
	default:
		return GlyphNode
	}
}

func (r *Renderer) renderStatus(status string, width, row int) {
	style := backend.DefaultStyle()
	style.Reverse = true
	runes := []rune(status)
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		r.backend.SetCell(x, row, backend.Cell{Rune: ch, Style: style})
	}
}

func (r *Renderer) text(x, y, width, height int, s string, style backend.Style) {
	for i, ch := range []rune(s) {
		r.set(x+i, y, width, height, backend.Cell{Rune: ch, Style: style})
	}
}

// set draws inside the graph area only, leaving the status row alone.
func (r *Renderer) set(x, y, width, height int, c backend.Cell) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}
	r.backend.SetCell(x, y, c)
}
