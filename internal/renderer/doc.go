// Package renderer draws a graph onto a character cell backend.
//
// Edges are rasterised as dotted lines between their endpoints, nodes as a
// single glyph with an optional label, and selection and hover state are
// shown by blending each element's color towards the palette's highlight
// colors. The bottom row is an optional status line.
//
//	┌─────────────────────────────────────────┐
//	│           Renderer (Facade)             │
//	├─────────────────────────────────────────┤
//	│  Scene (graph.Body) │ Projector (view)  │
//	│  Palette (go-colorful blending)         │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ NullBackend         │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, body, viewport, renderer.DefaultOptions())
//	r.Render("status")
package renderer
