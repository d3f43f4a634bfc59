package script

import (
	"context"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/graphsel/internal/geom"
	"github.com/dshills/graphsel/internal/input/mouse"
	"github.com/dshills/graphsel/internal/selection"
)

// pressTime is how long a synthesised click keeps the button down.
const pressTime = time.Millisecond

func (r *Runner) exports() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"click":        r.luaClick,
		"click_add":    r.luaClickAdd,
		"double_click": r.luaDoubleClick,
		"hold":         r.luaHold,
		"move":         r.luaMove,
		"drag":         r.luaDrag,
		"scroll":       r.luaScroll,

		"select_nodes": r.luaSelectNodes,
		"select_edges": r.luaSelectEdges,
		"unselect_all": r.luaUnselectAll,
		"selection":    r.luaSelection,
		"hovered":      r.luaHovered,
		"count":        r.luaCount,
		"set_options":  r.luaSetOptions,

		"remove_node": r.luaRemoveNode,
		"remove_edge": r.luaRemoveEdge,
		"move_node":   r.luaMoveNode,
		"log":         r.luaLog,
	}
}

func contextOf(L *lua.LState) context.Context {
	if ctx := L.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func checkPoint(L *lua.LState, n int) geom.Point {
	return geom.Point{X: float64(L.CheckNumber(n)), Y: float64(L.CheckNumber(n + 1))}
}

func (r *Runner) advance(d time.Duration) {
	r.now = r.now.Add(d)
}

// settle moves the clock past the double click window so the next click
// starts a new sequence.
func (r *Runner) settle() {
	r.advance(r.target.Pointer.Config().DoubleClickTime + time.Millisecond)
}

func (r *Runner) pointer(ctx context.Context, p geom.Point, b mouse.Button, mods mouse.Modifier, a mouse.Action) mouse.Gesture {
	return r.target.Pointer.Handle(ctx, mouse.Event{
		Position:  p,
		Button:    b,
		Modifiers: mods,
		Action:    a,
		Timestamp: r.now,
	})
}

func (r *Runner) tap(ctx context.Context, p geom.Point, mods mouse.Modifier) mouse.Gesture {
	r.pointer(ctx, p, mouse.ButtonLeft, mods, mouse.ActionPress)
	r.advance(pressTime)
	return r.pointer(ctx, p, mouse.ButtonLeft, mods, mouse.ActionRelease)
}

func (r *Runner) luaClick(L *lua.LState) int {
	g := r.tap(contextOf(L), checkPoint(L, 1), mouse.ModNone)
	r.settle()
	L.Push(lua.LString(g.String()))
	return 1
}

func (r *Runner) luaClickAdd(L *lua.LState) int {
	g := r.tap(contextOf(L), checkPoint(L, 1), mouse.ModCtrl)
	r.settle()
	L.Push(lua.LString(g.String()))
	return 1
}

func (r *Runner) luaDoubleClick(L *lua.LState) int {
	ctx := contextOf(L)
	p := checkPoint(L, 1)
	r.tap(ctx, p, mouse.ModNone)
	r.advance(pressTime)
	g := r.tap(ctx, p, mouse.ModNone)
	r.settle()
	L.Push(lua.LString(g.String()))
	return 1
}

func (r *Runner) luaHold(L *lua.LState) int {
	ctx := contextOf(L)
	p := checkPoint(L, 1)
	r.pointer(ctx, p, mouse.ButtonLeft, mouse.ModNone, mouse.ActionPress)
	r.advance(r.target.Pointer.Config().HoldTime)
	g := r.target.Pointer.Tick(ctx, r.now)
	r.advance(pressTime)
	r.pointer(ctx, p, mouse.ButtonLeft, mouse.ModNone, mouse.ActionRelease)
	r.settle()
	L.Push(lua.LString(g.String()))
	return 1
}

func (r *Runner) luaMove(L *lua.LState) int {
	g := r.pointer(contextOf(L), checkPoint(L, 1), mouse.ButtonNone, mouse.ModNone, mouse.ActionMove)
	L.Push(lua.LString(g.String()))
	return 1
}

func (r *Runner) luaDrag(L *lua.LState) int {
	ctx := contextOf(L)
	from, to := checkPoint(L, 1), checkPoint(L, 3)
	r.pointer(ctx, from, mouse.ButtonLeft, mouse.ModNone, mouse.ActionPress)
	r.advance(pressTime)
	g := r.pointer(ctx, to, mouse.ButtonLeft, mouse.ModNone, mouse.ActionDrag)
	r.advance(pressTime)
	r.pointer(ctx, to, mouse.ButtonLeft, mouse.ModNone, mouse.ActionRelease)
	r.settle()
	L.Push(lua.LString(g.String()))
	return 1
}

func (r *Runner) luaScroll(L *lua.LState) int {
	ctx := contextOf(L)
	p := checkPoint(L, 1)
	notches := L.OptInt(3, 1)
	button := mouse.ButtonScrollUp
	if notches < 0 {
		button, notches = mouse.ButtonScrollDown, -notches
	}
	g := mouse.GestureNone
	for i := 0; i < notches; i++ {
		g = r.pointer(ctx, p, button, mouse.ModNone, mouse.ActionPress)
	}
	L.Push(lua.LString(g.String()))
	return 1
}

func (r *Runner) luaSelectNodes(L *lua.LState) int {
	ids, err := selection.ToIDs(toGo(L.Get(1)))
	if err != nil {
		L.RaiseError("select_nodes: %s", err.Error())
		return 0
	}
	highlight := L.OptBool(2, false)
	if err := r.target.Selection.SelectNodes(contextOf(L), ids, highlight); err != nil {
		L.RaiseError("select_nodes: %s", err.Error())
	}
	return 0
}

func (r *Runner) luaSelectEdges(L *lua.LState) int {
	ids, err := selection.ToIDs(toGo(L.Get(1)))
	if err != nil {
		L.RaiseError("select_edges: %s", err.Error())
		return 0
	}
	if err := r.target.Selection.SelectEdges(contextOf(L), ids); err != nil {
		L.RaiseError("select_edges: %s", err.Error())
	}
	return 0
}

func (r *Runner) luaUnselectAll(L *lua.LState) int {
	r.target.Selection.UnselectAll(contextOf(L))
	return 0
}

func (r *Runner) luaSelection(L *lua.LState) int {
	sel := r.target.Selection.GetSelection()
	L.Push(idTable(L, sel.Nodes, sel.Edges))
	return 1
}

func (r *Runner) luaHovered(L *lua.LState) int {
	L.Push(idTable(L, r.target.Selection.HoveredNodes(), r.target.Selection.HoveredEdges()))
	return 1
}

func (r *Runner) luaCount(L *lua.LState) int {
	L.Push(lua.LNumber(r.target.Selection.SelectedObjectCount()))
	return 1
}

func (r *Runner) luaSetOptions(L *lua.LState) int {
	opts, ok := toGo(L.CheckTable(1)).(map[string]any)
	if !ok {
		L.ArgError(1, "options must be a table with string keys")
		return 0
	}
	r.target.Selection.SetOptions(opts)
	return 0
}

func (r *Runner) luaRemoveNode(L *lua.LState) int {
	if err := r.target.Graph.RemoveNode(contextOf(L), checkID(L, 1)); err != nil {
		L.RaiseError("remove_node: %s", err.Error())
	}
	return 0
}

func (r *Runner) luaRemoveEdge(L *lua.LState) int {
	if err := r.target.Graph.RemoveEdge(contextOf(L), checkID(L, 1)); err != nil {
		L.RaiseError("remove_edge: %s", err.Error())
	}
	return 0
}

func (r *Runner) luaMoveNode(L *lua.LState) int {
	id := checkID(L, 1)
	x, y := float64(L.CheckNumber(2)), float64(L.CheckNumber(3))
	if err := r.target.Graph.MoveNode(id, x, y); err != nil {
		L.RaiseError("move_node: %s", err.Error())
	}
	return 0
}

func (r *Runner) luaLog(L *lua.LState) int {
	r.logger.Info(L.CheckString(1), "source", "script")
	return 0
}

// checkID accepts string or integral number ids.
func checkID(L *lua.LState, n int) string {
	id, err := selection.ToIDs([]any{toGo(L.CheckAny(n))})
	if err != nil {
		L.ArgError(n, err.Error())
		return ""
	}
	return id[0]
}
