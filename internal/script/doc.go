// Package script drives a graph selection from Lua.
//
// A Runner exposes a "graph" module to scripts. Pointer functions
// synthesise mouse events on a virtual clock, so timing gestures such as
// double clicks and holds behave the same on every run:
//
//	graph.click(x, y)          -- select the element under the pointer
//	graph.click_add(x, y)      -- ctrl click, toggles the element
//	graph.double_click(x, y)
//	graph.hold(x, y)
//	graph.move(x, y)           -- hover
//	graph.drag(x1, y1, x2, y2) -- pan
//	graph.scroll(x, y, notches)
//
// Selection functions call the selection API directly:
//
//	graph.select_nodes({1, 2, 3}, true)
//	graph.select_edges({"e12"})
//	graph.unselect_all()
//	local sel = graph.selection()   -- {nodes = {...}, edges = {...}}
//	local hov = graph.hovered()
//	graph.count()
//	graph.set_options({select = true, selectConnectedEdges = false})
//	graph.remove_node("1")
//	graph.remove_edge("e12")
//	graph.move_node("1", 10, 20)
//	graph.log("message")
//
// Failing calls raise Lua errors. Pointer coordinates are screen
// coordinates.
//
// Only the base, table, string and math libraries are opened.
package script
