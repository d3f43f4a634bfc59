// Package event is the in-process publish/subscribe bus that decouples the
// selection core from its consumers.
//
// The selection handler publishes redraw, selection, hover and pointer
// events; the graph body publishes dataset changes which the handler
// consumes to reconcile its state. Topics are hierarchical with dot
// notation and subscriptions may use wildcards:
//
//	graph.node.*       - graph.node.hovered, graph.node.blurred
//	graph.pointer.**   - every pointer event
//
// # Delivery
//
// Delivery is synchronous: PublishSync runs every matching handler in the
// publisher's goroutine, in priority order, before returning. Handlers must
// not call back into the component that published the event; the selection
// handler in particular is not re-entrant.
//
// # Usage
//
//	bus := event.NewBus()
//	_ = bus.Start()
//
//	_, _ = event.SubscribePayload(bus, events.TopicNodeHovered,
//	    func(ctx context.Context, p events.NodeHover) error {
//	        fmt.Println("hover", p.Node)
//	        return nil
//	    })
//
//	_ = bus.PublishSync(ctx, event.NewEvent(events.TopicNodeHovered,
//	    events.NodeHover{Node: "n1"}, "selection"))
//
// The Bus is safe for concurrent use; handlers manage their own state.
package event
