// Package selection maps pointer positions to graph elements and keeps the
// selected and hovered element sets consistent with the entities' flags.
//
// The package is made of small cooperating parts:
//
//   - Query resolves a screen pointer to the topmost node or edge.
//   - Store holds the selected node and edge ids in selection order.
//   - HoverStore holds the hovered ids.
//   - Cascade propagates node state onto the node's incident edges.
//   - Reconciler drops ids whose entities left the dataset.
//   - Handler is the facade used by input layers and scripts.
//
// Only ids are stored. Entities are resolved through the graph.Dataset on
// every use, so a removed entity simply stops resolving until the next
// reconciliation prunes its id.
//
// # Flag invariant
//
// An id is in the selection store if and only if the entity's selected flag
// is set, and likewise for hover. Every mutation goes through the stores to
// keep this true.
//
// # Concurrency
//
// A Handler is single-owner and not safe for concurrent use. Events are
// published synchronously; a subscriber must not call back into the
// Handler that published the event.
package selection
