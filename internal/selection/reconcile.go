package selection

import (
	"log/slog"

	"github.com/dshills/graphsel/internal/graph"
)

// Pruned counts the ids a reconciliation dropped.
type Pruned struct {
	Selected int
	Hovered  int
}

// Reconciler removes ids whose entities are gone from the dataset.
type Reconciler struct {
	data      graph.Dataset
	selection *Store
	hover     *HoverStore
	logger    *slog.Logger
}

// NewReconciler creates a reconciler for the given stores.
func NewReconciler(data graph.Dataset, selection *Store, hover *HoverStore, logger *slog.Logger) *Reconciler {
	return &Reconciler{data: data, selection: selection, hover: hover, logger: logger}
}

// Reconcile drops every stored id that no longer resolves. Entity flags are
// not touched since the entities may no longer exist.
func (r *Reconciler) Reconcile() Pruned {
	nodeLive := func(id string) bool {
		_, ok := r.data.Node(id)
		return ok
	}
	edgeLive := func(id string) bool {
		_, ok := r.data.Edge(id)
		return ok
	}

	var p Pruned
	for _, removed := range [][]string{
		r.selection.nodes.retain(nodeLive),
		r.selection.edges.retain(edgeLive),
	} {
		p.Selected += len(removed)
		r.log("selection", removed)
	}
	for _, removed := range [][]string{
		r.hover.nodes.retain(nodeLive),
		r.hover.edges.retain(edgeLive),
	} {
		p.Hovered += len(removed)
		r.log("hover", removed)
	}
	return p
}

func (r *Reconciler) log(store string, removed []string) {
	if len(removed) > 0 {
		r.logger.Debug("pruned stale ids", "store", store, "ids", removed)
	}
}
