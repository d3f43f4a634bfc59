package event

import (
	"sort"
	"sync"

	"github.com/dshills/graphsel/internal/event/topic"
)

// Registry indexes subscriptions by pattern and by id.
type Registry struct {
	mu      sync.RWMutex
	subs    map[topic.Topic][]*subscription
	byID    map[string]*subscription
	matcher *topic.Matcher
	seq     uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		subs:    make(map[topic.Topic][]*subscription),
		byID:    make(map[string]*subscription),
		matcher: topic.NewMatcher(),
	}
}

// Add registers sub.
func (r *Registry) Add(sub *subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	sub.seq = r.seq

	pattern := sub.Topic()
	r.subs[pattern] = append(r.subs[pattern], sub)
	r.byID[sub.ID()] = sub
	r.matcher.Add(pattern)
}

// Remove unregisters the subscription with the given id.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.byID[id]
	if !ok {
		return false
	}
	delete(r.byID, id)

	pattern := sub.Topic()
	subs := r.subs[pattern]
	for i, s := range subs {
		if s.ID() == id {
			subs = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(subs) == 0 {
		delete(r.subs, pattern)
		r.matcher.Remove(pattern)
	} else {
		r.subs[pattern] = subs
	}
	return true
}

// MatchActive returns the active subscriptions for eventTopic ordered by
// priority. Equal priorities keep registration order.
func (r *Registry) MatchActive(eventTopic topic.Topic) []*subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*subscription
	for _, pattern := range r.matcher.Match(eventTopic) {
		for _, sub := range r.subs[pattern] {
			if sub.IsActive() {
				out = append(out, sub)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].config.Priority != out[j].config.Priority {
			return out[i].config.Priority < out[j].config.Priority
		}
		return out[i].seq < out[j].seq
	})
	return out
}

// CountActive returns the number of active subscriptions.
func (r *Registry) CountActive() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, sub := range r.byID {
		if sub.IsActive() {
			n++
		}
	}
	return n
}
