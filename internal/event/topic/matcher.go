package topic

import "sync"

// Matcher indexes subscription patterns in a segment trie so that an event
// topic can be resolved to every pattern it satisfies. Safe for concurrent use.
type Matcher struct {
	mu   sync.RWMutex
	root *trieNode
}

type trieNode struct {
	children map[string]*trieNode
	patterns []Topic
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[string]*trieNode)}
}

// NewMatcher creates an empty matcher.
func NewMatcher() *Matcher {
	return &Matcher{root: newTrieNode()}
}

// Add registers a pattern. Adding the same pattern twice is a no-op.
func (m *Matcher) Add(pattern Topic) {
	if pattern == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	node := m.root
	for _, seg := range pattern.Segments() {
		next, ok := node.children[seg]
		if !ok {
			next = newTrieNode()
			node.children[seg] = next
		}
		node = next
	}
	for _, p := range node.patterns {
		if p == pattern {
			return
		}
	}
	node.patterns = append(node.patterns, pattern)
}

// Remove unregisters a pattern. Empty branches are left in place.
func (m *Matcher) Remove(pattern Topic) {
	m.mu.Lock()
	defer m.mu.Unlock()

	node := m.root
	for _, seg := range pattern.Segments() {
		if node = node.children[seg]; node == nil {
			return
		}
	}
	for i, p := range node.patterns {
		if p == pattern {
			node.patterns = append(node.patterns[:i], node.patterns[i+1:]...)
			return
		}
	}
}

// Match returns the registered patterns that eventTopic satisfies.
// A pattern reachable through several "**" expansions is reported once.
func (m *Matcher) Match(eventTopic Topic) []Topic {
	if eventTopic == "" {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[Topic]struct{})
	var out []Topic
	collect := func(patterns []Topic) {
		for _, p := range patterns {
			if _, dup := seen[p]; !dup {
				seen[p] = struct{}{}
				out = append(out, p)
			}
		}
	}
	walk(m.root, eventTopic.Segments(), collect)
	return out
}

func walk(node *trieNode, rest []string, collect func([]Topic)) {
	if multi := node.children[WildcardMulti]; multi != nil {
		for i := 0; i <= len(rest); i++ {
			walk(multi, rest[i:], collect)
		}
	}
	if len(rest) == 0 {
		collect(node.patterns)
		return
	}
	if child := node.children[rest[0]]; child != nil {
		walk(child, rest[1:], collect)
	}
	if single := node.children[WildcardSingle]; single != nil {
		walk(single, rest[1:], collect)
	}
}

// Clear removes every pattern.
func (m *Matcher) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.root = newTrieNode()
}
