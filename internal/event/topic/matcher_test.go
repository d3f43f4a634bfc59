package topic

import (
	"sort"
	"testing"
)

func sorted(ts []Topic) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	sort.Strings(out)
	return out
}

func TestMatcher_Match(t *testing.T) {
	m := NewMatcher()
	for _, p := range []Topic{"graph.node.hovered", "graph.node.*", "graph.**", "graph.pointer.click", "**"} {
		m.Add(p)
	}

	got := sorted(m.Match("graph.node.hovered"))
	want := []string{"**", "graph.**", "graph.node.*", "graph.node.hovered"}
	if len(got) != len(want) {
		t.Fatalf("Match() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Match()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMatcher_MultiWildcardReportedOnce(t *testing.T) {
	m := NewMatcher()
	m.Add("graph.**")

	if got := m.Match("graph.a.b.c"); len(got) != 1 {
		t.Errorf("Match() = %v, want exactly one pattern", got)
	}
	if got := m.Match("graph"); len(got) != 1 {
		t.Errorf("** should match zero segments, got %v", got)
	}
}

func TestMatcher_AddRemove(t *testing.T) {
	m := NewMatcher()
	m.Add("graph.data.changed")
	m.Add("graph.data.changed")

	if got := m.Match("graph.data.changed"); len(got) != 1 {
		t.Fatalf("duplicate Add should register once, got %v", got)
	}

	m.Remove("graph.data.changed")
	if got := m.Match("graph.data.changed"); len(got) != 0 {
		t.Errorf("Match() after Remove = %v", got)
	}

	m.Remove("never.added")
}

func TestMatcher_Clear(t *testing.T) {
	m := NewMatcher()
	m.Add("graph.*")
	m.Clear()
	if got := m.Match("graph.redraw"); len(got) != 0 {
		t.Errorf("Match() after Clear = %v", got)
	}
}
