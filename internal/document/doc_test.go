package document

import "testing"

// checkInvariants verifies P1-P5 of the node invariants after every parse,
// insert, or remove. P6 (stringify contains inserted fragment content) and
// the round-trip properties are checked by the tests that exercise them.
func checkInvariants(t *testing.T, d *Document) {
	t.Helper()

	if len(d.order) != len(d.nodes) {
		t.Fatalf("P1: order has %d entries, nodes has %d", len(d.order), len(d.nodes))
	}
	for i, id := range d.order {
		n, ok := d.nodes[id]
		if !ok {
			t.Fatalf("P1: order[%d]=%d not present in nodes", i, id)
		}
		if n.Instance != i+1 {
			t.Fatalf("P1: order[%d]=%d has instance %d, want %d", i, id, n.Instance, i+1)
		}
	}

	for _, n := range d.nodes {
		if n.Root {
			continue
		}
		p, ok := d.nodes[n.Parent]
		if !ok {
			t.Fatalf("P2: node %d has unknown parent %d", n.ID, n.Parent)
		}
		count := 0
		for _, c := range p.Children {
			if c == n.ID {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("P2: parent %d lists child %d %d times, want 1", p.ID, n.ID, count)
		}
	}

	for _, n := range d.nodes {
		for _, cid := range allDescendants(d, n.ID) {
			c := d.nodes[cid]
			if !(n.Value.Start <= c.Value.Start && c.Value.Start < c.Value.End && c.Value.End <= n.Value.End) {
				t.Fatalf("P3: node %d value %v does not nest descendant %d value %v", n.ID, n.Value, c.ID, c.Value)
			}
		}
	}

	for _, n := range d.nodes {
		if n.Root || n.Kind == KindNull {
			continue
		}
		if n.Key.Empty() {
			continue
		}
		key := string(d.buffer[n.Key.Start:n.Key.End])
		got, ok := d.cache[key]
		if !ok {
			t.Fatalf("P4: key %q for node %d missing from cache", key, n.ID)
		}
		count := 0
		for i, id := range got {
			if id == n.ID {
				count++
			}
			if i > 0 && d.nodes[got[i-1]].Instance > d.nodes[id].Instance {
				t.Fatalf("P4: cache[%q] not sorted by instance ascending: %v", key, got)
			}
		}
		if count != 1 {
			t.Fatalf("P4: cache[%q] contains node %d %d times, want 1", key, n.ID, count)
		}
		if buf := string(d.buffer[n.Key.Start:n.Key.End]); buf != key {
			t.Fatalf("P4: buffer key mismatch")
		}
	}

	for _, n := range d.nodes {
		if n.Opened {
			t.Fatalf("P5: node %d is still marked opened", n.ID)
		}
	}
}

func allDescendants(d *Document, id ID) []ID {
	n := d.nodes[id]
	out := make([]ID, 0, len(n.Children))
	var walk func(ID)
	walk = func(cur ID) {
		for _, c := range d.nodes[cur].Children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(id)
	return out
}

func mustParse(t *testing.T, text string) *Document {
	t.Helper()
	d, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	return d
}
