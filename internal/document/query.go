package document

import "strings"

// Query matches nodes against q starting from the document root, recursing
// into the whole tree (spec.md §4.3.1).
func (d *Document) Query(q string) ([]ID, error) {
	if d.empty() {
		return nil, nil
	}
	return d.QueryOn(d.rootID, q, true)
}

// QueryNodes is Query, returning materialized Vertex snapshots.
func (d *Document) QueryNodes(q string) ([]Vertex, error) {
	if d.empty() {
		return nil, nil
	}
	return d.QueryOnNodes(d.rootID, q, true)
}

// QueryOn matches nodes against q, a sequence of keys k1..kn separated by
// ASCII spaces. A node x matches if its key equals kn and, for every i < n,
// some ancestor of x has key k_i, with those ancestors encountered in order
// k1, k2, ..., k_{n-1} while walking from x towards the root (gaps allowed
// between them). Results are scoped to anchorID: when recursive, x must be
// a descendant of (or equal to) anchorID; otherwise x's parent must be
// anchorID exactly.
func (d *Document) QueryOn(anchorID ID, q string, recursive bool) ([]ID, error) {
	if _, ok := d.nodes[anchorID]; !ok {
		return nil, newUnknownIDErr("query_on", anchorID)
	}
	keys := strings.Fields(q)
	if len(keys) == 0 {
		return nil, nil
	}
	last := keys[len(keys)-1]
	prefix := keys[:len(keys)-1]

	seen := make(map[ID]bool, len(d.cache[last]))
	out := make([]ID, 0, len(d.cache[last]))
	for _, x := range d.cache[last] {
		if seen[x] {
			continue
		}
		if !d.matchesAnchor(x, anchorID, recursive) {
			continue
		}
		if !d.matchAncestorChain(x, prefix) {
			continue
		}
		seen[x] = true
		out = append(out, x)
	}
	return out, nil
}

// QueryOnNodes is QueryOn, returning materialized Vertex snapshots.
func (d *Document) QueryOnNodes(anchorID ID, q string, recursive bool) ([]Vertex, error) {
	ids, err := d.QueryOn(anchorID, q, recursive)
	if err != nil {
		return nil, err
	}
	out := make([]Vertex, 0, len(ids))
	for _, id := range ids {
		v, ok := d.GetVertex(id)
		if ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (d *Document) matchesAnchor(x, anchorID ID, recursive bool) bool {
	if recursive {
		return d.IsDescendant(anchorID, x)
	}
	n, ok := d.nodes[x]
	if !ok {
		return false
	}
	return n.Parent == anchorID
}

// matchAncestorChain walks from x's parent towards the root, consuming
// prefix from its tail backwards: the last element of prefix must be found
// first (the nearest such ancestor wins), then the one before it further up,
// and so on. Non-matching ancestors in between are skipped (gaps allowed).
func (d *Document) matchAncestorChain(x ID, prefix []string) bool {
	if len(prefix) == 0 {
		return true
	}
	want := len(prefix) - 1
	n, ok := d.nodes[x]
	if !ok {
		return false
	}
	cur := n.Parent
	for cur != noParent {
		nd, ok := d.nodes[cur]
		if !ok {
			return false
		}
		if !nd.Key.Empty() && string(d.buffer[nd.Key.Start:nd.Key.End]) == prefix[want] {
			want--
			if want < 0 {
				return true
			}
		}
		cur = nd.Parent
	}
	return false
}
