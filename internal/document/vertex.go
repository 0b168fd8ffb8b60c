package document

import "strings"

// GetRoot returns the id of the document's root node, or noParent's zero
// value behavior: callers should check Len() == 0 first for an empty
// document (spec.md B1).
func (d *Document) GetRoot() ID {
	return d.rootID
}

// GetRootNode returns the root Vertex and whether the document is non-empty.
func (d *Document) GetRootNode() (Vertex, bool) {
	return d.GetVertex(d.rootID)
}

// GetNodeKey materializes id's key range as a string.
func (d *Document) GetNodeKey(id ID) string {
	n, ok := d.nodes[id]
	if !ok {
		return ""
	}
	return string(d.buffer[n.Key.Start:n.Key.End])
}

// GetNodeValue materializes id's value range as a string.
func (d *Document) GetNodeValue(id ID) string {
	n, ok := d.nodes[id]
	if !ok {
		return ""
	}
	return string(d.buffer[n.Value.Start:n.Value.End])
}

// GetAllChildren returns the transitive descendants of id in depth-first
// order, not including id itself.
func (d *Document) GetAllChildren(id ID) []ID {
	n, ok := d.nodes[id]
	if !ok {
		return nil
	}
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

// IsDescendant reports whether childID is parentID or a transitive
// descendant of it. A node whose parent pointer is the absent sentinel is
// treated as having no ancestors and short-circuits to false (spec.md §7).
func (d *Document) IsDescendant(parentID, childID ID) bool {
	cur := childID
	for cur != noParent {
		if cur == parentID {
			return true
		}
		n, ok := d.nodes[cur]
		if !ok {
			return false
		}
		cur = n.Parent
	}
	return false
}

// GetVertex returns an immutable snapshot of id with its key and value
// already materialized as strings, and whether id exists.
func (d *Document) GetVertex(id ID) (Vertex, bool) {
	n, ok := d.nodes[id]
	if !ok {
		return Vertex{}, false
	}
	children := make([]ID, len(n.Children))
	copy(children, n.Children)
	return Vertex{
		ID:       n.ID,
		Parent:   n.Parent,
		Children: children,
		Kind:     n.Kind,
		Instance: n.Instance,
		Root:     n.Root,
		Key:      string(d.buffer[n.Key.Start:n.Key.End]),
		Value:    string(d.buffer[n.Value.Start:n.Value.End]),
	}, true
}

// Stringify returns the current buffer as a string (spec.md §6).
func (d *Document) Stringify() string {
	return string(d.buffer)
}

// All returns every node id in the document's canonical order (parse/insert
// order, dense by instance) — a sequential traversal per spec.md §6.
func (d *Document) All() []ID {
	out := make([]ID, len(d.order))
	copy(out, d.order)
	return out
}

// trimmedValue returns id's materialized value with surrounding whitespace
// trimmed, used by equality filters in the search pipeline (spec.md §4.3.2).
func (d *Document) trimmedValue(id ID) string {
	return strings.TrimSpace(d.GetNodeValue(id))
}
