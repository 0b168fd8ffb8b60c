package document

import "strings"

// Search evaluates the enhanced search expression q starting from the
// document root (spec.md §4.3.2).
func (d *Document) Search(q string) ([]ID, error) {
	if d.empty() {
		return nil, nil
	}
	return d.SearchIn(d.rootID, q)
}

// SearchIn evaluates q starting from the singleton set {anchorID}. q is a
// sequence of parts separated by a single space; each part advances the
// current result set by one pipeline step:
//
//   - a direct-child chain "a>b>c": the first hop is a recursive lookup
//     (basic-query style) unless the part begins with '>', in which case
//     that first hop is direct-children-only; every hop after the first is
//     always direct-children-only.
//   - an alternation "a|b|c": the union of a recursive lookup for each
//     alternative from the current set.
//   - a plain key "a": a recursive lookup from every node in the current
//     set.
//
// Any part may carry an equality suffix "key='literal'" (or
// "key='lit1|lit2'" for an alternation of literals) that filters the
// part's matches down to those whose materialized, trimmed value equals one
// of the literals.
func (d *Document) SearchIn(anchorID ID, q string) ([]ID, error) {
	if _, ok := d.nodes[anchorID]; !ok {
		return nil, newUnknownIDErr("search_in", anchorID)
	}

	cleaned := tokenizeSearch(q)
	var parts []string
	if cleaned != "" {
		parts = strings.Split(cleaned, " ")
	}

	current := []ID{anchorID}
	for _, part := range parts {
		base, literals, hasEq := splitEquality(part)
		current = d.evalSearchPart(current, base)
		if hasEq {
			current = d.filterEquality(current, literals)
		}
	}
	return dedupeIDs(current), nil
}

// evalSearchPart dispatches base (with any leading '>' and equality suffix
// already stripped) to the path-chain, alternation, or plain-key form.
func (d *Document) evalSearchPart(current []ID, base string) []ID {
	leadingNonRecursive := strings.HasPrefix(base, ">")
	if leadingNonRecursive {
		base = base[1:]
	}

	switch {
	case strings.Contains(base, ">"):
		return d.evalHopChain(current, strings.Split(base, ">"), leadingNonRecursive)
	case strings.Contains(base, "|"):
		return d.evalAlternation(current, strings.Split(base, "|"), leadingNonRecursive)
	default:
		return d.hop(current, base, !leadingNonRecursive)
	}
}

func (d *Document) evalHopChain(current []ID, hops []string, leadingNonRecursive bool) []ID {
	result := current
	for i, h := range hops {
		recursive := i == 0 && !leadingNonRecursive
		result = d.hop(result, h, recursive)
	}
	return result
}

func (d *Document) evalAlternation(current []ID, alts []string, leadingNonRecursive bool) []ID {
	recursive := !leadingNonRecursive
	seen := make(map[ID]bool)
	out := make([]ID, 0, len(alts))
	for _, a := range alts {
		for _, id := range d.hop(current, a, recursive) {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}

// hop looks up key from every node in current, either recursively
// (descendant-or-self, cache-based, as in basic query) or restricted to
// direct children, and returns the union with duplicates removed.
func (d *Document) hop(current []ID, key string, recursive bool) []ID {
	seen := make(map[ID]bool)
	out := make([]ID, 0)
	for _, anchor := range current {
		for _, x := range d.cache[key] {
			var match bool
			if recursive {
				match = d.IsDescendant(anchor, x)
			} else if nd, ok := d.nodes[x]; ok {
				match = nd.Parent == anchor
			}
			if match && !seen[x] {
				seen[x] = true
				out = append(out, x)
			}
		}
	}
	return out
}

func (d *Document) filterEquality(ids []ID, literals []string) []ID {
	out := make([]ID, 0, len(ids))
	for _, id := range ids {
		v := d.trimmedValue(id)
		for _, lit := range literals {
			if v == strings.TrimSpace(lit) {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

// splitEquality splits a search part "key='lit1|lit2'" into its base and
// the list of alternative literals; a part with no '=' returns hasEq=false.
func splitEquality(part string) (base string, literals []string, hasEq bool) {
	idx := strings.IndexByte(part, '=')
	if idx < 0 {
		return part, nil, false
	}
	base = part[:idx]
	rest := strings.Trim(part[idx+1:], "'")
	return base, strings.Split(rest, "|"), true
}

// tokenizeSearch cleans whitespace outside single-quoted literals, collapses
// whitespace runs to one space, and drops whitespace adjacent to the
// operators '>', '|', '=' (spec.md §4.3.2).
func tokenizeSearch(q string) string {
	var collapsed []rune
	inQuote := false
	lastWasSpace := false
	for _, c := range q {
		if c == '\'' {
			inQuote = !inQuote
		}
		if !inQuote && isSearchSpace(c) {
			if !lastWasSpace {
				collapsed = append(collapsed, ' ')
				lastWasSpace = true
			}
			continue
		}
		collapsed = append(collapsed, c)
		lastWasSpace = false
	}

	s := strings.TrimSpace(string(collapsed))
	for _, op := range []byte{'>', '|', '='} {
		s = strings.ReplaceAll(s, " "+string(op), string(op))
		s = strings.ReplaceAll(s, string(op)+" ", string(op))
	}
	return s
}

func isSearchSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

func dedupeIDs(ids []ID) []ID {
	seen := make(map[ID]bool, len(ids))
	out := make([]ID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
