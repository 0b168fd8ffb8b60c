package document

import (
	"fmt"
	"strconv"
)

// Parse parses text into a new Document (spec.md §4.1). Empty input is
// accepted and produces an empty document (spec.md B1).
func Parse(text string) (*Document, error) {
	return ParseWithSubscriber(text, nil)
}

// ParseWithSubscriber is Parse, registering sub as the document's subscriber
// before the parse's own EventParse fires — the only way a caller can ever
// observe EventParse, since Document.Subscribe cannot run until a Document
// already exists (spec.md §6 "subscribe(callback)").
func ParseWithSubscriber(text string, sub Subscriber) (*Document, error) {
	buf := clean(text)
	if len(buf) == 0 {
		doc := &Document{
			buffer:     []rune{},
			nodes:      map[ID]*Node{},
			cache:      map[string][]ID{},
			rootID:     noParent,
			subscriber: sub,
		}
		return doc, nil
	}

	var idCounter ID
	instanceCounter := 0
	res, err := scan(buf, false, &idCounter, &instanceCounter)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		buffer:     buf,
		nodes:      res.nodes,
		order:      res.order,
		cache:      res.cache,
		rootID:     res.rootID,
		nextID:     idCounter,
		subscriber: sub,
	}
	doc.emit(EventParse, doc.rootID)
	return doc, nil
}

// clean copies s one character at a time, dropping ASCII space/tab/CR/LF
// outside of string literals. A string literal starts at an unescaped '"'
// and ends at the next unescaped '"'; an escape is a preceding '\' that is
// not itself escaped (spec.md §4.1 "Preprocessing").
func clean(s string) []rune {
	out := make([]rune, 0, len(s))
	inString := false
	var previous rune
	for _, c := range s {
		if c == '"' {
			if !inString {
				inString = true
			} else if previous != '\\' {
				inString = false
			}
		}
		if inString || (c != ' ' && c != '\t' && c != '\r' && c != '\n') {
			out = append(out, c)
		}
		previous = c
	}
	return out
}

// parseResult is the internal output of a single scan pass, shared by the
// top-level Parse and by the edit engine's fragment sub-parser.
type parseResult struct {
	nodes  map[ID]*Node
	order  []ID
	cache  map[string][]ID
	rootID ID
}

// scan runs the single-pass character scanner over buf. allowArrayRoot
// relaxes the leading-character contract to accept '[' as well as '{' — used
// only when parsing an insert fragment (spec.md §4.2.1), whose root may be
// an Object or Array; the top-level Document.Parse entry point keeps the
// strict "must start with {" contract of spec.md §4.1.
func scan(buf []rune, allowArrayRoot bool, idCounter *ID, instanceCounter *int) (*parseResult, error) {
	s := &scanner{
		buf:    buf,
		idc:    idCounter,
		instc:  instanceCounter,
		nodes:  map[ID]*Node{},
		cache:  map[string][]ID{},
		rootID: noParent,
	}
	if err := s.run(allowArrayRoot); err != nil {
		return nil, err
	}
	return &parseResult{nodes: s.nodes, order: s.order, cache: s.cache, rootID: s.rootID}, nil
}

// scanner holds the mutable state of one single-pass scan.
type scanner struct {
	buf   []rune
	i     int
	idc   *ID
	instc *int

	nodes  map[ID]*Node
	order  []ID
	cache  map[string][]ID
	rootID ID
	stack  []ID // open Object/Array node ids, outermost first
}

func (s *scanner) run(allowArrayRoot bool) error {
	n := len(s.buf)
	first := s.buf[0]
	if first != '{' && !(allowArrayRoot && first == '[') {
		return newMalformedErr("parse", "invalid character at 0", 0)
	}

	for s.i < n {
		c := s.buf[s.i]
		var err error
		switch c {
		case '{':
			err = s.open(KindObject)
		case '[':
			err = s.open(KindArray)
		case '}':
			err = s.close(KindObject)
		case ']':
			err = s.close(KindArray)
		case ':', ',':
			s.i++
		case '"':
			err = s.quote()
		default:
			err = s.primitive()
		}
		if err != nil {
			return err
		}
	}

	if len(s.stack) > 0 {
		offender := s.nodes[s.stack[0]]
		return s.unbalancedErr(offender)
	}
	return nil
}

// open creates an Object or Array node at the current position and pushes
// it onto the open-container stack.
func (s *scanner) open(kind Kind) error {
	i := s.i
	isRoot := i == 0

	var parentID ID = noParent
	var key Range
	if !isRoot {
		p, err := s.parentID()
		if err != nil {
			return err
		}
		parentID = p
		key, err = s.keyRangeFor(parentID, i)
		if err != nil {
			return err
		}
	}

	id := s.alloc()
	node := &Node{
		ID:     id,
		Kind:   kind,
		Root:   isRoot,
		Parent: parentID,
		Key:    key,
		Value:  Range{i + 1, len(s.buf)},
		Opened: true,
	}
	s.insert(node, parentID)
	if isRoot {
		s.rootID = id
	}
	s.stack = append(s.stack, id)
	s.i++
	return nil
}

// close closes the most recently opened node of kind, rewriting its value
// upper bound to the position of the closing bracket.
func (s *scanner) close(kind Kind) error {
	if len(s.stack) == 0 {
		return newMalformedErr("parse", "unbalanced structure: unexpected closing bracket", s.i)
	}
	top := s.stack[len(s.stack)-1]
	node := s.nodes[top]
	if node.Kind != kind {
		return newMalformedErr("parse", "unbalanced structure: mismatched closing bracket", s.i)
	}
	node.Value.End = s.i
	node.Opened = false
	s.stack = s.stack[:len(s.stack)-1]
	s.i++
	return nil
}

// quote handles an opening double quote: either it starts a key (no node is
// created, the scan jumps to the following colon) or it starts a String
// value (spec.md §4.1 "key versus value disambiguation").
func (s *scanner) quote() error {
	i := s.i
	j := i + 1
	for j < len(s.buf) {
		if s.buf[j] == '"' && s.buf[j-1] != '\\' {
			break
		}
		j++
	}
	if j >= len(s.buf) {
		return newMalformedErr("parse", "unterminated string", i)
	}

	if j+1 < len(s.buf) && s.buf[j+1] == ':' {
		// This quote opened a key; no node is created for it. Jump to the
		// colon so the main loop's ':' case consumes it normally.
		s.i = j + 1
		return nil
	}

	parentID, err := s.parentID()
	if err != nil {
		return err
	}
	key, err := s.keyRangeFor(parentID, i)
	if err != nil {
		return err
	}
	id := s.alloc()
	node := &Node{ID: id, Kind: KindString, Parent: parentID, Key: key, Value: Range{i + 1, j}, Opened: false}
	s.insert(node, parentID)
	s.i = j + 1
	return nil
}

// primitive scans forward to the next control character, classifies the
// literal, and inserts an Integer/Float/Boolean node for it.
func (s *scanner) primitive() error {
	i := s.i
	j := i
	for j < len(s.buf) && !isControlChar(s.buf[j]) {
		j++
	}
	if j == i {
		return newMalformedErr("parse", "invalid character", i)
	}

	literal := string(s.buf[i:j])
	kind, err := classifyLiteral(literal)
	if err != nil {
		return newMalformedErr("parse", err.Error(), i)
	}

	parentID, err := s.parentID()
	if err != nil {
		return err
	}
	key, err := s.keyRangeFor(parentID, i)
	if err != nil {
		return err
	}
	id := s.alloc()
	node := &Node{ID: id, Kind: kind, Parent: parentID, Key: key, Value: Range{i, j}, Opened: false}
	s.insert(node, parentID)
	s.i = j
	return nil
}

// parentID returns the innermost still-open container, i.e. the most
// recently inserted still-opened node (primitives and strings never stay
// open, so the stack holds only Object/Array ids).
func (s *scanner) parentID() (ID, error) {
	if len(s.stack) == 0 {
		return noParent, newMalformedErr("parse", "value outside of any container", s.i)
	}
	return s.stack[len(s.stack)-1], nil
}

// keyRangeFor locates the key range for a node about to be inserted under
// parentID at valueStart. Array children always have an empty key range;
// Object children have their key located by scanning backwards from the
// colon that must immediately precede valueStart (spec.md §4.1).
func (s *scanner) keyRangeFor(parentID ID, valueStart int) (Range, error) {
	parent := s.nodes[parentID]
	if parent.Kind == KindArray {
		return Range{}, nil
	}

	colon := valueStart - 1
	if colon < 0 || s.buf[colon] != ':' {
		return Range{}, newMalformedErr("parse", "cannot locate key: expected ':' before value", valueStart)
	}
	if colon < 1 || s.buf[colon-1] != '"' {
		return Range{}, newMalformedErr("parse", "malformed key: expected closing quote before ':'", colon)
	}

	closeQuote := colon - 1
	j := closeQuote - 1
	for j >= 0 {
		if s.buf[j] == '"' && (j == 0 || s.buf[j-1] != '\\') {
			break
		}
		j--
	}
	if j < 0 {
		return Range{}, newMalformedErr("parse", "malformed key: opening quote not found", closeQuote)
	}
	return Range{j + 1, closeQuote}, nil
}

// insert assigns the next instance number, appends to order/nodes/cache, and
// links the node into its parent's Children.
func (s *scanner) insert(node *Node, parentID ID) {
	*s.instc++
	node.Instance = *s.instc

	s.nodes[node.ID] = node
	s.order = append(s.order, node.ID)

	if parentID != noParent {
		s.nodes[parentID].Children = append(s.nodes[parentID].Children, node.ID)
	}
	if !node.Key.Empty() {
		key := string(s.buf[node.Key.Start:node.Key.End])
		s.cache[key] = append(s.cache[key], node.ID)
	}
}

func (s *scanner) alloc() ID {
	*s.idc++
	return *s.idc
}

func (s *scanner) unbalancedErr(offender *Node) error {
	if offender.Key.Empty() {
		return newUnbalancedErr("parse", fmt.Sprintf("unbalanced structure: node instance %d never closed", offender.Instance), offender.ID)
	}
	key := string(s.buf[offender.Key.Start:offender.Key.End])
	return newUnbalancedErr("parse", fmt.Sprintf("unbalanced structure: key %q never closed", key), offender.ID)
}

func isControlChar(c rune) bool {
	switch c {
	case '{', '}', '[', ']', ':', '"', ',':
		return true
	default:
		return false
	}
}

// classifyLiteral classifies a primitive literal per spec.md §4.1: signed
// 64-bit integer, else 64-bit float, else true/false boolean, else error.
func classifyLiteral(lit string) (Kind, error) {
	if _, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return KindInteger, nil
	}
	if _, err := strconv.ParseFloat(lit, 64); err == nil {
		return KindFloat, nil
	}
	if lit == "true" || lit == "false" {
		return KindBoolean, nil
	}
	return KindNull, fmt.Errorf("unparseable literal %q", lit)
}
