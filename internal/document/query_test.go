package document

import "testing"

func TestQuery_PathWithGap(t *testing.T) {
	d := mustParse(t, `{"a":{"m":{"b":1}},"other":{"b":2}}`)

	ids, err := d.Query("a b")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("query(a b) = %v, want 1 result", ids)
	}
	if v := d.GetNodeValue(ids[0]); v != "1" {
		t.Fatalf("value = %q, want 1", v)
	}
}

func TestQuery_Dedup(t *testing.T) {
	d := mustParse(t, `{"a":1}`)
	ids, err := d.Query("a")
	if err != nil || len(ids) != 1 {
		t.Fatalf("query(a) = %v, %v", ids, err)
	}
}

func TestQueryOn_NonRecursiveRequiresDirectParent(t *testing.T) {
	d := mustParse(t, `{"a":{"b":{"c":1}}}`)
	aIDs, _ := d.Query("a")

	direct, err := d.QueryOn(aIDs[0], "b", false)
	if err != nil || len(direct) != 1 {
		t.Fatalf("direct query = %v, %v", direct, err)
	}

	indirect, err := d.QueryOn(aIDs[0], "c", false)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(indirect) != 0 {
		t.Fatalf("non-recursive query(c) under a = %v, want none (c is a grandchild)", indirect)
	}

	recursiveResult, err := d.QueryOn(aIDs[0], "c", true)
	if err != nil || len(recursiveResult) != 1 {
		t.Fatalf("recursive query(c) under a = %v, %v", recursiveResult, err)
	}
}

func TestQueryOn_UnknownAnchor(t *testing.T) {
	d := mustParse(t, `{"a":1}`)
	_, err := d.QueryOn(ID(9999), "a", true)
	var derr *Error
	if !asDocError(err, &derr) || derr.Kind != UnknownIdentifier {
		t.Fatalf("expected UnknownIdentifier, got %v", err)
	}
}

func TestQuery_ArrayElementsNotCached(t *testing.T) {
	d := mustParse(t, `{"a":[1,2,3]}`)
	ids, err := d.Query("a")
	if err != nil || len(ids) != 1 {
		t.Fatalf("query(a) = %v, %v", ids, err)
	}
	// array elements have no key, so nothing else can ever match them by key
	if empty, err := d.Query(""); err != nil || len(empty) != 0 {
		t.Fatalf("query(\"\") = %v, %v", empty, err)
	}
}
