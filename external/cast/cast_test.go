package cast_test

import (
	"testing"

	"github.com/hson-lang/hson/external/cast"
	"github.com/hson-lang/hson/internal/document"
)

// vertexOf parses text and returns the cast.Vertex for the node whose key is
// key, exercising the accessors against real document.Vertex output rather
// than hand-built fixtures.
func vertexOf(t *testing.T, text, key string) cast.Vertex {
	t.Helper()
	d, err := document.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	ids, err := d.Query(key)
	if err != nil || len(ids) != 1 {
		t.Fatalf("Query(%q) = %v, %v, want exactly 1 result", key, ids, err)
	}
	v, ok := d.GetVertex(ids[0])
	if !ok {
		t.Fatalf("GetVertex(%d) missing", ids[0])
	}
	return cast.Vertex{Key: v.Key, Value: v.Value}
}

func TestKeyAsString_AlwaysSucceeds(t *testing.T) {
	v := vertexOf(t, `{"a":1}`, "a")
	if s, ok := cast.KeyAsString(v); !ok || s != "a" {
		t.Fatalf("KeyAsString = %q, %v, want \"a\", true", s, ok)
	}
}

func TestValueAsInt64(t *testing.T) {
	v := vertexOf(t, `{"a":42}`, "a")
	if i, ok := cast.ValueAsInt64(v); !ok || i != 42 {
		t.Fatalf("ValueAsInt64 = %d, %v, want 42, true", i, ok)
	}
	if _, ok := cast.ValueAsBool(v); ok {
		t.Fatalf("ValueAsBool should fail for a numeric value")
	}
}

func TestValueAsFloat64(t *testing.T) {
	v := vertexOf(t, `{"a":1.5}`, "a")
	if f, ok := cast.ValueAsFloat64(v); !ok || f != 1.5 {
		t.Fatalf("ValueAsFloat64 = %v, %v, want 1.5, true", f, ok)
	}
	if _, ok := cast.ValueAsInt64(v); ok {
		t.Fatalf("ValueAsInt64 should fail for a fractional value")
	}
}

func TestValueAsBool(t *testing.T) {
	v := vertexOf(t, `{"a":true}`, "a")
	if b, ok := cast.ValueAsBool(v); !ok || !b {
		t.Fatalf("ValueAsBool = %v, %v, want true, true", b, ok)
	}
}

func TestValueAsString_StringNodeExcludesQuotes(t *testing.T) {
	// A String node's materialized value range excludes its surrounding
	// quotes (parser.go's quote(): Value = Range{i+1, j}); ValueAsString
	// passes that through unchanged.
	v := vertexOf(t, `{"a":"hi"}`, "a")
	if s, ok := cast.ValueAsString(v); !ok || s != "hi" {
		t.Fatalf("ValueAsString = %q, %v, want %q, true", s, ok, "hi")
	}
	if _, ok := cast.ValueAsInt64(v); ok {
		t.Fatalf("ValueAsInt64 should fail for a non-numeric string")
	}
}

func TestValueAsArray(t *testing.T) {
	v := vertexOf(t, `{"a":[1,2,3]}`, "a")
	arr, ok := cast.ValueAsArray(v)
	if !ok {
		t.Fatalf("ValueAsArray failed")
	}
	want := []string{"1", "2", "3"}
	if len(arr) != len(want) {
		t.Fatalf("ValueAsArray = %v, want %v", arr, want)
	}
	for i := range want {
		if arr[i] != want[i] {
			t.Fatalf("ValueAsArray = %v, want %v", arr, want)
		}
	}
}

func TestValueAsArray_RespectsQuotedCommas(t *testing.T) {
	v := vertexOf(t, `{"a":["x,y","z"]}`, "a")
	arr, ok := cast.ValueAsArray(v)
	if !ok {
		t.Fatalf("ValueAsArray failed")
	}
	want := []string{`"x,y"`, `"z"`}
	if len(arr) != len(want) || arr[0] != want[0] || arr[1] != want[1] {
		t.Fatalf("ValueAsArray = %v, want %v", arr, want)
	}
}

func TestKeyAsFloat64_FailsForNonNumericKey(t *testing.T) {
	v := vertexOf(t, `{"a":1}`, "a")
	if _, ok := cast.KeyAsFloat64(v); ok {
		t.Fatalf("KeyAsFloat64 should fail for key %q", v.Key)
	}
}

func TestAsUint64(t *testing.T) {
	if u, ok := cast.AsUint64("7"); !ok || u != 7 {
		t.Fatalf("AsUint64(7) = %d, %v, want 7, true", u, ok)
	}
	if _, ok := cast.AsUint64("-7"); ok {
		t.Fatalf("AsUint64(-7) should fail")
	}
}
