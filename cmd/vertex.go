package cmd

import (
	"github.com/hson-lang/hson/external/cast"
	"github.com/hson-lang/hson/internal/document"
)

// vertexJSON is the JSON output schema shared by parse, query, and search.
type vertexJSON struct {
	ID       int64      `json:"id"`
	Parent   int64      `json:"parent"`
	Children []int64    `json:"children"`
	Kind     string     `json:"kind"`
	Key      string     `json:"key"`
	Value    string     `json:"value"`
	Cast     *castValue `json:"cast,omitempty"`
}

// castValue is the --cast flag's best-effort typed reading of a vertex's
// value, produced by external/cast (type tried in order: array for an Array
// node, else int64, float64, bool, finally string).
type castValue struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

func toVertexJSON(v document.Vertex) vertexJSON {
	children := make([]int64, len(v.Children))
	for i, c := range v.Children {
		children[i] = int64(c)
	}
	return vertexJSON{
		ID:       int64(v.ID),
		Parent:   int64(v.Parent),
		Children: children,
		Kind:     v.Kind.String(),
		Key:      v.Key,
		Value:    v.Value,
	}
}

func idsToVertices(d *document.Document, ids []document.ID) []vertexJSON {
	out := make([]vertexJSON, 0, len(ids))
	for _, id := range ids {
		if v, ok := d.GetVertex(id); ok {
			out = append(out, toVertexJSON(v))
		}
	}
	return out
}

// computeCast returns v's best-effort typed reading, or nil if no accessor
// succeeds (only possible if v.Value is empty, e.g. an Object/empty node).
func computeCast(v vertexJSON) *castValue {
	cv := cast.Vertex{Key: v.Key, Value: v.Value}

	if v.Kind == document.KindArray.String() {
		if arr, ok := cast.ValueAsArray(cv); ok {
			return &castValue{Type: "array", Value: arr}
		}
	}
	if i, ok := cast.ValueAsInt64(cv); ok {
		return &castValue{Type: "int64", Value: i}
	}
	if f, ok := cast.ValueAsFloat64(cv); ok {
		return &castValue{Type: "float64", Value: f}
	}
	if b, ok := cast.ValueAsBool(cv); ok {
		return &castValue{Type: "bool", Value: b}
	}
	if v.Value != "" {
		if s, ok := cast.ValueAsString(cv); ok {
			return &castValue{Type: "string", Value: s}
		}
	}
	return nil
}

// applyCast fills in Cast on every element of vs in place and returns vs.
func applyCast(vs []vertexJSON) []vertexJSON {
	for i := range vs {
		vs[i].Cast = computeCast(vs[i])
	}
	return vs
}
