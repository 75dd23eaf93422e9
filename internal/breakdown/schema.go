package breakdown

import (
	"github.com/kindlychung/TornadoFX-Suite/internal/node"
	"github.com/kindlychung/TornadoFX-Suite/internal/uigraph"
)

// PropertyKind is the closed classification of a member property.
type PropertyKind string

const (
	PropertyValue        PropertyKind = "value"
	PropertyObservable   PropertyKind = "observable"
	PropertyCollection   PropertyKind = "collection"
	PropertyInjected     PropertyKind = "injected"
	PropertyUnclassified PropertyKind = "unclassified"
)

// Property is one classified member property of a class.
type Property struct {
	Name       string       `json:"name"`
	Type       string       `json:"type,omitempty"` // declared or inferred type tag
	Kind       PropertyKind `json:"kind"`
	Expression string       `json:"expression,omitempty"` // rendered initializer
}

// StatementKind tags the syntactic role a statement record was derived from.
type StatementKind string

const (
	StatementDeclaration  StatementKind = "declaration"
	StatementBinaryOp     StatementKind = "binary_op"
	StatementCall         StatementKind = "call"
	StatementLiteral      StatementKind = "literal"
	StatementUnclassified StatementKind = "unclassified"
)

// StatementRecord is the normalized summary of one statement or
// sub-expression. Order in a method always matches source order.
type StatementRecord struct {
	Kind    StatementKind `json:"kind"`
	Summary string        `json:"summary"`
}

// Method is one analyzed member function.
type Method struct {
	Name       string            `json:"name"`
	Params     []node.Param      `json:"params"`
	ReturnType string            `json:"return_type"` // "unit"/"expression" when inferred
	Shape      node.BodyShape    `json:"shape"`
	Statements []StatementRecord `json:"statements"`
}

// NestedBlock marks a nested structural declaration (object, companion
// object) recorded opaquely, never expanded.
type NestedBlock struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// ClassBreakdown is the complete per-class record. It is fully populated
// before insertion into the session maps and immutable thereafter.
type ClassBreakdown struct {
	Name         string        `json:"name"`
	Supertypes   []string      `json:"supertypes"` // declaration order
	Properties   []Property    `json:"properties"`
	Methods      []Method      `json:"methods"`
	NestedBlocks []NestedBlock `json:"nested_blocks,omitempty"`
}

// Result is the complete IR bundle for one file's analysis pass.
type Result struct {
	ClassBreakdowns      map[string]*ClassBreakdown  `json:"class_breakdowns"`
	DetectedUIControls   map[string][]uigraph.UINode `json:"detected_ui_controls"`
	ViewNodeGraphs       map[string]*uigraph.Digraph `json:"view_node_graphs"`
	ViewImports          map[string]string           `json:"view_imports"`
	IndependentFunctions []string                    `json:"independent_functions"`
}

// NewResult initializes the four empty result maps.
func NewResult() *Result {
	return &Result{
		ClassBreakdowns:      make(map[string]*ClassBreakdown),
		DetectedUIControls:   make(map[string][]uigraph.UINode),
		ViewNodeGraphs:       make(map[string]*uigraph.Digraph),
		ViewImports:          make(map[string]string),
		IndependentFunctions: []string{},
	}
}
