package breakdown

import (
	"strings"

	"github.com/kindlychung/TornadoFX-Suite/internal/imports"
	"github.com/kindlychung/TornadoFX-Suite/internal/node"
	"github.com/kindlychung/TornadoFX-Suite/internal/uigraph"
)

// Session is one complete single-file analysis pass. It owns the
// accumulating result maps and nothing else; create a fresh session per
// file, no classification state carries over.
type Session struct {
	engine  *Engine
	builder *uigraph.Builder
}

// NewSession wires the engine and graph builder for one file pass.
func NewSession(engine *Engine, builder *uigraph.Builder) *Session {
	return &Session{engine: engine, builder: builder}
}

// Analyze iterates the file's top-level declarations and returns the
// complete IR bundle. A class entry is committed to the maps only after its
// full breakdown succeeds; a hard failure discards the whole file without
// touching any other file's results.
func (s *Session) Analyze(root *node.Node, path string) (*Result, error) {
	if root == nil || root.Kind != node.KindBlock {
		got := node.KindUnknown
		if root != nil {
			got = root.Kind
		}
		return nil, &ParseInputError{Expected: node.KindBlock, Got: got, Detail: "file root"}
	}

	result := NewResult()

	for _, decl := range root.Children {
		switch decl.Kind {
		case node.KindStructuredDecl:
			cb, err := s.engine.BreakDown(decl)
			if err != nil {
				return nil, err
			}

			digraph, controls := s.builder.Build(decl.Children)

			// Commit only after the breakdown is complete.
			result.ClassBreakdowns[cb.Name] = cb
			if len(controls) > 0 {
				result.DetectedUIControls[cb.Name] = controls
				result.ViewNodeGraphs[cb.Name] = digraph
			}
			if imp, err := imports.Resolve(path); err == nil {
				result.ViewImports[cb.Name] = imp
			}
			// An unsupported dialect loses only the import string, the
			// breakdown itself stands.

		case node.KindFuncDecl:
			result.IndependentFunctions = append(result.IndependentFunctions, functionText(decl))
		}
	}

	return result, nil
}

// functionText reproduces a top-level function as raw declaration text,
// falling back to a rendered header when the front-end kept no source.
func functionText(fn *node.Node) string {
	if fn.Text != "" {
		return fn.Text
	}
	params := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		if p.Type != "" {
			params = append(params, p.Name+": "+p.Type)
			continue
		}
		params = append(params, p.Name)
	}
	return "fun " + fn.Name + "(" + strings.Join(params, ", ") + ")"
}
