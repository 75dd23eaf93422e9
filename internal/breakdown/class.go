package breakdown

import (
	"errors"

	"github.com/kindlychung/TornadoFX-Suite/internal/node"
	"github.com/kindlychung/TornadoFX-Suite/internal/vocab"
)

// Engine assembles one complete ClassBreakdown from a structured
// declaration, fanning members out to the property classifier and the body
// analyzer.
type Engine struct {
	classifier *Classifier
	analyzer   *BodyAnalyzer
}

// NewEngine creates a class breakdown engine over the given vocabulary.
func NewEngine(v *vocab.Vocabulary) *Engine {
	return &Engine{
		classifier: NewClassifier(v),
		analyzer:   NewBodyAnalyzer(),
	}
}

// BreakDown walks a structured declaration and returns its full record. A
// single malformed member degrades to an unclassified property or a
// zero-statement method; only a structurally invalid root or the depth
// ceiling abort the class.
func (e *Engine) BreakDown(decl *node.Node) (*ClassBreakdown, error) {
	if decl == nil || decl.Kind != node.KindStructuredDecl {
		got := node.KindUnknown
		if decl != nil {
			got = decl.Kind
		}
		return nil, &ParseInputError{Expected: node.KindStructuredDecl, Got: got}
	}

	cb := &ClassBreakdown{
		Name:       decl.Name,
		Supertypes: append([]string{}, decl.Supertypes...),
		Properties: []Property{},
		Methods:    []Method{},
	}

	for _, member := range decl.Children {
		switch member.Kind {
		case node.KindPropertyDecl:
			prop, err := e.classifier.Classify(member)
			if err != nil {
				if errors.Is(err, ErrDepthExceeded) {
					return nil, err
				}
				prop = Property{Name: member.Name, Kind: PropertyUnclassified, Expression: member.Text}
			}
			cb.Properties = append(cb.Properties, prop)

		case node.KindFuncDecl:
			method, err := e.breakDownMethod(member)
			if err != nil {
				return nil, err
			}
			cb.Methods = append(cb.Methods, method)

		case node.KindStructuredDecl:
			// Nested objects stay opaque markers, never expanded.
			kind := member.Modifier
			if kind == "" {
				kind = "object"
			}
			cb.NestedBlocks = append(cb.NestedBlocks, NestedBlock{Name: member.Name, Kind: kind})

		case node.KindUnknown:
			// Malformed member: keep going with an unclassified record
			// instead of aborting the class.
			cb.Properties = append(cb.Properties, Property{
				Name:       member.Name,
				Kind:       PropertyUnclassified,
				Expression: member.Text,
			})
		}
	}

	return cb, nil
}

func (e *Engine) breakDownMethod(fn *node.Node) (Method, error) {
	method := Method{
		Name:       fn.Name,
		Params:     append([]node.Param{}, fn.Params...),
		ReturnType: fn.ReturnType,
		Shape:      fn.Shape,
		Statements: []StatementRecord{},
	}
	if method.Shape == "" {
		method.Shape = node.BodyBlock
	}
	if method.ReturnType == "" {
		if method.Shape == node.BodyExpression {
			method.ReturnType = "expression"
		} else {
			method.ReturnType = "unit"
		}
	}

	stmts, err := e.analyzer.Analyze(fn)
	if err != nil {
		if errors.Is(err, ErrDepthExceeded) {
			return Method{}, err
		}
		// Malformed body: record the method with zero statements.
		return method, nil
	}
	method.Statements = stmts
	return method, nil
}
