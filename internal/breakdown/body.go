package breakdown

import (
	"github.com/kindlychung/TornadoFX-Suite/internal/node"
)

// BodyAnalyzer decomposes a method body into an ordered statement-record
// sequence by recursive descent. It holds no state, so one instance serves
// any number of methods deterministically.
type BodyAnalyzer struct{}

// NewBodyAnalyzer creates the analyzer.
func NewBodyAnalyzer() *BodyAnalyzer {
	return &BodyAnalyzer{}
}

// Analyze returns the ordered statement records for a function declaration.
// Block bodies iterate statements in source order, expression bodies yield a
// single record, reference-only declarations yield none.
func (a *BodyAnalyzer) Analyze(fn *node.Node) ([]StatementRecord, error) {
	if fn == nil || fn.Kind != node.KindFuncDecl {
		got := node.KindUnknown
		if fn != nil {
			got = fn.Kind
		}
		return nil, &ParseInputError{Expected: node.KindFuncDecl, Got: got}
	}

	body := fn.Body()
	switch fn.Shape {
	case node.BodyReference:
		return []StatementRecord{}, nil

	case node.BodyExpression:
		if body == nil {
			return []StatementRecord{}, nil
		}
		rec, err := a.statement(body, 0)
		if err != nil {
			return nil, err
		}
		return []StatementRecord{rec}, nil

	default: // block
		if body == nil {
			return []StatementRecord{}, nil
		}
		records := make([]StatementRecord, 0, len(body.Children))
		for _, stmt := range body.Children {
			if err := a.appendStatement(&records, stmt, 0); err != nil {
				return nil, err
			}
		}
		return records, nil
	}
}

// appendStatement emits the record(s) for one statement, flattening nested
// bare blocks so order still matches the source.
func (a *BodyAnalyzer) appendStatement(records *[]StatementRecord, stmt *node.Node, depth int) error {
	if stmt == nil {
		return nil
	}
	if depth > MaxExpressionDepth {
		return ErrDepthExceeded
	}

	if stmt.Kind == node.KindBlock {
		for _, inner := range stmt.Children {
			if err := a.appendStatement(records, inner, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	rec, err := a.statement(stmt, depth)
	if err != nil {
		return err
	}
	*records = append(*records, rec)
	return nil
}

// statement dispatches one statement node by variant and produces its
// normalized record.
func (a *BodyAnalyzer) statement(stmt *node.Node, depth int) (StatementRecord, error) {
	switch stmt.Kind {
	case node.KindPropertyDecl:
		summary, err := renderDeclaration(stmt, depth)
		if err != nil {
			return StatementRecord{}, err
		}
		return StatementRecord{Kind: StatementDeclaration, Summary: summary}, nil

	case node.KindBinaryOp:
		summary, err := renderExpr(stmt, depth)
		if err != nil {
			return StatementRecord{}, err
		}
		return StatementRecord{Kind: StatementBinaryOp, Summary: summary}, nil

	case node.KindCall:
		summary, err := renderCall(stmt, depth)
		if err != nil {
			return StatementRecord{}, err
		}
		return StatementRecord{Kind: StatementCall, Summary: summary}, nil

	case node.KindLiteral:
		return StatementRecord{Kind: StatementLiteral, Summary: stmt.Text}, nil

	default:
		summary, err := renderExpr(stmt, depth)
		if err != nil {
			return StatementRecord{}, err
		}
		if summary == "" {
			summary = "<" + string(stmt.Kind) + ">"
		}
		return StatementRecord{Kind: StatementUnclassified, Summary: summary}, nil
	}
}
