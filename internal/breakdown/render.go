package breakdown

import (
	"strings"

	"github.com/kindlychung/TornadoFX-Suite/internal/node"
)

// renderExpr resolves any expression node to a deterministic string summary,
// depth-first, innermost calls first. It never fails on shape: unknown nodes
// degrade to their raw text. The only error is the depth ceiling.
func renderExpr(n *node.Node, depth int) (string, error) {
	if n == nil {
		return "", nil
	}
	if depth > MaxExpressionDepth {
		return "", ErrDepthExceeded
	}

	switch n.Kind {
	case node.KindNameRef:
		return n.Name, nil

	case node.KindLiteral:
		return n.Text, nil

	case node.KindBinaryOp:
		lhs, err := renderExpr(n.Left(), depth+1)
		if err != nil {
			return "", err
		}
		rhs, err := renderExpr(n.Right(), depth+1)
		if err != nil {
			return "", err
		}
		return lhs + " " + n.Operator + " " + rhs, nil

	case node.KindCall:
		return renderCall(n, depth)

	case node.KindLambda, node.KindBlock:
		body, err := renderSequence(n.Children, depth+1)
		if err != nil {
			return "", err
		}
		return "{ " + body + " }", nil

	case node.KindPropertyDecl:
		return renderDeclaration(n, depth)

	case node.KindFuncDecl:
		return "fun " + n.Name, nil

	case node.KindUnknown:
		if n.Text != "" {
			return n.Text, nil
		}
		return "<unknown>", nil

	default:
		return n.Summary(), nil
	}
}

// renderCall resolves the call target and each argument, positional and
// named, in source order. A trailing lambda folds its nested statement
// sequence into the argument list.
func renderCall(call *node.Node, depth int) (string, error) {
	var args []string
	for _, arg := range call.Args() {
		rendered, err := renderExpr(arg, depth+1)
		if err != nil {
			return "", err
		}
		if arg.ArgLabel != "" {
			rendered = arg.ArgLabel + " = " + rendered
		}
		args = append(args, rendered)
	}
	return call.Name + "(" + strings.Join(args, ", ") + ")", nil
}

// renderDeclaration summarizes a property/local declaration as a normalized
// assignment.
func renderDeclaration(decl *node.Node, depth int) (string, error) {
	init := decl.Init()
	if init == nil {
		if decl.TypeRef != "" {
			return decl.Name + ": " + decl.TypeRef, nil
		}
		return decl.Name, nil
	}
	rhs, err := renderExpr(init, depth+1)
	if err != nil {
		return "", err
	}
	return decl.Name + " = " + rhs, nil
}

// renderSequence joins statement summaries of a nested block in source
// order.
func renderSequence(stmts []*node.Node, depth int) (string, error) {
	var parts []string
	for _, s := range stmts {
		rendered, err := renderExpr(s, depth+1)
		if err != nil {
			return "", err
		}
		if rendered != "" {
			parts = append(parts, rendered)
		}
	}
	return strings.Join(parts, "; "), nil
}
