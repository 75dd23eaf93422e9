package breakdown

import (
	"strings"

	"github.com/kindlychung/TornadoFX-Suite/internal/node"
	"github.com/kindlychung/TornadoFX-Suite/internal/vocab"
)

// Classifier inspects a property declaration's initializer shape and returns
// a definitive classification. It is a pure function of the node.
type Classifier struct {
	vocab *vocab.Vocabulary
}

// NewClassifier creates a classifier over the given vocabulary.
func NewClassifier(v *vocab.Vocabulary) *Classifier {
	return &Classifier{vocab: v}
}

// Classify returns the typed Property for a property declaration node.
// Unmatched shapes come back PropertyUnclassified with the raw expression
// retained; the only hard failures are a non-property node and the depth
// ceiling.
func (c *Classifier) Classify(decl *node.Node) (Property, error) {
	if decl == nil || decl.Kind != node.KindPropertyDecl {
		got := node.KindUnknown
		if decl != nil {
			got = decl.Kind
		}
		return Property{}, &ParseInputError{Expected: node.KindPropertyDecl, Got: got}
	}

	prop := Property{
		Name: decl.Name,
		Type: decl.TypeRef,
	}

	init := decl.Init()
	if init != nil {
		expr, err := renderExpr(init, 0)
		if err != nil {
			return Property{}, err
		}
		prop.Expression = expr
	}

	prop.Kind = c.classifyShape(decl, init)
	return prop, nil
}

func (c *Classifier) classifyShape(decl *node.Node, init *node.Node) PropertyKind {
	// Delegate call with no explicit value is the injection pattern
	// (e.g. "by inject()").
	if decl.Delegated {
		if init != nil && init.Kind == node.KindCall &&
			c.vocab.IsInjectionMarker(init.Name) && len(init.Args()) == 0 {
			return PropertyInjected
		}
		return PropertyUnclassified
	}

	if init == nil {
		if decl.TypeRef != "" {
			return PropertyValue
		}
		return PropertyUnclassified
	}

	switch init.Kind {
	case node.KindCall:
		if c.vocab.IsReactiveWrapper(init.Name) {
			return PropertyObservable
		}
		if c.vocab.IsCollectionCtor(init.Name) {
			return PropertyCollection
		}
		return PropertyUnclassified

	case node.KindBinaryOp:
		// The reactive-wrapper chain pattern: a wrapper applied on the right
		// of an operator, e.g. listOf(1, 2) . observable().
		if right := init.Right(); right != nil {
			name := right.Name
			if c.vocab.IsReactiveWrapper(name) {
				return PropertyObservable
			}
		}
		if isPlainOperand(init.Left()) && isPlainOperand(init.Right()) {
			return PropertyValue
		}
		return PropertyUnclassified

	case node.KindLiteral:
		if strings.HasPrefix(strings.TrimSpace(init.Text), "[") {
			return PropertyCollection
		}
		return PropertyValue

	case node.KindNameRef:
		return PropertyValue

	default:
		return PropertyUnclassified
	}
}

// isPlainOperand reports whether a binary-op side is a simple value shape.
func isPlainOperand(n *node.Node) bool {
	return n != nil && (n.Kind == node.KindLiteral || n.Kind == node.KindNameRef)
}
