package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kindlychung/TornadoFX-Suite/internal/node"
)

func TestKotlinKind(t *testing.T) {
	cases := map[string]node.Kind{
		"source_file":               node.KindBlock,
		"statements":                node.KindBlock,
		"control_structure_body":    node.KindBlock,
		"class_declaration":         node.KindStructuredDecl,
		"object_declaration":        node.KindStructuredDecl,
		"companion_object":          node.KindStructuredDecl,
		"property_declaration":      node.KindPropertyDecl,
		"function_declaration":      node.KindFuncDecl,
		"call_expression":           node.KindCall,
		"lambda_literal":            node.KindLambda,
		"simple_identifier":         node.KindNameRef,
		"navigation_expression":     node.KindNameRef,
		"additive_expression":       node.KindBinaryOp,
		"multiplicative_expression": node.KindBinaryOp,
		"elvis_expression":          node.KindBinaryOp,
		"assignment":                node.KindBinaryOp,
		"integer_literal":           node.KindLiteral,
		"string_literal":            node.KindLiteral,
		"boolean_literal":           node.KindLiteral,
		"null":                      node.KindLiteral,
	}
	for nodeType, want := range cases {
		assert.Equal(t, want, kotlinKind(nodeType), "node type %s", nodeType)
	}
}

func TestKotlinKind_UnmappedDegradesToUnknown(t *testing.T) {
	for _, nodeType := range []string{"when_expression", "try_expression", "annotation", "made_up_shape"} {
		assert.Equal(t, node.KindUnknown, kotlinKind(nodeType), "node type %s", nodeType)
	}
}

func TestNewParser(t *testing.T) {
	t.Run("Kotlin is supported", func(t *testing.T) {
		p, err := NewParser("kotlin")
		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{".kt", ".kts"}, p.Extensions())
	})

	t.Run("Unknown language is rejected", func(t *testing.T) {
		_, err := NewParser("cobol")
		assert.Error(t, err)
	})
}
