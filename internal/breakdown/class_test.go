package breakdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindlychung/TornadoFX-Suite/internal/node"
	"github.com/kindlychung/TornadoFX-Suite/internal/vocab"
)

func class(name string, supertypes []string, members ...*node.Node) *node.Node {
	return &node.Node{
		Kind:       node.KindStructuredDecl,
		Name:       name,
		Modifier:   "class",
		Supertypes: supertypes,
		Children:   members,
	}
}

func TestEngine_BreakDown(t *testing.T) {
	e := NewEngine(vocab.Default())

	t.Run("Round trip", func(t *testing.T) {
		decl := class("Sample", []string{"A", "B"},
			prop("x", "Int", lit("5")),
			fn("m", node.BodyBlock, block(
				prop("y", "", binop("+", ref("x"), lit("1"))),
			)),
		)

		cb, err := e.BreakDown(decl)
		require.NoError(t, err)

		assert.Equal(t, "Sample", cb.Name)
		assert.Equal(t, []string{"A", "B"}, cb.Supertypes)

		require.Len(t, cb.Properties, 1)
		assert.Equal(t, "x", cb.Properties[0].Name)
		assert.Equal(t, PropertyValue, cb.Properties[0].Kind)

		require.Len(t, cb.Methods, 1)
		m := cb.Methods[0]
		assert.Equal(t, "m", m.Name)
		assert.Equal(t, "unit", m.ReturnType)
		require.Len(t, m.Statements, 1)
		assert.Equal(t, StatementDeclaration, m.Statements[0].Kind)
		assert.Equal(t, "y = x + 1", m.Statements[0].Summary)
	})

	t.Run("Members keep declaration order", func(t *testing.T) {
		decl := class("Ordered", nil,
			prop("a", "", lit("1")),
			prop("b", "", lit("2")),
			fn("first", node.BodyReference, nil),
			fn("second", node.BodyReference, nil),
		)
		cb, err := e.BreakDown(decl)
		require.NoError(t, err)

		assert.Equal(t, "a", cb.Properties[0].Name)
		assert.Equal(t, "b", cb.Properties[1].Name)
		assert.Equal(t, "first", cb.Methods[0].Name)
		assert.Equal(t, "second", cb.Methods[1].Name)
	})

	t.Run("Expression body infers expression return", func(t *testing.T) {
		decl := class("C", nil, fn("double", node.BodyExpression, binop("*", ref("x"), lit("2"))))
		cb, err := e.BreakDown(decl)
		require.NoError(t, err)
		assert.Equal(t, "expression", cb.Methods[0].ReturnType)
	})

	t.Run("Nested object stays an opaque marker", func(t *testing.T) {
		inner := &node.Node{Kind: node.KindStructuredDecl, Name: "Companion", Modifier: "companion",
			Children: []*node.Node{prop("shared", "", lit("1"))}}
		decl := class("Outer", nil, inner)

		cb, err := e.BreakDown(decl)
		require.NoError(t, err)
		require.Len(t, cb.NestedBlocks, 1)
		assert.Equal(t, "Companion", cb.NestedBlocks[0].Name)
		assert.Equal(t, "companion", cb.NestedBlocks[0].Kind)
		// Not expanded: the nested property never leaks into the outer class.
		assert.Empty(t, cb.Properties)
	})

	t.Run("Malformed member does not abort the class", func(t *testing.T) {
		decl := class("Partial", nil,
			&node.Node{Kind: node.KindUnknown, Name: "garbled", Text: "???"},
			prop("ok", "", lit("1")),
		)
		cb, err := e.BreakDown(decl)
		require.NoError(t, err)
		require.Len(t, cb.Properties, 2)
		assert.Equal(t, PropertyUnclassified, cb.Properties[0].Kind)
		assert.Equal(t, PropertyValue, cb.Properties[1].Kind)
	})

	t.Run("Non-structured node is a parse input error", func(t *testing.T) {
		_, err := e.BreakDown(lit("5"))
		var parseErr *ParseInputError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, node.KindStructuredDecl, parseErr.Expected)
	})

	t.Run("Depth ceiling propagates", func(t *testing.T) {
		expr := lit("1")
		for i := 0; i < MaxExpressionDepth+10; i++ {
			expr = binop("+", lit("1"), expr)
		}
		decl := class("Deep", nil, prop("x", "", expr))
		_, err := e.BreakDown(decl)
		require.ErrorIs(t, err, ErrDepthExceeded)
	})
}
