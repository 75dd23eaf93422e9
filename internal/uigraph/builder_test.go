package uigraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindlychung/TornadoFX-Suite/internal/node"
	"github.com/kindlychung/TornadoFX-Suite/internal/vocab"
)

func call(name string, args ...*node.Node) *node.Node {
	return &node.Node{Kind: node.KindCall, Name: name, Children: args}
}

func lit(text string) *node.Node {
	return &node.Node{Kind: node.KindLiteral, Text: text}
}

func lambda(stmts ...*node.Node) *node.Node {
	return &node.Node{Kind: node.KindLambda, Children: stmts}
}

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder(vocab.Default())

	t.Run("Container with two nested widgets", func(t *testing.T) {
		members := []*node.Node{
			call("vbox", lambda(
				call("button", lit("\"OK\"")),
				call("label", lit("\"Hello\"")),
			)),
		}
		g, controls := b.Build(members)

		require.Len(t, g.Roots, 1)
		root := g.Roots[0]
		assert.Equal(t, "vbox#1", root)

		children := g.Children(root)
		require.Len(t, children, 2)
		assert.Equal(t, "button#1", children[0])
		assert.Equal(t, "label#1", children[1])

		require.Len(t, controls, 3)
		assert.Equal(t, "vbox", controls[0].Type)
		assert.Equal(t, "OK", controls[1].Label)
		assert.Equal(t, "Hello", controls[2].Label)
	})

	t.Run("Every non-root node has exactly one incoming edge", func(t *testing.T) {
		members := []*node.Node{
			call("borderpane", lambda(
				call("vbox", lambda(call("button", lit("\"A\"")), call("button", lit("\"B\"")))),
				call("label"),
			)),
		}
		g, _ := b.Build(members)

		for id := range g.Nodes {
			if g.IsRoot(id) {
				assert.Equal(t, 0, g.Indegree(id), "root %s must have no incoming edge", id)
				continue
			}
			assert.Equal(t, 1, g.Indegree(id), "non-root %s must have exactly one incoming edge", id)
		}
	})

	t.Run("Multiple independent roots are permitted", func(t *testing.T) {
		members := []*node.Node{
			call("vbox", lambda(call("button"))),
			call("hbox", lambda(call("label"))),
		}
		g, _ := b.Build(members)
		require.Len(t, g.Roots, 2)
		assert.Equal(t, "vbox#1", g.Roots[0])
		assert.Equal(t, "hbox#1", g.Roots[1])
	})

	t.Run("Unrecognized calls are never nodes", func(t *testing.T) {
		members := []*node.Node{
			call("println", lit("\"not a widget\"")),
			call("vbox", lambda(call("configure"))),
		}
		g, controls := b.Build(members)
		assert.Equal(t, 1, g.Size())
		assert.Len(t, controls, 1)
	})

	t.Run("Widget inside an unrecognized wrapper becomes a root", func(t *testing.T) {
		members := []*node.Node{
			call("with", lambda(call("button", lit("\"Go\"")))),
		}
		g, _ := b.Build(members)
		require.Len(t, g.Roots, 1)
		assert.Equal(t, "button#1", g.Roots[0])
	})

	t.Run("Repeated types get distinct ordinals", func(t *testing.T) {
		members := []*node.Node{
			call("vbox", lambda(call("button"), call("button"))),
		}
		g, _ := b.Build(members)
		assert.Contains(t, g.Nodes, "button#1")
		assert.Contains(t, g.Nodes, "button#2")
	})

	t.Run("Label falls back to the node ID", func(t *testing.T) {
		members := []*node.Node{call("vbox")}
		_, controls := b.Build(members)
		require.Len(t, controls, 1)
		assert.Equal(t, "vbox#1", controls[0].Label)
	})
}
