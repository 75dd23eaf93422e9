package uigraph

import (
	"fmt"
	"strings"

	"github.com/kindlychung/TornadoFX-Suite/internal/node"
	"github.com/kindlychung/TornadoFX-Suite/internal/vocab"
)

// Builder scans class members for widget-construction calls and assembles
// the containment digraph. Calls outside the widget vocabulary are never
// added as nodes; they are still descended into, so a widget declared inside
// an unrecognized wrapper call surfaces as a root.
type Builder struct {
	vocab *vocab.Vocabulary
}

// NewBuilder creates a builder over the given widget vocabulary.
func NewBuilder(v *vocab.Vocabulary) *Builder {
	return &Builder{vocab: v}
}

// Build walks the member declarations of one class and returns the
// containment digraph plus the flat control list in discovery order.
func (b *Builder) Build(members []*node.Node) (*Digraph, []UINode) {
	g := NewDigraph()
	var controls []UINode
	ordinals := make(map[string]int)

	for _, m := range members {
		b.scan(m, "", g, &controls, ordinals)
	}
	return g, controls
}

// scan descends one node, tracking the nearest enclosing recognized widget
// call as parentID.
func (b *Builder) scan(n *node.Node, parentID string, g *Digraph, controls *[]UINode, ordinals map[string]int) {
	if n == nil {
		return
	}

	if n.Kind == node.KindCall && b.vocab.IsWidget(n.Name) {
		ordinals[n.Name]++
		ui := &UINode{
			ID:    fmt.Sprintf("%s#%d", n.Name, ordinals[n.Name]),
			Type:  n.Name,
			Label: widgetLabel(n),
		}
		if ui.Label == "" {
			ui.Label = ui.ID
		}
		g.AddNode(ui, parentID)
		*controls = append(*controls, *ui)

		// Children written in the trailing lambda are contained by this
		// widget; plain arguments are not.
		if lambda := n.TrailingLambda(); lambda != nil {
			for _, stmt := range lambda.Children {
				b.scan(stmt, ui.ID, g, controls, ordinals)
			}
		}
		return
	}

	for _, c := range n.Children {
		b.scan(c, parentID, g, controls, ordinals)
	}
}

// widgetLabel picks the identifying label for a widget call: the first
// literal argument, unquoted, when one exists.
func widgetLabel(call *node.Node) string {
	for _, arg := range call.Args() {
		if arg.Kind == node.KindLiteral {
			return strings.Trim(arg.Text, "\"'`")
		}
	}
	return ""
}
