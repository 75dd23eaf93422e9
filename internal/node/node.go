package node

// Kind tags a Node with its syntactic variant. The set is closed: anything
// the front-end cannot map lands on KindUnknown and keeps its raw text.
type Kind string

const (
	KindStructuredDecl Kind = "structured_decl" // class, object, interface
	KindPropertyDecl   Kind = "property_decl"   // val/var, member or local
	KindFuncDecl       Kind = "func_decl"
	KindCall           Kind = "call"
	KindBinaryOp       Kind = "binary_op"
	KindNameRef        Kind = "name_ref"
	KindLiteral        Kind = "literal"
	KindBlock          Kind = "block"
	KindLambda         Kind = "lambda"
	KindUnknown        Kind = "unknown"
)

// BodyShape classifies how a function declaration carries its body.
type BodyShape string

const (
	BodyBlock      BodyShape = "block"      // fun m() { ... }
	BodyExpression BodyShape = "expression" // fun m() = expr
	BodyReference  BodyShape = "reference"  // no body, points elsewhere
)

// Param is a single declared parameter.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Node is the shared tagged-union vocabulary every analysis component
// consumes. Only the fields relevant to a given Kind are populated; Children
// is always in source order.
//
// Per Kind:
//   - StructuredDecl: Name, Modifier, Supertypes, Children = member decls
//   - PropertyDecl:   Name, TypeRef, Modifier (val/var), Delegated,
//     Children[0] = initializer expression if present
//   - FuncDecl:       Name, Params, ReturnType, Shape,
//     Children[0] = body (Block or single expression) if present
//   - Call:           Name = callee, ArgLabel when used as a named argument,
//     Children = arguments (trailing Lambda last)
//   - BinaryOp:       Operator, Children[0] = lhs, Children[1] = rhs
//   - NameRef:        Name
//   - Literal:        Text
//   - Block/Lambda:   Children = statements in source order
//   - Unknown:        Text = best-effort raw source
type Node struct {
	Kind       Kind
	Name       string
	TypeRef    string
	Operator   string
	Text       string
	ArgLabel   string
	Modifier   string
	Delegated  bool
	Supertypes []string
	Params     []Param
	ReturnType string
	Shape      BodyShape
	Children   []*Node
}

// Init returns a property declaration's initializer expression, or nil.
func (n *Node) Init() *Node {
	if n == nil || n.Kind != KindPropertyDecl || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// Body returns a function declaration's body node, or nil for reference-only
// declarations.
func (n *Node) Body() *Node {
	if n == nil || n.Kind != KindFuncDecl || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// Left returns the left operand of a binary operation, or nil.
func (n *Node) Left() *Node {
	if n == nil || n.Kind != KindBinaryOp || len(n.Children) < 1 {
		return nil
	}
	return n.Children[0]
}

// Right returns the right operand of a binary operation, or nil.
func (n *Node) Right() *Node {
	if n == nil || n.Kind != KindBinaryOp || len(n.Children) < 2 {
		return nil
	}
	return n.Children[1]
}

// Args returns a call's argument nodes in source order.
func (n *Node) Args() []*Node {
	if n == nil || n.Kind != KindCall {
		return nil
	}
	return n.Children
}

// TrailingLambda returns a call's trailing lambda argument, or nil.
func (n *Node) TrailingLambda() *Node {
	args := n.Args()
	if len(args) == 0 {
		return nil
	}
	if last := args[len(args)-1]; last.Kind == KindLambda {
		return last
	}
	return nil
}

// Summary is a shallow one-token rendering used as a fallback when no
// recursive renderer is in play.
func (n *Node) Summary() string {
	if n == nil {
		return ""
	}
	if n.Text != "" {
		return n.Text
	}
	return n.Name
}
