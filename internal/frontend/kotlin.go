package frontend

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/kotlin"

	"github.com/kindlychung/TornadoFX-Suite/internal/node"
)

// KotlinFrontend implements LanguageFrontend for Kotlin (.kt and .kts).
type KotlinFrontend struct{}

func (k *KotlinFrontend) Language() *sitter.Language {
	return kotlin.GetLanguage()
}

func (k *KotlinFrontend) Extensions() []string {
	return []string{".kt", ".kts"}
}

// binaryTypes are the tree-sitter-kotlin node types lowered to KindBinaryOp.
var binaryTypes = map[string]bool{
	"additive_expression":       true,
	"multiplicative_expression": true,
	"comparison_expression":     true,
	"equality_expression":       true,
	"conjunction":               true,
	"disjunction":               true,
	"elvis_expression":          true,
	"range_expression":          true,
	"infix_expression":          true,
	"check_expression":          true,
	"assignment":                true,
}

// literalTypes are the node types lowered to KindLiteral.
var literalTypes = map[string]bool{
	"integer_literal":          true,
	"long_literal":             true,
	"unsigned_literal":         true,
	"real_literal":             true,
	"hex_literal":              true,
	"bin_literal":              true,
	"string_literal":           true,
	"line_string_literal":      true,
	"multiline_string_literal": true,
	"boolean_literal":          true,
	"character_literal":        true,
	"null":                     true,
}

// typeNodeTypes are the node types carrying a declared type reference.
var typeNodeTypes = map[string]bool{
	"user_type":          true,
	"nullable_type":      true,
	"function_type":      true,
	"parenthesized_type": true,
}

// skipTypes are file-level nodes with no breakdown relevance.
var skipTypes = map[string]bool{
	"package_header":    true,
	"import_list":       true,
	"import_header":     true,
	"shebang_line":      true,
	"file_annotation":   true,
	"comment":           true,
	"line_comment":      true,
	"multiline_comment": true,
	"getter":            true,
	"setter":            true,
}

// kotlinKind maps a tree-sitter-kotlin node type to the model variant it
// lowers to. Everything unlisted degrades to KindUnknown.
func kotlinKind(nodeType string) node.Kind {
	switch {
	case nodeType == "source_file",
		nodeType == "statements",
		nodeType == "control_structure_body":
		return node.KindBlock
	case nodeType == "class_declaration",
		nodeType == "object_declaration",
		nodeType == "companion_object":
		return node.KindStructuredDecl
	case nodeType == "property_declaration":
		return node.KindPropertyDecl
	case nodeType == "function_declaration":
		return node.KindFuncDecl
	case nodeType == "call_expression":
		return node.KindCall
	case nodeType == "lambda_literal":
		return node.KindLambda
	case nodeType == "simple_identifier",
		nodeType == "navigation_expression":
		return node.KindNameRef
	case binaryTypes[nodeType]:
		return node.KindBinaryOp
	case literalTypes[nodeType]:
		return node.KindLiteral
	default:
		return node.KindUnknown
	}
}

// Lower converts a tree-sitter subtree into the node model, best effort.
// Unmapped shapes keep their raw text under KindUnknown so traversal never
// aborts.
func (k *KotlinFrontend) Lower(n *sitter.Node, src []byte) *node.Node {
	if n == nil {
		return nil
	}

	switch kotlinKind(n.Type()) {
	case node.KindBlock:
		return k.lowerBlock(n, src)
	case node.KindStructuredDecl:
		return k.lowerStructured(n, src)
	case node.KindPropertyDecl:
		return k.lowerProperty(n, src)
	case node.KindFuncDecl:
		return k.lowerFunction(n, src)
	case node.KindCall:
		return k.lowerCall(n, src)
	case node.KindLambda:
		return k.lowerLambda(n, src)
	case node.KindBinaryOp:
		return k.lowerBinary(n, src)
	case node.KindNameRef:
		return &node.Node{Kind: node.KindNameRef, Name: refName(n, src)}
	case node.KindLiteral:
		return &node.Node{Kind: node.KindLiteral, Text: n.Content(src)}
	default:
		if n.Type() == "parenthesized_expression" && n.NamedChildCount() == 1 {
			return k.Lower(n.NamedChild(0), src)
		}
		return &node.Node{Kind: node.KindUnknown, Name: n.Type(), Text: n.Content(src)}
	}
}

func (k *KotlinFrontend) lowerBlock(n *sitter.Node, src []byte) *node.Node {
	block := &node.Node{Kind: node.KindBlock}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if skipTypes[child.Type()] {
			continue
		}
		if lowered := k.Lower(child, src); lowered != nil {
			block.Children = append(block.Children, lowered)
		}
	}
	return block
}

func (k *KotlinFrontend) lowerStructured(n *sitter.Node, src []byte) *node.Node {
	decl := &node.Node{Kind: node.KindStructuredDecl, Text: n.Content(src)}

	switch n.Type() {
	case "object_declaration":
		decl.Modifier = "object"
	case "companion_object":
		decl.Modifier = "companion"
		decl.Name = "Companion"
	default:
		decl.Modifier = "class"
		if hasToken(n, src, "interface") {
			decl.Modifier = "interface"
		}
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "type_identifier", "simple_identifier":
			if decl.Name == "" || decl.Name == "Companion" {
				decl.Name = child.Content(src)
			}
		case "delegation_specifier":
			decl.Supertypes = append(decl.Supertypes, supertypeName(child, src))
		case "class_body", "enum_class_body":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				member := child.NamedChild(j)
				if skipTypes[member.Type()] {
					continue
				}
				if lowered := k.Lower(member, src); lowered != nil {
					decl.Children = append(decl.Children, lowered)
				}
			}
		}
	}
	return decl
}

func (k *KotlinFrontend) lowerProperty(n *sitter.Node, src []byte) *node.Node {
	decl := &node.Node{Kind: node.KindPropertyDecl, Text: n.Content(src)}
	if hasToken(n, src, "var") {
		decl.Modifier = "var"
	} else {
		decl.Modifier = "val"
	}

	var init *sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch {
		case child.Type() == "variable_declaration":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				sub := child.NamedChild(j)
				if sub.Type() == "simple_identifier" {
					decl.Name = sub.Content(src)
				} else if typeNodeTypes[sub.Type()] {
					decl.TypeRef = sub.Content(src)
				}
			}
		case child.Type() == "property_delegate":
			decl.Delegated = true
			if child.NamedChildCount() > 0 {
				init = child.NamedChild(0)
			}
		case child.Type() == "modifiers" || skipTypes[child.Type()]:
			// not part of the shape
		case typeNodeTypes[child.Type()]:
			if decl.TypeRef == "" {
				decl.TypeRef = child.Content(src)
			}
		default:
			// the initializer expression after "="
			init = child
		}
	}

	if init != nil {
		if lowered := k.Lower(init, src); lowered != nil {
			decl.Children = append(decl.Children, lowered)
		}
	}
	return decl
}

func (k *KotlinFrontend) lowerFunction(n *sitter.Node, src []byte) *node.Node {
	fn := &node.Node{Kind: node.KindFuncDecl, Shape: node.BodyReference, Text: n.Content(src)}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch {
		case child.Type() == "simple_identifier":
			if fn.Name == "" {
				fn.Name = child.Content(src)
			}
		case child.Type() == "function_value_parameters":
			fn.Params = lowerParams(child, src)
		case typeNodeTypes[child.Type()]:
			fn.ReturnType = child.Content(src)
		case child.Type() == "function_body":
			k.lowerFunctionBody(fn, child, src)
		}
	}
	return fn
}

// lowerParams extracts the ordered parameter list of a function declaration.
func lowerParams(params *sitter.Node, src []byte) []node.Param {
	var out []node.Param
	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		if p.Type() != "parameter" {
			continue
		}
		var param node.Param
		for j := 0; j < int(p.NamedChildCount()); j++ {
			sub := p.NamedChild(j)
			if sub.Type() == "simple_identifier" && param.Name == "" {
				param.Name = sub.Content(src)
			} else if typeNodeTypes[sub.Type()] {
				param.Type = sub.Content(src)
			}
		}
		out = append(out, param)
	}
	return out
}

// lowerFunctionBody decides the body shape: "= expr" is an expression body,
// a braced body is a block, anything else stays a reference.
func (k *KotlinFrontend) lowerFunctionBody(fn *node.Node, body *sitter.Node, src []byte) {
	if strings.HasPrefix(strings.TrimSpace(body.Content(src)), "=") {
		fn.Shape = node.BodyExpression
		if body.NamedChildCount() > 0 {
			if lowered := k.Lower(body.NamedChild(0), src); lowered != nil {
				fn.Children = append(fn.Children, lowered)
			}
		}
		return
	}

	fn.Shape = node.BodyBlock
	block := &node.Node{Kind: node.KindBlock}
	if stmts := firstDescendant(body, "statements"); stmts != nil {
		lowered := k.lowerBlock(stmts, src)
		block.Children = lowered.Children
	}
	fn.Children = append(fn.Children, block)
}

func (k *KotlinFrontend) lowerCall(n *sitter.Node, src []byte) *node.Node {
	call := &node.Node{Kind: node.KindCall}

	if n.NamedChildCount() > 0 {
		call.Name = refName(n.NamedChild(0), src)
	}

	suffix := firstChildOfType(n, "call_suffix")
	if suffix == nil {
		return call
	}

	if args := firstChildOfType(suffix, "value_arguments"); args != nil {
		for i := 0; i < int(args.NamedChildCount()); i++ {
			arg := args.NamedChild(i)
			if arg.Type() != "value_argument" {
				continue
			}
			if lowered := k.lowerArgument(arg, src); lowered != nil {
				call.Children = append(call.Children, lowered)
			}
		}
	}

	if annotated := firstChildOfType(suffix, "annotated_lambda"); annotated != nil {
		if lambda := firstDescendant(annotated, "lambda_literal"); lambda != nil {
			call.Children = append(call.Children, k.lowerLambda(lambda, src))
		}
	} else if lambda := firstChildOfType(suffix, "lambda_literal"); lambda != nil {
		call.Children = append(call.Children, k.lowerLambda(lambda, src))
	}

	return call
}

// lowerArgument handles positional and named ("label = expr") arguments.
func (k *KotlinFrontend) lowerArgument(arg *sitter.Node, src []byte) *node.Node {
	label := ""
	var exprNode *sitter.Node
	for i := 0; i < int(arg.NamedChildCount()); i++ {
		child := arg.NamedChild(i)
		if child.Type() == "simple_identifier" && i == 0 && arg.NamedChildCount() > 1 {
			label = child.Content(src)
			continue
		}
		exprNode = child
	}
	if exprNode == nil {
		return nil
	}
	lowered := k.Lower(exprNode, src)
	if lowered != nil {
		lowered.ArgLabel = label
	}
	return lowered
}

func (k *KotlinFrontend) lowerLambda(n *sitter.Node, src []byte) *node.Node {
	lambda := &node.Node{Kind: node.KindLambda}
	if stmts := firstDescendant(n, "statements"); stmts != nil {
		lowered := k.lowerBlock(stmts, src)
		lambda.Children = lowered.Children
	}
	return lambda
}

func (k *KotlinFrontend) lowerBinary(n *sitter.Node, src []byte) *node.Node {
	if n.NamedChildCount() < 2 {
		return &node.Node{Kind: node.KindUnknown, Name: n.Type(), Text: n.Content(src)}
	}
	left := n.NamedChild(0)
	right := n.NamedChild(int(n.NamedChildCount()) - 1)

	op := &node.Node{Kind: node.KindBinaryOp, Operator: operatorBetween(n, left, right, src)}
	op.Children = append(op.Children, k.Lower(left, src), k.Lower(right, src))
	return op
}

// operatorBetween extracts the literal operator token sitting between the
// two operands. No semantic rewriting.
func operatorBetween(parent, left, right *sitter.Node, src []byte) string {
	for i := 0; i < int(parent.ChildCount()); i++ {
		c := parent.Child(i)
		if c.StartByte() >= left.EndByte() && c.EndByte() <= right.StartByte() {
			tok := strings.TrimSpace(c.Content(src))
			if tok != "" {
				return tok
			}
		}
	}
	return "?"
}

// refName resolves a callee or reference to its simple name: the segment
// after the last dot for navigation chains.
func refName(n *sitter.Node, src []byte) string {
	content := n.Content(src)
	if n.Type() == "navigation_expression" {
		if idx := strings.LastIndex(content, "."); idx >= 0 && idx+1 < len(content) {
			return strings.TrimSpace(content[idx+1:])
		}
	}
	if n.Type() == "call_expression" {
		// chained call used as receiver, keep its callee name
		if n.NamedChildCount() > 0 {
			return refName(n.NamedChild(0), src)
		}
	}
	return content
}

// supertypeName trims a delegation specifier down to the supertype name,
// dropping constructor arguments.
func supertypeName(n *sitter.Node, src []byte) string {
	name := n.Content(src)
	if idx := strings.Index(name, "("); idx >= 0 {
		name = name[:idx]
	}
	return strings.TrimSpace(name)
}

func hasToken(n *sitter.Node, src []byte, token string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Content(src) == token {
			return true
		}
	}
	return false
}

func firstChildOfType(n *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == nodeType {
			return c
		}
	}
	return nil
}

// firstDescendant does a shallow breadth-first search for a node type.
func firstDescendant(n *sitter.Node, nodeType string) *sitter.Node {
	queue := []*sitter.Node{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.Type() == nodeType {
			return cur
		}
		for i := 0; i < int(cur.NamedChildCount()); i++ {
			queue = append(queue, cur.NamedChild(i))
		}
	}
	return nil
}
