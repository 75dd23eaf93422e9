package frontend

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kindlychung/TornadoFX-Suite/internal/node"
)

// LanguageFrontend lowers one language's tree-sitter output into the shared
// node model.
type LanguageFrontend interface {
	Language() *sitter.Language
	Extensions() []string
	Lower(n *sitter.Node, src []byte) *node.Node
}

// Parser wraps the tree-sitter front-end for a single language.
type Parser struct {
	lang LanguageFrontend
}

// NewParser creates a parser for a given language.
func NewParser(langName string) (*Parser, error) {
	switch langName {
	case "kotlin":
		return &Parser{lang: &KotlinFrontend{}}, nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", langName)
	}
}

// Extensions returns the file extensions the parser accepts.
func (p *Parser) Extensions() []string {
	return p.lang.Extensions()
}

// ParseFile reads and parses one source file and returns the lowered file
// root, a block of top-level declarations.
func (p *Parser) ParseFile(path string) (*node.Node, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return p.Parse(src)
}

// Parse parses raw source and lowers it.
func (p *Parser) Parse(src []byte) (*node.Node, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(p.lang.Language())
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	return p.lang.Lower(tree.RootNode(), src), nil
}
