package swift

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/swift"
)

// Tree holds a parsed Swift source file together with the source it was
// parsed from. The source is required to resolve node text and positions.
type Tree struct {
	Root    *sitter.Node
	Source  []byte
	Locator *Locator

	tree *sitter.Tree
}

// Close releases the underlying tree-sitter tree
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
	}
}

// Parser parses Swift source code into a syntax tree
type Parser struct{}

// NewParser creates a new Swift parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseSource parses Swift source code from a byte slice
func (p *Parser) ParseSource(ctx context.Context, src []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(swift.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}

	return &Tree{
		Root:    tree.RootNode(),
		Source:  src,
		Locator: NewLocator(src),
		tree:    tree,
	}, nil
}

// ParseFile parses a Swift source file
func (p *Parser) ParseFile(ctx context.Context, filename string) (*Tree, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return p.ParseSource(ctx, src)
}
