package symbols

import (
	"context"
	"strings"
	"sync"

	"github.com/arthur-debert/phint/pkg/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/php"
)

var phpDeclarationKinds = map[string]Kind{
	"class_declaration":     KindClass,
	"interface_declaration": KindInterface,
	"trait_declaration":     KindTrait,
	"enum_declaration":      KindEnum,
}

// PHPExtractor extracts classes, interfaces, traits and enums from PHP
// source using tree-sitter. Both `namespace A;` and `namespace A { }` forms
// are understood.
type PHPExtractor struct {
	mu     sync.Mutex
	parser *sitter.Parser
}

// NewPHPExtractor creates an extractor with its own tree-sitter parser
func NewPHPExtractor() *PHPExtractor {
	parser := sitter.NewParser()
	parser.SetLanguage(php.GetLanguage())
	return &PHPExtractor{parser: parser}
}

// Extract parses src and returns its declarations in source order
func (e *PHPExtractor) Extract(path string, src []byte) ([]Declaration, error) {
	// tree-sitter parsers are not safe for concurrent use
	e.mu.Lock()
	tree, err := e.parser.ParseCtx(context.Background(), nil, src)
	e.mu.Unlock()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTypeLoad, "failed to parse %s", path).
			WithDetail("path", path)
	}

	var decls []Declaration
	collectChildren(tree.RootNode(), src, "", path, &decls)
	return decls, nil
}

// collect records declarations under node and returns the namespace in
// effect for the node's following siblings.
func collect(node *sitter.Node, src []byte, namespace, path string, out *[]Declaration) string {
	nodeType := node.Type()

	if nodeType == "namespace_definition" {
		name := ""
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			name = strings.TrimPrefix(nameNode.Content(src), `\`)
		}
		if body := node.ChildByFieldName("body"); body != nil {
			collectChildren(body, src, name, path, out)
			return namespace
		}
		return name
	}

	if kind, ok := phpDeclarationKinds[nodeType]; ok {
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			*out = append(*out, Declaration{
				Name: qualify(namespace, nameNode.Content(src)),
				Kind: kind,
				File: path,
			})
		}
		return namespace
	}

	collectChildren(node, src, namespace, path, out)
	return namespace
}

func collectChildren(node *sitter.Node, src []byte, namespace, path string, out *[]Declaration) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		namespace = collect(node.NamedChild(i), src, namespace, path, out)
	}
}
