// Package phpsrc reads the few facts mvcpath needs out of PHP sources:
// string values of array keys in config files and the methods declared by
// controller classes. Parsing is done with tree-sitter.
package phpsrc

import (
	"context"
	"errors"
	"fmt"
	"os"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_php "github.com/tree-sitter/tree-sitter-php/bindings/go"
)

// ErrMalformed is returned when a source file does not parse cleanly.
var ErrMalformed = errors.New("malformed php source")

var phpLanguage = sitter.NewLanguage(tree_sitter_php.LanguagePHP())

// Method is a method declared inside a class body.
type Method struct {
	Class string
	Name  string
	Line  int // 1-based
}

// Parser parses PHP files on demand. A fresh tree-sitter parser is created
// for every call, so a Parser is safe for concurrent use.
type Parser struct{}

// New returns a Parser.
func New() *Parser {
	return &Parser{}
}

// FindStringValues parses file and collects the string values of every
// array entry whose key is the string literal key, e.g. 'theme' => 'classic'.
// Entries whose key or value is not a plain string literal are skipped.
func (p *Parser) FindStringValues(ctx context.Context, file, key string) (map[string]struct{}, error) {
	values := map[string]struct{}{}
	err := p.parseFile(ctx, file, func(root *sitter.Node, source []byte) {
		walkTreePreOrder(root, func(node *sitter.Node) {
			if node.Kind() != "array_element_initializer" {
				return
			}
			k, v := arrayElementPair(node)
			if k == nil || v == nil {
				return
			}
			name, ok := stringLiteral(k, source)
			if !ok || name != key {
				return
			}
			if value, ok := stringLiteral(v, source); ok && value != "" {
				values[value] = struct{}{}
			}
		})
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// Methods returns the methods of every class declared in file, in source
// order.
func (p *Parser) Methods(ctx context.Context, file string) ([]Method, error) {
	var methods []Method
	err := p.parseFile(ctx, file, func(root *sitter.Node, source []byte) {
		walkTreePreOrder(root, func(node *sitter.Node) {
			if node.Kind() != "class_declaration" {
				return
			}
			class := nodeText(node.ChildByFieldName("name"), source)
			body := node.ChildByFieldName("body")
			if body == nil {
				return
			}
			for i := uint(0); i < body.NamedChildCount(); i++ {
				member := body.NamedChild(i)
				if member == nil || member.Kind() != "method_declaration" {
					continue
				}
				name := member.ChildByFieldName("name")
				if name == nil {
					continue
				}
				methods = append(methods, Method{
					Class: class,
					Name:  nodeText(name, source),
					Line:  int(name.StartPosition().Row) + 1,
				})
			}
		})
	})
	if err != nil {
		return nil, err
	}
	return methods, nil
}

// parseFile reads and parses file, then hands the syntax tree to visit.
func (p *Parser) parseFile(ctx context.Context, file string, visit func(root *sitter.Node, source []byte)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	source, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}

	parser, err := newParser()
	if err != nil {
		return fmt.Errorf("creating php parser: %w", err)
	}
	defer parser.Close()

	tree := parser.Parse(source, nil)
	if tree == nil {
		return fmt.Errorf("parsing %s: %w", file, ErrMalformed)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.HasError() {
		return fmt.Errorf("parsing %s: %w", file, ErrMalformed)
	}
	visit(root, source)
	return nil
}

func newParser() (*sitter.Parser, error) {
	parser := sitter.NewParser()
	if err := parser.SetLanguage(phpLanguage); err != nil {
		parser.Close()
		return nil, err
	}
	return parser, nil
}
