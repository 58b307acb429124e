package phpsrc

import (
	"strconv"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

var singleQuoteUnescaper = strings.NewReplacer(`\\`, `\`, `\'`, `'`)

func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return node.Utf8Text(source)
}

func walkTreePreOrder(root *sitter.Node, visit func(*sitter.Node)) {
	if root == nil || visit == nil {
		return
	}

	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(node)

		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			child := node.Child(uint(i))
			if child != nil {
				stack = append(stack, child)
			}
		}
	}
}

// arrayElementPair splits `key => value` into its two expressions. Elements
// without an explicit key return nil for both.
func arrayElementPair(node *sitter.Node) (key, value *sitter.Node) {
	arrow := -1
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(uint(i))
		if child != nil && child.Kind() == "=>" {
			arrow = i
			break
		}
	}
	if arrow <= 0 {
		return nil, nil
	}
	for i := arrow - 1; i >= 0 && key == nil; i-- {
		if child := node.Child(uint(i)); child != nil && child.IsNamed() {
			key = child
		}
	}
	for i := arrow + 1; i < count && value == nil; i++ {
		if child := node.Child(uint(i)); child != nil && child.IsNamed() {
			value = child
		}
	}
	return key, value
}

// stringLiteral returns the value of a plain string literal node. Double
// quoted strings with interpolation are not plain literals.
func stringLiteral(node *sitter.Node, source []byte) (string, bool) {
	raw := strings.TrimLeft(nodeText(node, source), "bB")
	if len(raw) < 2 {
		return "", false
	}
	inner := raw[1 : len(raw)-1]

	switch node.Kind() {
	case "string":
		return singleQuoteUnescaper.Replace(inner), true
	case "encapsed_string":
		for i := uint(0); i < node.NamedChildCount(); i++ {
			switch node.NamedChild(i).Kind() {
			case "string_content", "string_value", "escape_sequence":
			default:
				return "", false
			}
		}
		if unquoted, err := strconv.Unquote(raw); err == nil {
			return unquoted, true
		}
		return inner, true
	}
	return "", false
}
