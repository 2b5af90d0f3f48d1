package rss

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// Namespace-agnostic view over the parsed XML tree. Elements are matched by
// local name only: feeds freely mix prefixed and unprefixed spellings of the
// same element, and per RSS consumer convention the prefix binding is
// ignored rather than resolved. These helpers are the only XML surface the
// extraction code touches, so the underlying engine can be swapped without
// touching it.

// localName strips any "prefix:" from an element or attribute name.
// xmlquery already stores local names, but feeds with undeclared prefixes
// can leave the raw spelling behind.
func localName(name string) string {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// firstDirectChild returns the first immediate child element of parent with
// the given local name, or nil. Nested descendants are not matched.
func firstDirectChild(parent *xmlquery.Node, name string) *xmlquery.Node {
	if parent == nil {
		return nil
	}
	for child := parent.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode && localName(child.Data) == name {
			return child
		}
	}
	return nil
}

// directChildren returns all immediate child elements of parent with the
// given local name, in document order.
func directChildren(parent *xmlquery.Node, name string) []*xmlquery.Node {
	var matches []*xmlquery.Node
	if parent == nil {
		return matches
	}
	for child := parent.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode && localName(child.Data) == name {
			matches = append(matches, child)
		}
	}
	return matches
}

// firstDescendant returns the first element anywhere under node with the
// given local name, in document order, or nil.
func firstDescendant(node *xmlquery.Node, name string) *xmlquery.Node {
	if node == nil {
		return nil
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode && localName(child.Data) == name {
			return child
		}
		if found := firstDescendant(child, name); found != nil {
			return found
		}
	}
	return nil
}

// nodeText returns the node's own text content when it has any, falling
// back to the concatenated text of its descendants. The result is trimmed;
// "" means the node is nil or carries no text.
func nodeText(node *xmlquery.Node) string {
	if node == nil {
		return ""
	}
	var direct strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.TextNode || child.Type == xmlquery.CharDataNode {
			direct.WriteString(child.Data)
		}
	}
	if text := strings.TrimSpace(direct.String()); text != "" {
		return text
	}
	return strings.TrimSpace(node.InnerText())
}

// attrValue returns the trimmed value of the named attribute, matched by
// local name. The second result is false when the attribute is absent.
func attrValue(node *xmlquery.Node, name string) (string, bool) {
	if node == nil {
		return "", false
	}
	for _, a := range node.Attr {
		if localName(a.Name.Local) == name {
			return strings.TrimSpace(a.Value), true
		}
	}
	return "", false
}
