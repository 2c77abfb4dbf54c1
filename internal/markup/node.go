package markup

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// Node is a read-only view of one element (or the document) in the tree.
type Node struct {
	n *html.Node
}

func (n Node) selection() *goquery.Selection {
	return goquery.NewDocumentFromNode(n.n).Selection
}

func wrap(sel *goquery.Selection) []Node {
	nodes := make([]Node, 0, sel.Length())
	for _, n := range sel.Nodes {
		nodes = append(nodes, Node{n: n})
	}
	return nodes
}

// Tag returns the lower-case element name, or "" for non-elements.
func (n Node) Tag() string {
	if n.n == nil || n.n.Type != html.ElementNode {
		return ""
	}
	return n.n.Data
}

// FindAll returns every descendant element with the tag, in document order.
func (n Node) FindAll(tag string) []Node {
	return wrap(n.selection().Find(tagSelector(tag)))
}

// FindByClass returns descendants with the tag that carry class among their
// class tokens. An empty tag matches any element.
func (n Node) FindByClass(tag, class string) []Node {
	sel := n.selection().Find(tagSelector(tag)).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.HasClass(class)
	})
	return wrap(sel)
}

// First returns the first descendant with the tag.
func (n Node) First(tag string) (Node, bool) {
	return first(n.selection().Find(tagSelector(tag)))
}

// FirstByClass returns the first descendant with the tag and class.
func (n Node) FirstByClass(tag, class string) (Node, bool) {
	nodes := n.FindByClass(tag, class)
	if len(nodes) == 0 {
		return Node{}, false
	}
	return nodes[0], true
}

func first(sel *goquery.Selection) (Node, bool) {
	if sel.Length() == 0 {
		return Node{}, false
	}
	return Node{n: sel.Get(0)}, true
}

func tagSelector(tag string) string {
	if tag == "" {
		return "*"
	}
	return tag
}

// Attr returns the attribute value and whether it is present.
func (n Node) Attr(name string) (string, bool) {
	if n.n == nil {
		return "", false
	}
	for _, a := range n.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether class is one of the element's class tokens.
func (n Node) HasClass(class string) bool {
	if n.n == nil {
		return false
	}
	return n.selection().HasClass(class)
}

// Text returns the node's descendant text with whitespace runs collapsed.
func (n Node) Text() string {
	if n.n == nil {
		return ""
	}
	return NormalizeWhitespace(n.selection().Text())
}

// XPath evaluates expr relative to the node.
func (n Node) XPath(expr string) ([]Node, error) {
	found, err := htmlquery.QueryAll(n.n, expr)
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, len(found))
	for i, f := range found {
		nodes[i] = Node{n: f}
	}
	return nodes, nil
}

// NormalizeWhitespace collapses multiple spaces into one
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
