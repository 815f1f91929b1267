package vdom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// bodyContext is the parsing context for fragments: content is parsed as if
// it appeared inside <body>.
var bodyContext = &html.Node{
	Type:     html.ElementNode,
	Data:     "body",
	DataAtom: atom.Body,
}

// ParseFragment parses an HTML fragment into detached nodes.
// Comments and doctypes are dropped.
func ParseFragment(r io.Reader) ([]*VNode, error) {
	nodes, err := html.ParseFragment(r, bodyContext)
	if err != nil {
		return nil, fmt.Errorf("vdom: parse fragment: %w", err)
	}

	out := make([]*VNode, 0, len(nodes))
	for _, n := range nodes {
		if v := convert(n); v != nil {
			out = append(out, v)
		}
	}
	return out, nil
}

// ParseFragmentString is ParseFragment for an in-memory string.
func ParseFragmentString(s string) ([]*VNode, error) {
	return ParseFragment(strings.NewReader(s))
}

func convert(n *html.Node) *VNode {
	switch n.Type {
	case html.TextNode:
		return Text(n.Data)

	case html.ElementNode:
		el := &VNode{
			Kind:  KindElement,
			Tag:   n.Data,
			Props: make(Props, len(n.Attr)),
		}
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			el.Props[key] = a.Val
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				el.AppendChild(child)
			}
		}
		return el

	case html.DocumentNode:
		frag := &VNode{Kind: KindFragment}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				child.Parent = frag
				frag.Children = append(frag.Children, child)
			}
		}
		return frag

	default:
		return nil
	}
}

// markupText extracts the character data from an HTML snippet.
func markupText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

func fmtValue(v any) string {
	return fmt.Sprintf("%v", v)
}
