/*
Package html reads and writes polytree maps as HTML definition lists.

An entry is written as a pair of a <dt> element for the key and a <dd> element
for the value:

	<dl><dt>5</dt><dd>Five</dd><dt>10</dt><dd>Ten</dd></dl>

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/polytree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'polytree'
func tracer() tracing.Trace {
	return tracing.Select("polytree")
}

// DefinitionList creates an HTML <dl> element node with the entries of t, in
// ascending key order. Keys and values are formatted with fmt.Sprint.
func DefinitionList[K cmp.Ordered, V any](t polytree.Tree[K, V]) *html.Node {
	dl := &html.Node{Type: html.ElementNode, Data: "dl", DataAtom: atom.Dl}
	if t == nil {
		return dl
	}
	t.InorderTraversal(polytree.TaskFunc[K, V](func(k K, v V) {
		dl.AppendChild(element(atom.Dt, fmt.Sprint(k)))
		dl.AppendChild(element(atom.Dd, fmt.Sprint(v)))
	}))
	return dl
}

func element(a atom.Atom, text string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

// Render writes the entries of t as an HTML definition list to w.
func Render[K cmp.Ordered, V any](t polytree.Tree[K, V], w io.Writer) error {
	if t == nil {
		return polytree.ErrIllegalArguments
	}
	return html.Render(w, DefinitionList(t))
}

// MapFromHTML creates a map from the definition lists of an HTML fragment.
//
// Every <dt> element sets the key for the <dd> element following it. Text
// content of both is trimmed of surrounding white space. A <dd> without a
// preceding <dt> is skipped; keys occurring more than once keep the last value.
func MapFromHTML(input io.Reader) (*polytree.Map[string, string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	m := polytree.NewMap[string, string]()
	var key *string
	for _, n := range nodes {
		collectEntries(n, m, &key)
	}
	return m, nil
}

func collectEntries(n *html.Node, m *polytree.Map[string, string], key **string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Dt:
			k := innerText(n)
			*key = &k
			return
		case atom.Dd:
			if *key == nil {
				tracer().Debugf("html: <dd> without key, skipped")
				return
			}
			m.Put(**key, innerText(n))
			*key = nil
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectEntries(c, m, key)
	}
}

func innerText(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.TrimSpace(b.String())
}
