package polytree

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Empty subtrees are drawn as small black circles.
func Tree2Dot[K cmp.Ordered, V any](t Tree[K, V], w io.Writer) error {
	if t == nil {
		return ErrIllegalArguments
	}
	var nodelist, edgelist strings.Builder
	ids := 0
	var dot func(node Tree[K, V]) int
	dot = func(node Tree[K, V]) int {
		ids++
		ID := ids
		n, ok := node.(*NonEmpty[K, V])
		if !ok {
			fmt.Fprintf(&nodelist, "\"%d\" %s;\n", ID, emptyNode())
			return ID
		}
		label := fmt.Sprintf("%v\\n“%v”", n.key, n.value)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, escapeDot(label), nodeDotStyles())
		l := dot(n.left)
		r := dot(n.right)
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, l)
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, r)
		return ID
	}
	dot(t)
	if _, err := io.WriteString(w, "strict digraph {\n"); err != nil {
		T().Errorf("tree DOT: %s", err.Error())
		return err
	}
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	_, err := io.WriteString(w, "}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,shape=circle,fixedsize=true,width=.15]"
}

func nodeDotStyles() string {
	return ",style=filled,color=black,fillcolor=\"#a3d7e4\",shape=box"
}

func escapeDot(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}
