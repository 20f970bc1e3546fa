package rbtree

import "io"
import "fmt"
import "bufio"
import "strings"

import "github.com/bnclabs/gorbt/api"

// Dump tree into w, one node per line. Each line is indented by node's
// depth and tagged with its position, [B] for root, [L] for left child
// and [R] for right child, followed by key and color, (R) or (B).
func (t *Tree) Dump(w io.Writer) error {
	if !t.usable() || w == nil {
		return api.ErrorInvalidArgument
	}
	type entry struct {
		idx   uint32
		depth int
		pos   byte
	}

	buf := bufio.NewWriter(w)
	stack := make([]entry, 0, 2*t.maxdepth())
	if t.root != nilidx {
		stack = append(stack, entry{t.root, 0, 'B'})
	}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := t.nd(e.idx)
		line := fmt.Sprintf(
			"%s[%c] %s(%c)\n",
			strings.Repeat("  ", e.depth), e.pos,
			keystring(t.kind, nd.key), colortag(nd),
		)
		if _, err := buf.WriteString(line); err != nil {
			return err
		}
		if nd.right != nilidx {
			stack = append(stack, entry{nd.right, e.depth + 1, 'R'})
		}
		if nd.left != nilidx {
			stack = append(stack, entry{nd.left, e.depth + 1, 'L'})
		}
	}
	return buf.Flush()
}

// Dotdump to convert whole tree into dot script that can be visualized
// using graphviz.
func (t *Tree) Dotdump(w io.Writer) error {
	if !t.usable() || w == nil {
		return api.ErrorInvalidArgument
	}

	buf := bufio.NewWriter(w)
	buf.WriteString("digraph rbtree {\n  node[shape=record];\n")
	fmsg := "  n%d -> n%d [color=%v];\n"
	for idx := range t.indexes() {
		nd := t.nd(idx)
		label := strings.ReplaceAll(keystring(t.kind, nd.key), `"`, `\"`)
		fmt.Fprintf(buf, "  n%d [label=\"{%s}\", color=%v];\n",
			idx, label, colorname(nd))
		if nd.left != nilidx {
			fmt.Fprintf(buf, fmsg, idx, nd.left, colorname(t.nd(nd.left)))
		}
		if nd.right != nilidx {
			fmt.Fprintf(buf, fmsg, idx, nd.right, colorname(t.nd(nd.right)))
		}
	}
	buf.WriteString("}\n")
	return buf.Flush()
}

func colortag(nd *node) byte {
	if nd.black {
		return 'B'
	}
	return 'R'
}

func colorname(nd *node) string {
	if nd.black {
		return "black"
	}
	return "red"
}
