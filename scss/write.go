package scss

import (
	"fmt"
	"io"
	"strings"
)

const defaultIndent = "  "

// WriteTo renders the forest as SCSS text, one rule block per root in forest
// order with a blank line between blocks, implementing io.WriterTo. Root
// selectors are written as ".name", nested ones as "&name" - the child name
// already carries its "__" or "--" marker. Rule bodies are empty placeholders.
func (f *Forest) WriteTo(w io.Writer) (int64, error) {
	indent := f.Indent
	if indent == "" {
		indent = defaultIndent
	}

	var total int64
	for i, root := range f.Roots() {
		n, err := writeNode(w, root, "."+root.Name, indent, 0)
		total += int64(n)
		if err != nil {
			return total, err
		}
		if i < f.Len()-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the SCSS text of the forest.
func (f *Forest) String() string {
	var sb strings.Builder
	f.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func writeNode(w io.Writer, node *Node, selector, indent string, depth int) (int, error) {
	prefix := strings.Repeat(indent, depth)

	total, err := fmt.Fprintf(w, "%s%s {\n", prefix, selector)
	if err != nil {
		return total, err
	}

	for _, child := range node.Children {
		n, err := writeNode(w, child, "&"+child.Name, indent, depth+1)
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err := fmt.Fprintf(w, "%s}\n", prefix)
	total += n
	return total, err
}
