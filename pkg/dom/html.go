package dom

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// OuterHTML serializes the element and its subtree as HTML. The output
// is a debug representation for snapshots, the inspector, and tests;
// it is not a rendering pipeline. Attributes and style properties are
// emitted in sorted order so the output is deterministic.
func (e *Element) OuterHTML() string {
	var b strings.Builder
	e.writeHTML(&b)
	return b.String()
}

func (e *Element) writeHTML(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.tag)

	keys := make([]string, 0, len(e.attrs)+len(e.props))
	for k := range e.attrs {
		keys = append(keys, k)
	}
	for k := range e.props {
		keys = append(keys, "\x00"+k) // props sort before attrs per key below
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.HasPrefix(k, "\x00") {
			name := k[1:]
			v := e.props[name]
			if name == "className" {
				name = "class"
			}
			if bv, ok := v.(bool); ok {
				if bv {
					fmt.Fprintf(b, " %s", name)
				}
				continue
			}
			fmt.Fprintf(b, " %s=%q", name, html.EscapeString(fmt.Sprintf("%v", v)))
			continue
		}
		fmt.Fprintf(b, " %s=%q", k, html.EscapeString(e.attrs[k]))
	}

	if len(e.style) > 0 {
		props := make([]string, 0, len(e.style))
		for k := range e.style {
			props = append(props, k)
		}
		sort.Strings(props)
		parts := make([]string, 0, len(props))
		for _, k := range props {
			parts = append(parts, k+":"+e.style[k])
		}
		fmt.Fprintf(b, " style=%q", strings.Join(parts, ";"))
	}

	b.WriteByte('>')
	for _, c := range e.children {
		switch n := c.(type) {
		case *Text:
			b.WriteString(html.EscapeString(n.Data()))
		case *Element:
			n.writeHTML(b)
		}
	}
	fmt.Fprintf(b, "</%s>", e.tag)
}
