package gen

import (
	"fmt"
	"strings"

	"github.com/adehad/plotlygen/schema"
)

// docIndent is the body indent of a generated docstring (class body plus
// one level).
const docIndent = 8

// propertyDocstring builds the docstring body of a property accessor:
// the wrapped node description, the validator's reindented description,
// or both separated by a blank line. Empty metadata yields an empty body;
// it never fails.
func (e *Emitter) propertyDocstring(n *schema.Node) string {
	var desc string
	if strings.TrimSpace(n.Description) != "" {
		desc = Wrap(n.Description, e.cfg.Width, docIndent)
	}
	var vdesc string
	if d, ok := e.validators.Validator(n); ok && strings.TrimSpace(d.Description) != "" {
		vdesc = Reindent(d.Description, docIndent)
	}
	switch {
	case desc != "" && vdesc != "":
		return desc + "\n    \n        " + vdesc
	case vdesc != "":
		return "        " + vdesc
	default:
		return desc
	}
}

// paramsDocstring builds the per-parameter documentation block shared by
// the constructor docstring and the _prop_descriptions accessor: one
// entry per constructor-eligible child, in insertion order, each entry a
// name line followed by the wrapped description one level deeper. A
// compound child without a description documents itself as an instance of
// its generated class.
func (e *Emitter) paramsDocstring(n *schema.Node, indent int) string {
	var b strings.Builder
	pad := strings.Repeat(" ", indent)
	for _, c := range n.ChildDatatypes() {
		b.WriteString("\n" + pad + c.PropertyName())
		desc := c.Description
		if strings.TrimSpace(desc) == "" {
			if c.IsCompound() {
				desc = e.qualifiedClass(n, c) + " instance or dict with compatible properties"
			} else {
				continue
			}
		}
		b.WriteString("\n" + Wrap(desc, e.cfg.Width, indent+4))
	}
	return b.String()
}

// classDocstring builds the complete constructor docstring: header line,
// wrapped class description when present, the Parameters section in tree
// order, and the Returns section naming the class.
func (e *Emitter) classDocstring(n *schema.Node, header string) string {
	var desc string
	if strings.TrimSpace(n.Description) != "" {
		desc = Wrap(n.Description, e.cfg.Width, docIndent) + "\n\n"
	}
	// The separator after the header carries the body indent, like the
	// spacer line in propertyDocstring; trailing whitespace is the
	// external formatter's concern.
	var b strings.Builder
	fmt.Fprintf(&b, "\n        \"\"\"\n        %s\n        \n%s        Parameters\n        ----------", header, desc)
	b.WriteString(e.paramsDocstring(n, docIndent))
	fmt.Fprintf(&b, `

        Returns
        -------
        %s
        """`, n.ClassName())
	return b.String()
}

// qualifiedClass returns the fully qualified generated-class reference of
// a compound child of n, for use in parameter documentation.
func (e *Emitter) qualifiedClass(n, child *schema.Node) string {
	return fmt.Sprintf("%s.graph_objs%s.%s.%s",
		e.cfg.Package, n.ParentDotPath(), n.Undercase(), child.ClassName())
}
