package gen

import (
	"fmt"
	"strings"

	"github.com/adehad/plotlygen/schema"
)

// A Param is one keyword parameter of a generated constructor.
type Param struct {
	// Name is the escaped property identifier.
	Name string
	// Default is the unset sentinel expression.
	Default string
}

// BuildParams derives the constructor parameter list for the given
// children: one optional keyword parameter per non-literal child, in
// insertion order. Literal children never appear; they are not externally
// settable. No parameter is required, so every compound object is
// constructible with zero arguments.
func BuildParams(children []*schema.Node) []Param {
	var params []Param
	for _, c := range children {
		if c.IsLiteral() {
			continue
		}
		params = append(params, Param{Name: c.PropertyName(), Default: "None"})
	}
	return params
}

// writeParams renders the parameter list after "def __init__(self",
// closing with the variadic keyword catch-all and the signature colon.
func writeParams(b *strings.Builder, params []Param) {
	for _, p := range params {
		fmt.Fprintf(b, ",\n            %s=%s", p.Name, p.Default)
	}
	b.WriteString(",\n            **kwargs")
	b.WriteString("\n        ):")
}
