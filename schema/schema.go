// Package schema defines the materialized node tree consumed by the
// generator. A tree is built once by an upstream loader and is read-only
// for the whole generation run; nothing in this package or in compiler/gen
// mutates it.
package schema

import (
	"strings"

	"github.com/go-openapi/inflect"
)

// Kind discriminates the three node variants of the tree.
type Kind int

const (
	// KindCompound marks a node that generates a class definition.
	KindCompound Kind = iota + 1
	// KindLeaf marks a node that generates a scalar/array property.
	KindLeaf
	// KindLiteral marks a fixed, read-only value baked into instances.
	KindLiteral
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCompound:
		return "compound"
	case KindLeaf:
		return "leaf"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// A Node is one entry in the schema tree: a class (compound), a property
// (leaf) or a baked-in constant (literal). Children keep their insertion
// order; that order fixes both accessor emission order and constructor
// parameter order.
type Node struct {
	// Name is the schema identifier, unique among siblings.
	Name string
	// Kind selects the node variant.
	Kind Kind
	// ValType holds the declared value type of a leaf node.
	ValType ValType
	// ArrayOK indicates the property accepts a single value or an
	// ordered sequence of such values.
	ArrayOK bool
	// ArrayElement indicates the node's values are a homogeneous
	// sequence of a referenced compound element type.
	ArrayElement bool
	// Description is the free-text documentation, possibly empty.
	Description string
	// Children holds the child nodes in insertion order.
	Children []*Node
	// Path holds the ancestor names from the tree root, excluding the
	// node itself.
	Path []string
	// Validator optionally documents and wires runtime validation.
	Validator *ValidatorDescriptor
	// LiteralValue carries the fixed value of a literal node.
	LiteralValue string
}

// IsCompound reports if the node generates a class.
func (n *Node) IsCompound() bool { return n.Kind == KindCompound }

// IsLeaf reports if the node generates a scalar/array property.
func (n *Node) IsLeaf() bool { return n.Kind == KindLeaf }

// IsLiteral reports if the node is a fixed, read-only value.
func (n *Node) IsLiteral() bool { return n.Kind == KindLiteral }

// Child returns the child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildDatatypes returns the children that surface as settable properties
// (everything except literals), in insertion order.
func (n *Node) ChildDatatypes() []*Node {
	var nodes []*Node
	for _, c := range n.Children {
		if !c.IsLiteral() {
			nodes = append(nodes, c)
		}
	}
	return nodes
}

// ChildLiterals returns the literal children in insertion order.
func (n *Node) ChildLiterals() []*Node {
	var nodes []*Node
	for _, c := range n.Children {
		if c.IsLiteral() {
			nodes = append(nodes, c)
		}
	}
	return nodes
}

// ChildCompounds returns the compound children in insertion order.
func (n *Node) ChildCompounds() []*Node {
	var nodes []*Node
	for _, c := range n.Children {
		if c.IsCompound() {
			nodes = append(nodes, c)
		}
	}
	return nodes
}

// HasCompoundChildren reports if any child is itself a compound type.
func (n *Node) HasCompoundChildren() bool {
	return len(n.ChildCompounds()) > 0
}

// ElementType returns the referenced compound element type of an
// array-element node. It returns nil if the node is not flagged as an
// array element or does not reference exactly one compound child.
func (n *Node) ElementType() *Node {
	if !n.ArrayElement {
		return nil
	}
	if cs := n.ChildCompounds(); len(cs) == 1 {
		return cs[0]
	}
	return nil
}

// Undercase returns the snake-form of the node name, used for package
// and module references in the generated source.
func (n *Node) Undercase() string {
	return inflect.Underscore(n.Name)
}

// ClassName returns the generated class name for the node.
func (n *Node) ClassName() string {
	return inflect.Camelize(n.Name)
}

// ValidatorClassName returns the conventional validator class name for
// the node. An external ValidatorLookup may override it.
func (n *Node) ValidatorClassName() string {
	return inflect.Camelize(n.Name) + "Validator"
}

// PropertyName returns the generated property identifier. Names that
// collide with a Python keyword gain a trailing underscore; the escape is
// applied uniformly wherever the property is referenced.
func (n *Node) PropertyName() string {
	name := n.Undercase()
	if pythonKeywords[name] {
		return name + "_"
	}
	return name
}

// ParentPathString returns the dotted ancestor path of the node
// ("layout.xaxis"), or the empty string for root-level nodes.
func (n *Node) ParentPathString() string {
	return strings.Join(n.Path, ".")
}

// ParentDotPath returns the ancestor path as a package-path suffix with a
// leading dot ("" for root-level nodes), ready to splice after a package
// root in generated imports.
func (n *Node) ParentDotPath() string {
	if len(n.Path) == 0 {
		return ""
	}
	return "." + strings.Join(n.Path, ".")
}

// BaseClass returns the generated class's base type: root-level compounds
// extend the trace base, nested compounds the plain property base.
func (n *Node) BaseClass() string {
	if len(n.Path) == 0 {
		return "BaseTraceType"
	}
	return "BasePlotlyType"
}

// pythonKeywords is the reserved-word set of the target language; a
// generated identifier must never collide with one of these.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true,
	"class": true, "continue": true, "def": true, "del": true,
	"elif": true, "else": true, "except": true, "finally": true,
	"for": true, "from": true, "global": true, "if": true, "import": true,
	"in": true, "is": true, "lambda": true, "nonlocal": true, "not": true,
	"or": true, "pass": true, "raise": true, "return": true, "try": true,
	"while": true, "with": true, "yield": true,
}
