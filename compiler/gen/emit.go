package gen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adehad/plotlygen/schema"
)

// ReservedLiterals names the literal children that surface as read-only
// accessors on generated classes. Only the trace discriminator is
// reserved today; the set exists so further reserved names need no new
// emission path.
var ReservedLiterals = map[string]bool{
	"type": true,
}

// An Emitter builds Python class source for compound schema nodes. It is
// safe for concurrent use: emission reads the tree and the configuration
// only, and every call returns a freshly built artifact.
type Emitter struct {
	cfg        *Config
	validators schema.ValidatorLookup
}

// NewEmitter creates an emitter for the given configuration. A nil
// configuration means the defaults. Validator descriptors are read from
// the nodes themselves unless WithValidators installs an external lookup.
func NewEmitter(cfg *Config) *Emitter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Emitter{cfg: cfg, validators: schema.NodeValidators{}}
}

// WithValidators installs an external validator-descriptor lookup.
func (e *Emitter) WithValidators(l schema.ValidatorLookup) *Emitter {
	if l != nil {
		e.validators = l
	}
	return e
}

// Emit builds the full class source text for a compound node: import
// references, accessor/mutator pairs for every settable property in tree
// order, read-only literal accessors, the private metadata accessors, and
// the constructor. The operation is atomic: it returns either a complete
// artifact or an error, and a failed emission leaves no state behind that
// could affect another node's emission.
func (e *Emitter) Emit(n *schema.Node) (string, error) {
	if n == nil {
		return "", NewNotCompoundError("", 0)
	}
	if !n.IsCompound() {
		return "", NewNotCompoundError(n.Name, n.Kind)
	}
	if err := checkChildren(n); err != nil {
		return "", err
	}

	undercase := n.Undercase()
	class := n.ClassName()
	subtypes := n.ChildDatatypes()
	var literals []*schema.Node
	for _, c := range n.ChildLiterals() {
		if ReservedLiterals[c.Name] {
			literals = append(literals, c)
		}
	}

	var b strings.Builder

	// Import references: typing helpers, the base class, the node's own
	// validator package, and its graph_objs package when any child is
	// itself compound.
	b.WriteString("from typing import *\n")
	b.WriteString("from numbers import Number\n")
	fmt.Fprintf(&b, "from %s.basedatatypes import %s\n", e.cfg.Package, n.BaseClass())
	fmt.Fprintf(&b, "from %s.validators%s import %s as v_%s\n",
		e.cfg.Package, n.ParentDotPath(), undercase, undercase)
	if n.HasCompoundChildren() {
		fmt.Fprintf(&b, "from %s.graph_objs%s import %s as d_%s\n",
			e.cfg.Package, n.ParentDotPath(), undercase, undercase)
	}

	fmt.Fprintf(&b, "\n\nclass %s(%s):\n", class, n.BaseClass())

	// Property accessor/mutator pairs, in tree insertion order.
	for _, sub := range subtypes {
		propType, err := e.propType(n, sub)
		if err != nil {
			return "", err
		}
		prop := sub.PropertyName()
		banner := strings.Repeat("-", len(prop))
		fmt.Fprintf(&b, "\n    # %s\n    # %s\n    @property\n    def %s(self) -> %s:\n        \"\"\"\n%s\n        \"\"\"\n        return self['%s']",
			prop, banner, prop, propType, e.propertyDocstring(sub), prop)
		fmt.Fprintf(&b, "\n\n    @%s.setter\n    def %s(self, val):\n        self['%s'] = val\n",
			prop, prop, prop)
	}

	// Read-only literal accessors: never user-settable, they read the
	// private slot seeded by the constructor.
	for _, lit := range literals {
		prop := lit.PropertyName()
		banner := strings.Repeat("-", len(prop))
		fmt.Fprintf(&b, "\n    # %s\n    # %s\n    @property\n    def %s(self) -> str:\n        return self._props['%s']\n",
			prop, banner, prop, prop)
	}

	// Private metadata accessors used by the base class: the parent path
	// for qualified property resolution, and the parameter documentation
	// block for introspection.
	fmt.Fprintf(&b, "\n\n    # property parent name\n    # --------------------\n    @property\n    def _parent_path_str(self) -> str:\n        return '%s'",
		n.ParentPathString())
	b.WriteString("\n\n    # Self properties description\n    # ---------------------------\n    @property\n    def _prop_descriptions(self) -> str:\n        return \"\"\"\\")
	b.WriteString(e.paramsDocstring(n, docIndent))
	b.WriteString("\n        \"\"\"")

	// Constructor: signature, docstring, then the body that delegates to
	// the base initializer, registers validators, populates properties
	// (validation is the base class's side effect), and seeds literals.
	b.WriteString("\n    def __init__(self")
	writeParams(&b, BuildParams(n.Children))
	b.WriteString(e.classDocstring(n, fmt.Sprintf("Construct a new %s object", class)))

	fmt.Fprintf(&b, "\n        super().__init__('%s', **kwargs)\n\n        # Initialize validators\n        # ---------------------",
		n.PropertyName())
	for _, sub := range subtypes {
		fmt.Fprintf(&b, "\n        self._validators['%s'] = v_%s.%s()",
			sub.PropertyName(), undercase, e.validatorClass(sub))
	}

	b.WriteString("\n\n        # Populate data dict with properties\n        # ----------------------------------")
	for _, sub := range subtypes {
		prop := sub.PropertyName()
		fmt.Fprintf(&b, "\n        self.%s = %s", prop, prop)
	}

	if len(literals) > 0 {
		b.WriteString("\n\n        # Read-only literals\n        # ------------------")
		for _, lit := range literals {
			fmt.Fprintf(&b, "\n        self._props['%s'] = '%s'",
				lit.PropertyName(), lit.LiteralValue)
		}
	}

	return b.String(), nil
}

// propType resolves a child's Python type expression. Compound children
// are resolved structurally (a direct class reference, or an ordered
// sequence of the referenced element class); leaf children go through the
// closed type table.
func (e *Emitter) propType(n, c *schema.Node) (string, error) {
	switch {
	case c.ArrayElement:
		elem := c.ElementType()
		if elem == nil {
			return "", NewSchemaInvariantError(n.Name, c.Name,
				"array-element node must reference exactly one compound element type")
		}
		return fmt.Sprintf("Tuple[d_%s.%s]", n.Undercase(), elem.ClassName()), nil
	case c.IsCompound():
		return fmt.Sprintf("d_%s.%s", n.Undercase(), c.ClassName()), nil
	default:
		expr, err := MapType(c.ValType, c.ArrayOK)
		if err != nil {
			var typeErr *UnknownTypeError
			if errors.As(err, &typeErr) {
				typeErr.Node = c.Name
			}
			return "", err
		}
		return expr, nil
	}
}

// validatorClass returns the validator class registered for a child:
// the externally looked-up class name when one exists, the conventional
// derived name otherwise.
func (e *Emitter) validatorClass(c *schema.Node) string {
	if d, ok := e.validators.Validator(c); ok && d.ClassName != "" {
		return d.ClassName
	}
	return c.ValidatorClassName()
}

// checkChildren verifies the sibling-uniqueness invariant before any
// child is dereferenced.
func checkChildren(n *schema.Node) error {
	seen := make(map[string]struct{}, len(n.Children))
	for _, c := range n.Children {
		if c.Name == "" {
			return NewSchemaInvariantError(n.Name, "", "child name cannot be empty")
		}
		if _, ok := seen[c.Name]; ok {
			return NewSchemaInvariantError(n.Name, c.Name, "child name redeclared")
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}
