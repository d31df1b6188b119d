package schema

// A ValidatorDescriptor documents and wires the runtime validator of a
// leaf property: the validator class registered in the generated
// constructor and the multi-line description spliced into the property
// docstring.
type ValidatorDescriptor struct {
	// ClassName is the validator class to instantiate. Empty means the
	// conventional name derived from the node name.
	ClassName string
	// Description is the validator's multi-line documentation. Lines
	// after the first carry the validator baseline indent of 4 spaces.
	Description string
}

// A ValidatorLookup resolves the optional validator descriptor for a
// node. Implementations are provided by the schema-loading collaborator;
// the generator never synthesizes descriptors on its own.
type ValidatorLookup interface {
	// Validator returns the descriptor for the node and whether one
	// exists.
	Validator(n *Node) (*ValidatorDescriptor, bool)
}

// LookupFunc adapts a function to the ValidatorLookup interface.
type LookupFunc func(n *Node) (*ValidatorDescriptor, bool)

// Validator implements ValidatorLookup.
func (f LookupFunc) Validator(n *Node) (*ValidatorDescriptor, bool) {
	return f(n)
}

// NodeValidators is the default lookup: it reads the descriptor carried
// inline on the node itself.
type NodeValidators struct{}

// Validator implements ValidatorLookup.
func (NodeValidators) Validator(n *Node) (*ValidatorDescriptor, bool) {
	if n.Validator == nil {
		return nil, false
	}
	return n.Validator, true
}
