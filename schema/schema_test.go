package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNode_Kinds(t *testing.T) {
	require := require.New(t)
	compound := &Node{Name: "marker", Kind: KindCompound}
	leaf := &Node{Name: "color", Kind: KindLeaf, ValType: TypeColor}
	literal := &Node{Name: "type", Kind: KindLiteral, LiteralValue: "scatter"}

	require.True(compound.IsCompound())
	require.False(compound.IsLeaf())
	require.True(leaf.IsLeaf())
	require.True(literal.IsLiteral())
	require.Equal("compound", KindCompound.String())
	require.Equal("leaf", KindLeaf.String())
	require.Equal("literal", KindLiteral.String())
}

func TestNode_Naming(t *testing.T) {
	tests := []struct {
		name      string
		undercase string
		class     string
	}{
		{"marker", "marker", "Marker"},
		{"hoverlabel", "hoverlabel", "Hoverlabel"},
		{"error_x", "error_x", "ErrorX"},
		{"tickfont", "tickfont", "Tickfont"},
	}
	for _, tt := range tests {
		n := &Node{Name: tt.name, Kind: KindCompound}
		require.Equal(t, tt.undercase, n.Undercase())
		require.Equal(t, tt.class, n.ClassName())
	}
}

func TestNode_PropertyName(t *testing.T) {
	tests := []struct {
		name string
		prop string
	}{
		{"color", "color"},
		{"for", "for_"},
		{"from", "from_"},
		{"lambda", "lambda_"},
		{"size", "size"},
	}
	for _, tt := range tests {
		n := &Node{Name: tt.name, Kind: KindLeaf}
		require.Equal(t, tt.prop, n.PropertyName())
	}
}

func TestNode_ValidatorClassName(t *testing.T) {
	n := &Node{Name: "error_x", Kind: KindLeaf}
	require.Equal(t, "ErrorXValidator", n.ValidatorClassName())
}

func TestNode_Paths(t *testing.T) {
	require := require.New(t)

	root := &Node{Name: "scatter", Kind: KindCompound}
	require.Equal("", root.ParentPathString())
	require.Equal("", root.ParentDotPath())
	require.Equal("BaseTraceType", root.BaseClass())

	nested := &Node{Name: "tickfont", Kind: KindCompound, Path: []string{"layout", "xaxis"}}
	require.Equal("layout.xaxis", nested.ParentPathString())
	require.Equal(".layout.xaxis", nested.ParentDotPath())
	require.Equal("BasePlotlyType", nested.BaseClass())
}

func TestNode_Children(t *testing.T) {
	require := require.New(t)
	n := &Node{
		Name: "scatter",
		Kind: KindCompound,
		Children: []*Node{
			{Name: "type", Kind: KindLiteral, LiteralValue: "scatter"},
			{Name: "x", Kind: KindLeaf, ValType: TypeDataArray},
			{Name: "marker", Kind: KindCompound},
			{Name: "y", Kind: KindLeaf, ValType: TypeDataArray},
		},
	}

	datatypes := n.ChildDatatypes()
	require.Len(datatypes, 3)
	require.Equal("x", datatypes[0].Name)
	require.Equal("marker", datatypes[1].Name)
	require.Equal("y", datatypes[2].Name)

	literals := n.ChildLiterals()
	require.Len(literals, 1)
	require.Equal("type", literals[0].Name)

	compounds := n.ChildCompounds()
	require.Len(compounds, 1)
	require.Equal("marker", compounds[0].Name)
	require.True(n.HasCompoundChildren())

	require.Equal(datatypes[1], n.Child("marker"))
	require.Nil(n.Child("missing"))
}

func TestNode_ElementType(t *testing.T) {
	require := require.New(t)

	elem := &Node{Name: "annotation", Kind: KindCompound}
	arr := &Node{Name: "annotations", Kind: KindCompound, ArrayElement: true, Children: []*Node{elem}}
	require.Equal(elem, arr.ElementType())

	// Not flagged as an array element.
	plain := &Node{Name: "marker", Kind: KindCompound, Children: []*Node{elem}}
	require.Nil(plain.ElementType())

	// Flagged but missing the referenced compound type.
	dangling := &Node{Name: "annotations", Kind: KindCompound, ArrayElement: true}
	require.Nil(dangling.ElementType())

	// Flagged with an ambiguous reference.
	ambiguous := &Node{
		Name:         "annotations",
		Kind:         KindCompound,
		ArrayElement: true,
		Children:     []*Node{elem, {Name: "other", Kind: KindCompound}},
	}
	require.Nil(ambiguous.ElementType())
}

func TestValidatorLookup(t *testing.T) {
	require := require.New(t)

	withDescriptor := &Node{
		Name: "color",
		Kind: KindLeaf,
		Validator: &ValidatorDescriptor{
			ClassName:   "ColorValidator",
			Description: "The 'color' property is a color",
		},
	}
	bare := &Node{Name: "size", Kind: KindLeaf}

	var lookup ValidatorLookup = NodeValidators{}
	d, ok := lookup.Validator(withDescriptor)
	require.True(ok)
	require.Equal("ColorValidator", d.ClassName)
	_, ok = lookup.Validator(bare)
	require.False(ok)

	fn := LookupFunc(func(n *Node) (*ValidatorDescriptor, bool) {
		if n.Name == "size" {
			return &ValidatorDescriptor{ClassName: "SizeValidator"}, true
		}
		return nil, false
	})
	d, ok = fn.Validator(bare)
	require.True(ok)
	require.Equal("SizeValidator", d.ClassName)
	_, ok = fn.Validator(withDescriptor)
	require.False(ok)
}
