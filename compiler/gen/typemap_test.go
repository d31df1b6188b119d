package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adehad/plotlygen/schema"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		typ  schema.ValType
		expr string
	}{
		{schema.TypeString, "str"},
		{schema.TypeColor, "str"},
		{schema.TypeEnumerated, "Any"},
		{schema.TypeNumber, "Number"},
		{schema.TypeInteger, "int"},
		{schema.TypeBoolean, "bool"},
		{schema.TypeDataArray, "List"},
		{schema.TypeInfoArray, "List"},
		{schema.TypeColorList, "List"},
	}
	for _, tt := range tests {
		expr, err := MapType(tt.typ, false)
		require.NoError(t, err)
		require.Equal(t, tt.expr, expr)
	}
}

// Every known tag must map to a non-empty expression in both the scalar
// and the scalar-or-sequence form.
func TestMapType_Totality(t *testing.T) {
	for typ := schema.TypeString; typ <= schema.TypeColorList; typ++ {
		expr, err := MapType(typ, false)
		require.NoError(t, err)
		require.NotEmpty(t, expr)

		arrExpr, err := MapType(typ, true)
		require.NoError(t, err)
		require.NotEmpty(t, arrExpr)
		require.NotEqual(t, expr, arrExpr)
	}
}

func TestMapType_ArrayOK(t *testing.T) {
	require := require.New(t)
	scalar, err := MapType(schema.TypeInteger, false)
	require.NoError(err)
	require.Equal("int", scalar)

	seq, err := MapType(schema.TypeInteger, true)
	require.NoError(err)
	require.Equal("Union[int, List[int]]", seq)
}

func TestMapType_Unknown(t *testing.T) {
	require := require.New(t)
	for _, typ := range []schema.ValType{schema.TypeInvalid, schema.ValType(42), schema.ValType(-1)} {
		_, err := MapType(typ, false)
		require.Error(err)
		require.True(IsUnknownTypeError(err))
		require.ErrorIs(err, ErrUnknownType)

		var typeErr *UnknownTypeError
		require.True(errors.As(err, &typeErr))
		require.Equal(typ, typeErr.Type)
	}
}
