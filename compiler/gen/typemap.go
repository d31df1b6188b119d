package gen

import (
	"fmt"

	"github.com/adehad/plotlygen/schema"
)

// MapType returns the Python type expression for a declared value type.
// The nine known tags are enumerated explicitly; any other value fails
// with an UnknownTypeError so that a new tag cannot be silently
// mis-mapped. When arrayOK is set, the result accepts a single value or
// an ordered sequence of such values.
func MapType(t schema.ValType, arrayOK bool) (string, error) {
	var pytype string
	switch t {
	case schema.TypeDataArray, schema.TypeInfoArray, schema.TypeColorList:
		pytype = "List"
	case schema.TypeString, schema.TypeColor:
		pytype = "str"
	case schema.TypeEnumerated:
		pytype = "Any"
	case schema.TypeNumber:
		pytype = "Number"
	case schema.TypeInteger:
		pytype = "int"
	case schema.TypeBoolean:
		pytype = "bool"
	default:
		return "", NewUnknownTypeError("", t)
	}
	if arrayOK {
		return fmt.Sprintf("Union[%s, List[%s]]", pytype, pytype), nil
	}
	return pytype, nil
}
