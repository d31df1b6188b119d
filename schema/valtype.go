package schema

import "fmt"

// A ValType is the declared value type of a leaf node. The set is closed:
// the generator enumerates every tag explicitly, and an unlisted tag is a
// schema configuration error, never a silent fallback.
type ValType int

const (
	TypeInvalid ValType = iota
	// TypeString is a plain string value.
	TypeString
	// TypeColor is a CSS-color-like string.
	TypeColor
	// TypeEnumerated covers enumerated, flag-list and open ("any") values.
	TypeEnumerated
	// TypeNumber is a real number (including angles).
	TypeNumber
	// TypeInteger is an integral number.
	TypeInteger
	// TypeBoolean is a boolean flag.
	TypeBoolean
	// TypeDataArray is a homogeneous data vector.
	TypeDataArray
	// TypeInfoArray is a fixed-shape information array.
	TypeInfoArray
	// TypeColorList is an ordered list of colors.
	TypeColorList

	endTypes
)

var typeNames = [...]string{
	TypeInvalid:    "invalid",
	TypeString:     "string",
	TypeColor:      "color",
	TypeEnumerated: "enumerated",
	TypeNumber:     "number",
	TypeInteger:    "integer",
	TypeBoolean:    "boolean",
	TypeDataArray:  "data_array",
	TypeInfoArray:  "info_array",
	TypeColorList:  "colorlist",
}

// String returns the schema tag of the type.
func (t ValType) String() string {
	if t < endTypes && t >= 0 {
		return typeNames[t]
	}
	return fmt.Sprintf("invalid(%d)", int(t))
}

// Valid reports if the given type is a known declared type.
func (t ValType) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// ParseValType returns the ValType for a schema tag string.
func ParseValType(s string) (ValType, error) {
	for t := TypeString; t < endTypes; t++ {
		if typeNames[t] == s {
			return t, nil
		}
	}
	return TypeInvalid, fmt.Errorf("schema: unknown value type %q", s)
}
