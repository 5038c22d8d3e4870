// Package nbt implements the in-memory NBT (Named Binary Tag) data model
// in its textual (SNBT) form: the tagged-union value type the semantic
// promoter builds from a parsed NBT token tree. The on-disk binary codec
// is out of scope; this package only models the abstract tag variants
// and their SNBT display form.
package nbt

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind enumerates the canonical NBT tag kinds plus two convenience kinds:
// Boolean (a Byte with a boolean print form) and GenericList (a
// heterogeneous list, not on-disk representable). The tag vocabulary is
// fixed, so dispatch uses an enum discriminant rather than string checks.
type Kind int

const (
	Byte Kind = iota
	Short
	Int
	Long
	Float
	Double
	String
	ByteArray
	IntArray
	LongArray
	List
	Compound
	Boolean
	GenericList
)

func (k Kind) String() string {
	switch k {
	case Byte:
		return "Byte"
	case Short:
		return "Short"
	case Int:
		return "Int"
	case Long:
		return "Long"
	case Float:
		return "Float"
	case Double:
		return "Double"
	case String:
		return "String"
	case ByteArray:
		return "Byte_Array"
	case IntArray:
		return "Int_Array"
	case LongArray:
		return "Long_Array"
	case List:
		return "List"
	case Compound:
		return "Compound"
	case Boolean:
		return "Boolean"
	case GenericList:
		return "Generic_List"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Tag is the tagged-union NBT value: every kind's payload, carried in the
// fields relevant to that Kind (the others left zero).
type Tag struct {
	Name string
	Kind Kind

	i   int64
	f   float64
	s   string
	b   bool
	ia  []int64 // ByteArray / IntArray / LongArray payload
	els []*Tag  // List / GenericList / Compound payload

	// ElemKind is the declared element kind for a List tag.
	ElemKind Kind
}

func NewByte(name string, v int64) *Tag  { return &Tag{Name: name, Kind: Byte, i: v} }
func NewShort(name string, v int64) *Tag { return &Tag{Name: name, Kind: Short, i: v} }
func NewInt(name string, v int64) *Tag   { return &Tag{Name: name, Kind: Int, i: v} }
func NewLong(name string, v int64) *Tag  { return &Tag{Name: name, Kind: Long, i: v} }

func NewFloat(name string, v float64) *Tag  { return &Tag{Name: name, Kind: Float, f: v} }
func NewDouble(name string, v float64) *Tag { return &Tag{Name: name, Kind: Double, f: v} }

func NewString(name string, v string) *Tag { return &Tag{Name: name, Kind: String, s: v} }

// NewBoolean builds a Boolean tag: a Byte under the hood (value 0 or 1)
// whose String form prints the literal word instead of the digit.
func NewBoolean(name string, v bool) *Tag {
	i := int64(0)
	if v {
		i = 1
	}
	return &Tag{Name: name, Kind: Boolean, i: i, b: v}
}

func NewByteArray(name string, vals []int64) *Tag {
	return &Tag{Name: name, Kind: ByteArray, ia: append([]int64(nil), vals...)}
}
func NewIntArray(name string, vals []int64) *Tag {
	return &Tag{Name: name, Kind: IntArray, ia: append([]int64(nil), vals...)}
}
func NewLongArray(name string, vals []int64) *Tag {
	return &Tag{Name: name, Kind: LongArray, ia: append([]int64(nil), vals...)}
}

// NewList builds a typed List tag of the given declared element kind.
func NewList(name string, elemKind Kind, elems []*Tag) *Tag {
	return &Tag{Name: name, Kind: List, ElemKind: elemKind, els: append([]*Tag(nil), elems...)}
}

// NewGenericList builds a heterogeneous-element list tag. Not
// representable on disk.
func NewGenericList(name string, elems []*Tag) *Tag {
	return &Tag{Name: name, Kind: GenericList, els: append([]*Tag(nil), elems...)}
}

func NewCompound(name string, elems []*Tag) *Tag {
	return &Tag{Name: name, Kind: Compound, els: append([]*Tag(nil), elems...)}
}

// Add appends a child tag to a Compound, List, or GenericList tag.
func (t *Tag) Add(child *Tag) { t.els = append(t.els, child) }

// Elems returns the child tags of a Compound, List, or GenericList tag.
func (t *Tag) Elems() []*Tag { return t.els }

// IntValue returns the integer payload of a Byte/Short/Int/Long/Boolean tag.
func (t *Tag) IntValue() int64 { return t.i }

// FloatValue returns the float payload of a Float/Double tag.
func (t *Tag) FloatValue() float64 { return t.f }

// StringValue returns the string payload of a String tag.
func (t *Tag) StringValue() string { return t.s }

// BoolValue returns the boolean payload of a Boolean tag.
func (t *Tag) BoolValue() bool { return t.b }

// IntArrayValue returns the array payload of a ByteArray/IntArray/LongArray tag.
func (t *Tag) IntArrayValue() []int64 { return t.ia }

// Len reports the number of children/elements, used by NamespacedID
// promotion to suppress an empty NBT compound in its command-string form.
func (t *Tag) Len() int { return len(t.els) }

// String renders the SNBT textual form.
func (t *Tag) String() string {
	switch t.Kind {
	case Byte:
		return strconv.FormatInt(t.i, 10) + "b"
	case Short:
		return strconv.FormatInt(t.i, 10) + "s"
	case Int:
		return strconv.FormatInt(t.i, 10)
	case Long:
		return strconv.FormatInt(t.i, 10) + "l"
	case Float:
		return formatFloat(t.f) + "f"
	case Double:
		return formatFloat(t.f) + "d"
	case String:
		return `"` + escapeString(t.s) + `"`
	case Boolean:
		if t.b {
			return "true"
		}
		return "false"
	case ByteArray:
		return arrayString("B", t.ia)
	case IntArray:
		return arrayString("I", t.ia)
	case LongArray:
		return arrayString("L", t.ia)
	case List, GenericList:
		parts := make([]string, len(t.els))
		for i, e := range t.els {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ",") + "]"
	case Compound:
		parts := make([]string, len(t.els))
		for i, e := range t.els {
			parts[i] = e.Name + ":" + e.String()
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return ""
	}
}

func arrayString(prefix string, vals []int64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return "[" + prefix + ";" + strings.Join(parts, ",") + "]"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UnescapeString decodes standard backslash-escape sequences in a quoted
// SNBT string literal's inner text (quotes already stripped by the caller).
func UnescapeString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"':
				b.WriteByte('"')
			case '\'':
				b.WriteByte('\'')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
