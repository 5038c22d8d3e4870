package param

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aledsdavies/cmdlex/pkgs/lexer"
	"github.com/aledsdavies/cmdlex/pkgs/nbt"
)

// NBTParam wraps a promoted NBT tag tree as a Parameter.
type NBTParam struct {
	Root *nbt.Tag
}

func (p *NBTParam) String() string { return p.Root.String() }
func (*NBTParam) isParameter()     {}

// PromoteNBT classifies valueToken (the token whose group identifies the
// tag kind: Number, String, Word, a *ArrayOpen, ListOpen, or
// CompoundOpen) and builds the corresponding unnamed root tag. There is
// no wrapper token involved: the root tag's name is simply "".
func PromoteNBT(valueToken *lexer.Token) (*nbt.Tag, error) {
	return classifyValue("", valueToken)
}

// getTag resolves one named compound/list entry: its own match is the
// tag's name, and its sole child identifies the tag's kind.
func getTag(entry *lexer.Token) (*nbt.Tag, error) {
	if len(entry.Children) == 0 {
		return nil, fmt.Errorf("param: malformed nbt entry %q", entry.Match)
	}
	return classifyValue(entry.Match, entry.Children[0])
}

func classifyValue(name string, value *lexer.Token) (*nbt.Tag, error) {
	switch value.GroupName() {
	case groupNumber:
		return parseNumberTag(name, value.Match)
	case groupString:
		inner := value.Match
		if len(inner) >= 2 {
			inner = inner[1 : len(inner)-1]
		}
		return nbt.NewString(name, nbt.UnescapeString(inner)), nil
	case groupWord:
		if value.Match == "true" || value.Match == "false" {
			return nbt.NewBoolean(name, value.Match == "true"), nil
		}
		return nbt.NewString(name, value.Match), nil
	case groupByteArrayOpen:
		vals, err := parseIntEntries(value.Children)
		if err != nil {
			return nil, err
		}
		return nbt.NewByteArray(name, vals), nil
	case groupIntArrayOpen:
		vals, err := parseIntEntries(value.Children)
		if err != nil {
			return nil, err
		}
		return nbt.NewIntArray(name, vals), nil
	case groupLongArrayOpen:
		vals, err := parseIntEntries(value.Children)
		if err != nil {
			return nil, err
		}
		return nbt.NewLongArray(name, vals), nil
	case groupListOpen:
		return promoteList(name, value.Children)
	case groupCompoundOpen:
		return promoteCompound(name, value.Children)
	default:
		return nil, fmt.Errorf("param: unrecognized nbt value group %q", value.GroupName())
	}
}

func parseIntEntries(children []*lexer.Token) ([]int64, error) {
	if len(children) == 0 {
		return nil, nil
	}
	entries := children[:len(children)-1]
	vals := make([]int64, 0, len(entries))
	for _, e := range entries {
		v, err := strconv.ParseInt(e.Match, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("param: invalid integer %q: %w", e.Match, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// promoteList walks the list's children until its closing sentinel,
// emitting a typed List when every element shares the same tag kind, or a
// Generic_List otherwise.
func promoteList(name string, children []*lexer.Token) (*nbt.Tag, error) {
	var elems []*nbt.Tag
	sameKind := true
	first := true
	var kind nbt.Kind

	for _, entry := range children {
		if entry.GroupName() == groupListClose {
			break
		}
		tag, err := getTag(entry)
		if err != nil {
			return nil, err
		}
		elems = append(elems, tag)
		if first {
			kind = tag.Kind
			first = false
		} else if tag.Kind != kind {
			sameKind = false
		}
	}

	if sameKind {
		return nbt.NewList(name, kind, elems), nil
	}
	return nbt.NewGenericList(name, elems), nil
}

func promoteCompound(name string, children []*lexer.Token) (*nbt.Tag, error) {
	var elems []*nbt.Tag
	for _, sub := range children {
		if sub.GroupName() == groupCompoundClose {
			break
		}
		tag, err := getTag(sub)
		if err != nil {
			return nil, err
		}
		elems = append(elems, tag)
	}
	return nbt.NewCompound(name, elems), nil
}

// parseNumberTag inspects the Number literal's trailing suffix (B/D/F/L/S,
// case-insensitive) to pick the concrete tag kind, defaulting to Double
// (decimal point present) or Int.
func parseNumberTag(name, match string) (*nbt.Tag, error) {
	if match == "" {
		return nil, fmt.Errorf("param: empty number literal")
	}

	suffix := match[len(match)-1]
	switch {
	case suffix == 'b' || suffix == 'B':
		v, err := strconv.ParseInt(match[:len(match)-1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("param: invalid byte literal %q: %w", match, err)
		}
		return nbt.NewByte(name, v), nil
	case suffix == 'd' || suffix == 'D':
		v, err := strconv.ParseFloat(match[:len(match)-1], 64)
		if err != nil {
			return nil, fmt.Errorf("param: invalid double literal %q: %w", match, err)
		}
		return nbt.NewDouble(name, v), nil
	case suffix == 'f' || suffix == 'F':
		v, err := strconv.ParseFloat(match[:len(match)-1], 64)
		if err != nil {
			return nil, fmt.Errorf("param: invalid float literal %q: %w", match, err)
		}
		return nbt.NewFloat(name, v), nil
	case suffix == 'l' || suffix == 'L':
		v, err := strconv.ParseInt(match[:len(match)-1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("param: invalid long literal %q: %w", match, err)
		}
		return nbt.NewLong(name, v), nil
	case suffix == 's' || suffix == 'S':
		v, err := strconv.ParseInt(match[:len(match)-1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("param: invalid short literal %q: %w", match, err)
		}
		return nbt.NewShort(name, v), nil
	case strings.Contains(match, "."):
		v, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return nil, fmt.Errorf("param: invalid double literal %q: %w", match, err)
		}
		return nbt.NewDouble(name, v), nil
	default:
		v, err := strconv.ParseInt(match, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("param: invalid int literal %q: %w", match, err)
		}
		return nbt.NewInt(name, v), nil
	}
}
