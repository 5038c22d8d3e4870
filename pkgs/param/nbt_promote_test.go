package param

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/cmdlex/pkgs/lexer"
	"github.com/aledsdavies/cmdlex/pkgs/model"
)

func group(name string) *model.Group { return model.NewGroup(name, name) }

func leaf(groupName, match string) *lexer.Token {
	return &lexer.Token{Match: match, Group: group(groupName)}
}

func entry(name string, value *lexer.Token) *lexer.Token {
	return &lexer.Token{Match: name, Group: group("CompoundEntry"), Children: []*lexer.Token{value}}
}

func TestPromoteNBT_NumberSuffixes(t *testing.T) {
	cases := []struct {
		literal string
		want    string
		kind    string
	}{
		{"1b", "1b", "Byte"},
		{"1B", "1b", "Byte"},
		{"5s", "5s", "Short"},
		{"7l", "7l", "Long"},
		{"1.5f", "1.5f", "Float"},
		{"1.5d", "1.5d", "Double"},
		{"1.5", "1.5d", "Double"},
		{"42", "42", "Int"},
	}
	for _, c := range cases {
		t.Run(c.literal, func(t *testing.T) {
			tag, err := PromoteNBT(leaf(groupNumber, c.literal))
			require.NoError(t, err)
			require.Equal(t, c.kind, tag.Kind.String())
			require.Equal(t, c.want, tag.String())
		})
	}
}

func TestPromoteNBT_WordBooleanVsString(t *testing.T) {
	tag, err := PromoteNBT(leaf(groupWord, "true"))
	require.NoError(t, err)
	require.Equal(t, "true", tag.String())

	tag, err = PromoteNBT(leaf(groupWord, "diamond"))
	require.NoError(t, err)
	require.Equal(t, `"diamond"`, tag.String())
}

func TestPromoteNBT_TypedList(t *testing.T) {
	list := &lexer.Token{
		Group: group(groupListOpen),
		Children: []*lexer.Token{
			entry("", leaf(groupNumber, "1")),
			entry("", leaf(groupNumber, "2")),
			leaf(groupListClose, "]"),
		},
	}
	tag, err := PromoteNBT(list)
	require.NoError(t, err)
	require.Equal(t, "List", tag.Kind.String())
	require.Equal(t, "[1,2]", tag.String())
}

func TestPromoteNBT_HeterogeneousListBecomesGeneric(t *testing.T) {
	list := &lexer.Token{
		Group: group(groupListOpen),
		Children: []*lexer.Token{
			entry("", leaf(groupNumber, "1")),
			entry("", leaf(groupString, `"x"`)),
			leaf(groupListClose, "]"),
		},
	}
	tag, err := PromoteNBT(list)
	require.NoError(t, err)
	require.Equal(t, "Generic_List", tag.Kind.String())
	require.Equal(t, `[1,"x"]`, tag.String())
}

func TestPromoteNBT_Compound(t *testing.T) {
	compound := &lexer.Token{
		Group: group(groupCompoundOpen),
		Children: []*lexer.Token{
			entry("health", leaf(groupNumber, "20")),
			leaf(groupCompoundClose, "}"),
		},
	}
	tag, err := PromoteNBT(compound)
	require.NoError(t, err)
	require.Equal(t, "Compound", tag.Kind.String())
	require.Equal(t, "{health:20}", tag.String())
	require.Equal(t, 1, tag.Len())
}
