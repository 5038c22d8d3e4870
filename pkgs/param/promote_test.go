package param

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/cmdlex/pkgs/lexer"
)

func TestPromote_StopsAtEOL(t *testing.T) {
	tokens := []*lexer.Token{
		leaf(groupKeyword, "give"),
		leaf("EOL", ""),
		leaf(groupKeyword, "unreachable"),
	}
	params, err := Promote(tokens)
	require.NoError(t, err)
	require.Len(t, params, 1)
	require.Equal(t, "give", params[0].String())
}

func TestPromote_CommentAndDefault(t *testing.T) {
	tokens := []*lexer.Token{
		leaf(groupComment, "note"),
		leaf("SomeOtherGroup", "raw-text"),
	}
	params, err := Promote(tokens)
	require.NoError(t, err)
	require.Len(t, params, 2)
	require.Equal(t, "# note", params[0].String())
	require.Equal(t, "raw-text", params[1].String())
}

func TestPromoteHybrid_MixedParts(t *testing.T) {
	listIndexInner := &lexer.Token{
		Group:    group(groupWord),
		Match:    "0",
		Children: nil,
	}
	listIndex := &lexer.Token{
		Group:    group(groupListIndexOpen),
		Children: []*lexer.Token{listIndexInner},
	}
	hybrid := &lexer.Token{
		Match: "foo",
		Group: group(groupHybridParameter),
		Children: []*lexer.Token{
			leaf(groupWord, "foo"),
			listIndex,
		},
	}

	params, err := Promote([]*lexer.Token{hybrid})
	require.NoError(t, err)
	require.Len(t, params, 1)

	h, ok := params[0].(*Hybrid)
	require.True(t, ok)
	require.Equal(t, "foo[0]", h.String())
}
