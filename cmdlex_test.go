package cmdlex_test

import (
	"errors"
	"testing"

	"github.com/aledsdavies/cmdlex"
	"github.com/aledsdavies/cmdlex/pkgs/errs"
	"github.com/aledsdavies/cmdlex/pkgs/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Scenarios exercises the worked end-to-end scenarios against the
// default (Minecraft) grammar, round-tripping each through Parse and
// RebuildCommand.
func TestParse_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		rebuilt string
		check   func(t *testing.T, params []param.Parameter)
	}{
		{
			name:    "plain keyword and integers",
			line:    "tp @s 0 64 0",
			rebuilt: "tp @s 0 64 0",
			check: func(t *testing.T, params []param.Parameter) {
				require.Len(t, params, 5)
				assert.Equal(t, &param.Generic{Keyword: "tp"}, params[0])
				sel, ok := params[1].(*param.Selector)
				require.True(t, ok)
				assert.Equal(t, "@s", sel.Kind)
				assert.Empty(t, sel.Args)
				assert.Equal(t, &param.Raw{Text: "0"}, params[2])
				assert.Equal(t, &param.Raw{Text: "64"}, params[3])
				assert.Equal(t, &param.Raw{Text: "0"}, params[4])
			},
		},
		{
			name:    "selector with scores and negation",
			line:    "kill @e[type=!zombie,scores={kills=1..}]",
			rebuilt: "kill @e[type=!zombie,scores={kills=1..}]",
			check: func(t *testing.T, params []param.Parameter) {
				require.Len(t, params, 2)
				sel, ok := params[1].(*param.Selector)
				require.True(t, ok)
				assert.Equal(t, "@e", sel.Kind)
				require.Len(t, sel.Args, 2)

				typeArg := sel.Args[0]
				assert.Equal(t, "type", typeArg.Name)
				assert.True(t, typeArg.Negated)
				assert.Equal(t, &param.Raw{Text: "zombie"}, typeArg.Value)

				scoresArg := sel.Args[1]
				assert.Equal(t, "scores", scoresArg.Name)
				scores, ok := scoresArg.Value.(*param.Scores)
				require.True(t, ok)
				require.Len(t, scores.Entries, 1)
				assert.Equal(t, "kills", scores.Entries[0].Name)
				one := 1
				assert.Equal(t, &param.Range{Low: &one}, scores.Entries[0].Value)
			},
		},
		{
			name:    "range as score value",
			line:    "execute if score @s obj matches ..10",
			rebuilt: "execute if score @s obj matches ..10",
			check: func(t *testing.T, params []param.Parameter) {
				last := params[len(params)-1]
				rng, ok := last.(*param.Range)
				require.True(t, ok)
				require.NotNil(t, rng.High)
				assert.Equal(t, 10, *rng.High)
				assert.Nil(t, rng.Low)
				assert.Nil(t, rng.Single)
				assert.Equal(t, "..10", rng.String())
			},
		},
		{
			name:    "comment line",
			line:    "# hello world",
			rebuilt: "#  hello world",
			check: func(t *testing.T, params []param.Parameter) {
				require.Len(t, params, 1)
				assert.Equal(t, &param.Comment{Text: " hello world"}, params[0])
			},
		},
		{
			name:    "selector at end of line",
			line:    "kill @e",
			rebuilt: "kill @e",
			check: func(t *testing.T, params []param.Parameter) {
				require.Len(t, params, 2)
				sel, ok := params[1].(*param.Selector)
				require.True(t, ok)
				assert.Equal(t, "@e", sel.Kind)
				assert.Empty(t, sel.Args)
			},
		},
		{
			name:    "selector with nbt argument",
			line:    "kill @e[nbt={Health:20}]",
			rebuilt: "kill @e[nbt={Health:20}]",
			check: func(t *testing.T, params []param.Parameter) {
				sel, ok := params[1].(*param.Selector)
				require.True(t, ok)
				require.Len(t, sel.Args, 1)
				assert.Equal(t, "nbt", sel.Args[0].Name)
				nbtArg, ok := sel.Args[0].Value.(*param.NBTParam)
				require.True(t, ok)
				assert.Equal(t, 1, nbtArg.Root.Len())
			},
		},
		{
			name:    "selector with advancements",
			line:    "kill @e[advancements={story/mine_stone=true}]",
			rebuilt: "kill @e[advancements={story/mine_stone=true}]",
			check: func(t *testing.T, params []param.Parameter) {
				sel, ok := params[1].(*param.Selector)
				require.True(t, ok)
				require.Len(t, sel.Args, 1)
				adv, ok := sel.Args[0].Value.(*param.Advancements)
				require.True(t, ok)
				require.Len(t, adv.Entries, 1)
				assert.Equal(t, "story/mine_stone", adv.Entries[0].Name)
				require.NotNil(t, adv.Entries[0].Bool)
				assert.True(t, *adv.Entries[0].Bool)
			},
		},
		{
			name:    "advancements with nested criteria",
			line:    "kill @e[advancements={story/follow_ender_eye={in_stronghold=false}}]",
			rebuilt: "kill @e[advancements={story/follow_ender_eye={in_stronghold=false}}]",
			check: func(t *testing.T, params []param.Parameter) {
				sel, ok := params[1].(*param.Selector)
				require.True(t, ok)
				adv, ok := sel.Args[0].Value.(*param.Advancements)
				require.True(t, ok)
				require.Len(t, adv.Entries, 1)
				nested := adv.Entries[0].Nested
				require.NotNil(t, nested)
				require.Len(t, nested.Entries, 1)
				assert.Equal(t, "in_stronghold", nested.Entries[0].Name)
				assert.False(t, nested.Entries[0].Value)
			},
		},
		{
			name: "nbt byte array",
			line: "data merge block 0 0 0 {arr:[B;1,2]}",
			check: func(t *testing.T, params []param.Parameter) {
				last := params[len(params)-1]
				nbtParam, ok := last.(*param.NBTParam)
				require.True(t, ok)
				require.Equal(t, 1, nbtParam.Root.Len())
				arr := nbtParam.Root.Elems()[0]
				assert.Equal(t, "arr", arr.Name)
				assert.Equal(t, []int64{1, 2}, arr.IntArrayValue())
				assert.Equal(t, "[B;1,2]", arr.String())
			},
		},
		{
			name: "heterogeneous nbt list",
			line: "data merge block 0 0 0 {x:[1b,2s]}",
			check: func(t *testing.T, params []param.Parameter) {
				last := params[len(params)-1]
				nbtParam, ok := last.(*param.NBTParam)
				require.True(t, ok)
				require.Equal(t, 1, nbtParam.Root.Len())
				inner := nbtParam.Root.Elems()[0]
				assert.Equal(t, 2, inner.Len())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := cmdlex.Parse(tt.line)
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, params)
			}
			if tt.rebuilt != "" {
				assert.Equal(t, tt.rebuilt, cmdlex.RebuildCommand(params))
			}
		})
	}
}

// TestParse_NamespacedIDWithBlockStatesAndNBT covers scenario 3: a
// namespaced ID carrying both a bracketed block-states map and a trailing
// NBT compound.
func TestParse_NamespacedIDWithBlockStatesAndNBT(t *testing.T) {
	line := `setblock 0 0 0 minecraft:chest[facing=north]{Items:[{Slot:0b,id:"minecraft:stone",Count:1b}]}`
	params, err := cmdlex.Parse(line)
	require.NoError(t, err)

	var id *param.NamespacedID
	for _, p := range params {
		if n, ok := p.(*param.NamespacedID); ok {
			id = n
			break
		}
	}
	require.NotNil(t, id, "expected a NamespacedID parameter among %v", params)

	require.NotNil(t, id.Namespace)
	assert.Equal(t, "minecraft", *id.Namespace)
	assert.Equal(t, "chest", id.Name)
	require.Len(t, id.BlockStates, 1)
	assert.Equal(t, "facing", id.BlockStates[0].Name)
	assert.Equal(t, "north", id.BlockStates[0].Value)

	require.NotNil(t, id.NBT)
	require.Equal(t, 1, id.NBT.Len())
	items := id.NBT.Elems()[0]
	require.Equal(t, 1, items.Len())
}

// TestParse_Errors covers malformed-input scenarios: each must surface
// the correct ParseError Kind.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind errs.Kind
	}{
		{
			name: "unterminated compound",
			line: "say {unclosed",
			kind: errs.EndOfLine,
		},
		{
			name: "unknown character at start of argument list",
			line: "kill @e[$=1]",
			kind: errs.InvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cmdlex.Parse(tt.line)
			require.Error(t, err)
			var parseErr *errs.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.kind, parseErr.Kind)
		})
	}
}

// TestNew_MapDescription drives the map[string]any description path: the
// record is schema-validated, decoded, and built into a working parser.
func TestNew_MapDescription(t *testing.T) {
	desc := map[string]any{
		"start": map[string]any{"region": "main", "state": "start"},
		"regions": map[string]any{
			"main": map[string]any{
				"group_defs": []any{
					map[string]any{"name": "Run", "regex": "a+"},
					map[string]any{"name": "Sep", "regex": " "},
					map[string]any{"name": "EOL", "regex": "$"},
				},
				"states": map[string]any{
					"start": map[string]any{
						"groups": []any{"EOL", "Run", "Sep"},
						"transitions": []any{
							map[string]any{"group": "EOL", "operation": "end"},
							map[string]any{"operation": "none", "target": "start"},
						},
					},
				},
			},
		},
	}

	p, err := cmdlex.New(desc)
	require.NoError(t, err)

	tokens, err := p.Tokenize("aa aaa")
	require.NoError(t, err)
	require.Len(t, tokens, 4) // Run, Sep, Run, EOL
	assert.Equal(t, "aa", tokens[0].Match)
	assert.Equal(t, "aaa", tokens[2].Match)
}

// TestNew_RejectsMalformedDescription checks that a record missing a
// required top-level key fails shape validation before resolution begins.
func TestNew_RejectsMalformedDescription(t *testing.T) {
	_, err := cmdlex.New(map[string]any{
		"regions": map[string]any{},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid model description")
}

// TestParse_RoundTrip checks the round-trip invariant: parsing the
// rebuilt form of a parsed line yields a structurally equal parameter
// sequence. Comment lines are excluded — their rebuilt form always
// prefixes "# " to the preserved text, so the text grows a space per
// round trip by construction.
func TestParse_RoundTrip(t *testing.T) {
	lines := []string{
		"tp @s 0 64 0",
		"kill @e[type=!zombie,scores={kills=1..}]",
		"kill @e[nbt={Health:20}]",
		`setblock 0 0 0 minecraft:chest[facing=north]{Items:[{Slot:0b,id:"minecraft:stone",Count:1b}]}`,
		"data merge block 0 0 0 {x:[1b,2s]}",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			first, err := cmdlex.Parse(line)
			require.NoError(t, err)

			rebuilt := cmdlex.RebuildCommand(first)
			second, err := cmdlex.Parse(rebuilt)
			require.NoError(t, err)

			assert.Equal(t, first, second)
		})
	}
}
