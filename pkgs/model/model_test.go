package model_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/cmdlex/pkgs/errs"
	"github.com/aledsdavies/cmdlex/pkgs/lexer"
	"github.com/aledsdavies/cmdlex/pkgs/model"
)

// echoDescription is a fully-tokenizing toy grammar (every state keeps
// Tokenize at its default true, and no group is ever matched without being
// recorded) used to exercise the text-reconstruction invariant, which
// only holds when no state discards a non-empty match.
func echoDescription() *model.Description {
	return &model.Description{
		Start: model.StartDesc{Region: "main", State: "start"},
		Regions: map[string]model.RegionDesc{
			"main": {
				GroupDefs: []model.GroupDef{
					{Name: "EOL", Regex: "$"},
					{Name: "Space", Regex: " +"},
					{Name: "Word", Regex: `\w+`},
				},
				States: map[string]model.StateDesc{
					"start": {
						Groups: []string{"EOL", "Space", "Word"},
						Transitions: []model.TransitionDesc{
							{Group: "EOL", Operation: "end"},
							{Operation: "none", Target: "start"},
						},
					},
				},
			},
		},
	}
}

func TestTokenize_FullyTokenizingGrammarReconstructsInput(t *testing.T) {
	m, err := model.Build(echoDescription())
	require.NoError(t, err)

	lines := []string{"give dirt 64", "a b   c"}
	for _, line := range lines {
		tokens, err := lexer.Tokenize(m, line)
		require.NoError(t, err)

		var b strings.Builder
		for _, tok := range tokens {
			b.WriteString(tok.Text())
		}
		require.Equal(t, line, b.String())
	}
}

func TestBuild_MissingStateReferenceSuggestsNearestMatch(t *testing.T) {
	desc := &model.Description{
		Start: model.StartDesc{Region: "main", State: "start"},
		Regions: map[string]model.RegionDesc{
			"main": {
				GroupDefs: []model.GroupDef{{Name: "A", Regex: "a"}},
				States: map[string]model.StateDesc{
					"start": {
						Groups: []string{"A"},
						Transitions: []model.TransitionDesc{
							// "staet" is a typo for "start".
							{Group: "A", Operation: "none", Target: "staet"},
						},
					},
				},
			},
		},
	}

	_, err := model.Build(desc)
	require.Error(t, err)

	modelErr, ok := err.(*errs.ModelError)
	require.True(t, ok)
	require.Equal(t, "state", modelErr.Kind)
	require.Contains(t, modelErr.Error(), `did you mean "start"?`)
}

func TestBuild_MissingGroupReferenceFails(t *testing.T) {
	desc := &model.Description{
		Start: model.StartDesc{Region: "main", State: "start"},
		Regions: map[string]model.RegionDesc{
			"main": {
				GroupDefs: []model.GroupDef{{Name: "A", Regex: "a"}},
				States: map[string]model.StateDesc{
					"start": {
						Groups: []string{"A"},
						Transitions: []model.TransitionDesc{
							{Group: "B", Operation: "end"},
						},
					},
				},
			},
		},
	}

	_, err := model.Build(desc)
	require.Error(t, err)

	modelErr, ok := err.(*errs.ModelError)
	require.True(t, ok)
	require.Equal(t, "group", modelErr.Kind)
}

// TestBuild_TemplateMerge checks the additive merge order (template
// declarations first, state-local appended after) and tokenize
// inheritance: the state inherits the template's value only when it does
// not set its own.
func TestBuild_TemplateMerge(t *testing.T) {
	f := false
	desc := func(stateTokenize *bool) *model.Description {
		return &model.Description{
			Start: model.StartDesc{Region: "main", State: "start"},
			Regions: map[string]model.RegionDesc{
				"main": {
					GroupDefs: []model.GroupDef{
						{Name: "A", Regex: "a"},
						{Name: "B", Regex: "b"},
						{Name: "EOL", Regex: "$"},
					},
					Templates: map[string]model.TemplateDesc{
						"base": {
							Groups: []string{"A"},
							Transitions: []model.TransitionDesc{
								{Group: "EOL", Operation: "end"},
							},
							Tokenize: &f,
						},
					},
					States: map[string]model.StateDesc{
						"start": {
							Template: "base",
							Groups:   []string{"B", "EOL"},
							Transitions: []model.TransitionDesc{
								{Operation: "none", Target: "start"},
							},
							Tokenize: stateTokenize,
						},
					},
				},
			},
		}
	}

	m, err := model.Build(desc(nil))
	require.NoError(t, err)

	start := m.Start()
	require.Len(t, start.Groups, 3)
	require.Equal(t, "A", start.Groups[0].Name)
	require.Equal(t, "B", start.Groups[1].Name)
	require.Equal(t, "EOL", start.Groups[2].Name)
	require.Len(t, start.Transitions, 2)
	require.False(t, start.Tokenize, "tokenize should inherit from the template when unset")

	tr := true
	m, err = model.Build(desc(&tr))
	require.NoError(t, err)
	require.True(t, m.Start().Tokenize, "a state-level tokenize overrides the template")
}

func TestBuild_MissingTemplateReferenceFails(t *testing.T) {
	desc := &model.Description{
		Start: model.StartDesc{Region: "main", State: "start"},
		Regions: map[string]model.RegionDesc{
			"main": {
				GroupDefs: []model.GroupDef{{Name: "A", Regex: "a"}},
				Templates: map[string]model.TemplateDesc{
					"base": {Groups: []string{"A"}},
				},
				States: map[string]model.StateDesc{
					"start": {
						Template: "bsae",
						Transitions: []model.TransitionDesc{
							{Group: "A", Operation: "end"},
						},
					},
				},
			},
		},
	}

	_, err := model.Build(desc)
	require.Error(t, err)

	modelErr, ok := err.(*errs.ModelError)
	require.True(t, ok)
	require.Equal(t, "template", modelErr.Kind)
	require.Contains(t, modelErr.Error(), `did you mean "base"?`)
}

func TestBuild_SelfLoopCycleResolvesWithoutRecursion(t *testing.T) {
	desc := &model.Description{
		Start: model.StartDesc{Region: "main", State: "start"},
		Regions: map[string]model.RegionDesc{
			"main": {
				GroupDefs: []model.GroupDef{{Name: "A", Regex: "a"}},
				States: map[string]model.StateDesc{
					"start": {
						Groups: []string{"A"},
						Transitions: []model.TransitionDesc{
							{Group: "A", Operation: "none", Target: "start"},
						},
					},
				},
			},
		},
	}

	m, err := model.Build(desc)
	require.NoError(t, err)
	require.NotNil(t, m)
}
