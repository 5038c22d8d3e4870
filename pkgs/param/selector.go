package param

import (
	"strings"

	"github.com/aledsdavies/cmdlex/pkgs/lexer"
)

// SelectorArgument is a single `name=value` (or `name=!value`) entry
// inside a selector's argument list.
type SelectorArgument struct {
	Name    string
	Value   Parameter
	Negated bool
}

func (a SelectorArgument) String() string {
	op := "="
	if a.Negated {
		op = "=!"
	}
	return a.Name + op + a.Value.String()
}

// Selector is a target selector (`@a`, `@e`, `@p`, `@r`, `@s`) with its
// optional bracketed argument list.
type Selector struct {
	Kind string
	Args []SelectorArgument
}

func (s *Selector) String() string {
	if len(s.Args) == 0 {
		return s.Kind
	}
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		parts[i] = a.String()
	}
	return s.Kind + "[" + strings.Join(parts, ",") + "]"
}

func (*Selector) isParameter() {}

// promoteSelector classifies the selector kind from the token's own text,
// then for each argument (excluding the closing sentinel) determines
// negation and dispatches its value by the argument's group name.
func promoteSelector(t *lexer.Token) (*Selector, error) {
	children := t.Children
	if len(children) > 0 {
		children = children[:len(children)-1]
	}

	args := make([]SelectorArgument, 0, len(children))
	for _, c := range children {
		negated := len(c.Children) > 0 && c.Children[0].GroupName() == groupNegation

		var valueToken *lexer.Token
		switch {
		case negated && len(c.Children) > 1:
			valueToken = c.Children[1]
		case !negated && len(c.Children) > 0:
			valueToken = c.Children[0]
		default:
			return nil, newPromoteError("malformed selector argument %q", c.Match)
		}

		value, err := promoteSelectorArgumentValue(c.GroupName(), valueToken)
		if err != nil {
			return nil, err
		}

		args = append(args, SelectorArgument{Name: c.Match, Value: value, Negated: negated})
	}

	return &Selector{Kind: t.Match, Args: args}, nil
}

func promoteSelectorArgumentValue(argGroup string, valueToken *lexer.Token) (Parameter, error) {
	switch argGroup {
	case groupScoresArgument:
		return promoteScores(valueToken)
	case groupNBTArgument:
		tag, err := PromoteNBT(valueToken)
		if err != nil {
			return nil, err
		}
		return &NBTParam{Root: tag}, nil
	case groupAdvancementsArgument:
		return promoteAdvancements(valueToken)
	default:
		return NewRaw(valueToken.Match), nil
	}
}

func promoteScores(t *lexer.Token) (*Scores, error) {
	var entries []ScoreEntry
	for _, score := range t.Children {
		if score.GroupName() == groupScoresClose {
			break
		}
		if len(score.Children) == 0 {
			return nil, newPromoteError("malformed score entry %q", score.Match)
		}
		entries = append(entries, ScoreEntry{Name: score.Match, Value: ParseRange(score.Children[0].Match)})
	}
	return &Scores{Entries: entries}, nil
}

func promoteCriteria(t *lexer.Token) (*Criteria, error) {
	var entries []CriteriaEntry
	for _, adv := range t.Children {
		if adv.GroupName() == groupCriteriaClose {
			break
		}
		if len(adv.Children) == 0 {
			return nil, newPromoteError("malformed criteria entry %q", adv.Match)
		}
		entries = append(entries, CriteriaEntry{Name: adv.Match, Value: adv.Children[0].Match == "true"})
	}
	return &Criteria{Entries: entries}, nil
}

// promoteAdvancements promotes each entry's value: either a nested
// Criteria map (when keyed by a CriteriaOpen child) or a plain boolean.
func promoteAdvancements(t *lexer.Token) (*Advancements, error) {
	var entries []AdvancementEntry
	for _, adv := range t.Children {
		if adv.GroupName() == groupAdvancementsClose {
			break
		}
		if len(adv.Children) == 0 {
			return nil, newPromoteError("malformed advancement entry %q", adv.Match)
		}
		value := adv.Children[0]
		if value.GroupName() == groupCriteriaOpen {
			nested, err := promoteCriteria(value)
			if err != nil {
				return nil, err
			}
			entries = append(entries, AdvancementEntry{Name: adv.Match, Nested: nested})
			continue
		}
		b := value.Match == "true"
		entries = append(entries, AdvancementEntry{Name: adv.Match, Bool: &b})
	}
	return &Advancements{Entries: entries}, nil
}
