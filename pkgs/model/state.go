package model

import (
	"strings"
	"sync"

	"github.com/jdkato/regexp"
)

// State is a choice among groups, plus an ordered list of transitions.
// Tokenize false means the state matches but emits no token (a skip
// state, e.g. whitespace).
type State struct {
	Region string
	Name   string

	Groups      []*Group
	Transitions []*Transition
	Tokenize    bool

	compileOnce sync.Once
	compiled    *regexp.Regexp
}

// NewState builds a state from an ordered group list and tokenize flag.
// Transitions are populated afterward via AddTransition: they must be
// mutable during Model construction and are read-only once the Model is
// built.
func NewState(region, name string, groups []*Group, tokenize bool) *State {
	return &State{
		Region:   region,
		Name:     name,
		Groups:   append([]*Group(nil), groups...),
		Tokenize: tokenize,
	}
}

// AddTransition appends a transition to this state's transition list.
func (s *State) AddTransition(t *Transition) {
	s.Transitions = append(s.Transitions, t)
}

// CompiledPattern returns the compound pattern for this state: the
// alternation of every group's regex, each wrapped in a named capture
// using the group's name, compiled once and cached.
//
// Compiled with github.com/jdkato/regexp rather than stdlib regexp:
// grammar vocabularies lean on lookarounds (e.g. a close-brace lookahead
// that re-enters a map-entry state without consuming the brace), which
// RE2 cannot express. jdkato/regexp keeps the stdlib API but compiles
// through a backtracking engine, which also guarantees the declaration-
// order alternation discipline the matcher depends on: the first group
// whose named capture participates wins.
func (s *State) CompiledPattern() *regexp.Regexp {
	s.compileOnce.Do(func() {
		var b strings.Builder
		for i, g := range s.Groups {
			if i > 0 {
				b.WriteByte('|')
			}
			b.WriteString("(?P<")
			b.WriteString(g.Name)
			b.WriteString(">")
			b.WriteString(g.Regex)
			b.WriteString(")")
		}
		s.compiled = regexp.MustCompile("^(?:" + b.String() + ")")
	})
	return s.compiled
}

// MatchedGroup walks the group list in declared order and returns the
// first group whose capture participated in the match, or nil if none
// did (a tokenizer error upstream).
//
// submatchIndex is the []int pair-list from FindStringSubmatchIndex, not
// FindStringSubmatch's []string: a capture that matched zero characters
// (e.g. a lookahead, or an empty-alternative group) still has a valid
// (non -1) start index, whereas a capture whose alternative was never
// taken is -1. Checking string equality against "" cannot tell these
// apart, which would make every zero-width group indistinguishable from
// "didn't match": zero-width groups that change state are legitimate;
// only a zero-width match that also leaves the state unchanged is the
// infinite-loop hazard.
func (s *State) MatchedGroup(submatchIndex []int) *Group {
	names := s.CompiledPattern().SubexpNames()
	for _, g := range s.Groups {
		for i, n := range names {
			if n == g.Name && 2*i < len(submatchIndex) && submatchIndex[2*i] != -1 {
				return g
			}
		}
	}
	return nil
}

// ResolveTransition walks the transition list in declared order and
// returns the first applicable transition for the matched group, given the
// state index currently on top of the stack (topState/hasTop; hasTop is
// false when the stack is empty). PEEK guards are honored before equality
// match; when the winning transition is a POP, its Target is synthesized
// to the top-of-stack state. If no transition applies, the self-loop
// fallback (stay in this state, no stack change) is returned.
func (s *State) ResolveTransition(group *Group, topState int, hasTop bool, selfIndex int) *Transition {
	for _, t := range s.Transitions {
		if t.Op == OpPeek {
			if !hasTop || topState != t.Value {
				continue
			}
		}
		if t.Group == group || t.Group == nil {
			if t.Op == OpPop {
				if !hasTop {
					return t
				}
				return &Transition{Group: group, Target: topState, Op: OpPop}
			}
			return t
		}
	}
	return &Transition{Group: group, Target: selfIndex, Op: OpNone}
}
