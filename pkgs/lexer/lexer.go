package lexer

import (
	"github.com/aledsdavies/cmdlex/pkgs/errs"
	"github.com/aledsdavies/cmdlex/pkgs/model"
)

// frame is a stack entry: the resumption state to return to on POP, the
// token that was open when PUSH fired, and the sibling accumulator that
// was active at that point.
type frame struct {
	resumeState   int
	openToken     *Token
	savedChildren []*Token
}

// Tokenize drives the pushdown automaton described by m over line,
// returning the top-level raw token forest or a *errs.ParseError.
//
// At each step: match at the cursor, advance, identify the matched
// group, resolve the transition, apply its stack operation, and move to
// its target state, repeated until an END transition fires.
func Tokenize(m *model.Model, line string) ([]*Token, error) {
	stateIdx := m.StartIndex()
	state := m.StateAt(stateIdx)

	var stack []frame
	var children []*Token
	remaining := line

	for {
		pattern := state.CompiledPattern()
		sub := pattern.FindStringSubmatchIndex(remaining)
		if sub == nil {
			// A failed match with the input exhausted inside open scopes is
			// EndOfLine, not InvalidToken: the line ended mid-construct.
			// Zero-width matches (lookaheads, empty-pop sentinels) still run
			// at end of input, so open scopes that can close without
			// consuming anything do so before this is reached.
			if remaining == "" && len(stack) > 0 {
				return nil, errs.NewParseError(errs.EndOfLine, line, remaining)
			}
			return nil, errs.NewParseError(errs.InvalidToken, line, remaining)
		}

		group := state.MatchedGroup(sub)
		if group == nil {
			return nil, errs.NewParseError(errs.InvalidToken, line, remaining)
		}

		matchText := remaining[sub[0]:sub[1]]
		token := &Token{Match: matchText, Group: group}

		hasTop := len(stack) > 0
		var topState int
		if hasTop {
			topState = stack[len(stack)-1].resumeState
		}
		transition := state.ResolveTransition(group, topState, hasTop, stateIdx)

		// A zero-length match that also leaves state unchanged can never
		// make progress: treat it as a fatal InvalidToken rather than
		// looping forever.
		if len(matchText) == 0 && transition.Op == model.OpNone && transition.Target == stateIdx {
			return nil, errs.NewParseError(errs.InvalidToken, line, remaining)
		}

		remaining = remaining[len(matchText):]

		if state.Tokenize {
			children = append(children, token)
		}

		switch transition.Op {
		case model.OpPush:
			stack = append(stack, frame{
				resumeState:   transition.Value,
				openToken:     token,
				savedChildren: children,
			})
			children = nil

		case model.OpPop:
			if !hasTop {
				return nil, errs.NewParseError(errs.EndOfLine, line, remaining)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			top.openToken.Children = append(top.openToken.Children, children...)
			children = top.savedChildren

		case model.OpEnd:
			if len(stack) > 0 {
				return nil, errs.NewParseError(errs.EndOfLine, line, remaining)
			}
			if len(remaining) > 0 {
				return nil, errs.NewParseError(errs.IncompleteParsing, line, remaining)
			}
			return children, nil
		}

		stateIdx = transition.Target
		state = m.StateAt(stateIdx)
	}
}
