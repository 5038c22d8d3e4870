package param

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/cmdlex/pkgs/lexer"
)

// PromoteError reports a malformed token tree encountered during
// promotion: an inner literal (e.g. a non-integer byte-array entry)
// that the tokenizer's grammar allowed through but the promoter cannot
// make sense of.
type PromoteError struct {
	msg string
}

func newPromoteError(format string, args ...any) *PromoteError {
	return &PromoteError{msg: fmt.Sprintf(format, args...)}
}

func (e *PromoteError) Error() string { return "param: " + e.msg }

// Promote converts the raw top-level token forest into a Parameter
// sequence. An `EOL` token stops emission without error; a top-level
// `Range` token (e.g. a bare `..10` score-match bound) promotes to a
// Range parameter; any other group not recognized by name is promoted
// as Raw.
func Promote(tokens []*lexer.Token) ([]Parameter, error) {
	params := make([]Parameter, 0, len(tokens))
	for _, t := range tokens {
		switch t.GroupName() {
		case groupEOL:
			return params, nil
		case groupSelectorParameter:
			p, err := promoteSelector(t)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		case groupNamespacedID:
			p, err := promoteNamespacedID(t)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		case groupHybridParameter:
			p, err := promoteHybrid(t)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		case groupComment:
			params = append(params, NewComment(t.Match))
		case groupKeyword:
			params = append(params, NewGeneric(t.Match))
		case groupRange:
			params = append(params, ParseRange(t.Match))
		case groupCompoundOpen:
			tag, err := PromoteNBT(t)
			if err != nil {
				return nil, err
			}
			params = append(params, &NBTParam{Root: tag})
		default:
			params = append(params, NewRaw(t.Match))
		}
	}
	return params, nil
}

// RebuildCommand rejoins a promoted parameter sequence into a command
// string, space-joining each parameter's command-string form.
func RebuildCommand(params []Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
