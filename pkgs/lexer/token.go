// Package lexer implements the pushdown tokenizer: the driver that
// consumes a command line using a model.Model and yields a forest of raw
// Tokens.
package lexer

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/cmdlex/pkgs/model"
)

// Token is a node in the raw token forest: the verbatim matched text, the
// originating Group (nil only for the synthetic root used internally by
// the NBT promoter), and the ordered child tokens consumed between this
// token's PUSH and its matching POP. A Token exclusively owns its
// Children.
type Token struct {
	Match    string
	Group    *model.Group
	Children []*Token
}

// GroupName returns the originating group's name, or "" for a token with
// no group.
func (t *Token) GroupName() string {
	if t.Group == nil {
		return ""
	}
	return t.Group.Name
}

// String renders a debug form "GroupName(match, [children...])".
func (t *Token) String() string {
	name := "<nil>"
	if t.Group != nil {
		name = t.Group.Name
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s(%s", name, t.Match)
	if len(t.Children) > 0 {
		b.WriteString(", [")
		for i, c := range t.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.String())
		}
		b.WriteString("]")
	}
	b.WriteString(")")
	return b.String()
}

// Text concatenates this token's match and every descendant's match, in
// pre-order. It reconstructs the original input verbatim only where every
// traversed state tokenizes its matches; a state with Tokenize=false (used
// for whitespace and structural punctuation like "[", "=", ",") consumes
// input without recording it, exactly as the original's tokenize flag
// does, so separator text is absent from the result for grammars (like
// the default Minecraft one) that rely on that to keep semantically
// insignificant characters out of the promoted parameter tree.
func (t *Token) Text() string {
	var b strings.Builder
	t.writeText(&b)
	return b.String()
}

func (t *Token) writeText(b *strings.Builder) {
	b.WriteString(t.Match)
	for _, c := range t.Children {
		c.writeText(b)
	}
}
