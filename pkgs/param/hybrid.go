package param

import (
	"strings"

	"github.com/aledsdavies/cmdlex/pkgs/lexer"
)

// BlockStatesPart is a Hybrid constituent carrying a bracketed
// block-states map.
type BlockStatesPart struct {
	States []BlockState
}

func (p *BlockStatesPart) String() string { return blockStatesString(p.States) }
func (*BlockStatesPart) isParameter()     {}

// ListIndexPart is a Hybrid constituent carrying a bracketed index
// expression; its own contents are recursively promoted.
type ListIndexPart struct {
	Index Parameter
}

func (p *ListIndexPart) String() string { return "[" + p.Index.String() + "]" }
func (*ListIndexPart) isParameter()     {}

// Hybrid is a parameter stitched together from multiple ambiguously-typed
// constituent parts.
type Hybrid struct {
	Parts []Parameter
}

func (h *Hybrid) String() string {
	var b strings.Builder
	for _, p := range h.Parts {
		b.WriteString(p.String())
	}
	return b.String()
}

func (*Hybrid) isParameter() {}

func promoteHybrid(t *lexer.Token) (*Hybrid, error) {
	parts := make([]Parameter, 0, len(t.Children))
	for _, c := range t.Children {
		p, err := promoteHybridPart(c)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return &Hybrid{Parts: parts}, nil
}

func promoteHybridPart(t *lexer.Token) (Parameter, error) {
	switch t.GroupName() {
	case groupCompoundOpen, groupListOpen:
		tag, err := PromoteNBT(t)
		if err != nil {
			return nil, err
		}
		return &NBTParam{Root: tag}, nil
	case groupBlockStatesOpen:
		states, err := promoteBlockStates(t)
		if err != nil {
			return nil, err
		}
		return &BlockStatesPart{States: states}, nil
	case groupListIndexOpen:
		if len(t.Children) == 0 {
			return nil, newPromoteError("empty list index")
		}
		inner, err := promoteHybridPart(t.Children[0])
		if err != nil {
			return nil, err
		}
		return &ListIndexPart{Index: inner}, nil
	default:
		return NewRaw(t.Match), nil
	}
}
