package param

import (
	"strings"

	"github.com/aledsdavies/cmdlex/pkgs/lexer"
	"github.com/aledsdavies/cmdlex/pkgs/nbt"
)

// BlockState is a single `key=value` entry inside a block-states map.
type BlockState struct {
	Name  string
	Value string
}

func blockStatesString(states []BlockState) string {
	if len(states) == 0 {
		return ""
	}
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = s.Name + "=" + s.Value
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// NamespacedID is a `namespace:name` reference with optional bracketed
// block-states and an optional trailing NBT compound.
type NamespacedID struct {
	Namespace   *string
	Name        string
	BlockStates []BlockState
	NBT         *nbt.Tag
}

func (n *NamespacedID) String() string {
	var b strings.Builder
	if n.Namespace != nil {
		b.WriteString(*n.Namespace)
		b.WriteByte(':')
	}
	b.WriteString(n.Name)
	b.WriteString(blockStatesString(n.BlockStates))
	if n.NBT != nil && n.NBT.Len() > 0 {
		b.WriteString(n.NBT.String())
	}
	return b.String()
}

func (*NamespacedID) isParameter() {}

// promoteNamespacedID splits the token's match on its first colon into an
// optional namespace and a name, then folds in an optional bracketed
// block-states child and an optional trailing NBT compound child.
func promoteNamespacedID(t *lexer.Token) (*NamespacedID, error) {
	var namespace *string
	name := t.Match
	if idx := strings.IndexByte(t.Match, ':'); idx >= 0 {
		ns := t.Match[:idx]
		namespace = &ns
		name = t.Match[idx+1:]
	}

	id := &NamespacedID{Namespace: namespace, Name: name}

	for _, sub := range t.Children {
		switch sub.GroupName() {
		case groupBlockStatesOpen:
			states, err := promoteBlockStates(sub)
			if err != nil {
				return nil, err
			}
			id.BlockStates = states
		case groupCompoundOpen:
			tag, err := PromoteNBT(sub)
			if err != nil {
				return nil, err
			}
			id.NBT = tag
		}
	}

	return id, nil
}

func promoteBlockStates(t *lexer.Token) ([]BlockState, error) {
	var states []BlockState
	for _, state := range t.Children {
		if state.GroupName() == groupBlockStatesEnd {
			break
		}
		if len(state.Children) == 0 {
			return nil, newPromoteError("malformed block state entry %q", state.Match)
		}
		states = append(states, BlockState{Name: state.Match, Value: state.Children[0].Match})
	}
	return states, nil
}
