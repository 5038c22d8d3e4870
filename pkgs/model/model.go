package model

import (
	"fmt"
	"sort"

	"github.com/aledsdavies/cmdlex/pkgs/errs"
)

// Model is an immutable graph of named states organized into named
// regions, resolved once from a Description. States live in an arena
// (Model.states) and are referenced by index rather than by pointer, so
// cyclic transitions never require owning pointers back to themselves.
type Model struct {
	states []*State
	index  map[string]int
	start  int
}

// Start returns the initial state.
func (m *Model) Start() *State { return m.states[m.start] }

// StartIndex returns the arena index of the initial state.
func (m *Model) StartIndex() int { return m.start }

// StateAt returns the state stored at the given arena index.
func (m *Model) StateAt(i int) *State { return m.states[i] }

// Lookup resolves a (region, state) pair to its arena index.
func (m *Model) Lookup(region, name string) (int, bool) {
	i, ok := m.index[key(region, name)]
	return i, ok
}

func key(region, name string) string { return region + "\x00" + name }

// groupScope is a name -> *Group map, consulted in layering order:
// predefined, then Model-level, then region-level, then state-level, each
// shadowing the prior layer only within the scope of the state currently
// being resolved.
type groupScope map[string]*Group

func (s groupScope) clone() groupScope {
	out := make(groupScope, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func (s groupScope) applyDefs(defs []GroupDef) {
	for _, d := range defs {
		s[d.Name] = NewGroup(d.Name, d.Regex)
	}
}

func (s groupScope) names() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// builder carries construction-time mutable state across the recursive
// on-demand resolution walk.
type builder struct {
	desc       *Description
	states     []*State
	index      map[string]int
	baseGroups groupScope
}

// Build resolves a Description into an immutable Model, starting from the
// start state and recursively resolving targets and push-values as they
// are discovered.
func Build(desc *Description) (*Model, error) {
	base := make(groupScope, len(Predefined))
	for k, v := range Predefined {
		base[k] = v
	}
	base.applyDefs(desc.GroupDefs)

	b := &builder{
		desc:       desc,
		index:      make(map[string]int),
		baseGroups: base,
	}

	startIdx, err := b.resolveState(desc.Start.Region, desc.Start.State)
	if err != nil {
		return nil, err
	}

	return &Model{states: b.states, index: b.index, start: startIdx}, nil
}

// place reserves an arena slot for (region, name) before its transitions
// are populated, so a cycle back to this state during resolution finds an
// already-memoized (if incomplete) entry instead of recursing forever.
func (b *builder) place(region, name string) int {
	idx := len(b.states)
	b.states = append(b.states, &State{Region: region, Name: name})
	b.index[key(region, name)] = idx
	return idx
}

func (b *builder) resolveState(region, name string) (int, error) {
	if idx, ok := b.index[key(region, name)]; ok {
		return idx, nil
	}

	regionDesc, ok := b.desc.Regions[region]
	if !ok {
		return 0, errs.NewModelError("region", region, b.regionNames())
	}

	regionGroups := b.baseGroups.clone()
	regionGroups.applyDefs(regionDesc.GroupDefs)

	stateDesc, ok := regionDesc.States[name]
	if !ok {
		return 0, errs.NewModelError("state", region+":"+name, stateNames(regionDesc))
	}

	idx := b.place(region, name)
	state := b.states[idx]

	groupDefs := append([]GroupDef(nil), stateDesc.GroupDefs...)
	groupNames := append([]string(nil), stateDesc.Groups...)
	transitions := append([]TransitionDesc(nil), stateDesc.Transitions...)
	tokenize := stateDesc.Tokenize

	if stateDesc.Template != "" {
		tmpl, ok := regionDesc.Templates[stateDesc.Template]
		if !ok {
			return 0, errs.NewModelError("template", region+":"+stateDesc.Template, templateNames(regionDesc))
		}
		// Additive merge: template declarations first, state-local
		// declarations appended after.
		groupDefs = append(append([]GroupDef(nil), tmpl.GroupDefs...), groupDefs...)
		groupNames = append(append([]string(nil), tmpl.Groups...), groupNames...)
		transitions = append(append([]TransitionDesc(nil), tmpl.Transitions...), transitions...)
		if tokenize == nil {
			tokenize = tmpl.Tokenize
		}
	}

	stateGroups := regionGroups.clone()
	stateGroups.applyDefs(groupDefs)

	// Group names double as named-capture identifiers in the compound
	// pattern, so they must be unique within the state.
	seen := make(map[string]bool, len(groupNames))
	ordered := make([]*Group, 0, len(groupNames))
	for _, gn := range groupNames {
		if seen[gn] {
			return 0, fmt.Errorf("model: duplicate group %q in state %s:%s", gn, region, name)
		}
		seen[gn] = true
		g, ok := stateGroups[gn]
		if !ok {
			return 0, errs.NewModelError("group", region+":"+name+":"+gn, stateGroups.names())
		}
		ordered = append(ordered, g)
	}

	state.Groups = ordered
	if tokenize != nil {
		state.Tokenize = *tokenize
	} else {
		state.Tokenize = true
	}

	for _, td := range transitions {
		t, err := b.resolveTransition(region, idx, td, stateGroups)
		if err != nil {
			return 0, err
		}
		state.AddTransition(t)
	}

	return idx, nil
}

func (b *builder) resolveTransition(containingRegion string, selfIdx int, td TransitionDesc, stateGroups groupScope) (*Transition, error) {
	var group *Group
	if td.Group != "" {
		g, ok := stateGroups[td.Group]
		if !ok {
			return nil, errs.NewModelError("group", containingRegion+":"+td.Group, stateGroups.names())
		}
		group = g
	}

	op, err := parseOp(td.Operation)
	if err != nil {
		return nil, err
	}

	target := -1
	if td.Target != "" {
		targetRegion := resolveRegionName(td.Region, containingRegion)
		idx, err := b.resolveState(targetRegion, td.Target)
		if err != nil {
			return nil, err
		}
		target = idx
	}

	value := selfIdx
	if td.Value != nil {
		valueRegion := resolveRegionName(td.Value.Region, containingRegion)
		idx, err := b.resolveState(valueRegion, td.Value.State)
		if err != nil {
			return nil, err
		}
		value = idx
	}

	return &Transition{Group: group, Target: target, Op: op, Value: value}, nil
}

func resolveRegionName(declared, containing string) string {
	if declared == "" || declared == "this" {
		return containing
	}
	return declared
}

func parseOp(s string) (Op, error) {
	switch s {
	case "", "none":
		return OpNone, nil
	case "push":
		return OpPush, nil
	case "peek":
		return OpPeek, nil
	case "pop":
		return OpPop, nil
	case "end":
		return OpEnd, nil
	default:
		return OpNone, fmt.Errorf("model: unknown transition operation %q", s)
	}
}

func (b *builder) regionNames() []string {
	out := make([]string, 0, len(b.desc.Regions))
	for k := range b.desc.Regions {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func stateNames(r RegionDesc) []string {
	out := make([]string, 0, len(r.States))
	for k := range r.States {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func templateNames(r RegionDesc) []string {
	out := make([]string, 0, len(r.Templates))
	for k := range r.Templates {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
