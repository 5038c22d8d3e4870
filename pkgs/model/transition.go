package model

// Op identifies the stack operation a Transition performs.
type Op int

const (
	// OpNone takes the transition with no stack change.
	OpNone Op = iota
	// OpPush pushes a frame carrying Value plus the currently open token.
	OpPush
	// OpPeek guards the transition on the top-of-stack frame's state.
	OpPeek
	// OpPop pops the top frame and resumes in the popped state.
	OpPop
	// OpEnd terminates tokenization successfully.
	OpEnd
)

func (o Op) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpPush:
		return "push"
	case OpPeek:
		return "peek"
	case OpPop:
		return "pop"
	case OpEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Transition is an edge from a State, labeled by a matched Group (nil means
// "any successful match at this state"), carrying a stack Op and an
// optional Target/Value state.
//
// Target and Value are resolved to *State indices into the owning Model's
// arena rather than raw pointers, so cyclic graphs never need owning
// pointers back to themselves (see model.go's arena-of-states design).
type Transition struct {
	Group  *Group // nil means "any"
	Target int    // index into Model.states; -1 for POP transitions (resolved dynamically)
	Op     Op
	Value  int // index into Model.states; the owning state's own index when the description gives none
}
