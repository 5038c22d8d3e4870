// Package param implements the Semantic Promoter: it converts the raw
// token forest the tokenizer produces into a typed Parameter sequence,
// and rebuilds a command string from that sequence. Each promoted family
// lives in its own file, built through small New* constructor functions.
package param

// Parameter is the tagged-sum interface every promoted variant
// implements: Generic, Raw, Selector, NamespacedID, NBTParam, Range,
// Comment, Hybrid, plus the intermediate Scores/Criteria/Advancements
// value kinds a SelectorArgument's Value may hold.
type Parameter interface {
	// String returns the command-string form: the canonical textual
	// representation used by RebuildCommand.
	String() string
	isParameter()
}

// Generic is a bare keyword parameter: a recognized command keyword
// carried verbatim with no further structure.
type Generic struct {
	Keyword string
}

func NewGeneric(keyword string) *Generic { return &Generic{Keyword: keyword} }

func (g *Generic) String() string { return g.Keyword }
func (*Generic) isParameter()     {}

// Raw is the fallback parameter: its string form is exactly its matched
// text.
type Raw struct {
	Text string
}

func NewRaw(text string) *Raw { return &Raw{Text: text} }

func (r *Raw) String() string { return r.Text }
func (*Raw) isParameter()     {}

// Comment is a `#`-introduced comment parameter.
type Comment struct {
	Text string
}

func NewComment(text string) *Comment { return &Comment{Text: text} }

func (c *Comment) String() string { return "# " + c.Text }
func (*Comment) isParameter()     {}
