package param

import "strings"

// ScoreEntry is one scoreboard-objective → range mapping.
type ScoreEntry struct {
	Name  string
	Value *Range
}

// Scores is the `scores={objective=range,...}` selector-argument value.
type Scores struct {
	Entries []ScoreEntry
}

func (s *Scores) String() string {
	parts := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		parts[i] = e.Name + "=" + e.Value.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func (*Scores) isParameter() {}

// CriteriaEntry is one advancement-criterion → boolean mapping.
type CriteriaEntry struct {
	Name  string
	Value bool
}

// Criteria is the criteria map nested inside an Advancements entry.
type Criteria struct {
	Entries []CriteriaEntry
}

func (c *Criteria) String() string {
	parts := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		parts[i] = e.Name + "=" + boolString(e.Value)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func (*Criteria) isParameter() {}

// AdvancementEntry is one advancement mapping: either a plain boolean or a
// nested Criteria map, depending on whether the entry's value child is
// itself a criteria-open group.
type AdvancementEntry struct {
	Name   string
	Bool   *bool
	Nested *Criteria
}

// Advancements is the `advancements={...}` selector-argument value.
type Advancements struct {
	Entries []AdvancementEntry
}

func (a *Advancements) String() string {
	parts := make([]string, len(a.Entries))
	for i, e := range a.Entries {
		if e.Nested != nil {
			parts[i] = e.Name + "=" + e.Nested.String()
		} else {
			parts[i] = e.Name + "=" + boolString(*e.Bool)
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func (*Advancements) isParameter() {}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
