// Package grammar holds the default dialect description consumed by
// pkgs/model and pkgs/lexer: a command-line syntax modeled on Minecraft's
// `/command` argument grammar (selectors, namespaced IDs, block states,
// SNBT literals, score/criteria/advancement maps, and line comments).
package grammar

import "github.com/aledsdavies/cmdlex/pkgs/model"

func tok(b bool) *bool { return &b }

// keyword builds the '|'-joined alternation regex NewKeywordGroup would,
// without pulling in a *Group we'd immediately discard; Description
// group_defs want a bare regex string.
func keyword(words ...string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += "|"
		}
		out += w
	}
	return out
}

// Minecraft returns the default Description: a dialect covering keyword
// commands, target selectors with bracketed arguments (including nested
// scores/nbt/advancements/criteria maps), namespaced IDs with optional
// block states and a trailing NBT compound, SNBT literals (scalars,
// arrays, lists, nested compounds), ranges, and '#' line comments.
//
// This Description is built directly as a literal group/state/transition
// record (pkgs/model/description.go's mapstructure-decoded shape), the
// same data this package would otherwise load from a JSON/YAML file.
//
// Hybrid/ListIndex parameters are intentionally not reachable from this
// grammar: no command shape in this dialect needs a token tree that
// mixes a bracketed block-states/NBT/list-index suffix onto an otherwise
// plain value, so wiring a production here would be guesswork. The
// promoter's Hybrid path stays implemented and unit-tested directly
// against hand-built token trees (pkgs/param/hybrid.go, promote_test.go).
func Minecraft() *model.Description {
	return &model.Description{
		Start: model.StartDesc{Region: "main", State: "wsSkip"},
		GroupDefs: []model.GroupDef{
			{Name: "Whitespace", Regex: `\s*`},
			{Name: "Hash", Regex: `#`},
			{Name: "Comment", Regex: `[^\n]*`},
			{Name: "EOL", Regex: `$`},
			{Name: "SelectorParameter", Regex: `@[aeprs]`},
			{Name: "Keyword", Regex: keyword(
				"tp", "teleport", "kill", "give", "setblock", "execute", "summon",
				"data", "say", "effect", "gamemode", "fill", "clone", "scoreboard",
				"title", "tellraw", "particle", "playsound", "weather", "time",
				"difficulty", "whitelist", "op", "deop", "ban", "pardon", "kick",
				"stop", "enchant", "experience", "xp", "function", "gamerule",
				"locate", "loot", "recipe", "reload", "schedule", "seed",
				"setworldspawn", "spawnpoint", "spreadplayers", "stopsound", "tag",
				"team", "teammsg", "trigger", "worldborder", "advancement",
			)},
			{Name: "AlwaysEmpty", Regex: ``},

			{Name: "ArgsOpen", Regex: `\[`},
			{Name: "ArgsClose", Regex: `\]`},

			{Name: "BlockStatesOpen", Regex: `\[`},
			{Name: "BlockStatesEnd", Regex: `\]`},
			{Name: "BlockStateName", Regex: `[A-Za-z_][A-Za-z0-9_]*`},

			{Name: "CompoundOpen", Regex: `\{`},
			{Name: "CompoundClose", Regex: `\}`},
			{Name: "ListOpen", Regex: `\[`},
			{Name: "ListClose", Regex: `\]`},
			{Name: "ByteArrayOpen", Regex: `\[B;`},
			{Name: "IntArrayOpen", Regex: `\[I;`},
			{Name: "LongArrayOpen", Regex: `\[L;`},
			{Name: "ArrayClose", Regex: `\]`},
			{Name: "IntLiteral", Regex: `-?\d+`},
			{Name: "EntryName", Regex: `[A-Za-z_][A-Za-z0-9_]*`},

			{Name: "Colon", Regex: `:`},
			{Name: "Comma", Regex: `,`},
			{Name: "CloseBraceLookahead", Regex: `(?=\})`},
			{Name: "CloseBracketLookahead", Regex: `(?=\])`},
			{Name: "Negation", Regex: `!`},
			{Name: "Equals", Regex: `=`},

			{Name: "ScoresArgument", Regex: "scores"},
			{Name: "NBTArgument", Regex: "nbt"},
			{Name: "AdvancementsArgument", Regex: "advancements"},
			{Name: "RawArgument", Regex: `\w+`},

			{Name: "ScoresOpen", Regex: `\{`},
			{Name: "ScoresClose", Regex: `\}`},
			{Name: "ScoreName", Regex: `[A-Za-z_][A-Za-z0-9_]*`},

			{Name: "AdvancementsOpen", Regex: `\{`},
			{Name: "AdvancementsClose", Regex: `\}`},
			{Name: "AdvancementName", Regex: `[A-Za-z0-9_:./]+`},

			{Name: "CriteriaOpen", Regex: `\{`},
			{Name: "CriteriaClose", Regex: `\}`},
			{Name: "CriterionName", Regex: `[A-Za-z0-9_]+`},
		},
		Regions: map[string]model.RegionDesc{
			"common": {
				States: map[string]model.StateDesc{
					// closeEntry unconditionally pops one frame. It's the
					// resume target recorded whenever a value itself opens
					// a nested scope (a compound/list/array inside an NBT
					// value, or a scores/nbt/advancements map as a selector
					// argument's value): once that nested scope's own
					// closing sentinel pops back here, this state performs
					// the *second* pop that closes the entry/argument frame
					// that owns the nested value. It never inspects who
					// pushed it: the runtime stack already recorded the
					// right place to resume, so this state is shared by
					// every call site that needs exactly this mechanism.
					"closeEntry": {
						Tokenize: tok(false),
						Groups:   []string{"AlwaysEmpty"},
						Transitions: []model.TransitionDesc{
							{Group: "AlwaysEmpty", Operation: "pop"},
						},
					},
				},
			},
			"main": {
				States: map[string]model.StateDesc{
					// wsSkip owns the end-of-line check, so a command line
					// that ends after a complete argument terminates here
					// without ever emitting an EOL token into the forest.
					// start keeps its own EOL production for the one path
					// that bypasses this state's check: trailing whitespace
					// consumed by the Whitespace group.
					"wsSkip": {
						Tokenize: tok(false),
						Groups:   []string{"EOL", "Hash", "Whitespace"},
						Transitions: []model.TransitionDesc{
							{Group: "EOL", Operation: "end"},
							{Group: "Hash", Operation: "none", Target: "commentBody"},
							{Operation: "none", Target: "start"},
						},
					},
					"commentBody": {
						Tokenize: tok(true),
						Groups:   []string{"Comment"},
						Transitions: []model.TransitionDesc{
							{Operation: "end"},
						},
					},
					"start": {
						Tokenize: tok(true),
						Groups: []string{
							"EOL", "SelectorParameter", "Keyword", "Range", "Number",
							"String", "CompoundOpen", "NamespacedID", "Word",
						},
						Transitions: []model.TransitionDesc{
							{Group: "EOL", Operation: "end"},
							{
								Group: "SelectorParameter", Operation: "push",
								Target: "argsCheck", Region: "selector",
								Value: &model.ValueRef{State: "wsSkip"},
							},
							// A bare NBT compound argument, not attached to a
							// preceding NamespacedID (e.g. "data merge block
							// 0 0 0 {x:1b}"). Only one push guards this value,
							// so it resumes directly in wsSkip rather than
							// routing through common:closeEntry's double pop.
							{
								Group: "CompoundOpen", Operation: "push",
								Target: "compoundOpen", Region: "nbt",
								Value: &model.ValueRef{State: "wsSkip"},
							},
							{
								Group: "NamespacedID", Operation: "push",
								Target: "nsCheck",
								Value:  &model.ValueRef{State: "wsSkip"},
							},
							{Operation: "none", Target: "wsSkip"},
						},
					},
					// nsCheck runs immediately after a NamespacedID token
					// (pushed as the open token), looking for an optional
					// bracketed block-states map followed by an optional
					// trailing NBT compound. Re-entered after block states
					// close, so `minecraft:chest[facing=north]{Lock:"key"}`
					// resolves both suffixes.
					"nsCheck": {
						Tokenize: tok(true),
						Groups:   []string{"BlockStatesOpen", "CompoundOpen", "AlwaysEmpty"},
						Transitions: []model.TransitionDesc{
							{
								Group: "BlockStatesOpen", Operation: "push",
								Target: "entry", Region: "blockstates",
								Value: &model.ValueRef{State: "nsCheck"},
							},
							{
								Group: "CompoundOpen", Operation: "push",
								Target: "compoundOpen", Region: "nbt",
								Value: &model.ValueRef{Region: "common", State: "closeEntry"},
							},
							{Group: "AlwaysEmpty", Operation: "pop"},
						},
					},
				},
			},
			"blockstates": {
				States: map[string]model.StateDesc{
					"entry": {
						Tokenize: tok(true),
						Groups:   []string{"BlockStatesEnd", "BlockStateName"},
						Transitions: []model.TransitionDesc{
							{Group: "BlockStatesEnd", Operation: "pop"},
							{
								Group: "BlockStateName", Operation: "push",
								Target: "afterEquals",
								Value:  &model.ValueRef{State: "sep"},
							},
						},
					},
					"afterEquals": {
						Tokenize: tok(false),
						Groups:   []string{"Equals"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "value"},
						},
					},
					"value": {
						Tokenize: tok(true),
						Groups:   []string{"Word"},
						Transitions: []model.TransitionDesc{
							{Operation: "pop"},
						},
					},
					"sep": {
						Tokenize: tok(false),
						Groups:   []string{"Comma", "CloseBracketLookahead"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "entry"},
						},
					},
				},
			},
			"selector": {
				States: map[string]model.StateDesc{
					"argsCheck": {
						Tokenize: tok(false),
						Groups:   []string{"ArgsOpen", "AlwaysEmpty"},
						Transitions: []model.TransitionDesc{
							{Group: "ArgsOpen", Operation: "none", Target: "argsLoop"},
							{Group: "AlwaysEmpty", Operation: "pop"},
						},
					},
					"argsLoop": {
						Tokenize: tok(true),
						Groups: []string{
							"ScoresArgument", "NBTArgument",
							"AdvancementsArgument", "RawArgument", "ArgsClose",
						},
						Transitions: []model.TransitionDesc{
							{
								Group: "ScoresArgument", Operation: "push",
								Target: "afterArgNameScores",
								Value:  &model.ValueRef{State: "argsSep"},
							},
							{
								Group: "NBTArgument", Operation: "push",
								Target: "afterArgNameNBT",
								Value:  &model.ValueRef{State: "argsSep"},
							},
							{
								Group: "AdvancementsArgument", Operation: "push",
								Target: "afterArgNameAdvancements",
								Value:  &model.ValueRef{State: "argsSep"},
							},
							{
								Group: "RawArgument", Operation: "push",
								Target: "afterArgNameRaw",
								Value:  &model.ValueRef{State: "argsSep"},
							},
							{Group: "ArgsClose", Operation: "pop"},
						},
					},
					"argsSep": {
						Tokenize: tok(false),
						Groups:   []string{"Comma", "CloseBracketLookahead"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "argsLoop"},
						},
					},
					"afterArgNameScores": {
						Tokenize: tok(false),
						Groups:   []string{"Equals"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "argValueScores"},
						},
					},
					"afterArgNameNBT": {
						Tokenize: tok(false),
						Groups:   []string{"Equals"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "argValueNBT"},
						},
					},
					"afterArgNameAdvancements": {
						Tokenize: tok(false),
						Groups:   []string{"Equals"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "argValueAdvancements"},
						},
					},
					"afterArgNameRaw": {
						Tokenize: tok(false),
						Groups:   []string{"Equals"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "argValueRaw"},
						},
					},
					"argValueScores": {
						Tokenize: tok(true),
						Groups:   []string{"ScoresOpen"},
						Transitions: []model.TransitionDesc{
							{
								Operation: "push", Target: "body", Region: "scores",
								Value: &model.ValueRef{Region: "common", State: "closeEntry"},
							},
						},
					},
					"argValueNBT": {
						Tokenize: tok(true),
						Groups:   []string{"CompoundOpen"},
						Transitions: []model.TransitionDesc{
							{
								Operation: "push", Target: "compoundOpen", Region: "nbt",
								Value: &model.ValueRef{Region: "common", State: "closeEntry"},
							},
						},
					},
					"argValueAdvancements": {
						Tokenize: tok(true),
						Groups:   []string{"AdvancementsOpen"},
						Transitions: []model.TransitionDesc{
							{
								Operation: "push", Target: "body", Region: "advancements",
								Value: &model.ValueRef{Region: "common", State: "closeEntry"},
							},
						},
					},
					// Negation is only recognized on raw (non-scores/nbt/
					// advancements) argument values: `type=!zombie`, not
					// `scores=!{...}`.
					// NamespacedID before Word: a namespaced value like
					// type=minecraft:pig must not stop at the Word run
					// "minecraft" and strand the colon.
					"argValueRaw": {
						Tokenize: tok(true),
						Groups:   []string{"Negation", "String", "Number", "NamespacedID", "Word"},
						Transitions: []model.TransitionDesc{
							{Group: "Negation", Operation: "none", Target: "argValueRawAfterNeg"},
							{Operation: "pop"},
						},
					},
					"argValueRawAfterNeg": {
						Tokenize: tok(true),
						Groups:   []string{"String", "Number", "NamespacedID", "Word"},
						Transitions: []model.TransitionDesc{
							{Operation: "pop"},
						},
					},
				},
			},
			"scores": {
				States: map[string]model.StateDesc{
					"body": {
						Tokenize: tok(true),
						Groups:   []string{"ScoresClose", "ScoreName"},
						Transitions: []model.TransitionDesc{
							{Group: "ScoresClose", Operation: "pop"},
							{
								Group: "ScoreName", Operation: "push",
								Target: "afterEquals",
								Value:  &model.ValueRef{State: "sep"},
							},
						},
					},
					"afterEquals": {
						Tokenize: tok(false),
						Groups:   []string{"Equals"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "value"},
						},
					},
					"value": {
						Tokenize: tok(true),
						Groups:   []string{"Range", "Integer"},
						Transitions: []model.TransitionDesc{
							{Operation: "pop"},
						},
					},
					"sep": {
						Tokenize: tok(false),
						Groups:   []string{"Comma", "CloseBraceLookahead"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "body"},
						},
					},
				},
			},
			"advancements": {
				States: map[string]model.StateDesc{
					"body": {
						Tokenize: tok(true),
						Groups:   []string{"AdvancementsClose", "AdvancementName"},
						Transitions: []model.TransitionDesc{
							{Group: "AdvancementsClose", Operation: "pop"},
							{
								Group: "AdvancementName", Operation: "push",
								Target: "afterEquals",
								Value:  &model.ValueRef{State: "sep"},
							},
						},
					},
					"afterEquals": {
						Tokenize: tok(false),
						Groups:   []string{"Equals"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "value"},
						},
					},
					"value": {
						Tokenize: tok(true),
						Groups:   []string{"CriteriaOpen", "Word"},
						Transitions: []model.TransitionDesc{
							{
								Group: "CriteriaOpen", Operation: "push",
								Target: "body", Region: "criteria",
								Value: &model.ValueRef{Region: "common", State: "closeEntry"},
							},
							{Operation: "pop"},
						},
					},
					"sep": {
						Tokenize: tok(false),
						Groups:   []string{"Comma", "CloseBraceLookahead"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "body"},
						},
					},
				},
			},
			"criteria": {
				States: map[string]model.StateDesc{
					"body": {
						Tokenize: tok(true),
						Groups:   []string{"CriteriaClose", "CriterionName"},
						Transitions: []model.TransitionDesc{
							{Group: "CriteriaClose", Operation: "pop"},
							{
								Group: "CriterionName", Operation: "push",
								Target: "afterEquals",
								Value:  &model.ValueRef{State: "sep"},
							},
						},
					},
					"afterEquals": {
						Tokenize: tok(false),
						Groups:   []string{"Equals"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "value"},
						},
					},
					"value": {
						Tokenize: tok(true),
						Groups:   []string{"Word"},
						Transitions: []model.TransitionDesc{
							{Operation: "pop"},
						},
					},
					"sep": {
						Tokenize: tok(false),
						Groups:   []string{"Comma", "CloseBraceLookahead"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "body"},
						},
					},
				},
			},
			// nbt implements SNBT literal parsing: compounds and lists
			// recurse through "value", arrays collect flat integer
			// literals directly.
			"nbt": {
				States: map[string]model.StateDesc{
					"compoundOpen": {
						Tokenize: tok(true),
						Groups:   []string{"CompoundClose", "EntryName"},
						Transitions: []model.TransitionDesc{
							{Group: "CompoundClose", Operation: "pop"},
							{
								Group: "EntryName", Operation: "push",
								Target: "entryColon",
								Value:  &model.ValueRef{State: "compoundSep"},
							},
						},
					},
					"entryColon": {
						Tokenize: tok(false),
						Groups:   []string{"Colon"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "value"},
						},
					},
					"compoundSep": {
						Tokenize: tok(false),
						Groups:   []string{"Comma", "CloseBraceLookahead"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "compoundOpen"},
						},
					},
					// listOpen opens an unnamed entry per element (its
					// own match is always empty) so getTag's name/value
					// split works uniformly for named compound entries
					// and unnamed list elements alike.
					"listOpen": {
						Tokenize: tok(true),
						Groups:   []string{"ListClose", "AlwaysEmpty"},
						Transitions: []model.TransitionDesc{
							{Group: "ListClose", Operation: "pop"},
							{
								Group: "AlwaysEmpty", Operation: "push",
								Target: "value",
								Value:  &model.ValueRef{State: "listSep"},
							},
						},
					},
					"listSep": {
						Tokenize: tok(false),
						Groups:   []string{"Comma", "CloseBracketLookahead"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "listOpen"},
						},
					},
					"value": {
						Tokenize: tok(true),
						Groups: []string{
							"Number", "String", "Word", "ByteArrayOpen",
							"IntArrayOpen", "LongArrayOpen", "ListOpen", "CompoundOpen",
						},
						Transitions: []model.TransitionDesc{
							{
								Group: "ByteArrayOpen", Operation: "push",
								Target: "arrayBody",
								Value:  &model.ValueRef{Region: "common", State: "closeEntry"},
							},
							{
								Group: "IntArrayOpen", Operation: "push",
								Target: "arrayBody",
								Value:  &model.ValueRef{Region: "common", State: "closeEntry"},
							},
							{
								Group: "LongArrayOpen", Operation: "push",
								Target: "arrayBody",
								Value:  &model.ValueRef{Region: "common", State: "closeEntry"},
							},
							{
								Group: "ListOpen", Operation: "push",
								Target: "listOpen",
								Value:  &model.ValueRef{Region: "common", State: "closeEntry"},
							},
							{
								Group: "CompoundOpen", Operation: "push",
								Target: "compoundOpen",
								Value:  &model.ValueRef{Region: "common", State: "closeEntry"},
							},
							{Operation: "pop"},
						},
					},
					"arrayBody": {
						Tokenize: tok(true),
						Groups:   []string{"ArrayClose", "IntLiteral"},
						Transitions: []model.TransitionDesc{
							{Group: "ArrayClose", Operation: "pop"},
							{Operation: "none", Target: "arraySep"},
						},
					},
					"arraySep": {
						Tokenize: tok(false),
						Groups:   []string{"Comma", "CloseBracketLookahead"},
						Transitions: []model.TransitionDesc{
							{Operation: "none", Target: "arrayBody"},
						},
					},
				},
			},
		},
	}
}
