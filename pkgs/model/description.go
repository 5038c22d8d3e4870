package model

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// GroupDef is the declarative form of a Group: { name, regex }.
type GroupDef struct {
	Name  string `mapstructure:"name"`
	Regex string `mapstructure:"regex"`
}

// ValueRef points at a state, optionally in another region ("this" or
// omitted means the containing region).
type ValueRef struct {
	Region string `mapstructure:"region"`
	State  string `mapstructure:"state"`
}

// TransitionDesc is the declarative form of a Transition.
type TransitionDesc struct {
	Group     string    `mapstructure:"group"`
	Target    string    `mapstructure:"target"`
	Operation string    `mapstructure:"operation"`
	Value     *ValueRef `mapstructure:"value"`
	Region    string    `mapstructure:"region"`
}

// StateDesc is the declarative form of a State, optionally merging a
// named template's group_defs/groups/transitions (additively) and
// inheriting tokenize from the template when unset.
type StateDesc struct {
	Template    string           `mapstructure:"template"`
	GroupDefs   []GroupDef       `mapstructure:"group_defs"`
	Groups      []string         `mapstructure:"groups"`
	Transitions []TransitionDesc `mapstructure:"transitions"`
	Tokenize    *bool            `mapstructure:"tokenize"`
}

// TemplateDesc is a named state fragment mergeable into a StateDesc.
type TemplateDesc struct {
	GroupDefs   []GroupDef       `mapstructure:"group_defs"`
	Groups      []string         `mapstructure:"groups"`
	Transitions []TransitionDesc `mapstructure:"transitions"`
	Tokenize    *bool            `mapstructure:"tokenize"`
}

// RegionDesc is a named namespace of states, with its own optional group
// vocabulary and template set.
type RegionDesc struct {
	GroupDefs []GroupDef              `mapstructure:"group_defs"`
	Templates map[string]TemplateDesc `mapstructure:"templates"`
	States    map[string]StateDesc    `mapstructure:"states"`
}

// StartDesc names the initial region/state pair.
type StartDesc struct {
	Region string `mapstructure:"region"`
	State  string `mapstructure:"state"`
}

// Description is the fully-typed form of the in-memory grammar record:
// regions, model-level group_defs, and the start state.
type Description struct {
	Regions   map[string]RegionDesc `mapstructure:"regions"`
	GroupDefs []GroupDef            `mapstructure:"group_defs"`
	Start     StartDesc             `mapstructure:"start"`
}

// descriptionSchema is a shape-level check on the raw in-memory record,
// applied before mapstructure decoding so a malformed record (missing
// "regions"/"start", wrong types) fails with a precise JSON-pointer style
// message instead of a confusing zero-value Description silently resolving
// to "region not found".
const descriptionSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["regions", "start"],
  "properties": {
    "regions": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["states"],
        "properties": {
          "states": {"type": "object"},
          "templates": {"type": "object"},
          "group_defs": {"type": "array", "items": {"$ref": "#/$defs/groupDef"}}
        }
      }
    },
    "start": {
      "type": "object",
      "required": ["region", "state"],
      "properties": {
        "region": {"type": "string"},
        "state": {"type": "string"}
      }
    },
    "group_defs": {"type": "array", "items": {"$ref": "#/$defs/groupDef"}}
  },
  "$defs": {
    "groupDef": {
      "type": "object",
      "required": ["name", "regex"],
      "properties": {
        "name": {"type": "string"},
        "regex": {"type": "string"}
      }
    }
  }
}`

var descriptionSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("description.json", strings.NewReader(descriptionSchemaJSON)); err != nil {
		panic(fmt.Sprintf("model: invalid embedded description schema: %v", err))
	}
	schema, err := compiler.Compile("description.json")
	if err != nil {
		panic(fmt.Sprintf("model: failed to compile embedded description schema: %v", err))
	}
	descriptionSchema = schema
}

// DecodeDescription accepts either a pre-built Description/*Description,
// or a map[string]any-shaped in-memory record (the JSON/YAML-decoded
// form of a grammar description), and returns a typed Description.
//
// map[string]any input is validated against descriptionSchema first, then
// decoded with mapstructure.
func DecodeDescription(raw any) (*Description, error) {
	switch v := raw.(type) {
	case Description:
		return &v, nil
	case *Description:
		return v, nil
	case map[string]any:
		if err := descriptionSchema.Validate(v); err != nil {
			return nil, &DescriptionError{Err: err}
		}
		var desc Description
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &desc,
		})
		if err != nil {
			return nil, &DescriptionError{Err: err}
		}
		if err := decoder.Decode(v); err != nil {
			return nil, &DescriptionError{Err: err}
		}
		return &desc, nil
	default:
		return nil, &DescriptionError{Err: fmt.Errorf("unsupported description type %T (want map[string]any or Description)", raw)}
	}
}

// DescriptionError wraps a shape-validation or decode failure on the raw
// in-memory record, before region/state/group resolution even begins.
type DescriptionError struct {
	Err error
}

func (e *DescriptionError) Error() string {
	return fmt.Sprintf("invalid model description: %v", e.Err)
}

func (e *DescriptionError) Unwrap() error { return e.Err }
