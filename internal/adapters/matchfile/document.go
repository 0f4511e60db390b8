package matchfile

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// matchDocument is the subset of a match file the loader reads. A nil
// Innings means the key was absent or null.
type matchDocument struct {
	Innings *entries[inningDetails] `yaml:"innings"`
}

type inningDetails struct {
	Deliveries entries[deliveryInfo] `yaml:"deliveries"`
}

type deliveryInfo struct {
	Batsman label     `yaml:"batsman"`
	Bowler  label     `yaml:"bowler"`
	Runs    runs      `yaml:"runs"`
	Wicket  yaml.Node `yaml:"wicket"`
}

// dismissed reports whether the wicket key was present. yaml.v3 fills Node
// fields for every present key, null included.
func (d deliveryInfo) dismissed() bool {
	return d.Wicket.Kind != 0
}

type runs struct {
	Batsman int `yaml:"batsman" validate:"gte=0"`
	Extras  int `yaml:"extras" validate:"gte=0"`
	Total   int `yaml:"total" validate:"gte=0"`
}

// label is a name or key kept as its source text. Numbers stay as written.
type label string

func (l *label) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar, got %s", n.Line, kindName(n.Kind))
	}
	*l = label(n.Value)
	return nil
}

type entry[T any] struct {
	Key   string
	Value T
}

// entries decodes a sequence of mappings into (key, value) pairs in file
// order. Every key of every item is kept.
type entries[T any] []entry[T]

func (e *entries[T]) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: expected a sequence, got %s", n.Line, kindName(n.Kind))
	}
	out := make(entries[T], 0, len(n.Content))
	for _, item := range n.Content {
		if item.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: expected a mapping entry, got %s", item.Line, kindName(item.Kind))
		}
		for i := 0; i+1 < len(item.Content); i += 2 {
			k, v := item.Content[i], item.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: expected a scalar key, got %s", k.Line, kindName(k.Kind))
			}
			if v.ShortTag() == "!!null" {
				return fmt.Errorf("line %d: %q has no details", v.Line, k.Value)
			}
			var val T
			if err := v.Decode(&val); err != nil {
				return err
			}
			out = append(out, entry[T]{Key: k.Value, Value: val})
		}
	}
	*e = out
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}

// checkRuns rejects negative run counts anywhere in the document.
func checkRuns(v *validator.Validate, doc *matchDocument) error {
	for _, inn := range *doc.Innings {
		for _, d := range inn.Value.Deliveries {
			if err := v.Struct(d.Value.Runs); err != nil {
				return fmt.Errorf("inning %q ball %q: negative runs: %w", inn.Key, d.Key, err)
			}
		}
	}
	return nil
}
