package document

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"valuecast/value"
)

var (
	ErrNoDocument        = errors.New("input holds no YAML document")
	ErrMultipleDocuments = errors.New("input holds more than one YAML document")
	ErrDuplicateKey      = errors.New("mapping key appears more than once")
	ErrNonStringKey      = errors.New("mapping keys must be strings")
	ErrIntegerTooLarge   = errors.New("integer does not fit in 64 signed bits")
)

// LoadFile reads a YAML file and converts its single document into a
// source value.
func LoadFile(path string) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return value.Null(), fmt.Errorf("failed to read source file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse converts one YAML document into a source value. Mapping key order
// is preserved; a repeated key is an error rather than a silent overwrite.
func Parse(data []byte) (value.Value, error) {
	var root yaml.Node

	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return value.Null(), fmt.Errorf("failed to parse source YAML: %w", err)
	}

	if root.Kind == 0 || len(root.Content) == 0 {
		return value.Null(), nil
	}
	if len(root.Content) > 1 {
		return value.Null(), ErrMultipleDocuments
	}

	return fromNode(root.Content[0])
}

func fromNode(node *yaml.Node) (value.Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return fromScalar(node)

	case yaml.SequenceNode:
		items := make([]value.Value, len(node.Content))
		for i, c := range node.Content {
			item, err := fromNode(c)
			if err != nil {
				return value.Null(), err
			}
			items[i] = item
		}

		return value.Sequence(items...), nil

	case yaml.MappingNode:
		m := value.NewMapping()

		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return value.Null(), fmt.Errorf("%w: line %d", ErrNonStringKey, keyNode.Line)
			}

			key := keyNode.Value
			if m.Has(key) {
				return value.Null(), fmt.Errorf("%w: %q at line %d", ErrDuplicateKey, key, keyNode.Line)
			}

			item, err := fromNode(valNode)
			if err != nil {
				return value.Null(), err
			}
			m.Set(key, item)
		}

		return value.Map(m), nil

	case yaml.AliasNode:
		return fromNode(node.Alias)

	default:
		return value.Null(), fmt.Errorf("%w: line %d", ErrNoDocument, node.Line)
	}
}

func fromScalar(node *yaml.Node) (value.Value, error) {
	switch node.Tag {
	case "!!null":
		return value.Null(), nil

	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return value.Null(), err
		}
		return value.Bool(b), nil

	case "!!int":
		i, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return value.Null(), fmt.Errorf("%w: %q at line %d", ErrIntegerTooLarge, node.Value, node.Line)
		}
		return value.Int(i), nil

	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			// .inf and .nan spellings need the decoder
			if derr := node.Decode(&f); derr != nil {
				return value.Null(), derr
			}
		}
		return value.Float(f), nil

	default:
		// !!str and anything unrecognized reads as text
		return value.String(node.Value), nil
	}
}
