// Package yamltree converts YAML text into tree.Value documents via
// gopkg.in/yaml.v3 nodes, which preserve mapping key order. Only the
// JSON-compatible subset is accepted: mapping keys must be scalars, and
// anchors/aliases are resolved by the yaml library before conversion.
package yamltree

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reoring/treedec/tree"
)

// Parse reads a single YAML document from b.
func Parse(b []byte) (tree.Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(b, &root); err != nil {
		return tree.Value{}, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return tree.Null(), nil
	}
	return fromNode(root.Content[0])
}

func fromNode(n *yaml.Node) (tree.Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return fromScalar(n)
	case yaml.SequenceNode:
		items := make([]tree.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return tree.Value{}, err
			}
			items = append(items, v)
		}
		return tree.Array(items...), nil
	case yaml.MappingNode:
		members := make([]tree.Member, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return tree.Value{}, fmt.Errorf("yamltree: non-scalar mapping key at line %d", keyNode.Line)
			}
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return tree.Value{}, err
			}
			members = append(members, tree.Field(keyNode.Value, v))
		}
		return tree.Object(members...), nil
	case yaml.AliasNode:
		return fromNode(n.Alias)
	}
	return tree.Value{}, fmt.Errorf("yamltree: unsupported node kind %d at line %d", n.Kind, n.Line)
}

func fromScalar(n *yaml.Node) (tree.Value, error) {
	switch n.Tag {
	case "!!null":
		return tree.Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return tree.Value{}, fmt.Errorf("yamltree: bad bool %q at line %d", n.Value, n.Line)
		}
		return tree.Bool(b), nil
	case "!!int", "!!float":
		return tree.Number(json.Number(n.Value)), nil
	default:
		return tree.String(n.Value), nil
	}
}
