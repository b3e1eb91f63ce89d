package repairtime

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// decodeStrict decodes a single YAML document into out, rejecting unknown
// fields and any value under intKeys whose resolved tag is not !!int.
//
// yaml.v3 truncates float scalars decoded into integer fields, so the
// document tree is checked before the typed decode.
func decodeStrict(data []byte, out any, intKeys ...string) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}

	keys := make(map[string]struct{}, len(intKeys))
	for _, k := range intKeys {
		keys[k] = struct{}{}
	}
	if err := checkIntScalars(&doc, keys); err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	return dec.Decode(out)
}

func checkIntScalars(n *yaml.Node, keys map[string]struct{}) error {
	if n == nil {
		return nil
	}

	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if _, ok := keys[key.Value]; ok {
				if err := requireInt(key.Value, val); err != nil {
					return err
				}
			}
			if err := checkIntScalars(val, keys); err != nil {
				return err
			}
		}

		return nil
	}

	for _, c := range n.Content {
		if err := checkIntScalars(c, keys); err != nil {
			return err
		}
	}

	return nil
}

// requireInt checks that val is an integer scalar or a sequence of them.
func requireInt(field string, val *yaml.Node) error {
	if val.Kind == yaml.AliasNode && val.Alias != nil {
		val = val.Alias
	}

	switch val.Kind {
	case yaml.SequenceNode:
		for i, item := range val.Content {
			if err := requireInt(fmt.Sprintf("%s[%d]", field, i), item); err != nil {
				return err
			}
		}

		return nil
	case yaml.ScalarNode:
		if tag := val.ShortTag(); tag != "!!int" {
			return fmt.Errorf("%s: line %d: %q is %s, want an integer", field, val.Line, val.Value, tag)
		}

		return nil
	default:
		return fmt.Errorf("%s: line %d: want an integer", field, val.Line)
	}
}
