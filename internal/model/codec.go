package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSONUnescaped encodes v without HTML escaping, so file content such
// as "<" or "&" is written back byte for byte.
func MarshalJSONUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// marshalWithExtra writes the non-empty known fields over the preserved extra keys.
func marshalWithExtra(known map[string]any, extra map[string]any) ([]byte, error) {
	out := make(map[string]any, len(extra)+len(known))
	for k, v := range extra {
		out[k] = v
	}

	for k, v := range known {
		out[k] = v
	}

	return MarshalJSONUnescaped(out)
}

// unmarshalWithExtra decodes every key of data present in known into its
// target and collects the rest into *extra.
func unmarshalWithExtra(data []byte, known map[string]any, extra *map[string]any) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, value := range raw {
		if target, ok := known[key]; ok {
			if err := json.Unmarshal(value, target); err != nil {
				return fmt.Errorf("decode %s: %w", key, err)
			}

			continue
		}

		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}

		if *extra == nil {
			*extra = map[string]any{}
		}

		(*extra)[key] = v
	}

	return nil
}
