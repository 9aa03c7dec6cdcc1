package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The backend is inconsistent about response nesting: a list may arrive
// as {"data":{"data":[...]}}, {"data":[...]}, {"devices":[...]} or a
// bare array. Normalization lives here, at the gateway boundary, so no
// fetcher unwraps envelopes by hand.

const maxEnvelopeDepth = 2

// rawList walks the envelope looking for a JSON array, descending at
// most two nesting levels. keys are checked before the generic "data"
// and "items" wrappers. Returns nil when no array is found.
func rawList(body []byte, keys ...string) json.RawMessage {
	keys = append(keys, "data", "items")
	node := json.RawMessage(bytes.TrimSpace(body))

	for depth := 0; depth <= maxEnvelopeDepth; depth++ {
		if len(node) > 0 && node[0] == '[' {
			return node
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(node, &obj); err != nil {
			return nil
		}
		var next json.RawMessage
		for _, k := range keys {
			v, ok := obj[k]
			if !ok {
				continue
			}
			v = bytes.TrimSpace(v)
			if len(v) == 0 {
				continue
			}
			if v[0] == '[' {
				return v
			}
			if v[0] == '{' && next == nil {
				next = v
			}
		}
		if next == nil {
			return nil
		}
		node = next
	}
	return nil
}

// decodeList normalizes a list response. A body with no array anywhere
// decodes to an empty list, not an error.
func decodeList[T any](body []byte, keys ...string) ([]T, error) {
	raw := rawList(body, keys...)
	if raw == nil {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decoding list: %w", err)
	}
	return items, nil
}

// decodeOne normalizes a single-record response, unwrapping "data"
// envelopes the same way decodeList does for arrays.
func decodeOne[T any](body []byte, keys ...string) (T, error) {
	var out T
	keys = append(keys, "data")
	node := json.RawMessage(bytes.TrimSpace(body))

	for depth := 0; depth <= maxEnvelopeDepth; depth++ {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(node, &obj); err != nil {
			break
		}
		var next json.RawMessage
		for _, k := range keys {
			if v, ok := obj[k]; ok {
				v = bytes.TrimSpace(v)
				if len(v) > 0 && v[0] == '{' {
					next = v
					break
				}
			}
		}
		if next == nil {
			break
		}
		node = next
	}

	if err := json.Unmarshal(node, &out); err != nil {
		return out, fmt.Errorf("decoding record: %w", err)
	}
	return out, nil
}
