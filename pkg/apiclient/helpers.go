package apiclient

import (
	"encoding/json"
	"fmt"
)

// Generic helpers shared by the resource files. Each wraps the underlying
// verb methods with type-safe decoding so every resource follows the same
// access pattern.

// listField performs a GET and extracts the named collection field from the
// wrapped response body ({"products": [...]}, {"users": [...]}, ...).
//
// An absent or malformed collection field yields an empty slice, never an
// error: "no data" is not a failure. Only transport and authorization
// failures propagate.
func listField[T any](c *Client, path, field string) ([]T, error) {
	var raw json.RawMessage
	if err := c.get(path, &raw); err != nil {
		return nil, err
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(payload[field], &items); err != nil || items == nil {
		return []T{}, nil
	}
	return items, nil
}

// createResource performs a POST with the caller-supplied fields verbatim
// and decodes the created entity. The server is authoritative for
// validation; its message comes back unmodified inside the error.
func createResource[T any](c *Client, path string, body any, field string) (*T, error) {
	var raw json.RawMessage
	if err := c.post(path, body, &raw); err != nil {
		return nil, err
	}
	return decodeEntity[T](raw, field)
}

// updateResource performs a PUT with the caller-supplied fields verbatim and
// decodes the updated entity.
func updateResource[T any](c *Client, path string, body any, field string) (*T, error) {
	var raw json.RawMessage
	if err := c.put(path, body, &raw); err != nil {
		return nil, err
	}
	return decodeEntity[T](raw, field)
}

// decodeEntity decodes an entity body that may arrive bare ({...}) or
// wrapped under a field ({"product": {...}}).
func decodeEntity[T any](raw json.RawMessage, field string) (*T, error) {
	var result T
	if len(raw) == 0 {
		return &result, nil
	}

	var payload map[string]json.RawMessage
	if json.Unmarshal(raw, &payload) == nil {
		if nested, ok := payload[field]; ok {
			if err := json.Unmarshal(nested, &result); err != nil {
				return nil, fmt.Errorf("failed to decode response: %w", err)
			}
			return &result, nil
		}
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// deleteResource performs a DELETE. Callers re-issue a list to resync; the
// client keeps no cache and applies no optimistic mutation.
func deleteResource(c *Client, path string) error {
	return c.delete(path, nil)
}

// resourcePath builds a resource path from a format string.
func resourcePath(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
