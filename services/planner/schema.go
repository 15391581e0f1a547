package planner

import (
	"encoding/json"
	"strings"
)

// The generation collaborator returns free text. The helpers here separate
// parsing from shape-checking: parse first, then decide validity from the
// decoded value, so every fallback decision is a pure function of shape.

// sanitizeModelJSON strips markdown code fences and surrounding noise that
// models commonly wrap around JSON payloads.
func sanitizeModelJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	return s
}

// decodeObjectArray parses raw as a JSON array of objects, keeping only
// elements that carry every required key. It reports ok=false when the
// payload is not an array or no element survives the key check.
func decodeObjectArray(raw string, required ...string) ([]map[string]any, bool) {
	var items []map[string]any
	if err := json.Unmarshal([]byte(sanitizeModelJSON(raw)), &items); err != nil {
		return nil, false
	}

	valid := items[:0]
	for _, item := range items {
		if item == nil {
			continue
		}
		keysPresent := true
		for _, key := range required {
			if _, exists := item[key]; !exists {
				keysPresent = false
				break
			}
		}
		if keysPresent {
			valid = append(valid, item)
		}
	}
	if len(valid) == 0 {
		return nil, false
	}
	return valid, true
}

// decodeObject parses raw as a single JSON object.
func decodeObject(raw string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(sanitizeModelJSON(raw)), &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// decodeStringArray parses raw as a JSON array of strings, skipping
// non-string elements. ok=false when the payload is not an array or holds
// no strings at all.
func decodeStringArray(raw string) ([]string, bool) {
	var items []any
	if err := json.Unmarshal([]byte(sanitizeModelJSON(raw)), &items); err != nil {
		return nil, false
	}
	var out []string
	for _, item := range items {
		if s, isStr := item.(string); isStr && s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// Field coercion helpers for decoded objects.

func stringField(m map[string]any, key, fallback string) string {
	if v, exists := m[key]; exists {
		if s, isStr := v.(string); isStr && s != "" {
			return s
		}
	}
	return fallback
}

func boolField(m map[string]any, key string) bool {
	switch v := m[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	}
	return false
}

func intField(m map[string]any, key string, fallback int) int {
	if v, exists := m[key]; exists {
		if f, isNum := v.(float64); isNum {
			return int(f)
		}
	}
	return fallback
}

func stringListField(m map[string]any, key string) []string {
	var out []string
	if list, isList := m[key].([]any); isList {
		for _, item := range list {
			if s, isStr := item.(string); isStr && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
