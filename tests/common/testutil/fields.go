//go:build unit || e2e

package testutil

// a helper function for dynamically modifying map fields in tests
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// ActivityField edits one entry of the "activities" array of a reservation
// request map.
func ActivityField(index int, key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		lines, _ := m["activities"].([]any)
		if index >= len(lines) {
			return
		}
		if line, ok := lines[index].(map[string]any); ok {
			Field(key, value)(line)
		}
	}
}
