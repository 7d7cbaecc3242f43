package mapsafe

import "time"

// Get retrieves a typed value from a map[string]any, such as a decoded
// YAML mapping. If the key is missing or the value cannot be converted
// to T, the default value is returned.
func Get[T any](m map[string]any, key string, defaultValue T) T {
	val, ok := m[key]
	if !ok {
		return defaultValue
	}

	switch any(defaultValue).(type) {
	case int:
		switch x := val.(type) {
		case int:
			return any(x).(T)
		case float64:
			return any(int(x)).(T)
		}
	case float64:
		switch x := val.(type) {
		case float64:
			return any(x).(T)
		case int:
			return any(float64(x)).(T)
		}
	case string:
		if s, ok := val.(string); ok {
			return any(s).(T)
		}
	case bool:
		if b, ok := val.(bool); ok {
			return any(b).(T)
		}
	case time.Duration:
		// YAML decodes durations as strings ("500ms") or numbers (seconds).
		switch x := val.(type) {
		case string:
			if d, err := time.ParseDuration(x); err == nil {
				return any(d).(T)
			}
		case int:
			return any(time.Duration(x) * time.Second).(T)
		case float64:
			return any(time.Duration(x * float64(time.Second))).(T)
		}
	default:
		if v2, ok := val.(T); ok {
			return v2
		}
	}
	return defaultValue
}
