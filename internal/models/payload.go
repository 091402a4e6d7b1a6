package models

// Payload is a decoded JSON object as returned by the API gateway. The
// accessors tolerate missing keys and wrong types, returning zero values,
// so callers can pick fields without a cascade of type assertions.
type Payload map[string]any

func (p Payload) String(key string) string {
	if p == nil {
		return ""
	}
	val, ok := p[key]
	if !ok {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

// Number returns the field as a float64 and whether it actually was numeric.
// The second return matters for bill fields, which must never be rendered
// unless the server sent a real number.
func (p Payload) Number(key string) (float64, bool) {
	if p == nil {
		return 0, false
	}
	val, ok := p[key]
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// Object returns a nested JSON object, or nil when the field is absent or
// not an object.
func (p Payload) Object(key string) Payload {
	if p == nil {
		return nil
	}
	val, ok := p[key]
	if !ok {
		return nil
	}
	if obj, ok := val.(map[string]any); ok {
		return Payload(obj)
	}
	return nil
}

// Slice returns a nested JSON array of objects, skipping non-object entries.
func (p Payload) Slice(key string) []Payload {
	if p == nil {
		return nil
	}
	val, ok := p[key]
	if !ok {
		return nil
	}
	items, ok := val.([]any)
	if !ok {
		return nil
	}
	var out []Payload
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, Payload(obj))
		}
	}
	return out
}
