package api

// Envelope unwrapping. The backend answers the same logical fetch in
// several shapes depending on version: a bare array, an object wrapped in
// {"data": ...}, or a named list inside the wrapper such as
// {"data": {"questions": [...]}}. These helpers dig the useful part out
// without committing to any one shape.

// listKeys are the wrapper keys, in priority order, under which a list may
// hide inside an envelope object.
var listKeys = []string{"questions", "items", "list", "content", "rows", "results"}

// UnwrapList extracts a JSON array from payload, looking through data
// wrappers and the known list keys. ok is false when no array is found.
func UnwrapList(payload any) ([]any, bool) {
	switch v := payload.(type) {
	case []any:
		return v, true
	case map[string]any:
		if inner, ok := v["data"]; ok {
			if l, ok := UnwrapList(inner); ok {
				return l, true
			}
		}
		for _, k := range listKeys {
			if inner, ok := v[k]; ok {
				if l, ok := inner.([]any); ok {
					return l, true
				}
			}
		}
	}
	return nil, false
}

// UnwrapObject extracts the object of interest from payload, looking
// through data wrappers. A bare object is returned as-is.
func UnwrapObject(payload any) (map[string]any, bool) {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil, false
	}
	if inner, ok := m["data"]; ok {
		if im, ok := inner.(map[string]any); ok {
			return im, true
		}
	}
	return m, true
}
