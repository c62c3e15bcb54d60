package schema

// Types returns the type(s) of s, handling both the single string form
// (OAS 2.0/3.0) and the array form (OAS 3.1+).
//
// Examples:
//   - {"type": "string"} returns ["string"]
//   - {"type": ["string", "null"]} returns ["string", "null"]
func (s Schema) Types() []string {
	switch t := s["type"].(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		result := make([]string, 0, len(t))
		for _, v := range t {
			if name, ok := v.(string); ok {
				result = append(result, name)
			}
		}
		return result
	case []string:
		return t
	}
	return nil
}

// PrimaryType returns the first non-null type of s. When every entry is
// "null" the first entry is returned, and "" when there is no type.
func (s Schema) PrimaryType() string {
	types := s.Types()
	for _, t := range types {
		if t != "null" {
			return t
		}
	}
	if len(types) > 0 {
		return types[0]
	}
	return ""
}

// IsNullable reports whether "null" appears in the type list.
func (s Schema) IsNullable() bool {
	for _, t := range s.Types() {
		if t == "null" {
			return true
		}
	}
	return false
}

// IsObject reports whether s describes an object, either by type or by
// carrying properties.
func (s Schema) IsObject() bool {
	if s.PrimaryType() == "object" {
		return true
	}
	_, ok := s.Properties()
	return ok
}
