package formatter

// SpecialCases maps process -> table key -> raw value text -> replacement.
// The table key is normally the option's flag.
type SpecialCases map[string]map[string]map[string]string

// Lookup returns the replacement for raw under process and key.
func (s SpecialCases) Lookup(process, key, raw string) (string, bool) {
	byKey, ok := s[process]
	if !ok {
		return "", false
	}
	byValue, ok := byKey[key]
	if !ok {
		return "", false
	}
	v, ok := byValue[raw]
	return v, ok
}

// HasTable reports whether process has a table under key.
func (s SpecialCases) HasTable(process, key string) bool {
	_, ok := s[process][key]
	return ok
}
