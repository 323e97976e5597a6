package hcl

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// toRaw converts an evaluated cty.Value into a raw preference value. Numbers
// become their decimal text since tools take them as text.
func toRaw(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsWhollyKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	ty := v.Type()
	switch {
	case ty == cty.Bool:
		return v.True(), nil
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Number:
		return v.AsBigFloat().Text('f', -1), nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		var parts []string
		for it := v.ElementIterator(); it.Next(); {
			_, el := it.Element()
			raw, err := toRaw(el)
			if err != nil {
				return nil, err
			}
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("list elements must be strings or numbers, got %s", el.Type().FriendlyName())
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, " "), nil
	}
	return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
}
