package formatter

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Env is what a formatter sees besides the raw value.
type Env struct {
	Process string
	Option  string
	// Flag is the option's flag. Empty means the option is emitted as bare
	// value groups.
	Flag    string
	Special SpecialCases
}

// Format evaluates f for raw. A value node is treated as Normal(f, false).
func (f *Formatter) Format(env Env, raw any) (Output, error) {
	node := f
	if node == nil || !node.Kind.IsOutput() {
		node = Normal(f, false)
	}
	return node.output(env, raw)
}

// Value evaluates a value node for raw.
func (f *Formatter) Value(env Env, raw any) (Value, error) {
	if f != nil && f.Kind.IsOutput() {
		return Value{}, fmt.Errorf("%s: option %q: %s is not a value formatter", env.Process, env.Option, f.Kind)
	}
	return f.value(env, raw)
}

func (f *Formatter) output(env Env, raw any) (Output, error) {
	switch f.Kind {
	case KindNormal:
		v, err := f.Inner.Value(env, raw)
		if err != nil {
			return nil, err
		}
		if f.DropNone && v.isNone() {
			return nil, nil
		}
		return env.pair(v), nil

	case KindFlagIfBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, env.mismatch(raw, "bool")
		}
		if b != f.Expect || env.Flag == "" {
			return nil, nil
		}
		return Output{{env.Flag}}, nil

	case KindEachPair:
		if raw == nil {
			return nil, nil
		}
		s, ok := raw.(string)
		if !ok {
			return nil, env.mismatch(raw, "string")
		}
		var out Output
		for _, tok := range strings.Fields(s) {
			v, err := f.Inner.Value(env, tok)
			if err != nil {
				return nil, err
			}
			if v.Null {
				continue
			}
			out = append(out, env.pair(v)...)
		}
		return out, nil

	case KindImplies:
		out, err := f.Inner.Format(env, raw)
		if err != nil || out.Empty() {
			return nil, err
		}
		for _, g := range f.Extra {
			out = append(out, slices.Clone(g))
		}
		return out, nil
	}
	return nil, fmt.Errorf("%s: option %q: unhandled output formatter %s", env.Process, env.Option, f.Kind)
}

func (f *Formatter) value(env Env, raw any) (Value, error) {
	if f == nil {
		return env.stringify(raw)
	}
	switch f.Kind {
	case KindIdentity:
		return env.stringify(raw)

	case KindBoolYesNo:
		b, ok := raw.(bool)
		if !ok {
			return Value{}, env.mismatch(raw, "bool")
		}
		if b {
			return Text("YES"), nil
		}
		return Text("NO"), nil

	case KindBoolOnOff:
		switch v := raw.(type) {
		case bool:
			if v {
				return Text("on"), nil
			}
			return Text("off"), nil
		case string:
			switch v {
			case "on", "On":
				return Text("on"), nil
			case "off", "Off":
				return Text("off"), nil
			}
			return Value{}, env.invalid(raw, v, []string{"on", "off"})
		}
		return Value{}, env.mismatch(raw, "bool or string")

	case KindSpecialCase:
		return env.special(f.Key, raw)

	case KindMaybeSpecialCase:
		v, err := env.special(f.Key, raw)
		if errors.Is(err, ErrNoSpecialCase) {
			return env.stringify(raw)
		}
		return v, err

	case KindBoolOrExtras:
		if s, ok := raw.(string); ok {
			if rep, ok := f.Extras[s]; ok {
				return Text(rep), nil
			}
		}
		fallback := f.Fallback
		if fallback == nil {
			fallback = BoolYesNo()
		}
		return fallback.Value(env, raw)

	case KindMustBeIn:
		v, err := f.Inner.Value(env, raw)
		if err != nil || v.Null {
			return v, err
		}
		if !slices.Contains(f.Allowed, v.Text) {
			return Value{}, env.invalid(raw, v.Text, f.Allowed)
		}
		return v, nil

	case KindAsList:
		if raw == nil {
			if f.DropNone {
				return Null, nil
			}
			return Text("{}"), nil
		}
		var tokens []string
		switch v := raw.(type) {
		case string:
			tokens = strings.Fields(v)
		case []string:
			tokens = v
		default:
			return Value{}, env.mismatch(raw, "string or list of strings")
		}
		if len(tokens) == 0 && f.DropNone {
			return Null, nil
		}
		items := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			v, err := f.Inner.Value(env, tok)
			if err != nil {
				return Value{}, err
			}
			if !v.Null {
				items = append(items, v.Text)
			}
		}
		return Text("{" + strings.Join(items, " ") + "}"), nil

	case KindQuoted:
		v, err := f.Inner.Value(env, raw)
		if err != nil {
			return v, err
		}
		if v.Null || (f.DropNone && v.isNone()) {
			return Null, nil
		}
		return Text(f.Open + v.Text + f.Close), nil

	case KindLowercased:
		v, err := f.Inner.Value(env, raw)
		if err != nil || v.Null {
			return v, err
		}
		return Text(strings.ToLower(v.Text)), nil

	case KindPrefixed:
		v, err := f.Inner.Value(env, raw)
		if err != nil || v.Null {
			return v, err
		}
		return Text(f.Prefix + v.Text), nil
	}
	return Value{}, fmt.Errorf("%s: option %q: unhandled value formatter %s", env.Process, env.Option, f.Kind)
}

// pair builds the group for a formatted value. Null contributes nothing:
// only FlagIfBool ever emits a flag without a value.
func (env Env) pair(v Value) Output {
	switch {
	case v.Null:
		return nil
	case env.Flag == "":
		return Output{{v.Text}}
	}
	return Output{{env.Flag, v.Text}}
}

func (env Env) special(key string, raw any) (Value, error) {
	if raw == nil {
		return Null, nil
	}
	if key == "" {
		key = env.Flag
	}
	text, err := env.stringify(raw)
	if err != nil {
		return Value{}, err
	}
	rep, ok := env.Special.Lookup(env.Process, key, text.Text)
	if !ok {
		return Value{}, &SpecialCaseError{Process: env.Process, Option: env.Option, Key: key, Value: raw}
	}
	return Text(rep), nil
}

func (env Env) stringify(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null, nil
	case string:
		return Text(v), nil
	case bool:
		return Text(strconv.FormatBool(v)), nil
	case int:
		return Text(strconv.Itoa(v)), nil
	case int64:
		return Text(strconv.FormatInt(v, 10)), nil
	case float64:
		return Text(strconv.FormatFloat(v, 'f', -1, 64)), nil
	}
	return Value{}, env.mismatch(raw, "string, number or bool")
}

func (env Env) mismatch(raw any, expected string) error {
	return &TypeMismatchError{Process: env.Process, Option: env.Option, Value: raw, Expected: expected}
}

func (env Env) invalid(raw any, formatted string, allowed []string) error {
	return &InvalidValueError{Process: env.Process, Option: env.Option, Value: raw, Formatted: formatted, Allowed: allowed}
}
