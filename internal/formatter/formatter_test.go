package formatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSpecial = SpecialCases{
	"Map": {
		"-ol": {"Standard": "std", "High": "high"},
		"-xe": {"Normal": "n", "Continue on Impossible": "c"},
	},
	"Synthesize - XST": {
		"-glob_opt": {"AllClockNets": "allclocknets", "Inpad To Outpad": "inpad_to_outpad"},
	},
	"Generate Programming File": {
		"CRC": {"true": "Enable", "false": "Disable"},
	},
}

func env(process, flag string) Env {
	return Env{Process: process, Option: "Test Option", Flag: flag, Special: testSpecial}
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		name string
		f    *Formatter
		env  Env
		raw  any
		want Output
	}{
		{"identity string", Identity(), env("Map", "-t"), "3", Output{{"-t", "3"}}},
		{"identity int", Identity(), env("Map", "-t"), 3, Output{{"-t", "3"}}},
		{"identity bool", Identity(), env("Map", "-x"), true, Output{{"-x", "true"}}},
		{"identity null omitted", Identity(), env("Map", "-x"), nil, nil},
		{"bare value", Identity(), env("Map", ""), "-foo bar", Output{{"-foo bar"}}},
		{"bare null", Identity(), env("Map", ""), nil, nil},
		{"yes", BoolYesNo(), env("Synthesize - XST", "-power"), true, Output{{"-power", "YES"}}},
		{"no", BoolYesNo(), env("Synthesize - XST", "-power"), false, Output{{"-power", "NO"}}},
		{"on from bool", BoolOnOff(), env("Map", "-logic_opt"), true, Output{{"-logic_opt", "on"}}},
		{"off from text", BoolOnOff(), env("Map", "-logic_opt"), "Off", Output{{"-logic_opt", "off"}}},
		{"flag if true", FlagIfBool(true), env("Translate", "-aul"), true, Output{{"-aul"}}},
		{"flag if true given false", FlagIfBool(true), env("Translate", "-aul"), false, nil},
		{"flag if false", FlagIfBool(false), env("Translate", "-r"), false, Output{{"-r"}}},
		{"special case", SpecialCase(), env("Map", "-ol"), "High", Output{{"-ol", "high"}}},
		{"special case null omitted", SpecialCase(), env("Map", "-ol"), nil, nil},
		{"prefixed null omitted", Prefixed("UserID:", Identity()), env("Generate Programming File", "-g"), nil, nil},
		{"special case keyed", Prefixed("CRC:", SpecialCaseIn("CRC")), env("Generate Programming File", "-g"), true, Output{{"-g", "CRC:Enable"}}},
		{"maybe special hit", MaybeSpecialCase(), env("Map", "-xe"), "Normal", Output{{"-xe", "n"}}},
		{"maybe special miss", MaybeSpecialCase(), env("Map", "-xe"), "Boosted", Output{{"-xe", "Boosted"}}},
		{"extras listed", BoolOrExtras([]string{"Only"}, nil), env("Synthesize - XST", "-rtlview"), "Only", Output{{"-rtlview", "Only"}}},
		{"extras fallback", BoolOrExtras([]string{"Only"}, nil), env("Synthesize - XST", "-rtlview"), true, Output{{"-rtlview", "YES"}}},
		{"extras mapped", BoolOrExtrasMap(map[string]string{"Optimize": "optimize"}, nil), env("Synthesize - XST", "-read_cores"), "Optimize", Output{{"-read_cores", "optimize"}}},
		{"must be in", MustBeIn([]string{"Speed", "Area"}, Identity()), env("Synthesize - XST", "-opt_mode"), "Area", Output{{"-opt_mode", "Area"}}},
		{"must be in null omitted", MustBeIn([]string{"Speed", "Area"}, Identity()), env("Synthesize - XST", "-opt_mode"), nil, nil},
		{"list", AsList(Identity(), false), env("Synthesize - XST", "-define"), "A=1  B=2", Output{{"-define", "{A=1 B=2}"}}},
		{"list of quoted", AsList(Quoted(Identity(), `"`, `"`, false), false), env("Synthesize - XST", "-sd"), "a b", Output{{"-sd", `{"a" "b"}`}}},
		{"list of items keeps spaces", AsList(Quoted(Identity(), `"`, `"`, false), false), env("Synthesize - XST", "-sd"), []string{"/my cores/a", "b"}, Output{{"-sd", `{"/my cores/a" "b"}`}}},
		{"empty list", AsList(Identity(), false), env("Synthesize - XST", "-sd"), nil, Output{{"-sd", "{}"}}},
		{"empty list as null", Normal(AsList(Identity(), true), true), env("Synthesize - XST", "-sd"), "  ", nil},
		{"quoted", Quoted(Identity(), `"`, `"`, false), env("Synthesize - XST", "-xsthdpdir"), "xst", Output{{"-xsthdpdir", `"xst"`}}},
		{"quoted none dropped", Normal(Quoted(Identity(), `"`, `"`, true), true), env("Synthesize - XST", "-uc"), "None", nil},
		{"quoted none kept", Quoted(Identity(), `"`, `"`, false), env("Synthesize - XST", "-uc"), "None", Output{{"-uc", `"None"`}}},
		{"lowercased", Lowercased(Identity()), env("Synthesize - XST", "-lc"), "Auto", Output{{"-lc", "auto"}}},
		{"normal drops none text", Normal(Identity(), true), env("Synthesize - XST", "-vlgcase"), "None", nil},
		{"normal drops null", Normal(Identity(), true), env("Synthesize - XST", "-vlgcase"), nil, nil},
		{"each pair", EachPair(Identity()), env("Translate", "-sd"), "a  b", Output{{"-sd", "a"}, {"-sd", "b"}}},
		{"each pair empty", EachPair(Identity()), env("Translate", "-sd"), "", nil},
		{"implies", Implies(BoolOnOff(), Group{"-timing"}), env("Map", "-register_duplication"), true, Output{{"-register_duplication", "on"}, {"-timing"}}},
		{"implies nothing", Implies(FlagIfBool(true), Group{"-timing"}), env("Map", "-x"), false, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.f.Format(tc.env, tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormat_Errors(t *testing.T) {
	lutCombining := MustBeIn([]string{"off", "auto", "area"}, Lowercased(MaybeSpecialCase()))

	testCases := []struct {
		name   string
		f      *Formatter
		env    Env
		raw    any
		target error
	}{
		{"yes/no needs bool", BoolYesNo(), env("Synthesize - XST", "-power"), "Yes", ErrTypeMismatch},
		{"yes/no rejects null", BoolYesNo(), env("Synthesize - XST", "-power"), nil, ErrTypeMismatch},
		{"on/off unknown text", BoolOnOff(), env("Map", "-power"), "maybe", ErrInvalidValue},
		{"on/off wrong type", BoolOnOff(), env("Map", "-power"), 1, ErrTypeMismatch},
		{"flag needs bool", FlagIfBool(true), env("Translate", "-aul"), "true", ErrTypeMismatch},
		{"special case miss", SpecialCase(), env("Map", "-ol"), "Medium", ErrNoSpecialCase},
		{"special case no table", SpecialCase(), env("Map", "-pr"), "b", ErrNoSpecialCase},
		{"outside allowed set", lutCombining, env("Map", "-lc"), "Fast", ErrInvalidValue},
		{"list needs text", AsList(Identity(), false), env("Synthesize - XST", "-sd"), true, ErrTypeMismatch},
		{"identity rejects slices", Identity(), env("Map", "-t"), []string{"a"}, ErrTypeMismatch},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.f.Format(tc.env, tc.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.target)
			assert.Nil(t, got)
		})
	}
}

func TestFormat_ErrorCarriesContext(t *testing.T) {
	_, err := MustBeIn([]string{"off", "auto", "area"}, Lowercased(MaybeSpecialCase())).
		Format(env("Map", "-lc"), "Fast")

	var invalid *InvalidValueError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "Map", invalid.Process)
	assert.Equal(t, "Test Option", invalid.Option)
	assert.Equal(t, "fast", invalid.Formatted)
	assert.Equal(t, []string{"off", "auto", "area"}, invalid.Allowed)
	assert.Contains(t, err.Error(), `"fast"`)
}

func TestFormat_SpecialCaseKeyIsValueText(t *testing.T) {
	f := Prefixed("CRC:", SpecialCaseIn("CRC"))

	got, err := f.Format(env("Generate Programming File", "-g"), false)
	require.NoError(t, err)
	assert.Equal(t, Output{{"-g", "CRC:Disable"}}, got)
}

func TestFormat_ImpliesDoesNotShareExtra(t *testing.T) {
	f := Implies(Identity(), Group{"-timing"})

	first, err := f.Format(env("Map", "-x"), "a")
	require.NoError(t, err)
	first[1][0] = "mutated"

	second, err := f.Format(env("Map", "-x"), "a")
	require.NoError(t, err)
	assert.Equal(t, Output{{"-x", "a"}, {"-timing"}}, second)
}

func TestValue_RejectsOutputNode(t *testing.T) {
	_, err := Normal(Identity(), false).Value(env("Map", "-x"), "a")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	f := Normal(MustBeIn([]string{"full", "parallel"}, Identity()), true)
	assert.Equal(t, "Normal(MustBeIn([full parallel], Identity), dropNone)", f.String())
	assert.Equal(t, `Prefixed("CRC:", SpecialCase("CRC"))`, Prefixed("CRC:", SpecialCaseIn("CRC")).String())
}

func TestWalk(t *testing.T) {
	f := Implies(Normal(BoolOrExtras([]string{"Only"}, SpecialCase()), false), Group{"-timing"})

	var kinds []Kind
	f.Walk(func(n *Formatter) { kinds = append(kinds, n.Kind) })
	assert.Equal(t, []Kind{KindImplies, KindNormal, KindBoolOrExtras, KindSpecialCase}, kinds)
}

func TestSpecialCases(t *testing.T) {
	got, ok := testSpecial.Lookup("Map", "-ol", "Standard")
	assert.True(t, ok)
	assert.Equal(t, "std", got)

	_, ok = testSpecial.Lookup("Par", "-ol", "Standard")
	assert.False(t, ok)

	assert.True(t, testSpecial.HasTable("Map", "-xe"))
	assert.False(t, testSpecial.HasTable("Map", "-pr"))
}
