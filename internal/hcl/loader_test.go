package hcl

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/isebuild/internal/options"
	"github.com/vk/isebuild/internal/testutil"
	"github.com/zclconf/go-cty/cty"
)

const basePrefs = `
toolchain {
  intstyle = "ise"
}

process "Synthesize - XST" {
  options = {
    "Optimization Goal"        = "Speed"
    "Power Reduction"          = false
    "Max Fanout"               = 100000
    "Cores Search Directories" = ["ipcore_dir/a", "ipcore_dir/b"]
    "Other XST Command Line Options" = null
  }
}

process "map" {
  options = {
    "Placer Effort Level" = "Standard"
    "Placer Extra Effort" = "Normal"
  }
}
`

const overridePrefs = `
toolchain {
  intstyle = "silent"
}

process "Map" {
  options = {
    "Placer Effort Level" = "High"
  }
}

process "par" {}
`

func TestLoad_MergesFilesInOrder(t *testing.T) {
	ctx, _ := testutil.LoggedContext(t)
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"prefs/10-base.hcl":     basePrefs,
		"prefs/20-override.hcl": overridePrefs,
		"prefs/README.md":       "not loaded",
	})

	model, err := NewLoader().Load(ctx, filepath.Join(dir, "prefs"))
	require.NoError(t, err)

	assert.Equal(t, "silent", model.Toolchain.Intstyle)
	assert.Equal(t, options.Dict{
		"Optimization Goal":              "Speed",
		"Power Reduction":                false,
		"Max Fanout":                     "100000",
		"Cores Search Directories":       "ipcore_dir/a ipcore_dir/b",
		"Other XST Command Line Options": nil,
	}, model.For(options.Synthesize))
	assert.Equal(t, options.Dict{
		"Placer Effort Level": "High",
		"Placer Extra Effort": "Normal",
	}, model.For(options.Map))
	assert.Contains(t, model.Preferences, options.PlaceAndRoute)
	assert.NotContains(t, model.Preferences, options.Translate)
}

func TestLoad_ExplicitFileOrderWins(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"a.hcl": overridePrefs,
		"b.hcl": basePrefs,
	})

	model, err := NewLoader().Load(context.Background(), filepath.Join(dir, "a.hcl"), filepath.Join(dir, "b.hcl"))
	require.NoError(t, err)
	assert.Equal(t, "ise", model.Toolchain.Intstyle)
	assert.Equal(t, "Standard", model.For(options.Map)["Placer Effort Level"])
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "syntax error",
			content: `process "Map" {`,
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "unknown block",
			content: `stage "Map" {}`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "unknown process",
			content: `process "trce" {}`,
			wantErr: "unknown tool process",
		},
		{
			name:    "options not an object",
			content: `process "Map" { options = "High" }`,
			wantErr: "options must be an object",
		},
		{
			name:    "nested object value",
			content: `process "Map" { options = { "Placer Effort Level" = { level = "High" } } }`,
			wantErr: `option "Placer Effort Level"`,
		},
		{
			name:    "variables are not available",
			content: `process "Map" { options = { "Placer Effort Level" = var.level } }`,
			wantErr: `process "Map"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			testutil.WriteTree(t, dir, map[string]string{"prefs.hcl": tc.content})

			_, err := NewLoader().Load(context.Background(), filepath.Join(dir, "prefs.hcl"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestToRaw(t *testing.T) {
	testCases := []struct {
		name string
		in   cty.Value
		want any
	}{
		{"null", cty.NullVal(cty.String), nil},
		{"bool", cty.True, true},
		{"string", cty.StringVal("High"), "High"},
		{"integer", cty.NumberIntVal(32), "32"},
		{"fraction", cty.NumberFloatVal(0.5), "0.5"},
		{"list", cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}), "a b"},
		{"tuple with numbers", cty.TupleVal([]cty.Value{cty.StringVal("WIDTH=8"), cty.NumberIntVal(3)}), "WIDTH=8 3"},
		{"empty list", cty.ListValEmpty(cty.String), ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := toRaw(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := toRaw(cty.ObjectVal(map[string]cty.Value{"a": cty.True}))
	assert.Error(t, err)
	_, err = toRaw(cty.UnknownVal(cty.String))
	assert.Error(t, err)
	_, err = toRaw(cty.TupleVal([]cty.Value{cty.True}))
	assert.Error(t, err)
}
