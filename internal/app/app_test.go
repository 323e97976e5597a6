package app

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/isebuild/internal/formatter"
	"github.com/vk/isebuild/internal/hcl"
	"github.com/vk/isebuild/internal/options"
	"github.com/vk/isebuild/internal/projgraph"
	"github.com/vk/isebuild/internal/testutil"
)

func tools(t *testing.T, ctx context.Context, a *App, root string) []string {
	t.Helper()
	plan, err := a.Plan(ctx, root)
	require.NoError(t, err)
	var out []string
	for _, c := range plan.Commands {
		out = append(out, c.Tool)
	}
	return out
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{LogLevel: "debug", LogFormat: "json", Intstyle: "ise"})
	require.NoError(t, err)

	_, err = NewConfig(Config{LogLevel: "loud", LogFormat: "xml", Intstyle: "chatty", MaxDepth: -1, Jobs: -2})
	require.Error(t, err)
	for _, want := range []string{"log level", "log format", "intstyle", "MaxDepth", "Jobs"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestNewApp_OverridesAndDefaultIntstyle(t *testing.T) {
	a, logs := SetupAppTest(t, &Config{
		Process:   "xst",
		Overrides: []string{"map:Placer Effort Level=High", "Power Reduction=false"},
	}, nil)

	assert.Equal(t, DefaultIntstyle, a.Intstyle())
	assert.Equal(t, options.Dict{"Placer Effort Level": "High"}, a.Model().For(options.Map))
	assert.Equal(t, options.Dict{"Power Reduction": false}, a.Model().For(options.Synthesize))
	assert.Contains(t, logs.String(), "Preference override applied.")
}

func TestNewApp_InvalidOverride(t *testing.T) {
	_, err := NewApp(&bytes.Buffer{}, &Config{Overrides: []string{"Placer Effort Level=High"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no process given")

	_, err = NewApp(&bytes.Buffer{}, &Config{Process: "vivado", Overrides: []string{"A=b"}}, nil)
	require.ErrorIs(t, err, options.ErrUnknownProcess)
}

func TestNewApp_PreferencesFromFiles(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"prefs.hcl": `
toolchain {
  intstyle = "ise"
}

process "map" {
  options = {
    "Placer Effort Level" = "Standard"
  }
}
`,
	})
	prefs := filepath.Join(dir, "prefs.hcl")

	a, _ := SetupAppTest(t, &Config{PrefPaths: []string{prefs}}, hcl.NewLoader())
	assert.Equal(t, "ise", a.Intstyle())

	a, _ = SetupAppTest(t, &Config{
		PrefPaths: []string{prefs},
		Intstyle:  "xflow",
		Overrides: []string{"map:Placer Effort Level=High"},
	}, hcl.NewLoader())
	assert.Equal(t, "xflow", a.Intstyle())
	assert.Equal(t, "High", a.Model().For(options.Map)["Placer Effort Level"])

	_, err := NewApp(&bytes.Buffer{}, &Config{PrefPaths: []string{prefs}}, nil)
	require.Error(t, err)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	root := testutil.WriteDesign(t, dir)
	a, _ := SetupAppTest(t, &Config{}, nil)

	got, err := a.Files(a.Context(), root, projgraph.RTL, true)
	require.NoError(t, err)
	want := []string{
		filepath.Join(dir, "top.v"),
		filepath.Join(dir, "ipcore_dir", "fifo.v"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestOptions(t *testing.T) {
	a, _ := SetupAppTest(t, &Config{Overrides: []string{
		"map:Placer Effort Level=High",
		"map:Placer Extra Effort=Normal",
	}}, nil)

	got, err := a.Options(a.Context(), options.Map)
	require.NoError(t, err)
	assert.Empty(t, got.Elided)
	assert.Contains(t, got.Run, formatter.Group{"-ol", "high"})
	assert.Contains(t, got.Run, formatter.Group{"-xe", "n"})
}

func TestPlan(t *testing.T) {
	dir := t.TempDir()
	root := testutil.WriteDesign(t, dir)
	a, _ := SetupAppTest(t, &Config{Overrides: []string{"map:Placer Effort Level=High"}}, nil)
	ctx := a.Context()

	plan, err := a.Plan(ctx, root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "build"), plan.WorkDir)
	assert.Equal(t, "top.xst", plan.ScriptFile)
	assert.Equal(t,
		"verilog work \""+filepath.Join(dir, "top.v")+"\"\n"+
			"verilog work \""+filepath.Join(dir, "ipcore_dir", "fifo.v")+"\"\n",
		plan.Prj)
	assert.Contains(t, plan.Script, `-sd {"`+filepath.Join(dir, "ipcore_dir")+`"}`)

	assert.Equal(t, []string{"xst", "ngdbuild", "map", "par", "bitgen"}, tools(t, ctx, a, root))
	xst := plan.Commands[0]
	assert.Equal(t, []string{"-intstyle", "silent", "-ifn", "top.xst", "-ofn", "top.syr"}, xst.Args)
	mapCmd := plan.Commands[2]
	assert.Contains(t, strings.Join(mapCmd.Args, " "), "-ol high")
}

func TestPlan_CoreSearchDirsWithSpaces(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my designs")
	root := testutil.WriteDesign(t, dir)
	a, _ := SetupAppTest(t, &Config{}, nil)

	plan, err := a.Plan(a.Context(), root)
	require.NoError(t, err)
	assert.Contains(t, plan.Script, `-sd {"`+filepath.Join(dir, "ipcore_dir")+`"}`+"\n")
}

func TestPlan_PreferredCoreSearchDirsWin(t *testing.T) {
	dir := t.TempDir()
	root := testutil.WriteDesign(t, dir)
	a, _ := SetupAppTest(t, &Config{Overrides: []string{"xst:Cores Search Directories=../cores"}}, nil)

	plan, err := a.Plan(a.Context(), root)
	require.NoError(t, err)
	assert.Contains(t, plan.Script, `-sd {"../cores"}`)
	assert.NotContains(t, plan.Script, "ipcore_dir")
}

func TestPlan_UnknownOption(t *testing.T) {
	dir := t.TempDir()
	root := testutil.WriteDesign(t, dir)
	a, _ := SetupAppTest(t, &Config{Overrides: []string{"par:Turbo=true"}}, nil)

	_, err := a.Plan(a.Context(), root)
	var unknown *options.UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []string{"Turbo"}, unknown.Names)
}

func TestPlanAll(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	roots := []string{testutil.WriteDesign(t, first), testutil.WriteDesign(t, second)}
	a, _ := SetupAppTest(t, &Config{Jobs: 2}, nil)

	plans, err := a.PlanAll(a.Context(), roots)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, roots[0], plans[0].Project)
	assert.Equal(t, roots[1], plans[1].Project)

	_, err = a.PlanAll(a.Context(), append(roots, filepath.Join(first, "missing.xise")))
	require.Error(t, err)
}

func TestWriteDepFile(t *testing.T) {
	dir := t.TempDir()
	root := testutil.WriteDesign(t, dir)
	a, _ := SetupAppTest(t, &Config{}, nil)

	var buf bytes.Buffer
	require.NoError(t, a.WriteDepFile(a.Context(), root, &buf))

	j := func(parts ...string) string { return filepath.Join(append([]string{dir}, parts...)...) }
	want := j("build", "top.bit") + ": \\\n" +
		" " + j("top.v") + " \\\n" +
		" " + j("top.ucf") + " \\\n" +
		" " + j("ipcore_dir", "fifo.xise") + " \\\n" +
		" " + j("ipcore_dir", "fifo.v") + " \\\n" +
		" " + j("ipcore_dir", "fifo.xco") + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("depfile mismatch (-want +got):\n%s", diff)
	}
}

func TestRoots(t *testing.T) {
	dir := t.TempDir()
	first := testutil.WriteDesign(t, filepath.Join(dir, "first"))
	second := testutil.WriteDesign(t, filepath.Join(dir, "second"))
	a, _ := SetupAppTest(t, &Config{}, nil)

	got, err := a.Roots(a.Context(), []string{dir, first})
	require.NoError(t, err)
	assert.Equal(t, []string{first, second}, got)

	sub := filepath.Join(dir, "first", "ipcore_dir", "fifo.xise")
	got, err = a.Roots(a.Context(), []string{sub})
	require.NoError(t, err)
	assert.Equal(t, []string{sub}, got, "a file named explicitly is kept")

	_, err = a.Roots(a.Context(), []string{filepath.Join(dir, "missing")})
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger("warn", "json", &buf).Info("dropped")
	assert.Empty(t, buf.String())

	NewLogger("debug", "json", &buf).Debug("kept", "stage", "map")
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, "map", record["stage"])

	buf.Reset()
	NewLogger("info", "text", &buf).Info("plain")
	assert.Contains(t, buf.String(), "plain")
	assert.NotContains(t, buf.String(), "\x1b[", "a buffer is not a terminal")
}
