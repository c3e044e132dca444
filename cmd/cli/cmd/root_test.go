package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conversion-wiz/internal/errors"
)

const lengthHCL = `
unit "Meter" {
  aliases = ["m"]
}

unit "Kilometer" {
  aliases = ["km"]
}

unit "Hub" {
  intermediate = true
}

scale "km" "m" {
  factor = 1000
}
`

// execute runs the CLI with an isolated config file
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.json")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeDefinitions(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "units.hcl")
	require.NoError(t, os.WriteFile(path, []byte(lengthHCL), 0644))
	return path
}

func TestConvertCmd(t *testing.T) {
	out, err := execute(t, "", "convert", "15", "C", "K")
	require.NoError(t, err)
	assert.Equal(t, "15 C = 288.15 K\n", out)
}

func TestConvertCmd_Explain(t *testing.T) {
	out, err := execute(t, "", "convert", "--explain", "0", "C", "R")
	require.NoError(t, err)
	assert.Equal(t, "0 C = 491.67 R\n\tCelsius -> Kelvin (+ 273.15)\n\tKelvin -> Rankine (x 1.8)\n", out)
}

func TestConvertCmd_Precision(t *testing.T) {
	out, err := execute(t, "", "-p", "1", "convert", "1", "mi", "km")
	require.NoError(t, err)
	assert.Equal(t, "1 mi = 1.6 km\n", out)
}

func TestConvertCmd_Errors(t *testing.T) {
	_, err := execute(t, "", "convert", "abc", "C", "K")
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, err = execute(t, "", "convert", "1", "C", "parsec")
	assert.ErrorIs(t, err, errors.ErrUnitNotFound)

	_, err = execute(t, "", "convert", "1", "kg", "m")
	assert.ErrorIs(t, err, errors.ErrConversionPathNotFound)

	_, err = execute(t, "", "convert", "1", "C")
	assert.Error(t, err)
}

func TestConvertCmd_DefinitionFile(t *testing.T) {
	defs := writeDefinitions(t)
	out, err := execute(t, "", "--definitions", defs, "convert", "2.5", "km", "m")
	require.NoError(t, err)
	assert.Equal(t, "2.5 km = 2500 m\n", out)

	_, err = execute(t, "", "--definitions", defs, "convert", "1", "C", "K")
	assert.ErrorIs(t, err, errors.ErrUnitNotFound)
}

func TestConvertCmd_BrokenDefinitionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"units": [{"name": "A", "aliases": ["x"]}, {"name": "B", "aliases": ["x"]}]}`), 0644))

	_, err := execute(t, "", "--definitions", path, "convert", "1", "A", "B")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateAlias)
	assert.Contains(t, err.Error(), "adding unit #2")
}

func TestPathCmd(t *testing.T) {
	out, err := execute(t, "", "path", "F", "K")
	require.NoError(t, err)
	assert.Equal(t, "Fahrenheit -> Rankine -> Kelvin (2 hops)\n"+
		"\tFahrenheit -> Rankine (+ 459.67)\n"+
		"\tRankine -> Kelvin (x 0.5555555555555556)\n", out)
}

func TestUnitsCmd(t *testing.T) {
	out, err := execute(t, "", "--definitions", writeDefinitions(t), "units")
	require.NoError(t, err)
	assert.Equal(t, "Units:\n\t1: Meter (m)\n\t2: Kilometer (km)\n", out)
}

func TestUnitsCmd_All(t *testing.T) {
	out, err := execute(t, "", "--definitions", writeDefinitions(t), "units", "--all")
	require.NoError(t, err)
	assert.Equal(t, "Units:\n\t1: Meter (m)\n\t2: Kilometer (km)\n\t3: Hub [intermediate]\n", out)
}

func TestCheckCmd(t *testing.T) {
	defs := writeDefinitions(t)
	out, err := execute(t, "", "--definitions", defs, "check")
	require.NoError(t, err)
	assert.Equal(t, defs+": 3 units (2 listed), 1 conversions\n", out)

	out, err = execute(t, "", "check")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "built-in catalog: "), out)
}

func TestREPLCmd(t *testing.T) {
	out, err := execute(t, "C\nK\n15\nexit\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "15 C = 288.15 K\n")
}

func TestRootRunsREPL(t *testing.T) {
	out, err := execute(t, "list\nexit\n", "--definitions", writeDefinitions(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Units:\n\t1: Meter (m)\n\t2: Kilometer (km)\n")
}

func TestREPLCmd_WatchWithoutFile(t *testing.T) {
	out, err := execute(t, "exit\n", "repl", "--watch")
	require.NoError(t, err)
	assert.Contains(t, out, "--watch ignored")
}

func TestREPLCmd_WatchWithFile(t *testing.T) {
	out, err := execute(t, "km\nm\n1\nexit\n", "--definitions", writeDefinitions(t), "repl", "--watch")
	require.NoError(t, err)
	assert.Contains(t, out, "1 km = 1000 m\n")
}

func TestConfigInitAndShow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf", "config.json")

	out, err := execute(t, "", "config", "init", path)
	require.NoError(t, err)
	assert.Equal(t, "Wrote "+path+"\n", out)
	assert.FileExists(t, path)

	_, err = execute(t, "", "config", "init", path)
	assert.Error(t, err)
	_, err = execute(t, "", "config", "init", "--force", path)
	assert.NoError(t, err)

	out, err = execute(t, "", "-p", "3", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `"precision": 3`)
}

func TestVersionCmd(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "conversion-wiz version 1.2.3\n", out)
}
