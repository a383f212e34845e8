package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rutas/locality"
	"github.com/katalvlaran/rutas/report"
)

// execute runs the rutas command tree with args and stdin, from an empty
// working directory, and returns stdout, stderr and the error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	chdir(t, t.TempDir())

	var out, errOut bytes.Buffer
	cmd := newRootCmd(newApp(strings.NewReader(stdin), &out, &errOut))
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRun_Flags(t *testing.T) {
	out, _, err := execute(t, "", "--origin", "madrid", "--destination", "GETAFE", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "Ruta más corta entre Madrid y Getafe: Madrid -> Alcorcón -> Móstoles -> Fuenlabrada -> Getafe con distancia de 36 km\n")
	assert.Contains(t, out, "Localidades con conexiones cortas: Villanueva de la Cañada, Alcorcón, Móstoles, Fuenlabrada\n")
	assert.True(t, strings.HasSuffix(out, report.VerdictConnected+"\n"))
	assert.NotContains(t, out, promptOrigin)
}

func TestRun_Prompts(t *testing.T) {
	out, _, err := execute(t, "Toledo\nboadilla del monte\ntorrejon de ardoz\n")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out,
		promptOrigin+locality.InvalidMessage+"\n"+promptOrigin+promptDestination+"\n"+report.TitleShortest))
	assert.Contains(t, out, "Boadilla del Monte -> Madrid -> Alcalá de Henares -> Torrejón de Ardoz\n")
	assert.Contains(t, out, "con distancia de 90 km\n")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "", "--origin", "Toledo", "--destination", "Madrid")
	assert.Error(t, err)

	_, _, err = execute(t, "Madrid\n")
	assert.ErrorIs(t, err, locality.ErrNoInput)

	_, _, err = execute(t, "x\ny\n", "--max-attempts", "2")
	assert.ErrorIs(t, err, locality.ErrTooManyAttempts)

	_, _, err = execute(t, "", "--threshold", "0", "--origin", "Madrid", "--destination", "Getafe")
	assert.Error(t, err)

	_, _, err = execute(t, "", "--network", "missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_NetworkFileAndDebugLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "red.yaml")
	doc := "name: tramo\nunit: min\nlocalities:\n  - name: Norte\n    roads: [{to: Sur, distance: 9}]\n  - name: Sur\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, logs, err := execute(t, "", "--network", path, "--origin", "sur", "--destination", "norte",
		"--threshold", "10", "--log-level", "debug", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "No existe ruta entre Sur y Norte\n")
	assert.Contains(t, out, "--- Localidades con Conexiones Cortas (<10 min) ---\n")
	assert.Contains(t, out, report.VerdictConnected+"\n")
	assert.Contains(t, logs, "one-way road")
	assert.Contains(t, logs, "query=shortest")
}

func TestLocalitiesCmd(t *testing.T) {
	out, _, err := execute(t, "", "localities")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "Madrid", lines[0])
	assert.Equal(t, "Torrejón de Ardoz", lines[9])
}

func TestConfigCmd(t *testing.T) {
	t.Setenv("RUTAS_THRESHOLD", "25")
	out, _, err := execute(t, "", "config", "--color", "always")
	require.NoError(t, err)

	assert.Contains(t, out, "threshold: 25\n")
	assert.Contains(t, out, "color: always\n")
}

func TestStyles_Always(t *testing.T) {
	out, _, err := execute(t, "", "--origin", "Madrid", "--destination", "Getafe", "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Madrid -> Alcorcón")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
