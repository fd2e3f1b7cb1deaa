package chartpack_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/macropower/chartpack/pkg/helmexec"
)

// fakeHelm is a stand-in helm executable that records every invocation. An
// invocation whose arguments contain "bad" fails, which lets tests exercise
// fail-fast behavior with a deterministic failing chart.
type fakeHelm struct {
	bin       string
	logFile   string
	stdinFile string
}

func newFakeHelm(t *testing.T) *fakeHelm {
	t.Helper()

	dir := t.TempDir()
	f := &fakeHelm{
		bin:       filepath.Join(dir, "helm"),
		logFile:   filepath.Join(dir, "invocations.log"),
		stdinFile: filepath.Join(dir, "stdin.log"),
	}

	script := "#!/bin/sh\n" +
		"echo \"$@\" >> \"" + f.logFile + "\"\n" +
		"cat >> \"" + f.stdinFile + "\"\n" +
		"case \"$*\" in *bad*) echo 'Error: chart is borked' >&2; exit 1;; esac\n"

	require.NoError(t, os.WriteFile(f.bin, []byte(script), 0o700))

	return f
}

func (f *fakeHelm) helm() *helmexec.Helm {
	return helmexec.New(f.bin)
}

// invocations returns one line per helm call, in order.
func (f *fakeHelm) invocations(t *testing.T) []string {
	t.Helper()

	data, err := os.ReadFile(f.logFile)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)

	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func (f *fakeHelm) stdin(t *testing.T) string {
	t.Helper()

	data, err := os.ReadFile(f.stdinFile)
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)

	return string(data)
}

func writeChart(t *testing.T, dir, name, version string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o750))

	chartfile := "apiVersion: v2\nname: " + name + "\nversion: " + version + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Chart.yaml"), []byte(chartfile), 0o600))
}
