package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobertP-SyndicateLabs/ZPM-lang/compiler"
)

func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestZpmRun(t *testing.T) {
	path := writeScript(t, "ok.zpm", "A = 3 ;\nFOR 2 A *= A ; ENDFOR\nPRINT A ;\n")

	var stdout, stderr bytes.Buffer
	require.NoError(t, zpmRun(&stdout, &stderr, []string{path}))
	assert.Equal(t, "A=81\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestZpmRunErrors(t *testing.T) {
	bad := writeScript(t, "bad.zpm", "A = 1 ;\nPRINT A ;\nPRINT B ;\n")
	txt := writeScript(t, "prog.txt", "A = 1 ;\n")

	tests := []struct {
		name string
		args []string
		kind compiler.ErrorKind
		out  string
	}{
		{name: "no arguments", args: nil, kind: compiler.ArgumentError},
		{name: "too many arguments", args: []string{bad, bad}, kind: compiler.ArgumentError},
		{name: "wrong extension", args: []string{txt}, kind: compiler.ArgumentError},
		{name: "missing file", args: []string{filepath.Join(t.TempDir(), "nope.zpm")}, kind: compiler.FileAccessError},
		{name: "runtime failure", args: []string{bad}, kind: compiler.UndefinedReference, out: "A=1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := zpmRun(&stdout, &stderr, tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.kind, compiler.KindOf(err))
			assert.Equal(t, tt.out, stdout.String())
		})
	}
}

func TestZpmRunDebugLogging(t *testing.T) {
	path := writeScript(t, "log.zpm", "A = 1 ;\nPRINT A ;\n")

	require.NoError(t, rootLog.level.Set("debug"))
	defer func() { rootLog.level.i = -1 }()

	var stdout, stderr bytes.Buffer
	require.NoError(t, zpmRun(&stdout, &stderr, []string{path}))

	assert.Equal(t, "A=1\n", stdout.String(), "logs must not reach stdout")
	logs := stderr.String()
	assert.Contains(t, logs, "[INFO] running "+path)
	assert.Contains(t, logs, "[DEBUG] exec line=2")
	assert.Contains(t, logs, "stmt=PRINT A")
	assert.Contains(t, logs, "[DEBUG] run finished")
}

func TestRootCommandRunsScript(t *testing.T) {
	path := writeScript(t, "root.zpm", "S = \"hi\" ;\nPRINT S ;\n")

	var stdout bytes.Buffer
	RootCommand.SetOut(&stdout)
	RootCommand.SetErr(&bytes.Buffer{})
	defer func() {
		RootCommand.SetOut(nil)
		RootCommand.SetErr(nil)
		RootCommand.SetArgs(nil)
	}()

	RootCommand.SetArgs([]string{path})
	require.NoError(t, RootCommand.Execute())
	assert.Equal(t, "S=hi\n", stdout.String())

	stdout.Reset()
	RootCommand.SetArgs([]string{"run", path})
	require.NoError(t, RootCommand.Execute())
	assert.Equal(t, "S=hi\n", stdout.String())

	RootCommand.SetArgs([]string{"check", strings.TrimSuffix(path, ".zpm") + ".txt"})
	err := RootCommand.Execute()
	assert.Equal(t, compiler.ArgumentError, compiler.KindOf(err))
}
