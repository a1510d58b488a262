package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	return runCLIWithInput(t, "", args...)
}

func runCLIWithInput(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(input), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestUsage(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Usage:")
	assert.NotContains(t, stdout, "SUCCESS")
	assert.NotContains(t, stdout, "ERROR")
}

func TestVerdicts(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"testdata/call.tok":          "SUCCESS: the code has been successfully parsed!\n",
		"testdata/compute.tok":       "SUCCESS: the code has been successfully parsed!\n",
		"testdata/statements.tok":    "SUCCESS: the code has been successfully parsed!\n",
		"testdata/missing_brace.tok": "ERROR: the code contains a syntax mistake!\n",
	}

	for path, expected := range cases {
		code, stdout, stderr := runCLI(t, path)
		assert.Equal(t, 0, code, path)
		assert.Equal(t, expected, stdout, path)
		assert.Empty(t, stderr, path)
	}
}

func TestVerbose(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "-v", "testdata/missing_brace.tok")
	assert.Equal(t, 0, code)
	assert.Equal(t, "ERROR: the code contains a syntax mistake!\n", stdout)
	assert.Equal(t, "at 8: `$`, unexpected token in statement: expected `call`, `compute`\n", stderr)
}

func TestMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.tok")
	code, stdout, stderr := runCLI(t, path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, path)
}

func TestTooManyArguments(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t, "testdata/call.tok", "testdata/compute.tok")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
}

func TestImplicitEndFlag(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "no_sentinel.tok")
	require.NoError(t, os.WriteFile(path, []byte("{\ncompute\n:\nid\n=\nnum\n;\n}\n"), 0o600))

	_, stdout, _ := runCLI(t, path)
	assert.Equal(t, "ERROR: the code contains a syntax mistake!\n", stdout)

	_, stdout, _ = runCLI(t, "--implicit-end", path)
	assert.Equal(t, "SUCCESS: the code has been successfully parsed!\n", stdout)
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "no_sentinel.tok")
	require.NoError(t, os.WriteFile(path, []byte("{\ncall\n:\nid\n(\nid\n)\n;\n}\n"), 0o600))
	conf := filepath.Join(dir, "rdp.toml")
	require.NoError(t, os.WriteFile(conf, []byte("implicit_end = true\n"), 0o600))

	_, stdout, _ := runCLI(t, "--config", conf, path)
	assert.Equal(t, "SUCCESS: the code has been successfully parsed!\n", stdout)

	// the flag overrides the file
	_, stdout, _ = runCLI(t, "--config", conf, "--implicit-end=false", path)
	assert.Equal(t, "ERROR: the code contains a syntax mistake!\n", stdout)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("sentinel = \"$\"\n"), 0o600))
	code, stdout, stderr := runCLI(t, "--config", bad, path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unknown keys")
}

func TestTraceFlag(t *testing.T) {
	t.Parallel()

	_, stdout, stderr := runCLI(t, "--trace", "testdata/call.tok")
	assert.Equal(t, "SUCCESS: the code has been successfully parsed!\n", stdout)
	assert.Contains(t, stderr, "rule=procedureCall")
}

func TestStdin(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLIWithInput(t, "{\ncompute\n:\nid\n=\nnum\n;\n}\n$\n", "-")
	assert.Equal(t, 0, code)
	assert.Equal(t, "SUCCESS: the code has been successfully parsed!\n", stdout)

	code, stdout, stderr := runCLIWithInput(t, "{\ncompute \n:\nid\n=\nnum\n;\n}\n$\n", "-v", "-")
	assert.Equal(t, 0, code)
	assert.Equal(t, "ERROR: the code contains a syntax mistake!\n", stdout)
	assert.Contains(t, stderr, "`compute `")
}

func TestLongLineGetsVerdict(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "long.tok")
	content := "{\ncall\n:\n" + strings.Repeat("a", 70000) + "\n(\nid\n)\n;\n}\n$\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	code, stdout, stderr := runCLI(t, path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "ERROR: the code contains a syntax mistake!\n", stdout)
	assert.Empty(t, stderr)
}

func TestReplWithFile(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "--repl", "testdata/call.tok")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "--repl")
	assert.Contains(t, stderr, "testdata/call.tok")
}
