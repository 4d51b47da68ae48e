package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/pydis/object"
)

// run executes the CLI with a private configuration file so the test does
// not pick up a pydis.toml from the working tree.
func run(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "pydis.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(append([]string{"--config", cfgPath, "-q"}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func writeModule(t *testing.T, major, minor int, code *object.Code) string {
	t.Helper()
	data, err := object.MarshalModule(&object.Module{Major: major, Minor: minor, Code: code})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), code.Name+".cbor")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func moduleCode() *object.Code {
	inner := &object.Code{Code: []byte{83, 0}, Name: "inner"}
	return &object.Code{
		Code:     []byte{100, 0, 90, 0, 100, 1, 83, 0},
		Consts:   []object.Object{inner, object.None},
		Names:    []string{"inner"},
		Name:     "module",
		Filename: "module.py",
	}
}

func TestDisasmCommand(t *testing.T) {
	path := writeModule(t, 3, 6, moduleCode())

	out, err := run(t, "", "disasm", "--no-header", path)
	require.NoError(t, err)

	want := "" +
		"0       LOAD_CONST              0: <CODE> inner\n" +
		"2       STORE_NAME              0: inner\n" +
		"4       LOAD_CONST              1: None\n" +
		"6       RETURN_VALUE            \n" +
		"<CODE> inner\n" +
		"    0       RETURN_VALUE            \n"
	assert.Equal(t, want, out)
}

func TestDisasmNoRecurseIndent(t *testing.T) {
	path := writeModule(t, 3, 6, moduleCode())

	out, err := run(t, "", "disasm", "--no-header", "--no-recurse", "--indent", "1", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "    "), "line %q not indented", l)
	}
}

func TestDisasmHeaderFromConfig(t *testing.T) {
	path := writeModule(t, 3, 6, moduleCode())

	out, err := run(t, "", "disasm", "--no-recurse", path)
	require.NoError(t, err)
	assert.Contains(t, out, "[Code] module\n")
	assert.Contains(t, out, "    File Name: module.py\n")

	out, err = run(t, "[disasm]\nheader = false\nrecurse = false\n", "disasm", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "[Code]")
	for _, l := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.False(t, strings.HasPrefix(l, "    "), "nested line %q listed", l)
	}
}

func TestDisasmVersionResolution(t *testing.T) {
	// 2.7 legacy bytes; the file records no version.
	code := &object.Code{Code: []byte{100, 0, 0, 83}, Consts: []object.Object{object.None}, Name: "legacy"}
	path := writeModule(t, 0, 0, code)

	_, err := run(t, "", "disasm", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no runtime version")

	out, err := run(t, "[disasm]\nversion = \"2.7\"\nheader = false\n", "disasm", path)
	require.NoError(t, err)
	assert.Equal(t, "0       LOAD_CONST              0: None\n3       RETURN_VALUE            \n", out)

	out, err = run(t, "[disasm]\nheader = false\n", "disasm", "--version", "2.7", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3       RETURN_VALUE")

	_, err = run(t, "", "disasm", "--version", "3.9", path)
	require.Error(t, err)
}

func TestDisasmMultipleFiles(t *testing.T) {
	a := writeModule(t, 3, 6, &object.Code{Code: []byte{83, 0}, Name: "a"})
	b := writeModule(t, 3, 6, &object.Code{Code: []byte{9, 0}, Name: "b"})

	out, err := run(t, "[disasm]\nheader = false\n", "disasm", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "# "+a+"\n0       RETURN_VALUE")
	assert.Contains(t, out, "# "+b+"\n0       NOP")
}

func TestDisasmTruncatedKeepsOutput(t *testing.T) {
	path := writeModule(t, 2, 7, &object.Code{Code: []byte{1, 100, 0}, Name: "broken"})

	out, err := run(t, "[disasm]\nheader = false\n", "disasm", path)
	require.Error(t, err)
	assert.Equal(t, "0       POP_TOP                 \n", out)
}

func TestDisasmBadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.cbor")
	require.NoError(t, os.WriteFile(path, []byte("not cbor"), 0644))

	_, err := run(t, "", "disasm", path)
	require.Error(t, err)

	_, err = run(t, "", "disasm", filepath.Join(t.TempDir(), "missing.cbor"))
	require.Error(t, err)

	_, err = run(t, "", "disasm")
	require.Error(t, err)
}

func TestOpcodesCommand(t *testing.T) {
	out, err := run(t, "", "opcodes")
	require.NoError(t, err)
	assert.Contains(t, out, "LOAD_CONST")
	assert.Contains(t, out, "const\n")
	assert.Contains(t, out, "COMPARE_OP")

	out, err = run(t, "", "opcodes", "--version", "3.6")
	require.NoError(t, err)
	assert.Contains(t, out, "100  LOAD_CONST")
	assert.Contains(t, out, "144  EXTENDED_ARG")

	_, err = run(t, "", "opcodes", "--version", "1.2")
	require.Error(t, err)
}

func TestVersionsCommand(t *testing.T) {
	out, err := run(t, "", "versions")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 21)
	assert.True(t, strings.HasPrefix(lines[0], "1.0   legacy"))
	assert.True(t, strings.HasPrefix(lines[20], "3.6   wordcode"))
}

func TestIndexCommand(t *testing.T) {
	path := writeModule(t, 3, 6, moduleCode())
	db := filepath.Join(t.TempDir(), "index.db")

	out, err := run(t, "", "index", "--db", db, path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, " "+path+"\n"))

	out, err = run(t, "", "index", "--db", db, "--stats")
	require.NoError(t, err)
	assert.Contains(t, out, "LOAD_CONST               2\n")
	assert.Contains(t, out, "RETURN_VALUE             2\n")
	assert.Contains(t, out, "STORE_NAME               1\n")

	_, err = run(t, "", "index", "--db", db)
	require.Error(t, err)
}

func TestIndexPathFromConfig(t *testing.T) {
	path := writeModule(t, 3, 6, moduleCode())
	db := filepath.Join(t.TempDir(), "configured.db")

	_, err := run(t, "[index]\npath = \""+filepath.ToSlash(db)+"\"\n", "index", path)
	require.NoError(t, err)

	_, err = os.Stat(db)
	assert.NoError(t, err)
}
