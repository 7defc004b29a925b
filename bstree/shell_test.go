package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoniofull/bstree/src/bst"
)

func newTestShell() (*Shell, *bst.Tree[int], *bytes.Buffer) {
	var b bytes.Buffer
	var tree = bst.New[int]()
	var shell = NewShell(tree, &b)
	shell.DisableColor()
	return shell, tree, &b
}

func TestShellInsertAndInspect(t *testing.T) {
	var shell, tree, b = newTestShell()

	assert.False(t, shell.Exec("insert 10 7 15 5 8 12 18"))
	assert.Equal(t, 7, tree.Len())
	assert.Contains(t, b.String(), "inserted 18\n")

	var tests = []struct {
		line string
		want string
	}{
		{"insert 7", "7 is already present\n"},
		{"min", "5\n"},
		{"max", "18\n"},
		{"find 12", "12\n"},
		{"parent 12", "15\n"},
		{"height", "min height: 2, max height: 2\n"},
		{"balanced", "true\n"},
		{"inorder", "5 7 8 10 12 15 18\n"},
		{"preorder", "10 7 5 8 15 12 18\n"},
		{"postorder", "5 8 7 12 18 15 10\n"},
		{"print", "    10\n 7   15\n5 8 12 18\n"},
		{"find 11", "find 11: value not found\n"},
		{"parent 10", "find parent of 10: root has no parent\n"},
		{"find", "find takes exactly one value: invalid argument\n"},
		{"find x", "find: \"x\" is not an integer: invalid argument\n"},
		{"frobnicate", "Unknown command \"frobnicate\". Type \"help\" for a list of commands.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			b.Reset()
			assert.False(t, shell.Exec(tt.line))
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestShellRemove(t *testing.T) {
	var shell, tree, b = newTestShell()
	shell.Exec("insert 10 7 15 5 8 12 18")
	b.Reset()

	shell.Exec("remove 7 7")
	assert.Equal(t, "removed 7\n7 is not present\n", b.String())
	assert.Equal(t, 8, tree.Root().Left().Value())

	b.Reset()
	shell.Exec("values")
	assert.Equal(t, "5 8 10 12 15 18\n", b.String())

	b.Reset()
	shell.Exec("remove")
	assert.Equal(t, "remove needs at least one value: invalid argument\n", b.String())
}

func TestShellEmptyTree(t *testing.T) {
	var shell, _, b = newTestShell()

	shell.Exec("min")
	assert.Equal(t, "tree is empty\n", b.String())

	b.Reset()
	shell.Exec("height")
	assert.Equal(t, "min height: -1, max height: -1\n", b.String())

	b.Reset()
	shell.Exec("stats")
	assert.Contains(t, b.String(), "balanced")
	assert.Contains(t, b.String(), "-1")
}

func TestShellStats(t *testing.T) {
	var shell, _, b = newTestShell()
	shell.Exec("insert 1 2 3")
	b.Reset()

	shell.Exec("stats")
	var out = b.String()
	for _, want := range []string{"Stat", "values", "min height", "max height", "false"} {
		assert.Contains(t, strings.ToLower(out), strings.ToLower(want))
	}
}

func TestShellRun(t *testing.T) {
	var shell, tree, b = newTestShell()

	var in = strings.NewReader("insert 3 1 2\nclear\n\ninsert 4\nquit\ninsert 5\n")
	require.NoError(t, shell.Run(in))

	assert.Equal(t, []int{4}, tree.Values())
	assert.Contains(t, b.String(), "bstree - Available Commands")
	assert.Contains(t, b.String(), "OK\n")
}

func TestShellRunEOF(t *testing.T) {
	var shell, tree, _ = newTestShell()
	require.NoError(t, shell.Run(strings.NewReader("insert 1")))
	assert.Equal(t, 1, tree.Len())
}

func TestParseValues(t *testing.T) {
	values, err := parseValues([]string{"10", " 7", "-3"})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 7, -3}, values)

	_, err = parseValues([]string{"1", "two"})
	assert.ErrorIs(t, err, bst.ErrInvalidArgument)
}

func newTestFlags(t *testing.T, args ...string) *pflag.FlagSet {
	var flags = pflag.NewFlagSet("bstree", pflag.ContinueOnError)
	flags.String("loglevel", "INFO", "")
	flags.String("log-format", "prefixed", "")
	flags.String("logfile", "", "")
	flags.Bool("no-color", false, "")
	flags.String("seed", "", "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("BSTREE_LOGLEVEL", "DEBUG")
	t.Setenv("BSTREE_SEED", "1,2")

	cfg, err := loadConfig(newTestFlags(t, "--log-format", "json", "--seed", "10,7,15"))
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.loglevel)
	assert.Equal(t, "json", cfg.logFormat)
	assert.Equal(t, "10,7,15", cfg.seed)
	assert.False(t, cfg.noColor)
}

func TestLoadEnvFiles(t *testing.T) {
	var dir = t.TempDir()
	var path = filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("BSTREE_NO_COLOR=true\n"), 0644))

	t.Setenv("BSTREE_NO_COLOR", "")
	require.NoError(t, os.Unsetenv("BSTREE_NO_COLOR"))
	require.NoError(t, loadEnvFiles(filepath.Join(dir, "missing.env"), path))

	cfg, err := loadConfig(newTestFlags(t))
	require.NoError(t, err)
	assert.True(t, cfg.noColor)

	assert.NoError(t, loadEnvFiles(filepath.Join(dir, "missing.env")))
}

func TestShellPrintSortedChain(t *testing.T) {
	var shell, tree, b = newTestShell()
	var values = make([]string, 64)
	for i := range values {
		values[i] = strconv.Itoa(i)
	}
	shell.Exec("insert " + strings.Join(values, " "))
	require.Equal(t, 64, tree.Len())
	b.Reset()

	require.NotPanics(t, func() { shell.Exec("print") })
	assert.Equal(t, strings.Join(values, "\n")+"\n", b.String())
}
