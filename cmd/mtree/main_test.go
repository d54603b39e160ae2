package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bluesky-social/merkletree/mtree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	var buf bytes.Buffer
	err := run(append([]string{"mtree"}, args...), &buf)
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	out, err := runCmd(t, "root", "testdata/five.txt")
	require.NoError(t, err)
	assert.Equal(t, "87716858728042534\n", out)

	out, err = runCmd(t, "root", filepath.Join(t.TempDir(), "missing.txt"))
	require.NoError(t, err)
	assert.Equal(t, mtree.EmptyTreeIndicator+"\n", out)

	_, err = runCmd(t, "root")
	assert.Error(t, err)
}

func TestGlobalFlags(t *testing.T) {
	out, err := runCmd(t, "--fanout", "2", "root", "testdata/five.txt")
	require.NoError(t, err)
	assert.Equal(t, "18411913014381490887\n", out)

	_, err = runCmd(t, "--fanout", "1", "root", "testdata/five.txt")
	assert.ErrorIs(t, err, mtree.ErrInvalidFanout)

	_, err = runCmd(t, "--hash", "md5", "root", "testdata/five.txt")
	assert.Error(t, err)

	out, err = runCmd(t, "--hash", "sha256", "--leaf-cache", "16", "root", "testdata/five.txt")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 64)
}

func TestVerifyCommand(t *testing.T) {
	out, err := runCmd(t, "verify", "testdata/five.txt")
	require.NoError(t, err)
	assert.Equal(t, "True\n", out)

	out, err = runCmd(t, "verify", "--expect", "87716858728042534", "testdata/five.txt")
	require.NoError(t, err)
	assert.Equal(t, "True\n", out)

	out, err = runCmd(t, "verify", "--expect", "1", "testdata/five.txt")
	assert.ErrorIs(t, err, mtree.ErrRootMismatch)
	assert.Equal(t, "False\n", out)
}

func TestInsertCommand(t *testing.T) {
	out, err := runCmd(t, "insert", "testdata/five.txt", "6")
	require.NoError(t, err)
	assert.Equal(t, "before: 87716858728042534\nafter: 13260397401886584623\n", out)

	_, err = runCmd(t, "insert", "testdata/five.txt", "six")
	assert.Error(t, err)

	_, err = runCmd(t, "insert", "testdata/five.txt")
	assert.Error(t, err)
}

func TestOverwriteCommand(t *testing.T) {
	out, err := runCmd(t, "overwrite", "testdata/five.txt", "99", "100")
	require.NoError(t, err)
	assert.Equal(t, "replaced: false\nroot: 87716858728042534\n", out)

	out, err = runCmd(t, "overwrite", "testdata/five.txt", "5", "6")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "replaced: true\n"))
	assert.NotContains(t, out, "87716858728042534")

	_, err = runCmd(t, "overwrite", "testdata/five.txt", "5")
	assert.Error(t, err)
}

func TestPrintCommand(t *testing.T) {
	out, err := runCmd(t, "print", "testdata/five.txt")
	require.NoError(t, err)
	expected := strings.Join([]string{
		"Level 0: 87716858728042534",
		" Level 1: 4916309629727857311",
		" Level 1: 12383639140926401555",
		"  Level 2: 12638134423997487868",
		"  Level 2: 12638137722532372501",
		"  Level 2: 12638136623020744290",
		"  Level 2: 12638131125462603235",
		"  Level 2: 12638130025950975024",
	}, "\n") + "\n"
	assert.Equal(t, expected, out)

	out, err = runCmd(t, "print", "--format", "tree", "--full", "testdata/five.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "[87716858728042534]─◉")
	assert.Contains(t, out, "[12638130025950975024]─◌")
	assert.Equal(t, 8, strings.Count(out, "─◉")+strings.Count(out, "─◌"))

	_, err = runCmd(t, "print", "--format", "dot", "testdata/five.txt")
	assert.Error(t, err)
}

func TestHashersAndDemo(t *testing.T) {
	out, err := runCmd(t, "hashers")
	require.NoError(t, err)
	assert.Contains(t, out, "fnv1a (default)\n")
	assert.Contains(t, out, "cid\n")

	out, err = runCmd(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "root: 87716858728042534\n")
	assert.Contains(t, out, "insert 6, root: 13260397401886584623\n")
	assert.Contains(t, out, "verify: true\n")
}
