package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkCommandOrdersDependentsFirst(t *testing.T) {
	opts := parseOptions(t, "-o", "app", "main.emojic")
	runtime := Package{Name: "runtime", Path: "/usr/local/EmojicodePackages/runtime"}

	// b is listed before a, but a imports b and must be linked first.
	cmd, err := LinkCommand(opts, []Package{
		{Name: "b", Path: "/pkgs/b"},
		{Name: "a", Path: "/pkgs/a", Imports: []string{"b"}},
	}, runtime)
	require.NoError(t, err)

	assert.Equal(t, "c++", cmd.Program)
	assert.Equal(t, []string{
		"main.o",
		"/pkgs/a/liba.a",
		"/pkgs/b/libb.a",
		"/usr/local/EmojicodePackages/runtime/libruntime.a",
		"-o", "app",
	}, cmd.Args)
}

func TestLinkCommandHintsFollowTheirArchive(t *testing.T) {
	opts := parseOptions(t, "main.emojic")

	cmd, err := LinkCommand(opts, []Package{
		{Name: "sockets", Path: "/pkgs/sockets", LinkHints: []string{"ssl", "crypto"}},
	}, Package{Name: "runtime", Path: "/rt"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"main.o",
		"/pkgs/sockets/libsockets.a", "-lssl", "-lcrypto",
		"/rt/libruntime.a",
		"-o", "main",
	}, cmd.Args)
}

func TestLinkCommandStableOrder(t *testing.T) {
	opts := parseOptions(t, "main.emojic")

	// Independent packages come out in name order, not map order.
	cmd, err := LinkCommand(opts, []Package{
		{Name: "c", Path: "/p/c"},
		{Name: "a", Path: "/p/a"},
		{Name: "b", Path: "/p/b"},
	}, Package{Name: "runtime", Path: "/rt"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"main.o",
		"/p/a/liba.a", "/p/b/libb.a", "/p/c/libc.a",
		"/rt/libruntime.a",
		"-o", "main",
	}, cmd.Args)
}

func TestLinkCommandImportOutsideSet(t *testing.T) {
	opts := parseOptions(t, "main.emojic")

	// Imports of packages that were linked by other means, like the
	// runtime, do not appear on the link line.
	cmd, err := LinkCommand(opts, []Package{
		{Name: "files", Path: "/p/files", Imports: []string{"runtime"}},
	}, Package{Name: "runtime", Path: "/rt"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"main.o",
		"/p/files/libfiles.a",
		"/rt/libruntime.a",
		"-o", "main",
	}, cmd.Args)
}

func TestLinkCommandCycle(t *testing.T) {
	opts := parseOptions(t, "main.emojic")

	_, err := LinkCommand(opts, []Package{
		{Name: "a", Path: "/p/a", Imports: []string{"b"}},
		{Name: "b", Path: "/p/b", Imports: []string{"a"}},
	}, Package{Name: "runtime", Path: "/rt"})
	require.ErrorIs(t, err, ErrPackageCycle)
}

func TestLinkCommandSelfImport(t *testing.T) {
	opts := parseOptions(t, "main.emojic")

	_, err := LinkCommand(opts, []Package{
		{Name: "a", Path: "/p/a", Imports: []string{"a"}},
	}, Package{Name: "runtime", Path: "/rt"})
	require.ErrorIs(t, err, ErrPackageCycle)
}

func TestLinkCommandEachArchiveOnce(t *testing.T) {
	opts := parseOptions(t, "main.emojic")

	// A diamond of imports: every archive appears exactly once no matter
	// how many packages import it.
	cmd, err := LinkCommand(opts, []Package{
		{Name: "app", Path: "/p/app", Imports: []string{"left", "right"}},
		{Name: "left", Path: "/p/left", Imports: []string{"base"}},
		{Name: "right", Path: "/p/right", Imports: []string{"base"}},
		{Name: "base", Path: "/p/base"},
	}, Package{Name: "runtime", Path: "/rt"})
	require.NoError(t, err)

	seen := map[string]int{}
	for _, arg := range cmd.Args {
		seen[arg]++
	}
	for _, archive := range []string{
		"/p/app/libapp.a", "/p/left/libleft.a", "/p/right/libright.a", "/p/base/libbase.a",
	} {
		assert.Equal(t, 1, seen[archive], archive)
	}
	assert.Equal(t, "/p/app/libapp.a", cmd.Args[1], "dependents come first")
	assert.Equal(t, "/p/base/libbase.a", cmd.Args[4], "dependencies come last")
}

func TestArchiveCommand(t *testing.T) {
	opts := parseOptions(t, "-p", "files", "pkg/files.emojic")

	cmd := ArchiveCommand(opts)
	assert.Equal(t, "ar", cmd.Program)
	assert.Equal(t, []string{"cr", "pkg/libfiles.a", "pkg/files.o"}, cmd.Args)
}

func TestCommandString(t *testing.T) {
	cmd := Command{Program: "ar", Args: []string{"cr", "out.a", "in.o"}}
	assert.Equal(t, "ar cr out.a in.o", cmd.String())
}
