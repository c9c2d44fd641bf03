package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/Redrield/emojicode/cli"
)

// ErrPackageCycle is returned when the imported packages cannot be linked
// in dependency order because their imports form a cycle.
var ErrPackageCycle = errors.New("package import cycle")

// Package describes an imported package the way the loader left it: where
// it was found, what it imports and which system libraries it needs.
type Package struct {
	// Name of the package.
	Name string
	// Path of the directory the package was loaded from. Its static
	// library sits in this directory.
	Path string
	// Imports names the packages this package imports.
	Imports []string
	// LinkHints names system libraries to link alongside the package.
	LinkHints []string
}

// ArchivePath returns the path of the package's static library.
func (p Package) ArchivePath() string {
	return p.Path + "/" + cli.LibraryFileName(p.Name)
}

// Command is one toolchain invocation, ready for an executor.
type Command struct {
	Program string
	Args    []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Program}, c.Args...), " ")
}

// LinkCommand builds the linker invocation that turns the object file into
// the executable. Package archives appear dependents before dependencies so
// the linker resolves every symbol in one pass, each followed by its link
// hints; the runtime archive comes last because everything depends on it.
func LinkCommand(opts *cli.Options, packages []Package, runtime Package) (Command, error) {
	ordered, err := orderPackages(packages)
	if err != nil {
		return Command{}, err
	}

	args := []string{opts.ObjectPath()}
	for _, pkg := range ordered {
		args = append(args, pkg.ArchivePath())
		for _, hint := range pkg.LinkHints {
			args = append(args, "-l"+hint)
		}
	}
	args = append(args, runtime.ArchivePath(), "-o", opts.OutPath())

	return Command{Program: opts.Linker(), Args: args}, nil
}

// ArchiveCommand builds the archiver invocation that packs the object file
// into the library's static archive.
func ArchiveCommand(opts *cli.Options) Command {
	return Command{Program: opts.Ar(), Args: []string{"cr", opts.OutPath(), opts.ObjectPath()}}
}

type packageNode struct {
	name  string
	pkg   Package
	known bool
	id    int64
}

func (n *packageNode) ID() int64 {
	return n.id
}

// orderPackages sorts packages topologically so that every package precedes
// the packages it imports. Ties are broken by name to keep the link line
// stable across runs.
func orderPackages(packages []Package) ([]Package, error) {
	nodes := map[string]*packageNode{}
	makeNode := func(name string) *packageNode {
		if node, ok := nodes[name]; ok {
			return node
		}
		node := &packageNode{name: name, id: int64(len(nodes))}
		nodes[name] = node
		return node
	}

	g := multi.NewDirectedGraph()
	for _, pkg := range packages {
		node := makeNode(pkg.Name)
		node.pkg = pkg
		node.known = true
		for _, imported := range pkg.Imports {
			// A single node sorts fine even when it carries a line to
			// itself, so self-imports must be caught here.
			if imported == pkg.Name {
				return nil, errors.Join(ErrPackageCycle,
					fmt.Errorf("package %s imports itself", pkg.Name))
			}
			g.SetLine(g.NewLine(node, makeNode(imported)))
		}
	}
	// Packages nobody imports and that import nothing still belong on the
	// link line.
	for _, node := range nodes {
		if node.known && g.Node(node.id) == nil {
			g.AddNode(node)
		}
	}

	sorted, sortErr := topo.SortStabilized(g, func(nodes []graph.Node) {
		slices.SortFunc(nodes, func(a, b graph.Node) bool {
			return a.(*packageNode).name < b.(*packageNode).name
		})
	})
	if sortErr != nil {
		return nil, errors.Join(ErrPackageCycle, sortErr)
	}

	ordered := make([]Package, 0, len(packages))
	for _, node := range sorted {
		// Imports of packages outside the given set, like the runtime, are
		// linked by other means.
		if node := node.(*packageNode); node.known {
			ordered = append(ordered, node.pkg)
		}
	}
	return ordered, nil
}
