package cli

import (
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"golang.org/x/exp/slices"

	"github.com/Redrield/emojicode/dist"
)

// Environment variables the compiler honors.
const (
	// EnvPackagesPath appends a directory to the package search path.
	EnvPackagesPath = "EMOJICODE_PACKAGES_PATH"
	// EnvLinker overrides the linker, taking precedence over --linker.
	EnvLinker = "CXX"
	// EnvArchiver overrides the archiver used to pack libraries.
	EnvArchiver = "AR"
)

// Environ is the slice of the process environment the compiler reads.
// Option resolution only ever consults an Environ, never the process state,
// so a variable must be captured here to have any effect.
type Environ map[string]string

// SystemEnviron captures the relevant process environment variables. A
// variable that is set to the empty string is captured as such; it is not
// the same as an unset one.
func SystemEnviron() Environ {
	env := Environ{}
	for _, key := range []string{EnvPackagesPath, EnvLinker, EnvArchiver} {
		if value, ok := os.LookupEnv(key); ok {
			env[key] = value
		}
	}
	return env
}

// resolveSearchPaths establishes the package search path order: directories
// given with -S first, then the local packages directory, then the
// directory named by EnvPackagesPath, then the installation directory this
// build was configured with. Nothing is checked for existence and nothing
// is deduplicated; the package loader probes the entries in order.
func resolveSearchPaths(cliPaths []string, env Environ) []string {
	paths := slices.Clone(cliPaths)

	local, err := filepath.Abs("packages")
	if err != nil {
		local = "packages"
	}
	paths = append(paths, local)

	if value, ok := env[EnvPackagesPath]; ok && len(value) > 0 {
		paths = append(paths, value)
	}

	paths = append(paths, dist.Default().PackagesDirectory)

	glog.V(3).Infof("package search paths: %v", paths)
	return paths
}
