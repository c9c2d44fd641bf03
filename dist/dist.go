// Package dist exposes the parameters baked into a build of the compiler.
package dist

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed dist.yaml
var rawDistribution []byte

var distribution Distribution

// Distribution describes where a compiler installation expects to find its
// surroundings and which tools it falls back to. Packaging rewrites dist.yaml
// before building, so fields here must keep their defaults usable for
// development checkouts.
type Distribution struct {
	Version           string `yaml:"version"`
	PackagesDirectory string `yaml:"packagesDirectory"`
	Linker            string `yaml:"linker"`
	Archiver          string `yaml:"archiver"`
	InterfaceFile     string `yaml:"interfaceFile"`
	ReportFile        string `yaml:"reportFile"`
}

func Default() Distribution {
	return distribution
}

func init() {
	if err := yaml.Unmarshal(rawDistribution, &distribution); err != nil {
		panic(err)
	}
}
