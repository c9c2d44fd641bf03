package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLinker(t *testing.T) {
	tests := []struct {
		name      string
		env       Environ
		flagValue string
		want      string
	}{
		{"environment override beats the flag", Environ{EnvLinker: "g++"}, "custom", "g++"},
		{"flag beats the default", Environ{}, "custom", "custom"},
		{"default without either", Environ{}, "", "c++"},
		{"empty override is taken literally", Environ{EnvLinker: ""}, "custom", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, resolveLinker(test.env, test.flagValue))
		})
	}
}

func TestResolveArchiver(t *testing.T) {
	assert.Equal(t, "llvm-ar", resolveArchiver(Environ{EnvArchiver: "llvm-ar"}))
	assert.Equal(t, "ar", resolveArchiver(Environ{}))
}
