package cli

import "github.com/Redrield/emojicode/dist"

// resolveLinker picks the program that links the object files into the
// final binary. An environment override beats --linker, which beats the
// distribution default.
func resolveLinker(env Environ, flagValue string) string {
	if value, ok := env[EnvLinker]; ok {
		return value
	}
	if len(flagValue) > 0 {
		return flagValue
	}
	return dist.Default().Linker
}

// resolveArchiver picks the program that packs object files into a static
// library.
func resolveArchiver(env Environ) string {
	if value, ok := env[EnvArchiver]; ok {
		return value
	}
	return dist.Default().Archiver
}
