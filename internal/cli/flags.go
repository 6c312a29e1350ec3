package cli

import "ctest/internal/config"

// Flags holds command-line flags
type Flags struct {
	Filter     string
	NoColor    bool
	Progress   bool
	ConfigFile string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Filter:     f.Filter,
		NoColor:    f.NoColor,
		Progress:   f.Progress,
		ConfigFile: f.ConfigFile,
	}
}
