package config

const (
	// DefaultConfigFile is read when present and no --config flag is given
	DefaultConfigFile = "ctest.yaml"
	// DefaultEnvFile is loaded into the environment when present
	DefaultEnvFile = ".env"
	// DefaultFilter selects every registered test
	DefaultFilter = ""
	// DefaultProgress disables the progress bar
	DefaultProgress = false
)

// Environment variables read by Load
const (
	EnvFilter   = "CTEST_FILTER"
	EnvNoColor  = "CTEST_NO_COLOR"
	EnvProgress = "CTEST_PROGRESS"
	// EnvNoColorStd follows https://no-color.org: any non-empty value disables colour
	EnvNoColorStd = "NO_COLOR"
)
