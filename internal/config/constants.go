package config

// ConfigFileNames are the run configuration files looked up by FindConfig,
// in order of preference.
var ConfigFileNames = []string{"pylist.yaml", "pylist.yml"}

// Color modes for example output headings.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// NoColorEnv disables colors in auto mode when set (https://no-color.org/).
const NoColorEnv = "NO_COLOR"

// HeadingPrefix starts the heading printed before each example.
const HeadingPrefix = "test: "
