package rotation

import "strings"

const (
	configurationKeySeparatorConstant       = "."
	modeConfigurationKeyConstant            = "mode"
	trailingNewlineConfigurationKeyConstant = "trailing_newline"
)

// Configuration captures configuration values for the rotation command.
type Configuration struct {
	Mode            string `mapstructure:"mode"`
	TrailingNewline bool   `mapstructure:"trailing_newline"`
}

// DefaultConfiguration provides baseline configuration values for rotation.
func DefaultConfiguration() Configuration {
	return Configuration{
		Mode:            string(DefaultMode),
		TrailingNewline: false,
	}
}

// DefaultConfigurationValues exposes the defaults keyed under the provided configuration prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultConfiguration()
	trimmedPrefix := strings.TrimSpace(prefix)
	return map[string]any{
		qualifyConfigurationKey(trimmedPrefix, modeConfigurationKeyConstant):            defaults.Mode,
		qualifyConfigurationKey(trimmedPrefix, trailingNewlineConfigurationKeyConstant): defaults.TrailingNewline,
	}
}

// ResolveMode parses the configured mode name.
func (configuration Configuration) ResolveMode() (Mode, error) {
	return ParseMode(configuration.Mode)
}

func qualifyConfigurationKey(prefix string, key string) string {
	if len(prefix) == 0 {
		return key
	}
	return prefix + configurationKeySeparatorConstant + key
}
