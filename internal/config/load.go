package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load builds a Config from DefaultConfig, then overlays an optional YAML
// file (if path is non-empty) and environment variables prefixed
// SIMCORE_ (e.g. SIMCORE_CORRECTIONEPSILON), in that order. This mirrors
// the layered file+env config pattern used throughout the pack's
// cobra/viper daemons (see Quigles1337-COINjecture1337-REFACTOR's
// cobra-based coinjectured entry point, which wires the same "--config"
// flag onto a viper-backed struct).
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SIMCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("correctionepsilon", DefaultConfig.CorrectionEpsilon)
	v.SetDefault("maxgridpoints", DefaultConfig.MaxGridPoints)
	v.SetDefault("defaultintervaldays", DefaultConfig.DefaultIntervalDays)
	v.SetDefault("yearlength", DefaultConfig.YearLength)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	c := Config{
		CorrectionEpsilon:   v.GetFloat64("correctionepsilon"),
		MaxGridPoints:       v.GetInt("maxgridpoints"),
		DefaultIntervalDays: v.GetFloat64("defaultintervaldays"),
		YearLength:          v.GetFloat64("yearlength"),
	}
	if err := Validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}
