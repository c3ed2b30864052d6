package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/themed/internal/themed"
)

const envPrefix = "THEMED"

// settings are the user-level preferences read from the settings file,
// THEMED_* environment variables and flags, in increasing precedence.
type settings struct {
	PropName string
	Compose  string
	Pure     *bool
	LogLevel string
	Format   string
}

func loadSettings(path string, flags *pflag.FlagSet) (settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log_level", "warn")

	for key, flag := range map[string]string{"log_level": "log-level", "format": "format"} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return settings{}, err
			}
		}
	}

	if path == "" {
		path = defaultSettingsPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, err
		}
	}

	s := settings{
		PropName: v.GetString("prop_name"),
		Compose:  v.GetString("compose"),
		LogLevel: v.GetString("log_level"),
		Format:   v.GetString("format"),
	}
	if v.IsSet("pure") {
		pure := v.GetBool("pure")
		s.Pure = &pure
	}
	return s, nil
}

// options converts the settings into wrapper defaults; unset fields inherit
// the built-in defaults.
func (s settings) options() (themed.Options, error) {
	compose, err := themed.ParseCompose(s.Compose)
	if err != nil {
		return themed.Options{}, err
	}
	opts := themed.Options{PropName: s.PropName, Compose: compose}
	if s.Pure != nil {
		opts.Purity = themed.PurityOf(*s.Pure)
	}
	return opts, nil
}

// defaultSettingsPath returns the settings file under the user config
// directory, or "" when there is none.
func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "themed", "settings.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
