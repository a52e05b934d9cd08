// Package settings exposes the JETSCOUT_* environment settings.
package settings

import (
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "JETSCOUT"

var v = newViper()

func newViper() *viper.Viper {
	vp := viper.New()
	vp.SetEnvPrefix(envPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vp.AutomaticEnv()
	vp.SetDefault("log-level", "info")
	return vp
}

// Socket returns the daemon socket path override (JETSCOUT_SOCKET), empty when unset.
func Socket() string { return v.GetString("socket") }

// LogLevel returns the diagnostic log level (JETSCOUT_LOG_LEVEL), default "info".
func LogLevel() string { return v.GetString("log-level") }

// ConfigRoot returns the configuration-root override (JETSCOUT_CONFIG_ROOT),
// empty when unset. When set it takes precedence over XDG resolution; used by
// integration tests and packaging.
func ConfigRoot() string { return v.GetString("config-root") }
