// Package paths computes the runtime file locations of the daemon.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/jetscout/jetscout/internal/settings"
)

func runtimeDir() string {
	if xdg.RuntimeDir != "" {
		return filepath.Join(xdg.RuntimeDir, "jetscout")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".jetscout")
}

// SocketPath returns the daemon socket location, honoring JETSCOUT_SOCKET.
func SocketPath() string {
	if s := settings.Socket(); s != "" {
		return s
	}
	return filepath.Join(runtimeDir(), "daemon.sock")
}

// PIDPath returns the daemon PID file location.
func PIDPath() string { return filepath.Join(runtimeDir(), "daemon.pid") }
