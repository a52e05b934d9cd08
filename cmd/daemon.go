//go:build unix

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jetscout/jetscout/internal/daemon"
	"github.com/jetscout/jetscout/internal/logging"
	"github.com/jetscout/jetscout/internal/settings"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Manage the jetscout daemon",
	Long: `Control the jetscout background daemon that serves discovery results over a
Unix socket, letting the launcher integration poll without spawning a process
per query. Every request still runs a fresh discovery pass.`,
}

var daemonStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the jetscout daemon",
	Long: `Start the jetscout daemon in foreground mode.

For background operation, use:
  nohup jetscout daemon start > /tmp/jetscout-daemon.log 2>&1 &`,
	RunE: startDaemon,
}

var daemonStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the jetscout daemon",
	Long:  "Stop the running jetscout daemon gracefully.",
	RunE:  stopDaemon,
}

var daemonStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check daemon status",
	Long:  "Check if the jetscout daemon is running and display its status.",
	RunE:  statusDaemon,
}

func init() {
	rootCmd.AddCommand(daemonCmd)
	daemonCmd.AddCommand(daemonStartCmd)
	daemonCmd.AddCommand(daemonStopCmd)
	daemonCmd.AddCommand(daemonStatusCmd)
}

func startDaemon(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(settings.LogLevel())
	if err != nil {
		return err
	}
	defer logger.Sync()

	d, err := daemon.New(daemon.DefaultConfig(), logger)
	if err != nil {
		return fmt.Errorf("failed to initialize daemon: %w", err)
	}

	return d.Start()
}

func stopDaemon(cmd *cobra.Command, args []string) error {
	d, err := daemon.New(daemon.DefaultConfig(), nil)
	if err != nil {
		return fmt.Errorf("failed to initialize daemon: %w", err)
	}

	return d.Stop()
}

func statusDaemon(cmd *cobra.Command, args []string) error {
	d, err := daemon.New(daemon.DefaultConfig(), nil)
	if err != nil {
		return fmt.Errorf("failed to initialize daemon: %w", err)
	}

	info, err := d.GetStatus()
	if err != nil {
		return err
	}

	if !info.Running {
		if info.ErrorMessage != "" {
			fmt.Printf("jetscout daemon not responding (PID: %d): %s\n", info.PID, info.ErrorMessage)
		} else {
			fmt.Println("jetscout daemon not running")
		}
		return nil
	}

	fmt.Printf("jetscout daemon running (PID: %d)\n", info.PID)
	fmt.Printf("Socket: %s\n", info.SocketPath)
	fmt.Printf("Uptime: %s\n", info.Uptime.Round(time.Second))
	return nil
}
