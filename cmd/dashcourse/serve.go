package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dashcourse/internal/config"
	"github.com/vovakirdan/dashcourse/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagWatch       bool
	flagStartLevel  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the previewer over SSH",
	Long: `Start an SSH server that opens the course previewer for every connection.

Each session gets its own catalog generated from the current course tuning.
Autopilot results from every session go to the same audit database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dashcourse/host_key

With --watch the course tuning file is reloaded when it changes. New sessions
pick up the new tuning; open sessions keep theirs.

Examples:
  dashcourse serve                            # Listen on :23234
  dashcourse serve --ssh :2222                # Listen on port 2222
  dashcourse serve --config course.yaml --watch

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload course tuning when the config file changes")
	serveCmd.Flags().IntVar(&flagStartLevel, "level", 1, "Level each session opens on")
}

// presetSource applies the --difficulty preset on top of a reloading config.
type presetSource struct {
	src    tui.ConfigSource
	preset config.DifficultyPreset
}

func (p presetSource) Current() config.CourseConfig {
	cfg := p.src.Current()
	config.ApplyPreset(&cfg, p.preset)
	return cfg
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		fail(err)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fail(err)
	}

	var source tui.ConfigSource = tui.StaticConfig(cfg)

	if flagWatch {
		path := config.Locate(flagConfig)
		if path == "" {
			fail(fmt.Errorf("--watch needs a config file, none found"))
		}
		watcher, err := config.NewWatcher(path, cfg, logger)
		if err != nil {
			fail(err)
		}
		defer watcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go watcher.Run(ctx)

		logger.Info("watching course config", "file", path)
		source = presetSource{src: watcher, preset: preset}
	}

	serverCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		StartLevel:  flagStartLevel,
	}

	server, err := tui.NewSSHServer(serverCfg, source, logger)
	if err != nil {
		fail(fmt.Errorf("creating server: %w", err))
	}

	fmt.Printf("Starting dashcourse SSH server on %s\n", serverCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail(fmt.Errorf("server: %w", err))
	}
}
