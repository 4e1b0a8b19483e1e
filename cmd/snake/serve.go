package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own game. With --db, scores from every
session go to the same leaderboard, recorded under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                           # Listen on :23234 with auto-generated key
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key
  snake serve --db ./scores.db          # Keep a shared leaderboard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.TickRate = flagFPS
	srvCfg.Seed = flagSeed
	srvCfg.Debug = flagDebug

	var recorder tui.ScoreRecorder
	store := openStore()
	if store != nil {
		recorder = store
	}

	server, err := tui.NewSSHServer(srvCfg, cfg, recorder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}

	fmt.Printf("Starting snake SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	runErr := server.ListenAndServe()

	// Sessions are gone after shutdown, so the store can close.
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", runErr)
		os.Exit(1)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
