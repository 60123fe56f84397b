package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/five82/responsive/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/responsive/config.toml)")
	logPath := flag.String("log", "", "write logs to this file (optional)")
	pollMillis := flag.Int("poll", 0, "terminal size poll interval in milliseconds (optional, 0 disables)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, LogPath: *logPath}
	if poll := *pollMillis; poll > 0 {
		opts.PollEvery = time.Duration(poll) * time.Millisecond
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "responsive-demo: %v\n", err)
		return 1
	}
	return 0
}
