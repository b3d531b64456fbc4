package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"

	"github.com/gobeaver/mimesniff"
	"github.com/gobeaver/mimesniff/internal/cli"
)

var version = "dev"

func main() {
	cfg, err := mimesniff.GetConfig()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = fang.Execute(ctx, cli.NewRootCmd(cfg), fang.WithVersion(version))
	stop()
	if err != nil {
		os.Exit(1)
	}
}
