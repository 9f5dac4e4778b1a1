package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

const (
	appVersion  = "dev"
	serviceName = "startgg-results"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// run executes the command tree once and releases the runtime afterwards.
func run(ctx context.Context, args []string) error {
	c := &cli{}
	root := newRootCommand(c)
	root.SetArgs(args)
	defer c.close()
	return root.ExecuteContext(ctx)
}
