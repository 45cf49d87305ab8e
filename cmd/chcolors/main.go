// Command chcolors switches the color scheme of several programs at once.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rivnakm/chcolors/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Main(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
