package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/ib-77/sig2gmt/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := app.Run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}
