// Command formcheck evaluates a rule file against form data and prints the
// resulting validation state as JSON. With -watch it re-applies the rule file
// whenever it changes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zoobzio/capitan"

	"github.com/dmitrymomot/formstate/pkg/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var s settings
	if err := config.Load(&s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(exitUsage)
	}

	code := run(ctx, s, os.Args[1:], os.Stdout, os.Stderr)
	capitan.Shutdown()
	stop()
	os.Exit(code)
}
