//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fgreil/mitzi-karl-eido/app"
	"github.com/fgreil/mitzi-karl-eido/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		sess, err := app.NewSession(h)
		if err != nil {
			return func() error { return err }
		}
		return sess.Step
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		exit(hal.RunHeadless(ctx, newApp, cfg), context.Canceled)
		return
	}

	exit(hal.RunWindow(newApp))
}

// exit maps the runner result to the process status: Back-triggered quit and
// the listed benign errors are clean, anything else is a failure.
func exit(err error, benign ...error) {
	if err == nil || errors.Is(err, app.ErrQuit) {
		return
	}
	for _, b := range benign {
		if errors.Is(err, b) {
			return
		}
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
