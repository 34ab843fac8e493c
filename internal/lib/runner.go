// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package lib

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Runner pulls the directories below Cfg.Root and notifies the result.
type Runner struct {
	Cfg      Config
	Puller   Puller
	Notifier Notifier
	out      io.Writer
	errOut   io.Writer
}

// Run pulls every directory below cfg.Root and sends a notification
// with the result. Only configuration problems are returned as errors;
// failed pulls are reported through the notification.
func Run(ctx context.Context, cfg Config) error {
	r := NewRunner(cfg, os.Stderr)
	_, err := r.Run(ctx)
	return err
}

func NewRunner(cfg Config, stderr io.Writer) *Runner {
	out := stderr
	if cfg.Quiet {
		out = io.Discard
	}
	return &Runner{
		Cfg:      cfg,
		Puller:   GitPuller{Git: cfg.Git, Timeout: cfg.Timeout},
		Notifier: CommandNotifier{Command: cfg.Notify},
		out:      out,
		errOut:   stderr,
	}
}

func (r *Runner) log(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

// Run returns the summary it notified with, or nil if there was
// nothing to pull.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if r.Cfg.Root == "" {
		return nil, &ConfigError{Msg: "GIT_DIRS environment variable is not set"}
	}

	dirs, err := ListDirs(r.Cfg.Root, r.Cfg.Paths)
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		fmt.Fprintf(r.errOut, "No directories found in GIT_DIRS: %s\n", r.Cfg.Root)
		return nil, nil
	}

	summary := Classify(PullAll(ctx, dirs, r.Puller))
	r.printResult(summary)
	r.Notifier.Notify(ctx, summary.Title(), summary.Message())

	return &summary, nil
}

func (r *Runner) printResult(summary Summary) {
	if len(summary.Succeeded) > 0 {
		r.log("Pulled: %d repos\n", len(summary.Succeeded))
	}
	if len(summary.Failed) > 0 {
		r.log("Failed: %d repos\n", len(summary.Failed))
		for _, o := range summary.Failed {
			r.log("  - %s (%s: %s)\n", o.Dir, o.Kind, o.Text)
		}
	}
}
