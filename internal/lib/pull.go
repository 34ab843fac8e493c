// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package lib

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// UnknownDir is the Dir of a TaskFailure outcome.
const UnknownDir = "unknown"

type Puller interface {
	Pull(ctx context.Context, dir string) Outcome
}

// PullAll pulls every dir concurrently and waits for all of them.
// The result has one Outcome per dir, in no particular order.
func PullAll(ctx context.Context, dirs []string, p Puller) []Outcome {
	outcomes := make([]Outcome, len(dirs))

	// No errgroup.WithContext: one failing pull must not cancel the others.
	var g errgroup.Group
	for i, dir := range dirs {
		g.Go(func() error {
			outcomes[i] = pullOne(ctx, dir, p)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// pullOne runs one pull in its own goroutine so that a panic or
// runtime.Goexit in the Puller still yields a TaskFailure.
func pullOne(ctx context.Context, dir string, p Puller) Outcome {
	result := make(chan Outcome, 1)
	go func() {
		completed := false
		defer func() {
			if completed {
				return
			}
			text := "task exited without a result"
			if r := recover(); r != nil {
				text = fmt.Sprintf("task panicked: %v", r)
			}
			result <- Outcome{Dir: UnknownDir, Kind: TaskFailure, Text: text}
		}()
		o := p.Pull(ctx, dir)
		completed = true
		result <- o
	}()
	return <-result
}
