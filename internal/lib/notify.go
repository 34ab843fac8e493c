// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package lib

import (
	"context"
	"os"
	"os/exec"
)

// Notifier delivers the run summary. Delivery is best effort.
type Notifier interface {
	Notify(ctx context.Context, title, message string)
}

// CommandNotifier runs Command with the title and message as arguments,
// e.g. notify-send.
type CommandNotifier struct {
	Command string
}

func (n CommandNotifier) Notify(ctx context.Context, title, message string) {
	command := n.Command
	if command == "" {
		command = "notify-send"
	}
	cmd := exec.CommandContext(ctx, command, title, message)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	_ = cmd.Run()
}
