// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package lib

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
)

type Repo struct {
	Path string
	Git  string
}

func (r Repo) git() string {
	if r.Git == "" {
		return "git"
	}
	return r.Git
}

// Pull runs git pull in the repo and reports how it went.
// It never returns an error; failures are part of the Outcome.
func (r Repo) Pull(ctx context.Context) Outcome {
	var stderr bytes.Buffer
	err := r.run(ctx, &stderr, "pull")
	if err == nil {
		return Outcome{Dir: r.Path, Kind: Success}
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return Outcome{
			Dir:  r.Path,
			Kind: LaunchFailure,
			Text: fmt.Sprintf("failed to execute git pull: %v", err),
		}
	}

	text := decodeLossy(stderr.Bytes())
	if text == "" {
		text = exitErr.Error()
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		text += " (" + ctxErr.Error() + ")"
	}
	return Outcome{Dir: r.Path, Kind: CommandFailure, Text: text}
}

func (r Repo) run(ctx context.Context, stderr *bytes.Buffer, args ...string) error {
	cmd := exec.CommandContext(ctx, r.git(), args...)
	cmd.Dir = r.Path
	cmd.Stderr = stderr
	return cmd.Run()
}

// decodeLossy turns git's stderr into text, replacing invalid UTF-8.
func decodeLossy(b []byte) string {
	// The UTF-8 decoder replaces invalid bytes and does not fail.
	decoded, _ := unicode.UTF8.NewDecoder().Bytes(b)
	return strings.TrimRight(string(decoded), " \t\r\n")
}

// GitPuller pulls directories with the git binary.
type GitPuller struct {
	Git     string
	Timeout time.Duration
}

func (p GitPuller) Pull(ctx context.Context, dir string) Outcome {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	return Repo{Path: dir, Git: p.Git}.Pull(ctx)
}
