// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package lib

import (
	"fmt"
	"time"
)

type Config struct {
	Root    string
	Quiet   bool
	Paths   string // glob filter (optional)
	Git     string // git binary, defaults to "git"
	Notify  string // notification command, defaults to "notify-send"
	Timeout time.Duration
}

// ConfigError is returned for anything that stops a run before any
// directory is touched.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

type OutcomeKind int

const (
	Success        OutcomeKind = iota
	CommandFailure             // git exited non-zero
	LaunchFailure              // git could not be started
	TaskFailure                // the pull goroutine itself failed
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case CommandFailure:
		return "command failure"
	case LaunchFailure:
		return "launch failure"
	case TaskFailure:
		return "task failure"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// Outcome is the result of pulling one directory.
type Outcome struct {
	Dir  string
	Kind OutcomeKind
	Text string // error text, empty on Success
}

func (o Outcome) Failed() bool {
	return o.Kind != Success
}

type State int

const (
	AllSucceeded State = iota
	PartialFailure
	AllFailed
)

func (s State) String() string {
	switch s {
	case AllSucceeded:
		return "all succeeded"
	case PartialFailure:
		return "partial failure"
	case AllFailed:
		return "all failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Summary is the classified result of a run.
type Summary struct {
	Total     int
	Succeeded []Outcome
	Failed    []Outcome
	State     State
}

func (s Summary) SuccessNum() int { return len(s.Succeeded) }
func (s Summary) FailNum() int    { return len(s.Failed) }
