// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bep/gitpull/internal/lib"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	// Failed pulls are reported in the notification only, so we always
	// exit 0 here.
}

func run() error {
	var (
		cfg     lib.Config
		envFile string
	)

	flag.BoolVar(&cfg.Quiet, "quiet", false, "suppress the console report")
	flag.StringVar(&cfg.Paths, "paths", "", "glob filter for directory names")
	flag.StringVar(&cfg.Git, "git", "git", "git binary")
	flag.StringVar(&cfg.Notify, "notify", "notify-send", "notification command, called with title and message")
	flag.DurationVar(&cfg.Timeout, "timeout", 0, "timeout per pull (0 means none)")
	flag.StringVar(&envFile, "env", "", "load environment variables from this file")
	flag.Parse()

	if envFile != "" {
		if err := loadEnvFile(envFile); err != nil {
			return err
		}
	}

	cfg.Root = os.Getenv("GIT_DIRS")

	return lib.Run(context.Background(), cfg)
}

// loadEnvFile sets the variables in filename that are unset or empty
// in the process environment.
func loadEnvFile(filename string) error {
	vals, err := godotenv.Read(filename)
	if err != nil {
		return &lib.ConfigError{Msg: "cannot load env file " + filename, Err: err}
	}
	for k, v := range vals {
		if os.Getenv(k) != "" {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	return nil
}
