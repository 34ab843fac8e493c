// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bep/helpers/envhelpers"
	"github.com/rogpeppe/go-internal/testscript"
)

func TestScripts(t *testing.T) {
	params := commonTestScriptsParam
	params.Dir = "testscripts"
	// params.TestWork = true
	// params.UpdateScripts = true
	testscript.Run(t, params)
}

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"gitpull": main,
	})
}

func testSetupFunc() func(env *testscript.Env) error {
	return func(env *testscript.Env) error {
		var keyVals []string
		// Keep git away from the user's config.
		keyVals = append(keyVals, "HOME", env.WorkDir)
		keyVals = append(keyVals, "GIT_CONFIG_NOSYSTEM", "1")
		keyVals = append(keyVals, "GIT_CEILING_DIRECTORIES", filepath.Dir(env.WorkDir))
		keyVals = append(keyVals, "GIT_AUTHOR_NAME", "gitpull")
		keyVals = append(keyVals, "GIT_AUTHOR_EMAIL", "gitpull@example.com")
		keyVals = append(keyVals, "GIT_COMMITTER_NAME", "gitpull")
		keyVals = append(keyVals, "GIT_COMMITTER_EMAIL", "gitpull@example.com")
		envhelpers.SetEnvVars(&env.Vars, keyVals...)

		return nil
	}
}

var commonTestScriptsParam = testscript.Params{
	Setup: func(env *testscript.Env) error {
		return testSetupFunc()(env)
	},
	Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
		// append appends to a file with a leading newline.
		"append": func(ts *testscript.TestScript, neg bool, args []string) {
			if len(args) < 2 {
				ts.Fatalf("usage: append FILE TEXT")
			}

			filename := ts.MkAbs(args[0])
			words := args[1:]
			for i, word := range words {
				words[i] = strings.Trim(word, "\"")
			}
			text := strings.Join(words, " ")

			_, err := os.Stat(filename)
			if err != nil {
				if os.IsNotExist(err) {
					ts.Fatalf("file does not exist: %s", filename)
				}
				ts.Fatalf("failed to stat file: %v", err)
			}

			f, err := os.OpenFile(filename, os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				ts.Fatalf("failed to open file: %v", err)
			}
			defer f.Close()

			_, err = f.WriteString("\n" + text)
			if err != nil {
				ts.Fatalf("failed to write to file: %v", err)
			}
		},
	},
}
