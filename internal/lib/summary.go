// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package lib

import (
	"fmt"
	"strings"
)

// Classify splits outcomes into succeeded and failed and decides the State.
func Classify(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		if o.Failed() {
			s.Failed = append(s.Failed, o)
		} else {
			s.Succeeded = append(s.Succeeded, o)
		}
	}

	switch fail := len(s.Failed); {
	case fail == s.Total && s.Total > 0:
		s.State = AllFailed
	case fail > 0:
		s.State = PartialFailure
	default:
		s.State = AllSucceeded
	}
	return s
}

func (s Summary) Title() string {
	if s.State == AllSucceeded {
		return "Successful"
	}
	return "Error"
}

func (s Summary) Message() string {
	switch s.State {
	case AllFailed:
		return fmt.Sprintf("Failed to pull all the following %d repositories:\n%s",
			s.FailNum(), s.failedList())
	case PartialFailure:
		return fmt.Sprintf("Pulled %d repositories successfully, but failed to pull the following %d repositories:\n%s",
			s.SuccessNum(), s.FailNum(), s.failedList())
	default:
		return fmt.Sprintf("All %d repositories were pulled successfully", s.Total)
	}
}

func (s Summary) failedList() string {
	lines := make([]string, len(s.Failed))
	for i, o := range s.Failed {
		lines[i] = o.Dir + ": " + o.Text
	}
	return strings.Join(lines, "\n")
}
