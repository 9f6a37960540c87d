// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ExitStatus is the terminal status of a sync worker.
type ExitStatus int

const (
	ExitDone ExitStatus = iota
	ExitIOError
	ExitLoginFailure
	ExitException
)

func (s ExitStatus) String() string {
	switch s {
	case ExitDone:
		return "done"
	case ExitIOError:
		return "io_error"
	case ExitLoginFailure:
		return "login_failure"
	case ExitException:
		return "exception"
	default:
		return "unknown"
	}
}
