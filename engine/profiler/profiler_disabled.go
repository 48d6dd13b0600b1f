//go:build !profile

package profiler

import (
	"errors"
	"time"
)

// Stubbed no-op versions when the "profile" build tag is not set.

func Init(capacity int) {}

func Enabled() bool { return false }

func Start(name string) func() { return func() {} }

func Last(name string) time.Duration { return 0 }

func Dump(dir string) (string, error) {
	return "", errors.New("profiler: built without the profile tag")
}
