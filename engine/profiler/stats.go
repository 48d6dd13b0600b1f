package profiler

import "runtime"

// Memory is a cheap snapshot of the Go heap for on-screen stats.
type Memory struct {
	Alloc   uint64 // live heap bytes
	Mallocs uint64 // cumulative allocations
	NumGC   uint32
}

func ReadMemory() Memory {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Memory{Alloc: m.Alloc, Mallocs: m.Mallocs, NumGC: m.NumGC}
}

func NumGoroutine() int { return runtime.NumGoroutine() }

func NumCPU() int { return runtime.NumCPU() }
