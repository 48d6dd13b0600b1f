//go:build profile

// Package profiler records scope timings into a ring and dumps them in the
// speedscope evented format. Without the "profile" build tag every call is
// a no-op.
package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Init must be called once with a capacity in events (two per scope).
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

func Enabled() bool { return ring.ready.Load() }

// Start begins a scope and returns the func that ends it.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	start := time.Now().UnixNano()
	ring.push(event{at: start, frame: id, open: true})
	return func() {
		end := max(time.Now().UnixNano(), start)
		ring.push(event{at: end, frame: id})
		last[id].Store(end - start)
	}
}

// Last is the duration of the most recently closed scope called name.
func Last(name string) time.Duration {
	mu.Lock()
	id, ok := index[name]
	mu.Unlock()
	if !ok {
		return 0
	}
	return time.Duration(last[id].Load())
}

// Dump writes the recorded events as a speedscope file in dir (the temp
// dir when empty) and tries to open it with the speedscope CLI.
func Dump(dir string) (string, error) {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return "", errors.New("profiler: no events to dump")
	}
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "groveui.speedscope.json")
	if err := writeSpeedscope(evs, path); err != nil {
		return "", err
	}

	cmd := exec.Command("speedscope", path)
	cmd.SysProcAttr = hideWindowAttr()
	// the file is still useful when speedscope is not installed
	_ = cmd.Start()
	return path, nil
}

// ---------- event ring ----------

type event struct {
	at    int64
	frame int
	open  bool
}

type eventRing struct {
	ready atomic.Bool
	size  uint64
	write atomic.Uint64
	evs   []event
}

func (r *eventRing) init(capacity int) {
	r.size = uint64(capacity)
	r.evs = make([]event, r.size)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.write.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot returns the surviving events in write order.
func (r *eventRing) snapshot() []event {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.size {
		start = n - r.size
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.size])
	}
	return out
}

var ring eventRing

// ---------- scope names ----------

const maxScopes = 256

var (
	mu     sync.Mutex
	names  []string
	index  = map[string]int{}
	last   [maxScopes]atomic.Int64
	errCap = fmt.Errorf("profiler: more than %d scope names", maxScopes)
)

func intern(name string) int {
	mu.Lock()
	defer mu.Unlock()
	if id, ok := index[name]; ok {
		return id
	}
	if len(names) == maxScopes {
		panic(errCap)
	}
	id := len(names)
	index[name] = id
	names = append(names, name)
	return id
}

// ---------- speedscope ----------

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since the first event
	Frame int    `json:"frame"`
}

func writeSpeedscope(evs []event, path string) error {
	mu.Lock()
	frames := make([]ssFrame, len(names))
	for i, name := range names {
		frames[i] = ssFrame{Name: name}
	}
	mu.Unlock()

	base := evs[0].at
	var endUS int64
	lastUS := int64(-1)
	out := make([]ssEvent, 0, len(evs)+16)
	open := make([]int, 0, 64)

	for _, e := range evs {
		at := max((e.at-base)/1000, lastUS)
		if e.open {
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.frame})
			open = append(open, e.frame)
		} else {
			// the ring may have dropped the matching open
			if len(open) == 0 || open[len(open)-1] != e.frame {
				continue
			}
			open = open[:len(open)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.frame})
		}
		lastUS = at
		endUS = max(endUS, at)
	}
	// speedscope wants balanced events
	for i := len(open) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: lastUS, Frame: open[i]})
	}

	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "groveui frames",
			Unit:     "microseconds",
			EndValue: endUS,
			Events:   out,
		}},
		Exporter: "groveui-profiler",
		Name:     "groveui capture",
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
