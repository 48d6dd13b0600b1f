//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpWritesBalancedSpeedscope(t *testing.T) {
	Init(64)
	require.True(t, Enabled())

	endFrame := Start("frame")
	endUI := Start("ui")
	time.Sleep(time.Millisecond)
	endUI()
	Start("unclosed")
	endFrame()

	assert.GreaterOrEqual(t, Last("ui"), time.Millisecond)

	path, err := Dump(t.TempDir())
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc ssFile
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Profiles, 1)
	var depth int
	for _, e := range doc.Profiles[0].Events {
		if e.Type == "O" {
			depth++
		} else {
			depth--
		}
		assert.GreaterOrEqual(t, depth, 0)
	}
	assert.Zero(t, depth)
}
