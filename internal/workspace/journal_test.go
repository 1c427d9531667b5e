package workspace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homogebra/internal/geom"
	"homogebra/internal/scene"
)

func TestJournal_BoundedAndTruncated(t *testing.T) {
	j := NewJournal(3)
	j.now = func() time.Time { return time.UnixMilli(1700000000000) }
	var forwarded int
	j.next = publisherFunc(func(scene.Event) { forwarded++ })

	s := scene.New(scene.Config{Publisher: j})
	_, err := s.Add("A", geom.PointEquation{Coordinate: geom.Real(0, 0, 1)})
	require.NoError(t, err)
	for i := 1; i <= 5; i++ {
		require.NoError(t, s.Move("A", geom.PointEquation{Coordinate: geom.Real(float64(i), 0, 1)}))
	}

	assert.Equal(t, uint64(5), j.Total())
	assert.Equal(t, 5, forwarded)

	events, next, truncated := j.Since(0, 0)
	assert.True(t, truncated)
	require.Len(t, events, 3)
	assert.Equal(t, uint64(3), events[0].Seq)
	assert.Equal(t, uint64(5), next)
	assert.Equal(t, int64(1700000000000), events[0].TimeUnixMs)
	assert.Equal(t, "valid", events[0].State)

	events, next, truncated = j.Since(3, 1)
	assert.False(t, truncated)
	require.Len(t, events, 1)
	assert.Equal(t, uint64(4), next)

	events, next, _ = j.Since(9, 0)
	assert.Empty(t, events)
	assert.Equal(t, uint64(9), next)
}

type publisherFunc func(scene.Event)

func (f publisherFunc) Publish(ev scene.Event) { f(ev) }
