package workspace

import (
	"sync"
	"time"

	"homogebra/internal/scene"
	"homogebra/pkg/types"
)

// Journal keeps the most recent scene events. It implements scene.Publisher.
type Journal struct {
	mu     sync.Mutex
	size   int
	seq    uint64
	events []types.EventRecord
	now    func() time.Time
	next   scene.Publisher
}

// NewJournal returns a journal retaining at most size events.
func NewJournal(size int) *Journal {
	if size <= 0 {
		size = defaultJournalSize
	}
	return &Journal{size: size, now: time.Now}
}

// Publish records ev.
func (j *Journal) Publish(ev scene.Event) {
	o := ev.Source()
	rec := types.EventRecord{
		Type:     string(ev.Type()),
		ObjectID: o.ID().String(),
		Name:     o.Name(),
		State:    string(o.State()),
	}
	if r, ok := ev.(scene.Renamed); ok {
		rec.OldName, rec.NewName = r.OldName, r.NewName
	}
	j.mu.Lock()
	j.seq++
	rec.Seq = j.seq
	rec.TimeUnixMs = j.now().UnixMilli()
	if len(j.events) == j.size {
		j.events = append(j.events[1:], rec)
	} else {
		j.events = append(j.events, rec)
	}
	j.mu.Unlock()
	if j.next != nil {
		j.next.Publish(ev)
	}
}

// Since returns up to limit events with a sequence number above seq, oldest
// first, and the sequence number to continue from. truncated reports that
// events after seq were already dropped. A non-positive limit means no limit.
func (j *Journal) Since(seq uint64, limit int) (out []types.EventRecord, next uint64, truncated bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	next = seq
	if len(j.events) == 0 {
		return nil, next, false
	}
	truncated = j.events[0].Seq > seq+1
	for _, rec := range j.events {
		if rec.Seq <= seq {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, rec)
		next = rec.Seq
	}
	return out, next, truncated
}

// Total returns the number of events published so far.
func (j *Journal) Total() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.seq
}
