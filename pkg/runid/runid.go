// Package runid generates identifiers for simulation runs: a snowflake
// sequence for ordering within a process, and a uuid for cross-process
// correlation (e.g. tagging a run in logs and metrics with the same ID
// a caller stores alongside its results).
package runid

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Snowflake generates 64-bit, time-ordered, monotonically increasing
// IDs: 41 bits of millisecond timestamp, 10 bits of node ID, 12 bits of
// per-millisecond sequence. Single-node only — this module has no
// distributed coordination to assign node IDs across processes.
type Snowflake struct {
	mu        sync.Mutex
	timestamp int64
	sequence  int64
	nodeID    int64
}

// NewSnowflake constructs a generator for the given node ID (masked to
// 10 bits).
func NewSnowflake(nodeID int64) *Snowflake {
	return &Snowflake{nodeID: nodeID & 0x3FF}
}

// Next returns the next ID, blocking briefly if the per-millisecond
// sequence space is exhausted.
func (s *Snowflake) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UnixMilli()
	if now == s.timestamp {
		s.sequence = (s.sequence + 1) & 0xFFF
		if s.sequence == 0 {
			for now <= s.timestamp {
				now = time.Now().UnixMilli()
			}
		}
	} else {
		s.sequence = 0
	}
	s.timestamp = now

	return (now << 22) | (s.nodeID << 12) | s.sequence
}

// NewRunID returns a fresh random run identifier for correlating one
// simulation call's logs, metrics and caller-stored results.
func NewRunID() uuid.UUID { return uuid.New() }
