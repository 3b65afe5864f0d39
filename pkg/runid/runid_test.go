package runid

import "testing"

func TestSnowflakeIsMonotonicallyIncreasing(t *testing.T) {
	s := NewSnowflake(1)
	prev := s.Next()
	for i := 0; i < 1000; i++ {
		next := s.Next()
		if next <= prev {
			t.Fatalf("Snowflake.Next() produced %d after %d, want strictly increasing", next, prev)
		}
		prev = next
	}
}

func TestSnowflakeNodeIDIsMasked(t *testing.T) {
	s := NewSnowflake(0x7FF) // 11 bits wide, one more than the node ID space
	id := s.Next()
	nodeID := (id >> 12) & 0x3FF
	if nodeID != 0x3FF {
		t.Fatalf("node ID component = %#x, want %#x (masked to 10 bits)", nodeID, 0x3FF)
	}
}

func TestNewRunIDIsNotNil(t *testing.T) {
	if NewRunID().String() == "" {
		t.Fatal("NewRunID() produced an empty string")
	}
}
