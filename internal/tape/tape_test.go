package tape

import "testing"

func TestLeafAndRecordUnary(t *testing.T) {
	tp := New(8)
	leaf := tp.Leaf()
	leaf.Adjoint = 0

	node := tp.RecordUnary(leaf, 2.0)
	node.Adjoint = 1
	node.propagate()

	if leaf.Adjoint != 2.0 {
		t.Fatalf("leaf adjoint = %v, want 2.0", leaf.Adjoint)
	}
}

func TestRecordBinaryNilInputsCompact(t *testing.T) {
	tp := New(8)
	a := tp.Leaf()
	node := tp.RecordBinary(a, 3.0, nil, 5.0)
	if node.NumInputs() != 1 {
		t.Fatalf("NumInputs() = %d, want 1 (nil operand should compact)", node.NumInputs())
	}

	node.Adjoint = 1
	node.propagate()
	if a.Adjoint != 3.0 {
		t.Fatalf("a.Adjoint = %v, want 3.0", a.Adjoint)
	}
}

func TestRewindToMarkReclaimsWithoutShrinkingBlocks(t *testing.T) {
	tp := New(4)
	tp.Leaf()
	tp.Mark()
	for i := 0; i < 20; i++ {
		tp.Leaf()
	}
	blocksAfterFirstPath := tp.ArenaBlocks()

	tp.RewindToMark()
	if tp.NumNodes() != 1 {
		t.Fatalf("NumNodes() after RewindToMark = %d, want 1", tp.NumNodes())
	}

	for i := 0; i < 20; i++ {
		tp.Leaf()
	}
	if tp.ArenaBlocks() != blocksAfterFirstPath {
		t.Fatalf("ArenaBlocks() grew on second pass: got %d, want %d", tp.ArenaBlocks(), blocksAfterFirstPath)
	}
}

func TestRewoundSlotAdjointIsZeroed(t *testing.T) {
	tp := New(4)
	tp.Mark()

	n1 := tp.Leaf()
	n1.Adjoint = 99

	tp.RewindToMark()
	n2 := tp.Leaf() // reuses n1's arena slot

	if n2.Adjoint != 0 {
		t.Fatalf("reused slot carried stale adjoint %v, want 0", n2.Adjoint)
	}
}

func TestPropagateToMarkStopsAtMark(t *testing.T) {
	tp := New(16)
	param := tp.Leaf()                // pre-mark
	pre := tp.RecordUnary(param, 3.0) // pre-mark pre-calculation
	tp.Mark()

	pathNode := tp.RecordUnary(pre, 4.0)

	tp.PropagateToMark(pathNode, false)

	if pre.Adjoint != 4 {
		t.Fatalf("pre.Adjoint = %v after PropagateToMark, want 4 (input slot of a swept node)", pre.Adjoint)
	}
	if param.Adjoint != 0 {
		t.Fatalf("param.Adjoint = %v after PropagateToMark, want 0 (not yet propagated past mark)", param.Adjoint)
	}
	if pathNode.Adjoint != 1 {
		t.Fatalf("pathNode.Adjoint = %v, want 1 (seeded root)", pathNode.Adjoint)
	}
}

func TestPropagateToMarkAccumulatesAcrossPaths(t *testing.T) {
	tp := New(16)
	param := tp.Leaf()
	tp.Mark()

	for i := 0; i < 3; i++ {
		tp.RewindToMark()
		pathNode := tp.RecordUnary(param, 4.0)
		tp.PropagateToMark(pathNode, false)
	}
	tp.PropagateMarkToStart()

	if param.Adjoint != 12 {
		t.Fatalf("param.Adjoint = %v after 3 paths of weight 4, want 12", param.Adjoint)
	}
}

func TestPropagateToMarkResetInputZeroesBeforeSweep(t *testing.T) {
	tp := New(16)
	param := tp.Leaf()
	param.Adjoint = 5
	tp.Mark()

	pathNode := tp.RecordUnary(param, 2.0)
	tp.PropagateToMark(pathNode, true)
	tp.PropagateMarkToStart()

	if param.Adjoint != 2 {
		t.Fatalf("param.Adjoint = %v, want 2 (5 reset to 0, then +2 from this path)", param.Adjoint)
	}
}

func TestRewindDropsMark(t *testing.T) {
	tp := New(4)
	tp.Leaf()
	tp.Mark()
	tp.Leaf()

	tp.Rewind()
	if tp.NumNodes() != 0 || tp.MarkPos() != 0 {
		t.Fatalf("Rewind() left NumNodes=%d MarkPos=%d, want 0, 0", tp.NumNodes(), tp.MarkPos())
	}
}

func TestGrowSpansMultipleBlocks(t *testing.T) {
	tp := New(4)
	var first *Node
	for i := 0; i < 10; i++ {
		n := tp.Leaf()
		if i == 0 {
			first = n
		}
	}
	if tp.ArenaBlocks() < 3 {
		t.Fatalf("ArenaBlocks() = %d after 10 leaves at blockSize 4, want >= 3", tp.ArenaBlocks())
	}
	// first must still be a valid pointer into block 0 after later
	// blocks were appended.
	if first.Seq != 0 {
		t.Fatalf("first.Seq = %d, want 0", first.Seq)
	}
}
