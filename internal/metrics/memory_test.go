package metrics

import "testing"

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	snap := NewMemoryCollector().Snapshot()
	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

func TestMemoryCollector_TotalAllocGrows(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	before := mc.Snapshot()
	buf := make([]byte, 1<<20)
	buf[len(buf)-1] = 1
	after := mc.Snapshot()

	if after.TotalAlloc < before.TotalAlloc {
		t.Error("TotalAlloc should not decrease between snapshots")
	}
}

func TestEstimateTableBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x    int
		want uint64
	}{
		{-1, 0},
		{0, 16},
		{4, 80},
		{1_000_000, 16_000_016},
	}
	for _, tt := range tests {
		if got := EstimateTableBytes(tt.x); got != tt.want {
			t.Errorf("EstimateTableBytes(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}
