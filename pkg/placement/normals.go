package placement

import "github.com/philipparndt/goroom/pkg/geometry"

// NormalHistoryDepth is how many sampled normals a drag keeps for
// smoothing
const NormalHistoryDepth = 10

// NormalHistory is a bounded FIFO of surface normals sampled during an
// active drag, used to compute a running average that suppresses
// per-triangle jitter. It is cleared at the start and end of every drag.
type NormalHistory struct {
	entries  []geometry.Vector3
	capacity int
}

// NewNormalHistory creates a history holding up to capacity normals
func NewNormalHistory(capacity int) *NormalHistory {
	if capacity <= 0 {
		capacity = NormalHistoryDepth
	}
	return &NormalHistory{
		entries:  make([]geometry.Vector3, 0, capacity),
		capacity: capacity,
	}
}

// Push appends a normal, dropping the oldest when full
func (h *NormalHistory) Push(normal geometry.Vector3) {
	if len(h.entries) == h.capacity {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, normal)
}

// Average returns the normalized mean of the stored normals, or the zero
// vector when empty
func (h *NormalHistory) Average() geometry.Vector3 {
	if len(h.entries) == 0 {
		return geometry.Vector3{}
	}
	sum := geometry.Vector3{}
	for _, n := range h.entries {
		sum = sum.Add(n)
	}
	return sum.Normalize()
}

// Len returns the number of stored normals
func (h *NormalHistory) Len() int {
	return len(h.entries)
}

// Clear drops all stored normals
func (h *NormalHistory) Clear() {
	h.entries = h.entries[:0]
}
