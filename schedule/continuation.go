package schedule

// slotState is the binding of one column slot: Unset until a day header is
// seen, Bound afterwards.
type slotState struct {
	bound  bool
	header Header
}

// Tracker carries the per-slot day binding through one traversal. A slot is
// Unset until SetHeader binds it; binding is monotonic, a slot never reverts
// to Unset, it only re-binds when a later header arrives.
type Tracker struct {
	slots [SlotCount]slotState
}

// NewTracker creates a tracker with all slots Unset.
func NewTracker() *Tracker {
	return &Tracker{}
}

// SetHeader binds a slot to a day header. Out-of-range slots are ignored.
func (t *Tracker) SetHeader(slot int, h Header) {
	if slot < 0 || slot >= SlotCount {
		return
	}
	t.slots[slot] = slotState{bound: true, header: h}
}

// Current returns the header bound to a slot. ok is false while the slot is
// Unset, in which case rows in that slot are unattached and discarded.
func (t *Tracker) Current(slot int) (Header, bool) {
	if slot < 0 || slot >= SlotCount {
		return Header{}, false
	}
	s := t.slots[slot]
	return s.header, s.bound
}

// BoundCount returns the number of slots currently bound.
func (t *Tracker) BoundCount() int {
	n := 0
	for _, s := range t.slots {
		if s.bound {
			n++
		}
	}
	return n
}
