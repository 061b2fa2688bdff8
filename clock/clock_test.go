package clock

import (
	"testing"
	"time"

	"github.com/lumenforge/beacon/types"
)

func mockTime(unixSeconds int64) func() time.Time {
	return func() time.Time {
		return time.Unix(unixSeconds, 0)
	}
}

func TestCurrentSlotBeforeGenesis(t *testing.T) {
	genesisTime := uint64(1000)
	c := NewWithTimeFunc(genesisTime, mockTime(500))

	if slot := c.CurrentSlot(); slot != 0 {
		t.Errorf("CurrentSlot before genesis = %d, want 0", slot)
	}
}

func TestCurrentSlotAtGenesis(t *testing.T) {
	genesisTime := uint64(1000)
	c := NewWithTimeFunc(genesisTime, mockTime(1000))

	if slot := c.CurrentSlot(); slot != 0 {
		t.Errorf("CurrentSlot at genesis = %d, want 0", slot)
	}
}

func TestCurrentSlotAfterSlots(t *testing.T) {
	genesisTime := uint64(1000)
	tests := []struct {
		name     string
		nowTime  int64
		wantSlot types.Slot
	}{
		{"1 second after genesis", 1001, 0},
		{"11 seconds after genesis", 1011, 0},
		{"12 seconds after genesis (slot 1)", 1012, 1},
		{"24 seconds after genesis (slot 2)", 1024, 2},
		{"1200 seconds after genesis (slot 100)", 2200, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewWithTimeFunc(genesisTime, mockTime(tt.nowTime))
			if slot := c.CurrentSlot(); slot != tt.wantSlot {
				t.Errorf("CurrentSlot = %d, want %d", slot, tt.wantSlot)
			}
		})
	}
}

func TestCurrentEpoch(t *testing.T) {
	genesisTime := uint64(1000)
	slotsIntoEpoch1 := int64(types.SlotsPerEpoch * types.SecondsPerSlot)

	tests := []struct {
		name      string
		nowTime   int64
		wantEpoch types.Epoch
	}{
		{"at genesis", 1000, 0},
		{"one second before epoch 1", 1000 + slotsIntoEpoch1 - 1, 0},
		{"exactly epoch 1 boundary", 1000 + slotsIntoEpoch1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewWithTimeFunc(genesisTime, mockTime(tt.nowTime))
			if epoch := c.CurrentEpoch(); epoch != tt.wantEpoch {
				t.Errorf("CurrentEpoch = %d, want %d", epoch, tt.wantEpoch)
			}
		})
	}
}

func TestSlotStartTime(t *testing.T) {
	genesisTime := uint64(1000)
	c := New(genesisTime)

	tests := []struct {
		slot     types.Slot
		wantTime uint64
	}{
		{0, 1000},
		{1, 1012},
		{2, 1024},
		{100, 2200},
	}

	for _, tt := range tests {
		got := c.SlotStartTime(tt.slot)
		if got != tt.wantTime {
			t.Errorf("SlotStartTime(%d) = %d, want %d", tt.slot, got, tt.wantTime)
		}
	}
}

func TestEpochStartTime(t *testing.T) {
	genesisTime := uint64(1000)
	c := New(genesisTime)

	want := genesisTime + types.SlotsPerEpoch*types.SecondsPerSlot
	if got := c.EpochStartTime(1); got != want {
		t.Errorf("EpochStartTime(1) = %d, want %d", got, want)
	}
}

func TestIsBeforeGenesis(t *testing.T) {
	genesisTime := uint64(1000)

	tests := []struct {
		name       string
		nowTime    int64
		wantBefore bool
	}{
		{"500 seconds before genesis", 500, true},
		{"1 second before genesis", 999, true},
		{"at genesis", 1000, false},
		{"after genesis", 1001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewWithTimeFunc(genesisTime, mockTime(tt.nowTime))
			if before := c.IsBeforeGenesis(); before != tt.wantBefore {
				t.Errorf("IsBeforeGenesis = %v, want %v", before, tt.wantBefore)
			}
		})
	}
}

func TestNew(t *testing.T) {
	genesisTime := uint64(1704085200)
	c := New(genesisTime)

	if c.GenesisTime != genesisTime {
		t.Errorf("GenesisTime = %d, want %d", c.GenesisTime, genesisTime)
	}
	if c.timeFunc == nil {
		t.Error("timeFunc should not be nil")
	}
}
