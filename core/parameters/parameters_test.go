package parameters

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	regs := NewEditingRegisters()
	assert.Equal(t, 1.0, regs.D(P_NUDGE))
	assert.Equal(t, 10.0, regs.D(P_NUDGELARGE))
	assert.Equal(t, 100.0, regs.D(P_NUDGEHUGE))
	assert.Equal(t, 12, regs.N(P_KNIFEMAXDEPTH))
	assert.True(t, regs.B(P_PREVIEWFILL))
}

func TestGroupedOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	regs := NewEditingRegisters()
	regs.Begingroup()
	regs.Push(P_GRIDSPACING, 50.0)
	assert.Equal(t, 50.0, regs.D(P_GRIDSPACING))
	regs.Begingroup()
	regs.Push(P_GRIDSPACING, 2.0)
	assert.Equal(t, 2.0, regs.D(P_GRIDSPACING))
	regs.Endgroup()
	assert.Equal(t, 50.0, regs.D(P_GRIDSPACING))
	regs.Endgroup()
	assert.Equal(t, 16.0, regs.D(P_GRIDSPACING), "base value should be restored")
}

func TestPushOutsideGroupOverwritesBase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	regs := NewEditingRegisters()
	regs.Push(P_NUDGE, 0.5)
	assert.Equal(t, 0.5, regs.D(P_NUDGE))
	regs.Begingroup()
	regs.Endgroup()
	assert.Equal(t, 0.5, regs.D(P_NUDGE))
}
