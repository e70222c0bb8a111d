/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

// EditingParameter is a key for one register of the editing configuration.
type EditingParameter int

//go:generate stringer -type=EditingParameter
const (
	none EditingParameter = iota
	P_GRIDSPACING      // design units between grid lines
	P_NUDGE            // plain arrow-key nudge distance, design units
	P_NUDGELARGE       // shift-amplified nudge distance
	P_NUDGEHUGE        // ctrl-amplified nudge distance
	P_POINTHITRADIUS   // point hit-test radius, screen pixels
	P_SEGMENTHITRADIUS // segment hit-test radius, screen pixels
	P_KNIFEMAXDEPTH    // recursion ceiling for path slicing
	P_DEFAULTADVANCE   // advance width for glyphs the workspace cannot resolve
	P_PREVIEWFILL      // fill outlines in preview mode (bool as int)
	P_STOPPER
)

// A ParameterGroup is one level of grouped register overrides.
type ParameterGroup struct {
	params map[EditingParameter]interface{}
	level  int
	next   *ParameterGroup
}

// EditingRegisters hold the editing configuration: a base set of values
// plus a stack of grouped overrides. Tools push a group before a gesture
// that temporarily changes behavior and end it afterwards, restoring the
// base values.
type EditingRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

// NewEditingRegisters creates a register set with default values.
func NewEditingRegisters() *EditingRegisters {
	regs := &EditingRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_GRIDSPACING] = 16.0      // dimension, design units
	p[P_NUDGE] = 1.0             // dimension
	p[P_NUDGELARGE] = 10.0       // dimension
	p[P_NUDGEHUGE] = 100.0       // dimension
	p[P_POINTHITRADIUS] = 10.0   // dimension, px
	p[P_SEGMENTHITRADIUS] = 6.0  // dimension, px
	p[P_KNIFEMAXDEPTH] = 12      // a numeric quantity (int)
	p[P_DEFAULTADVANCE] = 500.0  // dimension
	p[P_PREVIEWFILL] = 1         // a boolean flag (int)
}

// Begingroup opens a level of grouped overrides.
func (regs *EditingRegisters) Begingroup() {
	regs.grouplevel++
}

// Endgroup closes the innermost group, restoring shadowed registers.
func (regs *EditingRegisters) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

// Push sets a register, shadowing it inside the current group if one is
// open, overwriting the base value otherwise.
func (regs *EditingRegisters) Push(key EditingParameter, value interface{}) {
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{}
			g.params = make(map[EditingParameter]interface{})
			g.level = regs.grouplevel
			g.next = regs.groups
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

// Get retrieves a register's value, innermost group first.
func (regs *EditingRegisters) Get(key EditingParameter) interface{} {
	if key <= 0 || key >= P_STOPPER {
		panic("parameter key outside range of editing parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

// N retrieves a numeric register.
func (regs *EditingRegisters) N(key EditingParameter) int {
	value := regs.Get(key)
	switch n := value.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

// D retrieves a dimension register, in design units or pixels depending
// on the register.
func (regs *EditingRegisters) D(key EditingParameter) float64 {
	value := regs.Get(key)
	switch d := value.(type) {
	case float64:
		return d
	case int:
		return float64(d)
	}
	return 0
}

// B retrieves a flag register.
func (regs *EditingRegisters) B(key EditingParameter) bool {
	return regs.N(key) != 0
}
