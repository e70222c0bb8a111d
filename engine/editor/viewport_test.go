package editor

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"honnef.co/go/curve"
)

func TestViewportFlipsY(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	vp := NewViewport()
	sp := vp.ToScreen(curve.Pt(100, 200))
	assert.Equal(t, curve.Pt(100, -200), sp)
}

func TestViewportRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	vp := Viewport{Zoom: 2.5, Offset: curve.Vec(40, 300)}
	design := curve.Pt(123.5, -67.25)
	back := vp.ToDesign(vp.ToScreen(design))
	assert.InDelta(t, design.X, back.X, 1e-9)
	assert.InDelta(t, design.Y, back.Y, 1e-9)
}

func TestViewportZoomScalesDistances(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	vp := Viewport{Zoom: 4}
	assert.InDelta(t, 2.0, vp.DesignDist(8), 1e-9)
	assert.InDelta(t, 8.0, vp.ScreenDist(2), 1e-9)
	a := vp.ToScreen(curve.Pt(0, 0))
	b := vp.ToScreen(curve.Pt(3, 0))
	assert.InDelta(t, 12.0, b.X-a.X, 1e-9)
}

func TestViewportAppliesOffset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	vp := Viewport{Zoom: 1, Offset: curve.Vec(50, 700)}
	sp := vp.ToScreen(curve.Pt(0, 0))
	assert.Equal(t, curve.Pt(50, 700), sp)
	sp = vp.ToScreen(curve.Pt(10, 20))
	assert.Equal(t, curve.Pt(60, 680), sp)
}
