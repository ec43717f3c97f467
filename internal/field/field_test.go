package field_test

import (
	"math/rand"
	"testing"

	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/field/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRand() *rand.Rand { return rand.New(rand.NewSource(42)) }

func checkRanges(t *testing.T, p field.Particle) {
	t.Helper()
	assert.GreaterOrEqual(t, p.R, field.MinRadius)
	assert.Less(t, p.R, field.MaxRadius)
	assert.GreaterOrEqual(t, p.A, field.MinAlpha)
	assert.Less(t, p.A, field.MaxAlpha)
	assert.Less(t, p.VY, 0.0)
	assert.Greater(t, p.VY, -field.MaxRise)
	assert.GreaterOrEqual(t, p.VX, -field.MaxDriftX)
	assert.Less(t, p.VX, field.MaxDriftX)
	assert.Contains(t, []interface{}{field.Accent, field.Muted}, p.Color)
}

func TestNewFreshParticles(t *testing.T) {
	f := field.New(field.DefaultConfig(), 800, 600, newRand())
	require.Equal(t, 70, f.Len())
	for _, p := range f.Particles() {
		checkRanges(t, p)
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 800.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 600.0)
	}
}

func TestPopulationAndRangesHold(t *testing.T) {
	f := field.New(field.DefaultConfig(), 400, 300, newRand())
	recycled := 0
	for frame := 0; frame < 5000; frame++ {
		recycled += f.Step()
		require.Equal(t, 70, f.Len(), "frame %d", frame)
	}
	assert.Greater(t, recycled, 0, "nothing ever left the top")
	for _, p := range f.Particles() {
		checkRanges(t, p)
	}
}

func TestRecycleReentersBelowBottom(t *testing.T) {
	cfg := field.DefaultConfig()
	ps := []field.Particle{
		{X: 10, Y: -7.9, VX: 0, VY: -0.2, R: 1, A: 0.5, Color: field.Muted},
		{X: 20, Y: 100, VX: 0, VY: -0.2, R: 1, A: 0.5, Color: field.Muted},
	}
	f := field.NewFrom(cfg, 640, 480, newRand(), ps)

	assert.Equal(t, 1, f.Step())
	got := f.Particles()
	assert.Equal(t, 480.0+cfg.SpawnOffset, got[0].Y)
	assert.GreaterOrEqual(t, got[0].Y, 480.0)
	assert.GreaterOrEqual(t, got[0].X, 0.0)
	assert.Less(t, got[0].X, 640.0)
	checkRanges(t, got[0])

	assert.InDelta(t, 99.8, got[1].Y, 1e-9)
	assert.Equal(t, 1.0, got[1].R)
}

func TestExitThresholdIgnoresRadius(t *testing.T) {
	ps := []field.Particle{{X: 10, Y: -7.5, VY: -0.4, R: 2, A: 0.5}}
	f := field.NewFrom(field.DefaultConfig(), 100, 100, newRand(), ps)
	assert.Equal(t, 0, f.Step(), "y=-7.9 is still above the exit line")
	assert.Equal(t, 1, f.Step())
}

func TestResizeKeepsPositions(t *testing.T) {
	f := field.New(field.DefaultConfig(), 800, 600, newRand())
	before := append([]field.Particle(nil), f.Particles()...)

	f.Resize(320, 200)
	w, h := f.Size()
	assert.Equal(t, 320.0, w)
	assert.Equal(t, 200.0, h)
	assert.Equal(t, before, f.Particles())

	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	s.EXPECT().ClearRect(0.0, 0.0, 320.0, 200.0).Times(1)
	s.EXPECT().FillCircle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(70)
	s.EXPECT().StrokeLine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.Frame(s)
}

func TestFrameOrder(t *testing.T) {
	cfg := field.DefaultConfig()
	ps := []field.Particle{
		{X: 0, Y: 50, VY: -0.1, R: 1, A: 0.5, Color: field.Accent},
		{X: 50, Y: 50, VY: -0.1, R: 2, A: 0.3, Color: field.Muted},
		{X: 200, Y: 50, VY: -0.1, R: 1.5, A: 0.2, Color: field.Muted},
	}
	f := field.NewFrom(cfg, 300, 100, newRand(), ps)

	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	gomock.InOrder(
		s.EXPECT().ClearRect(0.0, 0.0, 300.0, 100.0),
		s.EXPECT().FillCircle(0.0, 49.9, 1.0, field.Accent, 0.5),
		s.EXPECT().FillCircle(50.0, 49.9, 2.0, field.Muted, 0.3),
		s.EXPECT().FillCircle(200.0, 49.9, 1.5, field.Muted, 0.2),
		s.EXPECT().StrokeLine(0.0, 49.9, 50.0, 49.9, cfg.LinkWidth, cfg.LinkColor,
			field.LinkAlpha(50, cfg.LinkDistance, cfg.LinkOpacity)),
	)
	f.Frame(s)
}

func TestThreeParticleScenario(t *testing.T) {
	cfg := field.DefaultConfig()
	ps := []field.Particle{
		{X: 0, Y: 0, VY: -0.1, R: 1, A: 0.5},
		{X: 50, Y: 0, VY: -0.1, R: 1, A: 0.5},
		{X: 200, Y: 0, VY: -0.1, R: 1, A: 0.5},
	}
	f := field.NewFrom(cfg, 300, 100, newRand(), ps)

	links := f.Links()
	require.Len(t, links, 1)
	assert.Equal(t, 0, links[0].I)
	assert.Equal(t, 1, links[0].J)
	assert.Equal(t, 50.0, links[0].D)
	assert.InDelta(t, (1-50.0/110)*0.07, links[0].Alpha, 1e-12)

	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	s.EXPECT().StrokeLine(0.0, 0.0, 50.0, 0.0, cfg.LinkWidth, cfg.LinkColor, gomock.Any()).Times(1)
	f.DrawLinks(s)
}

func TestNoSurfaceSentinel(t *testing.T) {
	assert.EqualError(t, field.ErrNoSurface, "field: no drawing surface available")
}

func TestRenderDoesNotStep(t *testing.T) {
	f := field.New(field.DefaultConfig(), 800, 600, newRand())
	before := append([]field.Particle(nil), f.Particles()...)

	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	s.EXPECT().ClearRect(0.0, 0.0, 800.0, 600.0)
	for _, p := range before {
		s.EXPECT().FillCircle(p.X, p.Y, p.R, p.Color, p.A)
	}
	s.EXPECT().StrokeLine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(len(f.Links()))
	f.Render(s)
	assert.Equal(t, before, f.Particles())
}
