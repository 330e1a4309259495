package polymouse

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-polymouse/internal/testutil"
)

func TestNewPipeline_NilConfig(t *testing.T) {
	p, err := NewPipeline(nil)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewPipeline_InvalidConfig(t *testing.T) {
	cfg := DefaultPipelineConfig()
	cfg.Head.CDMax = 0
	_, err := NewPipeline(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "head acceleration")
}

func TestNewPipeline_DisabledStageSkipsValidation(t *testing.T) {
	cfg := DefaultPipelineConfig()
	cfg.EnableFixation = false
	cfg.Fixation = FixationParams{}
	_, err := NewPipeline(&cfg)
	assert.NoError(t, err)
}

func TestPipeline_RejectsInvalidFrames(t *testing.T) {
	cfg := DefaultPipelineConfig()
	p, err := NewPipeline(&cfg)
	require.NoError(t, err)

	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	frames := map[string]Frame{
		"Zero dt":           {DT: 0},
		"Negative dt":       {DT: -0.01},
		"NaN dt":            {DT: nan},
		"Infinite dt":       {DT: inf},
		"NaN gaze":          {DT: 0.01, Gaze: V2(nan, 0)},
		"NaN head":          {DT: 0.01, HeadDelta: V2(0, nan)},
		"Infinite gaze":     {DT: 0.01, Gaze: V2(0, inf)},
		"Negative Inf gaze": {DT: 0.01, Gaze: V2(-inf, 0)},
		"Infinite head":     {DT: 0.01, HeadDelta: V2(inf, 0)},
		"Negative Inf head": {DT: 0.01, HeadDelta: V2(0, -inf)},
	}
	for name, f := range frames {
		t.Run(name, func(t *testing.T) {
			_, err := p.Step(f)
			assert.ErrorIs(t, err, ErrInvalidFrame)
			assert.Zero(t, p.Frames())
		})
	}
}

func TestPipeline_InfiniteHeadDoesNotPoisonState(t *testing.T) {
	cfg := DefaultPipelineConfig()
	cfg.PolyMouse = throwParams()
	cfg.EnableHeadAcceleration = false
	p, err := NewPipeline(&cfg)
	require.NoError(t, err)

	_, err = p.Step(Frame{HeadDelta: V2(float32(math.Inf(1)), 0), DT: 0.1})
	require.ErrorIs(t, err, ErrInvalidFrame)

	out, err := p.Step(Frame{Gaze: V2(200, 0), HeadDelta: V2(1, 0), DT: 0.1})
	require.NoError(t, err)
	assert.Equal(t, Throwing, out.State)
	assert.Equal(t, IntVec2{X: 10}, out.Mouse)
	assert.InDelta(t, 10.0, p.Transform().SmoothedHeadSpeed(), 1e-4)
}

func TestPipeline_StagesDisabledMatchesTransform(t *testing.T) {
	cfg := DefaultPipelineConfig()
	cfg.PolyMouse = throwParams()
	cfg.EnableGazeFilter = false
	cfg.EnableFixation = false
	cfg.EnableHeadAcceleration = false

	p, err := NewPipeline(&cfg)
	require.NoError(t, err)
	tr := NewPolyMouseTransform(cfg.PolyMouse)

	var pm, tm IntVec2
	for i := range 40 {
		f := Frame{Gaze: V2(200, 0), Mouse: pm, HeadDelta: V2(1, 0), DT: 0.1}
		out, err := p.Step(f)
		require.NoError(t, err)
		tm = tr.Transform(V2(200, 0), tm, V2(1, 0), 0.1)

		assert.Equal(t, tm, out.Mouse, "frame %d", i)
		assert.Equal(t, tr.State(), out.State, "frame %d", i)
		assert.Equal(t, f.Gaze, out.FixationPoint)
		assert.Equal(t, f.HeadDelta, out.HeadDelta)
		pm = out.Mouse
	}
	// Landed at 195 on frame 20, then twenty tracking frames of +1.
	assert.Equal(t, IntVec2{X: 215}, pm)
	assert.Equal(t, int64(40), p.Frames())
}

func TestPipeline_DefaultOutputIsFinite(t *testing.T) {
	cfg := DefaultPipelineConfig()
	p, err := NewPipeline(&cfg)
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(7, 11))
	var (
		mouse  IntVec2
		gazeX  []float32
		fixX   []float32
		headDX []float32
	)
	for range 2000 {
		f := Frame{
			Gaze:      V2(960+float32(rng.NormFloat64()*200), 540+float32(rng.NormFloat64()*200)),
			Mouse:     mouse,
			HeadDelta: V2(float32(rng.NormFloat64()), float32(rng.NormFloat64())),
			DT:        1.0 / 60,
		}
		out, err := p.Step(f)
		require.NoError(t, err)
		mouse = out.Mouse
		gazeX = append(gazeX, out.FilteredGaze.X, out.FilteredGaze.Y)
		fixX = append(fixX, out.FixationPoint.X, out.FixationPoint.Y)
		headDX = append(headDX, out.HeadDelta.X, out.HeadDelta.Y)
	}
	testutil.AssertNoNaNOrInf(t, gazeX, "filtered gaze")
	testutil.AssertNoNaNOrInf(t, fixX, "fixation point")
	testutil.AssertNoNaNOrInf(t, headDX, "accelerated head delta")
}

func TestPipeline_Reset(t *testing.T) {
	cfg := DefaultPipelineConfig()
	cfg.PolyMouse = throwParams()
	p, err := NewPipeline(&cfg)
	require.NoError(t, err)

	for range 5 {
		_, err := p.Step(Frame{Gaze: V2(500, 0), HeadDelta: V2(5, 0), DT: 0.1})
		require.NoError(t, err)
	}
	p.Reset()
	assert.Zero(t, p.Frames())
	assert.Equal(t, Tracking, p.Transform().State())
	assert.Zero(t, p.Transform().Throws())
	assert.Equal(t, cfg, p.Config())
}
