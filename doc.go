// Package polymouse provides the signal-conditioning core of a hybrid
// gaze/head pointing device in pure Go.
//
// Gaze indicates where the user wants the cursor to go, head motion provides
// fine relative adjustment, and a throw heuristic decides when to move the
// cursor toward gaze instead of nudging it.
//
// # Features
//
//   - Adaptive low-pass filtering (1€ filter) for scalar and 2D signals
//   - I-DT style dispersion-based fixation detection over a bounded history
//   - Sigmoid pointer acceleration transfer function
//   - Sub-pixel accumulation so slow head motion is not lost to truncation
//   - A throw/track state machine blending gaze and head input per frame
//   - Generic scalar filters for float32 and float64
//
// # Quick Start
//
// For the full per-frame chain use a [Pipeline]:
//
//	cfg := polymouse.DefaultPipelineConfig()
//	p, err := polymouse.NewPipeline(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for frame := range frames {
//	    out, err := p.Step(frame)
//	    if err != nil {
//	        continue // bad dt from the input source
//	    }
//	    moveCursor(out.Mouse)
//	}
//
// The individual stages can also be driven directly:
//
//	gaze := polymouse.NewVecOneEuroFilter(1.0, 0.007, 1.0)
//	fix := polymouse.NewFixationFilter(0.1, 300)
//	pm := polymouse.NewPolyMouseTransform(polymouse.DefaultPolyMouseParams())
//
//	g := fix.Transform(gaze.Filter(rawGaze, dt), dt)
//	mouse = pm.Transform(g, mouse, headDelta, dt)
//
// # Domain Requirements
//
// Stage operations never return errors. Callers must pass dt > 0 to
// [OneEuroFilter] and [PolyMouseTransform], and cutoff frequencies must be
// positive; violations give Inf or NaN results rather than failures.
// [FixationFilter] special-cases dt == 0. [Pipeline.Step] is the boundary
// that rejects bad frames with [ErrInvalidFrame].
//
// # Thread Safety
//
// No type in this package is safe for concurrent use. Each pointing session
// owns its own instances; nothing is shared between instances, so separate
// sessions can run on separate goroutines without locking.
package polymouse
