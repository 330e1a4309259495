package trace

import (
	"context"
	"errors"

	polymouse "github.com/tphakala/go-polymouse"
)

// Record is one replayed frame with the pipeline output.
type Record struct {
	Index  int
	Frame  polymouse.Frame
	Output polymouse.Output
}

// Result holds everything a replay produced.
type Result struct {
	Records  []Record
	Rejected []int // Indices of frames the pipeline refused
	Throws   int64
}

// Options control a replay.
type Options struct {
	// Feedback feeds each output cursor position back as the next frame's
	// cursor, closing the loop as a live pointer would. When false the
	// recorded cursor positions are used.
	Feedback bool

	// OnRecord, if set, is called after every accepted frame.
	OnRecord func(Record) error
}

// Run replays frames through p. It stops early if ctx is cancelled or
// OnRecord fails; frames rejected by the pipeline are skipped and listed in
// the result.
func Run(ctx context.Context, p *polymouse.Pipeline, frames []polymouse.Frame, opts Options) (*Result, error) {
	res := &Result{Records: make([]Record, 0, len(frames))}

	var (
		mouse    polymouse.IntVec2
		hasMouse bool
	)
	for i, f := range frames {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if opts.Feedback && hasMouse {
			f.Mouse = mouse
		}

		out, err := p.Step(f)
		if errors.Is(err, polymouse.ErrInvalidFrame) {
			res.Rejected = append(res.Rejected, i)
			continue
		}
		if err != nil {
			return res, err
		}

		mouse, hasMouse = out.Mouse, true
		rec := Record{Index: i, Frame: f, Output: out}
		res.Records = append(res.Records, rec)

		if opts.OnRecord != nil {
			if err := opts.OnRecord(rec); err != nil {
				return res, err
			}
		}
	}

	res.Throws = p.Transform().Throws()
	return res, nil
}
