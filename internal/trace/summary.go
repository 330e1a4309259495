package trace

import (
	polymouse "github.com/tphakala/go-polymouse"
	"github.com/tphakala/go-polymouse/internal/simdops"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a replay.
type Summary struct {
	Frames          int
	Rejected        int
	Throws          int64
	Duration        float64 // Seconds covered by accepted frames
	ThrowingSeconds float64 // Seconds spent in the throwing state

	MeanStepX, MeanStepY float32 // Mean cursor move per frame
	RMSStepX, RMSStepY   float32 // RMS cursor move per frame

	MeanDT, StdDevDT float64
}

// Summarize computes replay statistics.
func Summarize(res *Result) Summary {
	s := Summary{
		Frames:   len(res.Records),
		Rejected: len(res.Rejected),
		Throws:   res.Throws,
	}
	if len(res.Records) == 0 {
		return s
	}

	stepX := make([]float32, len(res.Records))
	stepY := make([]float32, len(res.Records))
	dts := make([]float64, len(res.Records))

	for i, rec := range res.Records {
		stepX[i] = float32(rec.Output.Mouse.X - rec.Frame.Mouse.X)
		stepY[i] = float32(rec.Output.Mouse.Y - rec.Frame.Mouse.Y)
		dts[i] = float64(rec.Frame.DT)
		s.Duration += dts[i]
		if rec.Output.State == polymouse.Throwing {
			s.ThrowingSeconds += dts[i]
		}
	}

	s.MeanStepX, s.MeanStepY = simdops.Mean(stepX), simdops.Mean(stepY)
	s.RMSStepX, s.RMSStepY = simdops.RMS(stepX), simdops.RMS(stepY)
	if len(dts) > 1 {
		s.MeanDT, s.StdDevDT = stat.MeanStdDev(dts, nil)
	} else {
		s.MeanDT = dts[0]
	}
	return s
}
