// Command analyze-filter prints the response of the 1€ gaze filter and the
// head acceleration curve for a configuration, to help pick constants.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	polymouse "github.com/tphakala/go-polymouse"
	"github.com/tphakala/go-polymouse/internal/config"
	"github.com/tphakala/simd/cpu"
)

const (
	// Sweep parameters
	defaultFrameRate = 60.0 // Hz
	speedSteps       = 8    // Rows in the cutoff table
	speedBase        = 10.0 // Units per second of the first non-zero row
	speedGrowth      = 3.0  // Speed ratio between rows
	gainSteps        = 12   // Rows in the gain table
	maxDeltaPerFrame = 40.0 // Largest head delta shown, in pixels

	// Settling analysis
	settleTolerance = 0.01 // Fraction of a unit step
	maxSettleFrames = 10000
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "analyze-filter:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML config file (defaults when empty)")
	frameRate := flag.Float64("rate", defaultFrameRate, "Frame rate in Hz")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *frameRate <= 0 {
		return fmt.Errorf("frame rate must be positive")
	}
	dt := 1 / *frameRate

	fmt.Printf("SIMD: %s\n", cpu.Info())
	fmt.Printf("Frame rate: %.1f Hz (dt = %.4fs)\n", *frameRate, dt)

	printCutoffTable(cfg.Gaze, dt)
	printSettling(cfg.Gaze, dt)
	printGainTable(cfg.Head, float32(dt))
	return nil
}

// printCutoffTable shows how the adaptive cutoff and smoothing weight grow
// with steady signal speed.
func printCutoffTable(p polymouse.OneEuroParams, dt float64) {
	fmt.Printf("\n=== 1€ cutoff (min %.3f Hz, beta %.4f, dcutoff %.3f Hz) ===\n",
		p.MinCutoff, p.Beta, p.DerivativeCutoff)
	fmt.Printf("  %12s %12s %10s\n", "speed (u/s)", "cutoff (Hz)", "alpha")

	speed := 0.0
	for i := range speedSteps {
		if i > 0 {
			speed = speedBase * math.Pow(speedGrowth, float64(i-1))
		}
		cutoff := steadyCutoff(p, speed, dt)
		alpha := 1 / (1 + (1/(2*math.Pi*cutoff))/dt)
		fmt.Printf("  %12.1f %12.4f %10.5f\n", speed, cutoff, alpha)
	}
}

// steadyCutoff feeds a ramp at the given speed until the derivative
// estimate settles and returns the filter's adaptive cutoff.
func steadyCutoff(p polymouse.OneEuroParams, speed, dt float64) float64 {
	f := polymouse.NewOneEuroFilterFromParams[float64](p)
	x := 0.0
	for range maxSettleFrames {
		f.Filter(x, dt)
		x += speed * dt
	}
	return f.Cutoff()
}

// printSettling reports how many frames a unit step needs to settle.
func printSettling(p polymouse.OneEuroParams, dt float64) {
	f := polymouse.NewOneEuroFilterFromParams[float64](p)
	f.Filter(0, dt)

	frames := 0
	for frames < maxSettleFrames {
		frames++
		if 1-f.Filter(1, dt) < settleTolerance {
			break
		}
	}
	fmt.Printf("\nUnit step settles to %.0f%% in %d frames (%.3fs)\n",
		(1-settleTolerance)*100, frames, float64(frames)*dt)
}

// printGainTable shows the acceleration curve over per-frame head deltas.
func printGainTable(a polymouse.Acceleration[float32], dt float32) {
	fmt.Printf("\n=== Head acceleration (cd %.2f..%.2f, lambda %.2f) ===\n",
		a.CDMin, a.CDMax, a.Lambda)
	fmt.Printf("  %10s %8s %10s\n", "delta", "gain", "output")

	for i := range gainSteps + 1 {
		d := float32(maxDeltaPerFrame) * float32(i) / gainSteps
		fmt.Printf("  %10.2f %8.3f %10.2f\n", d, a.Gain(d, dt), a.Transform(d, dt))
	}
}
