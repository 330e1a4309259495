package polymouse

// Fixation history
const (
	fixationHistorySize = 128 // Samples kept for dispersion analysis
)

// Default 1€ gaze filter tuning
const (
	defaultGazeMinCutoff        = 1.0   // Hz
	defaultGazeBeta             = 0.007 // Cutoff gain per unit of speed
	defaultGazeDerivativeCutoff = 1.0   // Hz
)

// Default fixation detection tuning
const (
	defaultMinFixationSeconds = 0.1   // Minimum window considered a fixation
	defaultMaxFixationSpeed   = 300.0 // Pixels per second allowed inside a fixation
)

// Default head acceleration curve
const (
	defaultCDMin  = 1.0
	defaultCDMax  = 8.0
	defaultVMin   = 0.0
	defaultVMax   = 2.0
	defaultLambda = 4.0
	defaultRatio  = 0.5
)

// Default polymouse blending parameters
const (
	defaultMinJump             = 30.0   // Pixels
	defaultSpeedExpandFactor   = 0.1    // Jump radius growth per unit head speed
	defaultHeadSmoothingFactor = 0.3    // EMA weight for new head speed samples
	defaultThrowThreshSpeed    = 120.0  // Head speed that enables a throw
	defaultThrowSpeed          = 6000.0 // Pixels per second while throwing
	defaultSmallJumpFactor     = 0.75   // Fraction of jump radius that blocks re-throws
)
