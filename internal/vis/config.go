package vis

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 800
)

// Particle cloud.
const (
	DefaultParticleCount = 4000
)

// Animator gains. Spread and smoothing are unitless multipliers;
// rotation speeds are rad/s.
const (
	SpreadGain        = 3.0
	SpreadEpsilon     = 0.1
	SpreadJitter      = 0.35
	SmoothingGain     = 3.0
	TwinkleAmplitude  = 0.06
	TwinkleSpeed      = 2.0
	RotationGain      = 1.2
	IdleRotationSpeed = 0.15
)

// Gesture thresholds, all in normalized hand-image coordinates.
// FistDistance/OpenDistance are empirical wrist-to-fingertip averages
// for a closed fist and a fully open hand.
const (
	LandmarkCount  = 21
	OpenThreshold  = 0.6
	PinchThreshold = 0.05
	FistDistance   = 0.10
	OpenDistance   = 0.35
	OpennessDecay  = 0.05 // per no-hand interpretation
)

// Shape extents (world units).
const (
	TreeTurns     = 10.0
	TreeHeight    = 7.0
	TreeMaxRadius = 3.2
	TreeJitter    = 0.18

	HeartScale     = 0.32
	HeartThickness = 0.45

	SphereShellMin = 4.0
	SphereShellMax = 5.0

	StarLobes     = 5
	StarCoreR     = 1.4
	StarSpikeR    = 3.4
	StarThickness = 0.5

	FlowerPetalK    = 4.0
	FlowerMaxRadius = 4.5
	FlowerCurl      = 0.55
)

// Retint crossfade.
const RetintFadeSeconds = 0.8

// Camera orbit distance (world units).
const (
	CameraDefaultDist = 14.0
	CameraMinDist     = 6.0
	CameraMaxDist     = 30.0
)

// Tracker socket for the external hand-landmark sidecar.
const TrackerAddr = "127.0.0.1:9465"

// Simulated hand input.
const (
	SimOpenRate  = 2.5 // openness ramp per second while held
	SimCloseRate = 1.8
)
