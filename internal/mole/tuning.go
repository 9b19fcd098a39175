package mole

import "github.com/vovakirdan/whackamole/internal/core"

// Game rules. These are fixed for the cabinet and deliberately not configurable.
const (
	EscapeSpeedChange = 1.0 // escape window multiplier per completed round
	SpawnSpeedChange  = 0.9 // spawn interval multiplier per completed round
	StartingLives     = 5   // lives at the start of a session
	StartingRound     = 1   // round number shown when a session starts
	RoundQuota        = 10  // hits needed to finish a round
	TargetFPS         = 100 // light frames per second
	maxLives          = 255 // lives is a byte on the cabinet
)

// Timings in engine milliseconds.
const (
	DefaultEscapeWindow  core.Millis = 4000 // how long a mole stays up before it escapes
	DefaultSpawnInterval core.Millis = 3000 // minimum spacing between spawn attempts
	FrameInterval        core.Millis = 1000 / TargetFPS
	ScanInterval         core.Millis = 3 // one keypad matrix scan
)

// Animation timings.
const (
	BannerHold      core.Millis = 2000
	CountdownRed    core.Millis = 750
	CountdownYellow core.Millis = 750
	CountdownGreen  core.Millis = 1250
	GameOverFlash   core.Millis = 500
	GameOverFlashes             = 3
)
