package constants

import "time"

// Main Loop Timing
const (
	// FrameUpdateInterval is the default frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultFrameRate is the default frames per second
	DefaultFrameRate = 60

	// MaxFrameRate is the highest accepted frame rate
	MaxFrameRate = 240

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)

// Application identity
const (
	// AppName is used for the config directory, log file and env prefix
	AppName = "blockcurve"

	// AppTitle is shown in the status bar
	AppTitle = "Minecraft Curve Generator"

	// EnvPrefix prefixes every environment override
	EnvPrefix = "BLOCKCURVE_"
)

// Logging
const (
	// LogDir is the directory debug logs are written to
	LogDir = "logs"

	// LogFileName is the debug log file inside LogDir
	LogFileName = "blockcurve.log"
)
