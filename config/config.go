package config

import (
	"image/color"
	"time"
)

// Config holds window and tick settings.
type Config struct {
	Width  int
	Height int

	// TickInterval is the fixed simulation step. It is also trusted as the
	// elapsed time of every tick; the wall clock is never measured.
	TickInterval time.Duration
}

// TickIntervalMs returns the tick interval in milliseconds.
func (c *Config) TickIntervalMs() float64 {
	return float64(c.TickInterval) / float64(time.Millisecond)
}

// TicksPerSecond returns how many ticks fit in one second.
func (c *Config) TicksPerSecond() int {
	if c.TickInterval <= 0 {
		return 0
	}
	return int(time.Second / c.TickInterval)
}

// PhysicsConfig contains physics-related configuration values.
// All values are in game units and seconds.
type PhysicsConfig struct {
	Gravity      float64
	JumpVelocity float64 // Velocity.Y forced by a jump; replaces, not adds
}

// WorldConfig describes the playfield in game units.
type WorldConfig struct {
	Width  float64
	Height float64

	// Collision grid cell size in pixels; the resolv space works in display units
	CellSize int
}

// DisplayConfig controls conversion from game units to pixels.
type DisplayConfig struct {
	ScaleFactor float64
}

// BirdConfig contains bird spawn and size values.
type BirdConfig struct {
	StartX float64
	StartY float64
	Width  float64
	Height float64
	Color  color.RGBA

	WingColor     color.RGBA
	FlapFrames    int // wing positions in one flap
	TicksPerFrame int
}

// ObstacleConfig contains pipe spawning values.
type ObstacleConfig struct {
	Width        float64
	GapHeight    float64
	Speed        float64 // units per second, negative moves left
	SpawnEveryMs float64
	MinGapY      float64 // top of the gap, lowest allowed
	MaxGapY      float64 // top of the gap, highest allowed
	Color        color.RGBA
}

// CopterConfig contains the single-craft prototype values.
type CopterConfig struct {
	StartX      float64
	StartY      float64
	Width       float64
	Height      float64
	ScaleFactor float64
}

// UIConfig contains HUD colors and sizes.
type UIConfig struct {
	BackgroundColor color.RGBA
	HUDTextColor    color.RGBA
	OverlayColor    color.RGBA
	DebugBoxColor   color.RGBA
	HUDFontSize     float64
	TitleFontSize   float64
	OverlayFadeSecs float32
}

// DebugConfig toggles developer aids.
type DebugConfig struct {
	ShowBoxes bool
	LogEvents bool
}

// PersistenceConfig names the on-disk store.
type PersistenceConfig struct {
	AppName  string
	ScoreKey string
}

var C *Config
var Physics PhysicsConfig
var World WorldConfig
var Display DisplayConfig
var Bird BirdConfig
var Obstacle ObstacleConfig
var Copter CopterConfig
var UI UIConfig
var Debug DebugConfig
var Persistence PersistenceConfig

// Common colors
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	SkyBlue      = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:        640,
		Height:       480,
		TickInterval: 10 * time.Millisecond,
	}

	Physics = PhysicsConfig{
		Gravity:      9.8,
		JumpVelocity: -10,
	}

	// 40x30 units at 16 px per unit fills the 640x480 window
	World = WorldConfig{
		Width:    40,
		Height:   30,
		CellSize: 32,
	}

	Display = DisplayConfig{
		ScaleFactor: 16,
	}

	Bird = BirdConfig{
		StartX: 8,
		StartY: 12,
		Width:  1,
		Height: 1,
		Color:  Yellow,

		WingColor:     Orange,
		FlapFrames:    4,
		TicksPerFrame: 5,
	}

	Obstacle = ObstacleConfig{
		Width:        3,
		GapHeight:    9,
		Speed:        -8,
		SpawnEveryMs: 2200,
		MinGapY:      3,
		MaxGapY:      18,
		Color:        Green,
	}

	Copter = CopterConfig{
		StartX:      0,
		StartY:      0,
		Width:       1,
		Height:      1,
		ScaleFactor: 10,
	}

	UI = UIConfig{
		BackgroundColor: SkyBlue,
		HUDTextColor:    White,
		OverlayColor:    BlackOverlay,
		DebugBoxColor:   Magenta,
		HUDFontSize:     16,
		TitleFontSize:   32,
		OverlayFadeSecs: 0.4,
	}

	Debug = DebugConfig{
		ShowBoxes: false,
		LogEvents: false,
	}

	Persistence = PersistenceConfig{
		AppName:  "shoutybird",
		ScoreKey: "scores",
	}
}
