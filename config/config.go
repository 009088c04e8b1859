package config

import (
	"image/color"
	"time"
)

// MovementConfig contains the scripted movement pattern tuning
type MovementConfig struct {
	// Minimum time between two position updates of the same entity
	MinUpdateInterval time.Duration

	// Initial speed scalar is SpeedMin + rand*SpeedRange
	SpeedMin   float64
	SpeedRange float64

	// Pattern assignment by roster index (wraps around)
	PatternCycle []Pattern

	// Patrol oscillation: rate * speed * (PatrolBase + sin(now*PatrolFrequency + id) * PatrolSwing)
	PatrolBound     float64
	PatrolBase      float64
	PatrolSwing     float64
	PatrolFrequency float64 // radians per second

	Patterns map[Pattern]PatternConfig
}

// PatternConfig tunes one of the phased movement patterns
type PatternConfig struct {
	Rate   float64       // units per millisecond per unit of speed
	Offset float64       // distance from origin the pattern travels to
	Dwell  time.Duration // hold time in the dwell phases
}

// EffectKindConfig contains the lifetime and integration rule of a particle kind
type EffectKindConfig struct {
	Window  time.Duration
	Gravity float64 // added to velocity.y once per tick
}

// BurstConfig describes a particle burst
type BurstConfig struct {
	Count       int
	SpeedMin    float64
	SpeedRange  float64
	Jitter      float64 // radians, spark bursts only
	LargeChance float64 // probability of drawing from the large size range
	LargeMin    float64
	LargeRange  float64
	NormalMin   float64
	NormalRange float64
}

// EffectsConfig contains all transient effect configuration
type EffectsConfig struct {
	Kinds map[EffectKind]EffectKindConfig

	ProjectileSpeed float64
	ProjectileSize  float64
	SparkSize       float64

	Spark        BurstConfig
	Blood        BurstConfig
	PlayerDamage BurstConfig

	// Falling marker moves MarkerRate units per ms, down then back up
	MarkerRadius float64
	MarkerRate   float64

	// Ring radius at age 0 and its change over the full window
	HitRingRadius   float64
	HitRingShrink   float64
	DeathRingRadius float64
	DeathRingGrow   float64
}

// ScreenEffectConfig contains a screen-level singleton effect configuration
type ScreenEffectConfig struct {
	Window    time.Duration
	Intensity float64
}

// MuzzleFlashConfig contains the muzzle flash geometry
type MuzzleFlashConfig struct {
	Window     time.Duration
	Radius     float64 // at age 0
	RadiusLoss float64 // lost over the full window
}

// FallConfig contains the fallen body animation of an eliminated entity
type FallConfig struct {
	Window   time.Duration
	Distance float64
	Rotation float64 // radians at the end of the fall
	Alpha    float64
}

// CombatConfig contains session rules
type CombatConfig struct {
	MaxHealth            int
	WrongAnswerDamage    int
	KillScore            int
	WrongAnswerPenalty   int
	MissionCompleteDelay time.Duration

	// Zero leaves a pending question open until answered
	AnswerTimeout time.Duration

	// Anchors measured from the bottom-right corner of the scene
	WeaponTipInsetX    float64
	WeaponTipInsetY    float64
	PlayerOriginInsetX float64
	PlayerOriginInsetY float64
}

// WeaponConfig contains the first-person weapon sway drawn over the scene
type WeaponConfig struct {
	Width, Height   float64
	AimFactor       float64
	MaxOffsetLeft   float64
	MaxOffsetRight  float64
	MaxOffsetY      float64
	RecoilFactor    float64
	BreathingAmount float64
	Color           color.RGBA
	BarrelColor     color.RGBA
}

// HUDConfig contains the in-battle HUD layout
type HUDConfig struct {
	Margin          float64
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthColor     color.RGBA
	HealthLowColor  color.RGBA
	HealthBgColor   color.RGBA
	TextColor       color.RGBA
	CrosshairSize   float64
	CrosshairColor  color.RGBA
	EntityColor     color.RGBA
	SelectedColor   color.RGBA
	BackgroundColor color.RGBA
	HorizonColor    color.RGBA
	NoticeDuration  time.Duration
	NoticeGood      color.RGBA
	NoticeBad       color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains briefing screen configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	BriefingY         float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// ResultConfig contains the mission complete and game over screen values
type ResultConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	FailColor         color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	ScoreY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	CompleteOptions   []string
	GameOverOptions   []string
}

// RankConfig contains grade thresholds and the promotion ladder
type RankConfig struct {
	Ranks          []string
	ExcellentShare float64
	GoodShare      float64
}

// DialogConfig contains the question dialog look
type DialogConfig struct {
	Width         int
	Padding       int
	Spacing       int
	Background    color.RGBA
	Border        color.RGBA
	Option        color.RGBA
	OptionHover   color.RGBA
	OptionPressed color.RGBA
	Confirm       color.RGBA
	Cancel        color.RGBA
	TextColor     color.RGBA
	FontSize      float64
}

// Config holds general game configuration
type Config struct {
	// Logical scene size, all simulation coordinates are in this space
	Width  int
	Height int

	TickRate int // ticks per second for the headless loop

	// Seed for the per-entity random draw at spawn, zero picks one from the clock
	Seed int64
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Effects EffectsConfig
var ScreenShake ScreenEffectConfig
var ScreenFlash ScreenEffectConfig
var MuzzleFlash MuzzleFlashConfig
var Fall FallConfig
var Combat CombatConfig
var Weapon WeaponConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var Result ResultConfig
var Rank RankConfig
var Dialog DialogConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool // Skip briefing and go directly to battle
	ShowBoxes bool // Outline entity hit boxes
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	DarkRed      = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Olive        = color.RGBA{R: 85, G: 107, B: 47, A: 255}
	DarkOlive    = color.RGBA{R: 40, G: 52, B: 24, A: 255}
	Khaki        = color.RGBA{R: 189, G: 183, B: 107, A: 255}
	Gunmetal     = color.RGBA{R: 42, G: 52, B: 57, A: 255}
	Steel        = color.RGBA{R: 90, G: 100, B: 110, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:    1920,
		Height:   1080,
		TickRate: 60,
	}

	Movement = MovementConfig{
		MinUpdateInterval: 50 * time.Millisecond,
		SpeedMin:          0.5,
		SpeedRange:        0.5,
		PatternCycle:      []Pattern{PatternPatrol, PatternCover, PatternAdvance, PatternStrafe, PatternCover},
		PatrolBound:       120,
		PatrolBase:        0.8,
		PatrolSwing:       0.2,
		PatrolFrequency:   1.0,
		Patterns: map[Pattern]PatternConfig{
			PatternPatrol:  {Rate: 0.1},
			PatternCover:   {Rate: 0.08, Offset: 60, Dwell: 2000 * time.Millisecond},
			PatternAdvance: {Rate: 0.05, Offset: 100, Dwell: 1500 * time.Millisecond},
			PatternStrafe:  {Rate: 0.15, Offset: 80, Dwell: 1000 * time.Millisecond},
		},
	}

	Effects = EffectsConfig{
		Kinds: map[EffectKind]EffectKindConfig{
			EffectProjectile:    {Window: 2000 * time.Millisecond},
			EffectSpark:         {Window: 500 * time.Millisecond, Gravity: 0.2},
			EffectBlood:         {Window: 3000 * time.Millisecond, Gravity: 0.3},
			EffectPlayerDamage:  {Window: 1000 * time.Millisecond, Gravity: 0.5},
			EffectFallingMarker: {Window: 1000 * time.Millisecond},
			EffectHitRing:       {Window: 500 * time.Millisecond},
			EffectDeathRing:     {Window: 2000 * time.Millisecond},
		},
		ProjectileSpeed: 15,
		ProjectileSize:  3,
		SparkSize:       2,
		Spark: BurstConfig{
			Count:      8,
			SpeedMin:   3,
			SpeedRange: 4,
			Jitter:     0.5,
		},
		Blood: BurstConfig{
			Count:       20,
			SpeedMin:    2,
			SpeedRange:  8,
			LargeChance: 0.3,
			LargeMin:    6,
			LargeRange:  4,
			NormalMin:   2,
			NormalRange: 3,
		},
		PlayerDamage: BurstConfig{
			Count:       25,
			SpeedMin:    3,
			SpeedRange:  10,
			LargeChance: 0.5,
			LargeMin:    8,
			LargeRange:  6,
			NormalMin:   4,
			NormalRange: 4,
		},
		MarkerRadius:    10,
		MarkerRate:      0.5,
		HitRingRadius:   40,
		HitRingShrink:   30,
		DeathRingRadius: 60,
		DeathRingGrow:   40,
	}

	ScreenShake = ScreenEffectConfig{
		Window:    200 * time.Millisecond,
		Intensity: 8,
	}

	ScreenFlash = ScreenEffectConfig{
		Window:    500 * time.Millisecond,
		Intensity: 0.4,
	}

	MuzzleFlash = MuzzleFlashConfig{
		Window:     100 * time.Millisecond,
		Radius:     30,
		RadiusLoss: 20,
	}

	Fall = FallConfig{
		Window:   1000 * time.Millisecond,
		Distance: 80,
		Rotation: 0.5235987755982988, // pi/6
		Alpha:    0.7,
	}

	Combat = CombatConfig{
		MaxHealth:            100,
		WrongAnswerDamage:    25,
		KillScore:            1,
		WrongAnswerPenalty:   1,
		MissionCompleteDelay: 1000 * time.Millisecond,
		WeaponTipInsetX:      50,
		WeaponTipInsetY:      300,
		PlayerOriginInsetX:   400,
		PlayerOriginInsetY:   300,
	}

	Weapon = WeaponConfig{
		Width:           800,
		Height:          600,
		AimFactor:       0.2,
		MaxOffsetLeft:   10,
		MaxOffsetRight:  25,
		MaxOffsetY:      12,
		RecoilFactor:    0.08,
		BreathingAmount: 2,
		Color:           Gunmetal,
		BarrelColor:     Steel,
	}

	HUD = HUDConfig{
		Margin:          24,
		HealthBarWidth:  320,
		HealthBarHeight: 24,
		HealthColor:     LightGreen,
		HealthLowColor:  LightRed,
		HealthBgColor:   color.RGBA{R: 40, G: 40, B: 40, A: 200},
		TextColor:       White,
		CrosshairSize:   24,
		CrosshairColor:  Red,
		EntityColor:     Khaki,
		SelectedColor:   Yellow,
		BackgroundColor: DarkOlive,
		HorizonColor:    Olive,
		NoticeDuration:  2 * time.Second,
		NoticeGood:      LightGreen,
		NoticeBad:       LightRed,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: Orange,
		MenuItemHeight:    48,
		MenuItemGap:       20,
		MenuOptions:       []string{"RESUME", "FULLSCREEN", "ABORT MISSION"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 26, B: 14, A: 255},
		TitleColor:        Khaki,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		Title:             "TACTICAL OPS",
		TitleY:            160,
		BriefingY:         320,
		MenuStartY:        760,
		MenuItemHeight:    48,
		MenuItemGap:       16,
		MenuOptions:       []string{"START MISSION", "EXIT"},
	}

	Result = ResultConfig{
		BackgroundColor:   color.RGBA{R: 10, G: 12, B: 10, A: 255},
		TitleColor:        LightGreen,
		FailColor:         LightRed,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            220,
		ScoreY:            380,
		MenuStartY:        720,
		MenuItemHeight:    48,
		MenuItemGap:       16,
		CompleteOptions:   []string{"NEXT MISSION", "REPLAY", "MENU"},
		GameOverOptions:   []string{"RETRY", "MENU"},
	}

	Rank = RankConfig{
		Ranks:          []string{"Rookie", "Soldier", "Sergeant", "Captain", "Major", "Colonel", "General", "Veteran"},
		ExcellentShare: 0.8,
		GoodShare:      0.4,
	}

	Dialog = DialogConfig{
		Width:         900,
		Padding:       24,
		Spacing:       12,
		Background:    color.RGBA{R: 24, G: 30, B: 20, A: 235},
		Border:        Khaki,
		Option:        color.RGBA{R: 60, G: 70, B: 45, A: 255},
		OptionHover:   color.RGBA{R: 85, G: 100, B: 60, A: 255},
		OptionPressed: color.RGBA{R: 45, G: 55, B: 35, A: 255},
		Confirm:       color.RGBA{R: 40, G: 120, B: 40, A: 255},
		Cancel:        color.RGBA{R: 120, G: 40, B: 40, A: 255},
		TextColor:     White,
		FontSize:      26,
	}
}

// WeaponTip returns the scene point projectiles and sparks originate from
func WeaponTip() (float64, float64) {
	return float64(C.Width) - Combat.WeaponTipInsetX, float64(C.Height) - Combat.WeaponTipInsetY
}

// PlayerOrigin returns the scene point player damage bursts originate from
func PlayerOrigin() (float64, float64) {
	return float64(C.Width) - Combat.PlayerOriginInsetX, float64(C.Height) - Combat.PlayerOriginInsetY
}
