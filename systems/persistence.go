package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/tacdrill/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the display settings stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager
var gdataInitialized bool

// current display settings, applied or not
var displaySettings = SavedSettings{ResolutionIndex: -1}

var saveSettings = SaveSettings

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an error
// when nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	if settings.ResolutionIndex < 0 || settings.ResolutionIndex >= len(cfg.Settings.Resolutions) {
		settings.ResolutionIndex = cfg.Settings.DefaultResolutionIndex
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySettings sizes the window. Resolution only applies when windowed.
func ApplySettings(s *SavedSettings) {
	if s == nil {
		return
	}
	displaySettings = *s

	ebiten.SetFullscreen(s.Fullscreen)
	if !s.Fullscreen && s.ResolutionIndex >= 0 && s.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[s.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// CurrentSettings returns the display settings in effect
func CurrentSettings() SavedSettings {
	s := displaySettings
	if s.ResolutionIndex < 0 {
		s.ResolutionIndex = cfg.Settings.DefaultResolutionIndex
	}
	s.Fullscreen = ebiten.IsFullscreen()
	return s
}

// ToggleFullscreen flips fullscreen and saves the choice
func ToggleFullscreen() {
	s := CurrentSettings()
	s.Fullscreen = !s.Fullscreen
	ApplySettings(&s)
	if err := saveSettings(&s); err != nil {
		log.Printf("Warning: Could not save fullscreen setting: %v", err)
	}
}
