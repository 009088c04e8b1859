package systems

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestToggleFullscreenLogsSaveFailure(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	origSave, origSettings := saveSettings, displaySettings
	wasFullscreen := ebiten.IsFullscreen()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		saveSettings = origSave
		displaySettings = origSettings
		ebiten.SetFullscreen(wasFullscreen)
	})

	var saved *SavedSettings
	saveSettings = func(s *SavedSettings) error {
		saved = s
		return errors.New("disk full")
	}

	ToggleFullscreen()

	if assert.NotNil(t, saved) {
		assert.Equal(t, !wasFullscreen, saved.Fullscreen)
	}
	assert.Contains(t, buf.String(), "Warning: Could not save fullscreen setting: disk full")
}
