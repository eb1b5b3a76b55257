package game

import (
	"github.com/Faultbox/helios/internal/engine/audio"
	"github.com/Faultbox/helios/internal/engine/camera"
	"github.com/Faultbox/helios/internal/game/world"
)

// feedbackTone picks the blip for what changed during one update. A switch
// that turned on wins over one that turned off; technique and camera
// changes have their own pitch.
func feedbackTone(before, after world.Toggles, beforeMode, afterMode camera.Mode) (float64, bool) {
	flags := [][2]bool{
		{before.Night, after.Night},
		{before.Fog, after.Fog},
		{before.Blinn, after.Blinn},
		{before.Paused, after.Paused},
	}

	tone, changed := 0.0, false
	for _, f := range flags {
		switch {
		case !f[0] && f[1]:
			return audio.BlipOn, true
		case f[0] && !f[1]:
			tone, changed = audio.BlipOff, true
		}
	}
	if changed {
		return tone, true
	}
	if before.Technique != after.Technique || beforeMode != afterMode {
		return audio.BlipSwitch, true
	}
	return 0, false
}
