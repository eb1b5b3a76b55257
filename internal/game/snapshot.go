package game

import (
	"github.com/Faultbox/helios/internal/engine/scene"
	"github.com/Faultbox/helios/internal/game/entity"
	"github.com/Faultbox/helios/internal/game/world"
)

// Snapshot converts the world into what the scene draws this frame.
func Snapshot(w *world.World) scene.Snapshot {
	view := w.View()

	bodies := make([]scene.Body, 0, 1+len(w.Planets))
	bodies = append(bodies, bodyOf(&w.Sun))
	for i := range w.Planets {
		bodies = append(bodies, bodyOf(&w.Planets[i]))
	}

	return scene.Snapshot{
		Bodies: bodies,
		Ship: scene.Body{
			Position: w.Ship.Position,
			Rotation: w.Ship.Rotation(),
			Scale:    w.Ship.Scale,
			Material: w.Ship.Material,
		},
		View:      view,
		Lights:    w.Lights(view.Eye),
		Technique: w.Toggles.Technique,
	}
}

func bodyOf(b *entity.Body) scene.Body {
	return scene.Body{
		Position: b.Position(),
		Scale:    b.Scale,
		Material: b.Material,
	}
}
