// Package lighting describes the fixed stage a model is shown on.
package lighting

import (
	"github.com/Faultbox/repairguide/pkg/math"
	"github.com/Faultbox/repairguide/pkg/schema"
)

// Light is a white-balanced light source.
type Light struct {
	Color     schema.Color
	Intensity float32
}

// Directional is a light at infinity shining from Position towards the origin.
type Directional struct {
	Light
	Position math.Vec3
}

// Direction returns the unit vector pointing towards the light.
func (d Directional) Direction() math.Vec3 {
	return d.Position.Normalize()
}

// Grid is the floor helper drawn under the model.
type Grid struct {
	Size        float32
	Divisions   int
	Y           float32
	CenterColor schema.Color
	LineColor   schema.Color
}

// Stage is the background, lights and floor grid around a model.
type Stage struct {
	Background schema.Color
	Ambient    Light
	Sun        Directional
	Grid       Grid
}

// Default returns the stage every model is shown on.
func Default() Stage {
	return Stage{
		Background: 0x003366,
		Ambient:    Light{Color: 0xffffff, Intensity: 0.5},
		Sun: Directional{
			Light:    Light{Color: 0xffffff, Intensity: 0.8},
			Position: math.Vec3{X: 5, Y: 10, Z: 7},
		},
		Grid: Grid{
			Size:        20,
			Divisions:   20,
			Y:           -0.5,
			CenterColor: 0x0088ff,
			LineColor:   0x00aaff,
		},
	}
}

// Irradiance returns the light reaching a surface with the given normal:
// ambient plus Lambertian sun.
func (s Stage) Irradiance(normal math.Vec3) float32 {
	lambert := normal.Normalize().Dot(s.Sun.Direction())
	if lambert < 0 {
		lambert = 0
	}
	return s.Ambient.Intensity + s.Sun.Intensity*lambert
}

// Lines returns the end points of every grid line in the XZ plane at
// height Y.
func (g Grid) Lines() [][2]math.Vec3 {
	if g.Divisions <= 0 || g.Size <= 0 {
		return nil
	}
	half := g.Size / 2
	step := g.Size / float32(g.Divisions)
	lines := make([][2]math.Vec3, 0, 2*(g.Divisions+1))
	for i := 0; i <= g.Divisions; i++ {
		o := -half + float32(i)*step
		lines = append(lines,
			[2]math.Vec3{{X: o, Y: g.Y, Z: -half}, {X: o, Y: g.Y, Z: half}},
			[2]math.Vec3{{X: -half, Y: g.Y, Z: o}, {X: half, Y: g.Y, Z: o}},
		)
	}
	return lines
}
