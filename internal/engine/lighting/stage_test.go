package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/repairguide/pkg/math"
	"github.com/Faultbox/repairguide/pkg/schema"
)

func TestDefaultStage(t *testing.T) {
	s := Default()

	assert.Equal(t, schema.Color(0x003366), s.Background)
	assert.Equal(t, float32(0.5), s.Ambient.Intensity)
	assert.Equal(t, float32(0.8), s.Sun.Intensity)
	assert.Equal(t, math.Vec3{X: 5, Y: 10, Z: 7}, s.Sun.Position)
	assert.InDelta(t, 1, s.Sun.Direction().Length(), 1e-6)
}

func TestIrradiance(t *testing.T) {
	s := Default()

	// Facing the sun gets everything, facing away only ambient.
	assert.InDelta(t, 1.3, s.Irradiance(s.Sun.Position), 1e-5)
	assert.InDelta(t, 0.5, s.Irradiance(s.Sun.Position.Scale(-1)), 1e-6)

	up := s.Irradiance(math.Vec3{Y: 1})
	assert.Greater(t, up, float32(0.5))
	assert.Less(t, up, float32(1.3))
}

func TestGridLines(t *testing.T) {
	g := Default().Grid
	lines := g.Lines()

	assert.Len(t, lines, 2*(g.Divisions+1))
	for _, l := range lines {
		assert.Equal(t, g.Y, l[0].Y)
		assert.Equal(t, g.Y, l[1].Y)
	}
	assert.Equal(t, math.Vec3{X: -10, Y: -0.5, Z: -10}, lines[0][0])

	assert.Nil(t, Grid{}.Lines())
}
