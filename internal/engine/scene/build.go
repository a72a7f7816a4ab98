package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/repairguide/internal/engine/geometry"
	"github.com/Faultbox/repairguide/internal/engine/material"
	"github.com/Faultbox/repairguide/internal/logger"
	"github.com/Faultbox/repairguide/pkg/schema"
)

// Build creates a new group from desc. It never fails: desc is expected to
// come out of the schema parser, and any names it repeats are suffixed so
// every solid stays addressable.
func Build(desc schema.ModelDescription) *Group {
	g := newGroup(string(desc.ObjectType))
	used := map[string]bool{schema.BaseName: true}

	g.add(&Solid{
		Name:     schema.BaseName,
		Kind:     KindBase,
		Type:     string(desc.ObjectType),
		Geometry: geometry.New(geometry.ForBase(desc.ObjectType, desc.Dimensions)),
		Material: material.New(desc.Color, desc.Metalness, desc.Roughness),
		Visible:  true,
	})

	for _, p := range desc.Parts {
		name := p.Name
		if name == "" {
			name = string(p.Type)
		}
		g.add(&Solid{
			Name:     schema.UniqueName(name, used),
			Kind:     KindPart,
			Type:     string(p.Type),
			Geometry: geometry.New(geometry.ForPart(p.Type, p.Dimensions)),
			Material: material.New(p.Color, p.Metalness, p.Roughness),
			Position: p.Position,
			Rotation: p.Rotation,
			Visible:  true,
		})
	}

	logger.Named("scene").Debug("model built",
		zap.Stringer("id", g.ID),
		zap.String("objectType", g.ObjectType),
		zap.Int("parts", len(desc.Parts)))

	return g
}
