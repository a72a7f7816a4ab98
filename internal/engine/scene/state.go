package scene

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/repairguide/internal/engine/material"
	"github.com/Faultbox/repairguide/internal/logger"
	"github.com/Faultbox/repairguide/pkg/schema"
)

// ErrNoMaterial is reported for a solid that should be highlighted but has no
// renderable material.
var ErrNoMaterial = errors.New("scene: solid has no renderable material")

// ApplyState puts g into st. Rotation is replaced, not accumulated. Every solid
// is first returned to its unhighlighted, visible state, so the result depends
// only on st and never on previously applied states.
//
// A solid that cannot be highlighted is skipped and the rest are still
// updated; the skipped solids are reported as a joined error.
func ApplyState(g *Group, st schema.ModelState) error {
	if g == nil || g.disposed {
		return nil
	}

	g.Rotation = st.Rotation

	var errs []error
	for _, s := range g.Solids {
		if err := s.apply(st); err != nil {
			logger.Named("scene").Warn("solid skipped",
				zap.String("solid", s.Name),
				zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Solid) apply(st schema.ModelState) error {
	s.Visible = !st.Hides(s.Name)

	if s.original != nil {
		s.install(s.original.Clone())
	}

	if !st.Highlights(s.Name) {
		return nil
	}
	if !material.Renderable(s.Material) {
		return fmt.Errorf("%w: %q", ErrNoMaterial, s.Name)
	}
	if s.original == nil {
		s.original = s.Material.Clone()
	}
	s.install(material.Highlight(s.Material))
	return nil
}
