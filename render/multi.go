package render

import (
	"errors"

	"github.com/katalvlaran/pathviz/grid"
)

// Sink is the renderer contract shared by Text, PNG and Multi.
type Sink interface {
	Render(g *grid.Grid) error
	SetCaption(caption string)
}

// Multi forwards every call to each sink in order.
type Multi []Sink

// Render renders to every sink and joins their errors.
func (m Multi) Render(g *grid.Grid) error {
	var errs []error
	for _, s := range m {
		if err := s.Render(g); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SetCaption sets the caption on every sink.
func (m Multi) SetCaption(caption string) {
	for _, s := range m {
		s.SetCaption(caption)
	}
}
