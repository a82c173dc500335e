package render

import (
	"errors"
	"image"
)

// Tee presents every frame to all of its presenters in order. All of them
// are called even when one fails; the errors are joined.
type Tee []Presenter

func (t Tee) Resize(width, height int) error {
	var errs []error
	for _, p := range t {
		if err := p.Resize(width, height); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t Tee) Present(frame *image.RGBA) error {
	var errs []error
	for _, p := range t {
		if err := p.Present(frame); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
