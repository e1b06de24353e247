package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

type (
	Student struct {
		ID        string `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		// Avatar is the media path derived from the id right after creation.
		Avatar string `json:"avatar,omitempty"`
		// Subjects holds references only; duplicates allowed, order preserved.
		Subjects []string `json:"subjects"`
	}

	NewStudent struct {
		FirstName string `json:"firstName" validate:"required,min=2,max=50"`
		LastName  string `json:"lastName" validate:"required,min=2,max=50"`
	}
)

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.LastName = core.CleanString(ns.LastName)
	return validate.Struct(ns)
}
