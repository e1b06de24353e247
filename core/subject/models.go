package subject

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

type (
	Subject struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		// Assignments holds references only; duplicates allowed, order preserved.
		Assignments []string `json:"assignments"`
	}

	NewSubject struct {
		Title string `json:"title" validate:"required,min=1,max=100"`
	}
)

func (ns *NewSubject) Validate(validate *validator.Validate) error {
	ns.Title = core.CleanString(ns.Title)
	return validate.Struct(ns)
}
