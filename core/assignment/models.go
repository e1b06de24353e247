package assignment

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

// Grade is the mark given to a student for one assignment.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
)

func (g Grade) Valid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD, GradeE:
		return true
	}
	return false
}

type (
	Assignment struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}

	// GradeAssignment records a single grading event. References are not
	// checked for existence on creation; dangling records are possible.
	GradeAssignment struct {
		ID           string `json:"id"`
		StudentID    string `json:"studentId"`
		SubjectID    string `json:"subjectId"`
		AssignmentID string `json:"assignmentId"`
		Grade        Grade  `json:"grade"`
	}

	NewAssignment struct {
		Title string `json:"title" validate:"required"`
	}

	NewGradeAssignment struct {
		StudentID    string `json:"studentId" validate:"required"`
		SubjectID    string `json:"subjectId" validate:"required"`
		AssignmentID string `json:"assignmentId" validate:"required"`
		Grade        Grade  `json:"grade" validate:"required"`
	}
)

func (na *NewAssignment) Validate(validate *validator.Validate) error {
	na.Title = core.CleanString(na.Title)
	return validate.Struct(na)
}

func (nga *NewGradeAssignment) Validate(validate *validator.Validate) error {
	return validate.Struct(nga)
}
