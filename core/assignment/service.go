package assignment

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

// ErrInvalidGrade is returned by Repository implementations when a grade
// value outside the enumeration reaches the store.
var ErrInvalidGrade = errors.New("grade must be one of A, B, C, D or E")

type (
	Repository interface {
		CreateAssignment(ctx context.Context, asg Assignment) (Assignment, error)
		QueryAllAssignments(ctx context.Context) ([]Assignment, error)
		// GetAssignmentByID returns a nil Assignment when no document matches.
		GetAssignmentByID(ctx context.Context, id string) (*Assignment, error)
		DeleteAssignmentByID(ctx context.Context, id string) (*Assignment, error)

		CreateGradeAssignment(ctx context.Context, ga GradeAssignment) (GradeAssignment, error)
		QueryAllGradeAssignments(ctx context.Context) ([]GradeAssignment, error)
		GetGradeAssignmentByID(ctx context.Context, id string) (*GradeAssignment, error)
		DeleteGradeAssignmentByID(ctx context.Context, id string) (*GradeAssignment, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, na NewAssignment) (Assignment, error) {
	return svc.repo.CreateAssignment(ctx, Assignment{Title: na.Title})
}

func (svc *Service) QueryAll(ctx context.Context) ([]Assignment, error) {
	return svc.repo.QueryAllAssignments(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (*Assignment, error) {
	return svc.repo.GetAssignmentByID(ctx, id)
}

func (svc *Service) Delete(ctx context.Context, id string) (*Assignment, error) {
	return svc.repo.DeleteAssignmentByID(ctx, id)
}

// RecordGrade creates a GradeAssignment without checking that the referenced
// student, subject or assignment exist. The store rejects grade values
// outside the enumeration; that failure surfaces as a validation error.
func (svc *Service) RecordGrade(ctx context.Context, nga NewGradeAssignment) (GradeAssignment, error) {
	ga, err := svc.repo.CreateGradeAssignment(ctx, GradeAssignment{
		StudentID:    nga.StudentID,
		SubjectID:    nga.SubjectID,
		AssignmentID: nga.AssignmentID,
		Grade:        nga.Grade,
	})
	if err != nil {
		if pkgerrors.Cause(err) == ErrInvalidGrade {
			return GradeAssignment{}, core.NewValidationError(err, core.FieldError{Field: "grade", Error: ErrInvalidGrade.Error()})
		}
		return GradeAssignment{}, err
	}
	return ga, nil
}
