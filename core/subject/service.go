package subject

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/assignment"
)

type (
	Repository interface {
		CreateSubject(ctx context.Context, sub Subject) (Subject, error)
		QueryAllSubjects(ctx context.Context) ([]Subject, error)
		// GetSubjectByID returns a nil Subject when no document matches.
		GetSubjectByID(ctx context.Context, id string) (*Subject, error)
		// AppendSubjectAssignment appends without de-duplication and returns
		// the updated document, or nil when the subject does not exist.
		AppendSubjectAssignment(ctx context.Context, subjectID, assignmentID string) (*Subject, error)
		DeleteSubjectByID(ctx context.Context, id string) (*Subject, error)
	}

	Service struct {
		repo        Repository
		assignments assignment.Repository
	}
)

func NewService(repo Repository, assignments assignment.Repository) *Service {
	return &Service{repo: repo, assignments: assignments}
}

func (svc *Service) Create(ctx context.Context, ns NewSubject) (Subject, error) {
	return svc.repo.CreateSubject(ctx, Subject{Title: ns.Title, Assignments: []string{}})
}

func (svc *Service) QueryAll(ctx context.Context) ([]Subject, error) {
	return svc.repo.QueryAllSubjects(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (*Subject, error) {
	return svc.repo.GetSubjectByID(ctx, id)
}

func (svc *Service) Delete(ctx context.Context, id string) (*Subject, error) {
	return svc.repo.DeleteSubjectByID(ctx, id)
}

// AttachAssignment appends assignmentID to the subject's assignment list.
// Both sides are fetched unconditionally; if either is missing the operation
// fails with a NotFoundError naming the missing side(s).
func (svc *Service) AttachAssignment(ctx context.Context, subjectID, assignmentID string) (*Subject, error) {
	asg, err := svc.assignments.GetAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, errors.Wrap(err, "getting assignment")
	}
	sub, err := svc.repo.GetSubjectByID(ctx, subjectID)
	if err != nil {
		return nil, errors.Wrap(err, "getting subject")
	}
	if sub == nil || asg == nil {
		var missing []string
		if sub == nil {
			missing = append(missing, "subject")
		}
		if asg == nil {
			missing = append(missing, "assignment")
		}
		return nil, core.NewNotFoundError(missing...)
	}
	return svc.repo.AppendSubjectAssignment(ctx, subjectID, assignmentID)
}
