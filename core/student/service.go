package student

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/subject"
)

type (
	Repository interface {
		CreateStudent(ctx context.Context, stu Student) (Student, error)
		QueryAllStudents(ctx context.Context) ([]Student, error)
		// GetStudentByID returns a nil Student when no document matches.
		GetStudentByID(ctx context.Context, id string) (*Student, error)
		SetStudentAvatar(ctx context.Context, id, avatar string) error
		// AppendStudentSubject appends without de-duplication and returns
		// the updated document, or nil when the student does not exist.
		AppendStudentSubject(ctx context.Context, studentID, subjectID string) (*Student, error)
		DeleteStudentByID(ctx context.Context, id string) (*Student, error)
	}

	// AvatarStore removes cached avatar files for deleted students.
	AvatarStore interface {
		Remove(id string) error
	}

	Service struct {
		repo     Repository
		subjects subject.Repository
		avatars  AvatarStore
		logger   core.Logger
	}
)

func NewService(repo Repository, subjects subject.Repository, avatars AvatarStore, logger core.Logger) *Service {
	return &Service{repo: repo, subjects: subjects, avatars: avatars, logger: logger}
}

// Create stores the student, then assigns the avatar path derived from the
// generated id with a second field-level update.
func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	stu, err := svc.repo.CreateStudent(ctx, Student{
		FirstName: ns.FirstName,
		LastName:  ns.LastName,
		Subjects:  []string{},
	})
	if err != nil {
		return Student{}, errors.Wrap(err, "creating student")
	}
	stu.Avatar = fmt.Sprintf("/media/avatar/%s.jpg", stu.ID)
	if err = svc.repo.SetStudentAvatar(ctx, stu.ID, stu.Avatar); err != nil {
		return Student{}, errors.Wrap(err, "setting student avatar")
	}
	return stu, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (*Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

// Delete removes the student and attempts removal of the cached avatar file.
// A file removal failure is logged, not surfaced.
func (svc *Service) Delete(ctx context.Context, id string) (*Student, error) {
	stu, err := svc.repo.DeleteStudentByID(ctx, id)
	if err != nil || stu == nil {
		return stu, err
	}
	if err := svc.avatars.Remove(stu.ID); err != nil {
		svc.logger.Error(fmt.Sprintf("removing avatar of deleted student %s: %v", stu.ID, err), err)
	}
	return stu, nil
}

// AssignSubject appends subjectID to the student's subject list. Both sides
// are fetched unconditionally; if either is missing the operation fails with
// a NotFoundError naming the missing side(s).
func (svc *Service) AssignSubject(ctx context.Context, studentID, subjectID string) (*Student, error) {
	sub, err := svc.subjects.GetSubjectByID(ctx, subjectID)
	if err != nil {
		return nil, errors.Wrap(err, "getting subject")
	}
	stu, err := svc.repo.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "getting student")
	}
	if stu == nil || sub == nil {
		var missing []string
		if stu == nil {
			missing = append(missing, "student")
		}
		if sub == nil {
			missing = append(missing, "subject")
		}
		return nil, core.NewNotFoundError(missing...)
	}
	return svc.repo.AppendStudentSubject(ctx, studentID, subjectID)
}
