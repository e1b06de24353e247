package dummydb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core/assignment"
	"github.com/trezcool/darasa/core/student"
	"github.com/trezcool/darasa/core/subject"
)

func TestStudentRepository(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	repo := NewStudentRepository(db)
	ctx := context.Background()

	// empty collection yields an empty sequence, not nil
	all, err := repo.QueryAllStudents(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	// missing id yields an empty result, not an error
	got, err := repo.GetStudentByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)

	stu, err := repo.CreateStudent(ctx, student.Student{FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)
	assert.NotEmpty(t, stu.ID)
	assert.NotNil(t, stu.Subjects)

	require.NoError(t, repo.SetStudentAvatar(ctx, stu.ID, "/media/avatar/"+stu.ID+".jpg"))
	got, err = repo.GetStudentByID(ctx, stu.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "/media/avatar/"+stu.ID+".jpg", got.Avatar)

	// append-only linking, no de-duplication
	updated, err := repo.AppendStudentSubject(ctx, stu.ID, "sub1")
	require.NoError(t, err)
	require.NotNil(t, updated)
	updated, err = repo.AppendStudentSubject(ctx, stu.ID, "sub1")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, []string{"sub1", "sub1"}, updated.Subjects)

	// appending to a missing student yields an empty result
	updated, err = repo.AppendStudentSubject(ctx, "nope", "sub1")
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := repo.DeleteStudentByID(ctx, stu.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, stu.ID, deleted.ID)

	deleted, err = repo.DeleteStudentByID(ctx, stu.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestSubjectRepository(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	repo := NewSubjectRepository(db)
	ctx := context.Background()

	sub, err := repo.CreateSubject(ctx, subject.Subject{Title: "Maths"})
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)

	updated, err := repo.AppendSubjectAssignment(ctx, sub.ID, "asg1")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, []string{"asg1"}, updated.Assignments)

	all, err := repo.QueryAllSubjects(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	deleted, err := repo.DeleteSubjectByID(ctx, sub.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	// the student referencing it still holds a dangling id; that is fine here
	got, err := repo.GetSubjectByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAssignmentRepository_grades(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	// the grade enumeration is enforced at the store layer
	_, err = repo.CreateGradeAssignment(ctx, assignment.GradeAssignment{
		StudentID:    "s1",
		SubjectID:    "x1",
		AssignmentID: "a1",
		Grade:        assignment.Grade("Z"),
	})
	assert.Equal(t, assignment.ErrInvalidGrade, err)

	// referenced ids are not checked for existence
	ga, err := repo.CreateGradeAssignment(ctx, assignment.GradeAssignment{
		StudentID:    "ghost",
		SubjectID:    "ghost",
		AssignmentID: "ghost",
		Grade:        assignment.GradeA,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ga.ID)

	got, err := repo.GetGradeAssignmentByID(ctx, ga.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ga, *got)

	all, err := repo.QueryAllGradeAssignments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	deleted, err := repo.DeleteGradeAssignmentByID(ctx, ga.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
}

func TestAssignmentRepository(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	asg, err := repo.CreateAssignment(ctx, assignment.Assignment{Title: "Assignment 1"})
	require.NoError(t, err)
	assert.NotEmpty(t, asg.ID)

	got, err := repo.GetAssignmentByID(ctx, asg.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Assignment 1", got.Title)

	all, err := repo.QueryAllAssignments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	deleted, err := repo.DeleteAssignmentByID(ctx, asg.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	got, err = repo.GetAssignmentByID(ctx, asg.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
