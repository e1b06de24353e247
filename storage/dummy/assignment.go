package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/assignment"
)

type assignmentRepository struct {
	db     *assignmentTable
	grades *gradeTable
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db.assignment, grades: db.grade}
}

func (repo *assignmentRepository) CreateAssignment(_ context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	asg.ID = uuid.New().String()
	repo.db.table[asg.ID] = &asg
	repo.db.order = append(repo.db.order, asg.ID)
	return asg, nil
}

func (repo *assignmentRepository) QueryAllAssignments(_ context.Context) ([]assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	assignments := make([]assignment.Assignment, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		assignments = append(assignments, *repo.db.table[id])
	}
	return assignments, nil
}

func (repo *assignmentRepository) GetAssignmentByID(_ context.Context, id string) (*assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if asg, ok := repo.db.table[id]; ok {
		cpy := *asg
		return &cpy, nil
	}
	return nil, nil
}

func (repo *assignmentRepository) DeleteAssignmentByID(_ context.Context, id string) (*assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	asg, ok := repo.db.table[id]
	if !ok {
		return nil, nil
	}
	delete(repo.db.table, id)
	for i, oid := range repo.db.order {
		if oid == id {
			repo.db.order = append(repo.db.order[:i], repo.db.order[i+1:]...)
			break
		}
	}
	return asg, nil
}

func (repo *assignmentRepository) CreateGradeAssignment(_ context.Context, ga assignment.GradeAssignment) (assignment.GradeAssignment, error) {
	if !ga.Grade.Valid() {
		return assignment.GradeAssignment{}, assignment.ErrInvalidGrade
	}

	repo.grades.Lock()
	defer repo.grades.Unlock()

	ga.ID = uuid.New().String()
	repo.grades.table[ga.ID] = &ga
	repo.grades.order = append(repo.grades.order, ga.ID)
	return ga, nil
}

func (repo *assignmentRepository) QueryAllGradeAssignments(_ context.Context) ([]assignment.GradeAssignment, error) {
	repo.grades.RLock()
	defer repo.grades.RUnlock()

	grades := make([]assignment.GradeAssignment, 0, len(repo.grades.order))
	for _, id := range repo.grades.order {
		grades = append(grades, *repo.grades.table[id])
	}
	return grades, nil
}

func (repo *assignmentRepository) GetGradeAssignmentByID(_ context.Context, id string) (*assignment.GradeAssignment, error) {
	repo.grades.RLock()
	defer repo.grades.RUnlock()

	if ga, ok := repo.grades.table[id]; ok {
		cpy := *ga
		return &cpy, nil
	}
	return nil, nil
}

func (repo *assignmentRepository) DeleteGradeAssignmentByID(_ context.Context, id string) (*assignment.GradeAssignment, error) {
	repo.grades.Lock()
	defer repo.grades.Unlock()

	ga, ok := repo.grades.table[id]
	if !ok {
		return nil, nil
	}
	delete(repo.grades.table, id)
	for i, oid := range repo.grades.order {
		if oid == id {
			repo.grades.order = append(repo.grades.order[:i], repo.grades.order[i+1:]...)
			break
		}
	}
	return ga, nil
}
