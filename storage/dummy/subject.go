package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/subject"
)

type subjectRepository struct {
	db *subjectTable
}

var _ subject.Repository = (*subjectRepository)(nil) // interface compliance check

func NewSubjectRepository(db *DB) subject.Repository {
	return &subjectRepository{db: db.subject}
}

func (repo *subjectRepository) CreateSubject(_ context.Context, sub subject.Subject) (subject.Subject, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	sub.ID = uuid.New().String()
	if sub.Assignments == nil {
		sub.Assignments = []string{}
	}
	repo.db.table[sub.ID] = &sub
	repo.db.order = append(repo.db.order, sub.ID)
	return sub, nil
}

func (repo *subjectRepository) QueryAllSubjects(_ context.Context) ([]subject.Subject, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	subjects := make([]subject.Subject, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		subjects = append(subjects, *repo.db.table[id])
	}
	return subjects, nil
}

func (repo *subjectRepository) GetSubjectByID(_ context.Context, id string) (*subject.Subject, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if sub, ok := repo.db.table[id]; ok {
		cpy := *sub
		return &cpy, nil
	}
	return nil, nil
}

func (repo *subjectRepository) AppendSubjectAssignment(_ context.Context, subjectID, assignmentID string) (*subject.Subject, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	sub, ok := repo.db.table[subjectID]
	if !ok {
		return nil, nil
	}
	sub.Assignments = append(sub.Assignments, assignmentID)
	cpy := *sub
	return &cpy, nil
}

func (repo *subjectRepository) DeleteSubjectByID(_ context.Context, id string) (*subject.Subject, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	sub, ok := repo.db.table[id]
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
	return sub, nil
}
