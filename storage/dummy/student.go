package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/student"
)

type studentRepository struct {
	db *studentTable
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) CreateStudent(_ context.Context, stu student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	stu.ID = uuid.New().String()
	if stu.Subjects == nil {
		stu.Subjects = []string{}
	}
	repo.db.table[stu.ID] = &stu
	repo.db.order = append(repo.db.order, stu.ID)
	return stu, nil
}

func (repo *studentRepository) QueryAllStudents(_ context.Context) ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	students := make([]student.Student, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		students = append(students, *repo.db.table[id])
	}
	return students, nil
}

func (repo *studentRepository) GetStudentByID(_ context.Context, id string) (*student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if stu, ok := repo.db.table[id]; ok {
		cpy := *stu
		return &cpy, nil
	}
	return nil, nil
}

func (repo *studentRepository) SetStudentAvatar(_ context.Context, id, avatar string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if stu, ok := repo.db.table[id]; ok {
		stu.Avatar = avatar
	}
	return nil
}

func (repo *studentRepository) AppendStudentSubject(_ context.Context, studentID, subjectID string) (*student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	stu, ok := repo.db.table[studentID]
	if !ok {
		return nil, nil
	}
	stu.Subjects = append(stu.Subjects, subjectID)
	cpy := *stu
	return &cpy, nil
}

func (repo *studentRepository) DeleteStudentByID(_ context.Context, id string) (*student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	stu, ok := repo.db.table[id]
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
	return stu, nil
}
