package dummydb

import (
	"sync"

	"github.com/trezcool/darasa/core/assignment"
	"github.com/trezcool/darasa/core/student"
	"github.com/trezcool/darasa/core/subject"
)

type (
	// DB is an in-memory store for tests and local hacking. Document ids are
	// uuids; unlike the mongo store it puts no format constraint on ids
	// passed in by callers.
	DB struct {
		student    *studentTable
		subject    *subjectTable
		assignment *assignmentTable
		grade      *gradeTable
	}

	studentTable struct {
		sync.RWMutex
		table map[string]*student.Student
		order []string
	}

	subjectTable struct {
		sync.RWMutex
		table map[string]*subject.Subject
		order []string
	}

	assignmentTable struct {
		sync.RWMutex
		table map[string]*assignment.Assignment
		order []string
	}

	gradeTable struct {
		sync.RWMutex
		table map[string]*assignment.GradeAssignment
		order []string
	}
)

func Open() (*DB, error) {
	db := &DB{
		student:    &studentTable{table: make(map[string]*student.Student)},
		subject:    &subjectTable{table: make(map[string]*subject.Subject)},
		assignment: &assignmentTable{table: make(map[string]*assignment.Assignment)},
		grade:      &gradeTable{table: make(map[string]*assignment.GradeAssignment)},
	}
	return db, nil
}
