package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/assignment"
)

type assignmentDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Title string             `bson:"title"`
}

func (doc assignmentDoc) toAssignment() assignment.Assignment {
	return assignment.Assignment{ID: doc.ID.Hex(), Title: doc.Title}
}

// gradeAssignmentDoc references are stored as-is; existence is never checked
// so dangling records can occur.
type gradeAssignmentDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Student    primitive.ObjectID `bson:"student"`
	Subject    primitive.ObjectID `bson:"subject"`
	Assignment primitive.ObjectID `bson:"assignment"`
	Grade      string             `bson:"grade"`
}

func (doc gradeAssignmentDoc) toGradeAssignment() assignment.GradeAssignment {
	return assignment.GradeAssignment{
		ID:           doc.ID.Hex(),
		StudentID:    doc.Student.Hex(),
		SubjectID:    doc.Subject.Hex(),
		AssignmentID: doc.Assignment.Hex(),
		Grade:        assignment.Grade(doc.Grade),
	}
}

type assignmentRepository struct {
	col      *mongo.Collection
	gradeCol *mongo.Collection
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(client *mongo.Client, conf *core.Config) assignment.Repository {
	db := database(client, conf)
	return &assignmentRepository{
		col:      db.Collection(assignmentCollection),
		gradeCol: db.Collection(gradeAssignmentCollection),
	}
}

func (repo *assignmentRepository) CreateAssignment(ctx context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	doc := assignmentDoc{Title: asg.Title}
	res, err := repo.col.InsertOne(ctx, doc)
	if err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "inserting assignment")
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toAssignment(), nil
}

func (repo *assignmentRepository) QueryAllAssignments(ctx context.Context) ([]assignment.Assignment, error) {
	cur, err := repo.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "querying assignments")
	}
	var docs []assignmentDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding assignments")
	}
	assignments := make([]assignment.Assignment, 0, len(docs))
	for _, doc := range docs {
		assignments = append(assignments, doc.toAssignment())
	}
	return assignments, nil
}

func (repo *assignmentRepository) GetAssignmentByID(ctx context.Context, id string) (*assignment.Assignment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing assignment id %q", id)
	}
	var doc assignmentDoc
	if err = repo.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "getting assignment")
	}
	asg := doc.toAssignment()
	return &asg, nil
}

func (repo *assignmentRepository) DeleteAssignmentByID(ctx context.Context, id string) (*assignment.Assignment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing assignment id %q", id)
	}
	var doc assignmentDoc
	if err = repo.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "deleting assignment")
	}
	asg := doc.toAssignment()
	return &asg, nil
}

func (repo *assignmentRepository) CreateGradeAssignment(ctx context.Context, ga assignment.GradeAssignment) (assignment.GradeAssignment, error) {
	if !ga.Grade.Valid() {
		return assignment.GradeAssignment{}, assignment.ErrInvalidGrade
	}
	stuOID, err := primitive.ObjectIDFromHex(ga.StudentID)
	if err != nil {
		return assignment.GradeAssignment{}, errors.Wrapf(err, "parsing student id %q", ga.StudentID)
	}
	subOID, err := primitive.ObjectIDFromHex(ga.SubjectID)
	if err != nil {
		return assignment.GradeAssignment{}, errors.Wrapf(err, "parsing subject id %q", ga.SubjectID)
	}
	asgOID, err := primitive.ObjectIDFromHex(ga.AssignmentID)
	if err != nil {
		return assignment.GradeAssignment{}, errors.Wrapf(err, "parsing assignment id %q", ga.AssignmentID)
	}

	doc := gradeAssignmentDoc{
		Student:    stuOID,
		Subject:    subOID,
		Assignment: asgOID,
		Grade:      string(ga.Grade),
	}
	res, err := repo.gradeCol.InsertOne(ctx, doc)
	if err != nil {
		return assignment.GradeAssignment{}, errors.Wrap(err, "inserting grade assignment")
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toGradeAssignment(), nil
}

func (repo *assignmentRepository) QueryAllGradeAssignments(ctx context.Context) ([]assignment.GradeAssignment, error) {
	cur, err := repo.gradeCol.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "querying grade assignments")
	}
	var docs []gradeAssignmentDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding grade assignments")
	}
	grades := make([]assignment.GradeAssignment, 0, len(docs))
	for _, doc := range docs {
		grades = append(grades, doc.toGradeAssignment())
	}
	return grades, nil
}

func (repo *assignmentRepository) GetGradeAssignmentByID(ctx context.Context, id string) (*assignment.GradeAssignment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing grade assignment id %q", id)
	}
	var doc gradeAssignmentDoc
	if err = repo.gradeCol.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "getting grade assignment")
	}
	ga := doc.toGradeAssignment()
	return &ga, nil
}

func (repo *assignmentRepository) DeleteGradeAssignmentByID(ctx context.Context, id string) (*assignment.GradeAssignment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing grade assignment id %q", id)
	}
	var doc gradeAssignmentDoc
	if err = repo.gradeCol.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "deleting grade assignment")
	}
	ga := doc.toGradeAssignment()
	return &ga, nil
}
