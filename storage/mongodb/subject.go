package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/subject"
)

type subjectDoc struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Title       string               `bson:"title"`
	Assignments []primitive.ObjectID `bson:"assignments"`
}

func (doc subjectDoc) toSubject() subject.Subject {
	assignments := make([]string, 0, len(doc.Assignments))
	for _, oid := range doc.Assignments {
		assignments = append(assignments, oid.Hex())
	}
	return subject.Subject{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Assignments: assignments,
	}
}

type subjectRepository struct {
	col *mongo.Collection
}

var _ subject.Repository = (*subjectRepository)(nil) // interface compliance check

func NewSubjectRepository(client *mongo.Client, conf *core.Config) subject.Repository {
	return &subjectRepository{col: database(client, conf).Collection(subjectCollection)}
}

func (repo *subjectRepository) CreateSubject(ctx context.Context, sub subject.Subject) (subject.Subject, error) {
	doc := subjectDoc{
		Title:       sub.Title,
		Assignments: []primitive.ObjectID{},
	}
	res, err := repo.col.InsertOne(ctx, doc)
	if err != nil {
		return subject.Subject{}, errors.Wrap(err, "inserting subject")
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toSubject(), nil
}

func (repo *subjectRepository) QueryAllSubjects(ctx context.Context) ([]subject.Subject, error) {
	cur, err := repo.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "querying subjects")
	}
	var docs []subjectDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding subjects")
	}
	subjects := make([]subject.Subject, 0, len(docs))
	for _, doc := range docs {
		subjects = append(subjects, doc.toSubject())
	}
	return subjects, nil
}

func (repo *subjectRepository) GetSubjectByID(ctx context.Context, id string) (*subject.Subject, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing subject id %q", id)
	}
	var doc subjectDoc
	if err = repo.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "getting subject")
	}
	sub := doc.toSubject()
	return &sub, nil
}

func (repo *subjectRepository) AppendSubjectAssignment(ctx context.Context, subjectID, assignmentID string) (*subject.Subject, error) {
	oid, err := primitive.ObjectIDFromHex(subjectID)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing subject id %q", subjectID)
	}
	asgOID, err := primitive.ObjectIDFromHex(assignmentID)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing assignment id %q", assignmentID)
	}

	var doc subjectDoc
	err = repo.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"assignments": asgOID}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "appending assignment to subject")
	}
	sub := doc.toSubject()
	return &sub, nil
}

func (repo *subjectRepository) DeleteSubjectByID(ctx context.Context, id string) (*subject.Subject, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing subject id %q", id)
	}
	var doc subjectDoc
	if err = repo.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "deleting subject")
	}
	sub := doc.toSubject()
	return &sub, nil
}
