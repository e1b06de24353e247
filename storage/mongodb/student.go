package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/student"
)

type studentDoc struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	FirstName string               `bson:"firstName"`
	LastName  string               `bson:"lastName"`
	Avatar    string               `bson:"avatar,omitempty"`
	Subjects  []primitive.ObjectID `bson:"subjects"`
}

func (doc studentDoc) toStudent() student.Student {
	subjects := make([]string, 0, len(doc.Subjects))
	for _, oid := range doc.Subjects {
		subjects = append(subjects, oid.Hex())
	}
	return student.Student{
		ID:        doc.ID.Hex(),
		FirstName: doc.FirstName,
		LastName:  doc.LastName,
		Avatar:    doc.Avatar,
		Subjects:  subjects,
	}
}

type studentRepository struct {
	col *mongo.Collection
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(client *mongo.Client, conf *core.Config) student.Repository {
	return &studentRepository{col: database(client, conf).Collection(studentCollection)}
}

func (repo *studentRepository) CreateStudent(ctx context.Context, stu student.Student) (student.Student, error) {
	doc := studentDoc{
		FirstName: stu.FirstName,
		LastName:  stu.LastName,
		Avatar:    stu.Avatar,
		Subjects:  []primitive.ObjectID{},
	}
	res, err := repo.col.InsertOne(ctx, doc)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "inserting student")
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toStudent(), nil
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	cur, err := repo.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	var docs []studentDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding students")
	}
	students := make([]student.Student, 0, len(docs))
	for _, doc := range docs {
		students = append(students, doc.toStudent())
	}
	return students, nil
}

func (repo *studentRepository) GetStudentByID(ctx context.Context, id string) (*student.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing student id %q", id)
	}
	var doc studentDoc
	if err = repo.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "getting student")
	}
	stu := doc.toStudent()
	return &stu, nil
}

func (repo *studentRepository) SetStudentAvatar(ctx context.Context, id, avatar string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrapf(err, "parsing student id %q", id)
	}
	_, err = repo.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"avatar": avatar}})
	return errors.Wrap(err, "setting student avatar")
}

func (repo *studentRepository) AppendStudentSubject(ctx context.Context, studentID, subjectID string) (*student.Student, error) {
	oid, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing student id %q", studentID)
	}
	subOID, err := primitive.ObjectIDFromHex(subjectID)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing subject id %q", subjectID)
	}

	var doc studentDoc
	err = repo.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"subjects": subOID}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "appending subject to student")
	}
	stu := doc.toStudent()
	return &stu, nil
}

func (repo *studentRepository) DeleteStudentByID(ctx context.Context, id string) (*student.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing student id %q", id)
	}
	var doc studentDoc
	if err = repo.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "deleting student")
	}
	stu := doc.toStudent()
	return &stu, nil
}
