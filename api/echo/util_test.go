package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/assignment"
	"github.com/trezcool/darasa/core/student"
	"github.com/trezcool/darasa/core/subject"
	avatarsvc "github.com/trezcool/darasa/services/avatar"
	dummydb "github.com/trezcool/darasa/storage/dummy"
)

type testEnv struct {
	server         *Server
	conf           *core.Config
	studentRepo    student.Repository
	subjectRepo    subject.Repository
	assignmentRepo assignment.Repository
}

func setup(t *testing.T, opts ...func(*core.Config)) testEnv {
	t.Helper()

	conf := &core.Config{TestMode: true}
	conf.Media.Root = t.TempDir()
	conf.Media.AvatarURL = "http://127.0.0.1:0" // unreachable; media tests override
	for _, opt := range opts {
		opt(conf)
	}

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	studentRepo := dummydb.NewStudentRepository(db)
	subjectRepo := dummydb.NewSubjectRepository(db)
	assignmentRepo := dummydb.NewAssignmentRepository(db)

	logger := nopLogger{}
	avatarSvc := avatarsvc.NewService(conf, logger)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)

	server := NewServer(ServerDeps{
		Conf:          conf,
		Logger:        logger,
		StudentSvc:    student.NewService(studentRepo, subjectRepo, avatarSvc, logger),
		SubjectSvc:    subject.NewService(subjectRepo, assignmentRepo),
		AssignmentSvc: assignment.NewService(assignmentRepo),
		AvatarSvc:     avatarSvc,
		Validate:      validate,
		Translator:    translator,
	})
	return testEnv{
		server:         server,
		conf:           conf,
		studentRepo:    studentRepo,
		subjectRepo:    subjectRepo,
		assignmentRepo: assignmentRepo,
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func createStudent(t *testing.T, repo student.Repository, first, last string) student.Student {
	t.Helper()
	stu, err := repo.CreateStudent(context.Background(), student.Student{
		FirstName: first,
		LastName:  last,
		Subjects:  []string{},
	})
	if err != nil {
		t.Fatalf("createStudent() failed: %v", err)
	}
	return stu
}

func createSubject(t *testing.T, repo subject.Repository, title string) subject.Subject {
	t.Helper()
	sub, err := repo.CreateSubject(context.Background(), subject.Subject{
		Title:       title,
		Assignments: []string{},
	})
	if err != nil {
		t.Fatalf("createSubject() failed: %v", err)
	}
	return sub
}

func createAssignment(t *testing.T, repo assignment.Repository, title string) assignment.Assignment {
	t.Helper()
	asg, err := repo.CreateAssignment(context.Background(), assignment.Assignment{Title: title})
	if err != nil {
		t.Fatalf("createAssignment() failed: %v", err)
	}
	return asg
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decodeBody() failed: %v; body: %s", err, rec.Body.String())
	}
	return body
}
