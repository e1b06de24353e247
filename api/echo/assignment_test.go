package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_assignmentApi_create(t *testing.T) {
	env := setup(t)

	tests := []httpTest{
		{
			name:     "valid",
			body:     []byte(`{"title": "Assignment 1"}`),
			wantCode: http.StatusOK,
		},
		{
			name:     "empty title",
			body:     []byte(`{"title": ""}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"title": "this field is required"}`),
		},
		{
			name:     "missing title rejected before validation",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error": "missing required fields: title"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/assignment", tt.body)
			env.server.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantData != nil {
				assert.JSONEq(t, string(tt.wantData), rec.Body.String())
			}
		})
	}
}

func Test_assignmentApi_grade(t *testing.T) {
	env := setup(t)

	tests := []httpTest{
		{
			name:     "invalid grade rejected at the store",
			body:     []byte(`{"studentId": "s1", "subjectId": "x1", "assignmentId": "a1", "grade": "Z"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"grade": "grade must be one of A, B, C, D or E"}`),
		},
		{
			name:     "missing grade rejected before validation",
			body:     []byte(`{"studentId": "s1", "subjectId": "x1", "assignmentId": "a1"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error": "missing required fields: grade"}`),
		},
		{
			name:     "empty studentId",
			body:     []byte(`{"studentId": "", "subjectId": "x1", "assignmentId": "a1", "grade": "A"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"studentId": "this field is required"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/assignment/grade", tt.body)
			env.server.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantData != nil {
				assert.JSONEq(t, string(tt.wantData), rec.Body.String())
			}
		})
	}
}

// references are not checked for existence: grading against ids that resolve
// to nothing still creates a record whose fields round-trip the input.
func Test_assignmentApi_grade_danglingReferences(t *testing.T) {
	env := setup(t)

	req, rec := newRequest(http.MethodPost, "/assignment/grade",
		[]byte(`{"studentId": "ghost-student", "subjectId": "ghost-subject", "assignmentId": "ghost-assignment", "grade": "A"}`))
	env.server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "assignment graded", body["message"])

	ga, _ := body["gradeAssignment"].(map[string]interface{})
	require.NotNil(t, ga)
	assert.NotEmpty(t, ga["id"])
	assert.Equal(t, "ghost-student", ga["studentId"])
	assert.Equal(t, "ghost-subject", ga["subjectId"])
	assert.Equal(t, "ghost-assignment", ga["assignmentId"])
	assert.Equal(t, "A", ga["grade"])
}
