package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/assignment"
)

type assignmentApi struct {
	svc      *assignment.Service
	validate *validator.Validate
}

func registerAssignmentAPI(e *echo.Echo, deps ServerDeps) {
	api := assignmentApi{
		svc:      deps.AssignmentSvc,
		validate: deps.Validate,
	}

	g := e.Group("/assignment")
	g.POST("", api.create, requireBodyFields("title"))
	g.POST("/grade", api.grade, requireBodyFields("studentId", "subjectId", "assignmentId", "grade"))
}

// Handlers

func (api *assignmentApi) create(ctx echo.Context) error {
	var data assignment.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	asg, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"message":    "new assignment created",
		"assignment": asg,
	})
}

func (api *assignmentApi) grade(ctx echo.Context) error {
	var data assignment.NewGradeAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewGradeAssignment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ga, err := api.svc.RecordGrade(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"message":         "assignment graded",
		"gradeAssignment": ga,
	})
}
