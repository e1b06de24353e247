package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/student"
)

type studentApi struct {
	svc      *student.Service
	validate *validator.Validate
}

func registerStudentAPI(e *echo.Echo, deps ServerDeps) {
	api := studentApi{
		svc:      deps.StudentSvc,
		validate: deps.Validate,
	}

	g := e.Group("/student")
	g.GET("", api.query)
	g.POST("", api.create, requireBodyFields("firstName", "lastName"))
	g.GET("/:id", api.retrieve)
	g.DELETE("/:id", api.destroy)
	g.POST("/:studentId/subject/:subjectId", api.assignSubject)
}

// Handlers

func (api *studentApi) query(ctx echo.Context) error {
	students, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	if len(students) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no students found")
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	stu, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "new student created",
		"student": stu,
	})
}

// retrieve serializes a JSON null for unknown ids, with a 200.
func (api *studentApi) retrieve(ctx echo.Context) error {
	stu, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting student")
	}
	return ctx.JSON(http.StatusOK, stu)
}

func (api *studentApi) destroy(ctx echo.Context) error {
	stu, err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ctx.JSON(http.StatusOK, stu)
}

func (api *studentApi) assignSubject(ctx echo.Context) error {
	stu, err := api.svc.AssignSubject(ctx.Request().Context(), ctx.Param("studentId"), ctx.Param("subjectId"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "subject assigned to student",
		"student": stu,
	})
}
