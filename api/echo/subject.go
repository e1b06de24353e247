package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/subject"
)

type subjectApi struct {
	svc      *subject.Service
	validate *validator.Validate
}

func registerSubjectAPI(e *echo.Echo, deps ServerDeps) {
	api := subjectApi{
		svc:      deps.SubjectSvc,
		validate: deps.Validate,
	}

	g := e.Group("/subject")
	g.POST("", api.create, requireBodyFields("title"))
	g.PUT("/:subjectId/assignment/:assignmentId", api.attachAssignment)
}

// Handlers

func (api *subjectApi) create(ctx echo.Context) error {
	var data subject.NewSubject
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSubject")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sub, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating subject")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "new subject created",
		"subject": sub,
	})
}

func (api *subjectApi) attachAssignment(ctx echo.Context) error {
	sub, err := api.svc.AttachAssignment(ctx.Request().Context(), ctx.Param("subjectId"), ctx.Param("assignmentId"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "assignment added to subject",
		"subject": sub,
	})
}
