package echoapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	avatarsvc "github.com/trezcool/darasa/services/avatar"
)

type mediaApi struct {
	avatars *avatarsvc.Service
}

func registerMediaAPI(e *echo.Echo, deps ServerDeps) {
	api := mediaApi{avatars: deps.AvatarSvc}

	g := e.Group("/media")
	g.GET("/avatar/:id", api.avatar)
}

func (api *mediaApi) avatar(ctx echo.Context) error {
	// student avatar URLs carry a .jpg extension; the cache key is the bare id
	id := strings.TrimSuffix(ctx.Param("id"), ".jpg")
	img, err := api.avatars.Resolve(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "resolving avatar")
	}
	defer img.Close()
	return ctx.Stream(http.StatusOK, "image/jpeg", img)
}
