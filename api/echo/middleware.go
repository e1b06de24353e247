package echoapi

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// requireBodyFields rejects requests whose JSON body lacks any of the given
// top-level keys. It is a coarse presence pre-check: the handler's struct
// validation still runs afterwards and may reject the same field again on
// shape or length.
func requireBodyFields(fields ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			body, err := ioutil.ReadAll(ctx.Request().Body)
			if err != nil {
				return errors.Wrap(err, "reading request body")
			}
			ctx.Request().Body = ioutil.NopCloser(bytes.NewReader(body)) // rewind for Bind

			var data map[string]json.RawMessage
			if err = json.Unmarshal(body, &data); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body")
			}

			var missing []string
			for _, field := range fields {
				if _, ok := data[field]; !ok {
					missing = append(missing, field)
				}
			}
			if len(missing) > 0 {
				return echo.NewHTTPError(http.StatusBadRequest, "missing required fields: "+strings.Join(missing, ", "))
			}
			return next(ctx)
		}
	}
}
