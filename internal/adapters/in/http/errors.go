package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps domain errors onto HTTP status codes:
//
//	not found            -> 404
//	validation           -> 400
//	invalid transition   -> 409
//	insufficient stock   -> 409
//	package overweight   -> 422
//	inventory adapter    -> 502
//
// Everything else is a 500 with a generic message; the real error goes to
// the log, not the client.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(ctx, http.StatusBadRequest, err)
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInsufficientInventory):
		return respond(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrPackageOverweight):
		return respond(ctx, http.StatusUnprocessableEntity, err)
	case errors.Is(err, errs.ErrAdapter):
		return respond(ctx, http.StatusBadGateway, err)
	default:
		ctx.Logger().Error(err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func respond(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
