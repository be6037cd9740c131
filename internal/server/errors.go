package server

import (
	"errors"
	"net/http"

	"github.com/morgan/talent-directory/internal/embedding"
	"github.com/morgan/talent-directory/internal/schemas"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		validationErr *schemas.ValidationError
		gatewayErr    *embedding.GatewayError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &gatewayErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
