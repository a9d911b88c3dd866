package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "validation",
			err:         e.NewValidationError([]e.Violation{{Field: "name", Message: "must not be null"}}),
			wantCode:    http.StatusBadRequest,
			wantMessage: "validation failed",
		},
		{name: "bad body", err: e.Wrap("unexpected EOF", e.ErrInvalidRequestBody), wantCode: http.StatusBadRequest, wantMessage: "invalid request body"},
		{name: "bad page", err: e.Wrap("op", e.ErrInvalidPageRequest), wantCode: http.StatusBadRequest, wantMessage: "invalid page request"},
		{
			name:        "typed not found",
			err:         e.Wrap("op", e.NewNotFoundError("Product", "code", "X1")),
			wantCode:    http.StatusNotFound,
			wantMessage: "Product was not found for parameters {code=X1}",
		},
		{name: "plain not found", err: e.ErrNotFound, wantCode: http.StatusNotFound, wantMessage: "entity not found"},
		{name: "duplicate", err: e.Wrap("cpf_unique", e.ErrDuplicateKey), wantCode: http.StatusConflict, wantMessage: "duplicate key"},
		{name: "unknown", err: errors.New("connection reset by peer"), wantCode: http.StatusInternalServerError, wantMessage: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ToHTTPResponse(tt.err)

			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}
