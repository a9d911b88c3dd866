package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/online-sales/internal/usecase"
	"github.com/DRSN-tech/online-sales/pkg/e"
)

const deletedMessage = "Successfully deleted"

type ErrorResponse struct {
	Code       int           `json:"code"`
	Message    string        `json:"message"`
	Violations []e.Violation `json:"violations,omitempty"`
}

func NewErrorResponse(code int, message string, violations []e.Violation) *ErrorResponse {
	return &ErrorResponse{
		Code:       code,
		Message:    message,
		Violations: violations,
	}
}

// ToHTTPResponse переводит ошибку сценария в HTTP-ответ. Текст внутренних ошибок наружу не попадает.
func ToHTTPResponse(err error) *ErrorResponse {
	var (
		validationErr *e.ValidationError
		notFoundErr   *e.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		return NewErrorResponse(http.StatusBadRequest, e.ErrValidation.Error(), validationErr.Violations)
	case errors.Is(err, e.ErrInvalidRequestBody):
		return NewErrorResponse(http.StatusBadRequest, e.ErrInvalidRequestBody.Error(), nil)
	case errors.Is(err, e.ErrInvalidPageRequest):
		return NewErrorResponse(http.StatusBadRequest, e.ErrInvalidPageRequest.Error(), nil)
	case errors.As(err, &notFoundErr):
		return NewErrorResponse(http.StatusNotFound, notFoundErr.Error(), nil)
	case errors.Is(err, e.ErrNotFound):
		return NewErrorResponse(http.StatusNotFound, e.ErrNotFound.Error(), nil)
	case errors.Is(err, e.ErrDuplicateKey):
		return NewErrorResponse(http.StatusConflict, e.ErrDuplicateKey.Error(), nil)
	default:
		return NewErrorResponse(http.StatusInternalServerError, e.ErrInternalServerError.Error(), nil)
	}
}

func WriteError(w http.ResponseWriter, err error) {
	resp := ToHTTPResponse(err)
	WriteSuccess(w, resp.Code, resp)
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func WriteText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(text))
}

// decodeBody читает JSON-тело запроса ограниченного размера.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	const maxBodySize = 1 << 20

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrInvalidRequestBody)
	}

	return nil
}

// parsePageRequest разбирает page, size и повторяемый sort=field[,asc|desc].
func parsePageRequest(r *http.Request) (usecase.PageRequest, error) {
	query := r.URL.Query()

	page, err := queryInt(query.Get("page"), 0)
	if err != nil {
		return usecase.PageRequest{}, e.Wrap("page", err)
	}

	size, err := queryInt(query.Get("size"), usecase.DefaultPageSize)
	if err != nil {
		return usecase.PageRequest{}, e.Wrap("size", err)
	}

	var orders []usecase.SortOrder
	for _, raw := range query["sort"] {
		order, err := parseSortOrder(raw)
		if err != nil {
			return usecase.PageRequest{}, err
		}
		orders = append(orders, order)
	}

	req := usecase.NewPageRequest(page, size, orders)
	if err := req.Normalize().CheckOffset(); err != nil {
		return usecase.PageRequest{}, err
	}

	return req, nil
}

func queryInt(raw string, defaultValue int) (int, error) {
	if raw == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, e.Wrap(fmt.Sprintf("%q is not a number", raw), e.ErrInvalidPageRequest)
	}

	return n, nil
}

func parseSortOrder(raw string) (usecase.SortOrder, error) {
	field, direction, _ := strings.Cut(raw, ",")
	field = strings.TrimSpace(field)
	if field == "" {
		return usecase.SortOrder{}, e.Wrap(fmt.Sprintf("sort %q", raw), e.ErrInvalidPageRequest)
	}

	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "", "asc":
		return usecase.SortOrder{Field: field}, nil
	case "desc":
		return usecase.SortOrder{Field: field, Desc: true}, nil
	default:
		return usecase.SortOrder{}, e.Wrap(fmt.Sprintf("sort direction %q", direction), e.ErrInvalidPageRequest)
	}
}
