package utils

import (
	"clinic-service/internal/pkg/exceptions"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// ParseIDParam reads a positive int64 identifier from the chi URL params.
func ParseIDParam(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, paramName)
	}
	if id <= 0 {
		return 0, exceptions.ErrURLParamIDValidation(nil, paramName)
	}
	return id, nil
}

// DecodeAndValidate binds the JSON body into request and runs struct validation on it.
func DecodeAndValidate(r *http.Request, request interface{}) error {
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	err = ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
