package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"newsboard/internal/constants"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate
)

// InitValidator initializes the validator.
func InitValidator() {
	validate = validator.New()

	// Register function to get json tag names instead of struct field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	log.Info().Msg("Validator initialized")
}

// GetValidator returns the singleton validator instance
func GetValidator() *validator.Validate {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// DecodeJSON decodes a JSON request body into the provided struct. Every
// decode failure — empty body, malformed JSON, wrong field type — is a
// validation error with the generic message; unknown fields are ignored so
// clients may send extra properties.
func DecodeJSON(r *http.Request, v interface{}) error {
	// Limit the size of the request body to prevent DOS attacks
	r.Body = http.MaxBytesReader(nil, r.Body, constants.MaxRequestBodySize)

	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(v); err != nil {
		var unmarshalTypeError *json.UnmarshalTypeError

		switch {
		case errors.Is(err, io.EOF):
			return NewBadRequestError()
		case errors.As(err, &unmarshalTypeError):
			log.Debug().
				Str("field", unmarshalTypeError.Field).
				Str("expected", unmarshalTypeError.Type.String()).
				Msg("Request body field has wrong JSON type")
			return NewBadRequestError()
		default:
			log.Debug().Err(err).Msg("Failed to decode request body")
			return NewBadRequestError()
		}
	}

	return nil
}

// ValidateStruct validates a struct using the validator. Failures collapse
// to the generic validation error; the offending fields are logged at debug
// level only.
func ValidateStruct(v interface{}) error {
	err := GetValidator().Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			fields = append(fields, e.Field())
		}
		log.Debug().Strs("fields", fields).Msg("Payload validation failed")
	}

	return NewBadRequestError()
}

// DecodeAndValidate decodes a JSON request body and validates it.
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil {
		return err
	}
	return ValidateStruct(v)
}

// ParseID parses a numeric path parameter. A non-numeric value is a
// validation error; a syntactically valid but absent id is an existence
// failure reported downstream.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NewBadRequestError()
	}
	return id, nil
}

// ParseOptionalUint parses an optional non-negative integer query parameter
// such as limit or offset. An empty value yields zero.
func ParseOptionalUint(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, NewBadRequestError()
	}
	return n, nil
}

// InAllowList reports whether value is one of the allowed values.
func InAllowList(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
