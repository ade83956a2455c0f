package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"stayfinder/shared/constant"
	"stayfinder/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

const (
	msgInvalidBody = "Invalid request body"
	msgInvalidForm = "Invalid form body"
)

var validate = val.New(val.WithRequiredStructEnabled())

// Decode reads the request body into data without running struct validation.
// JSON and URL-encoded form bodies are accepted; form values are matched on the json tag.
// Decoder errors are logged and the caller only sees a fixed message.
func Decode[T any](r *http.Request, data *T) error {
	body := r.Body

	if strings.HasPrefix(r.Header.Get(constant.RequestHeaderContentType), constant.ContentTypeFormURLEncoded) {
		converted, err := formToJSON(r)
		if err != nil {
			log.Warn().Err(err).Msg("failed to parse form body")

			return failure.BadRequestFromString(msgInvalidForm) //nolint:wrapcheck
		}

		body = io.NopCloser(bytes.NewReader(converted))
	}

	if err := json.NewDecoder(body).Decode(data); err != nil {
		log.Warn().Err(err).Msg("failed to decode request body")

		return failure.BadRequestFromString(msgInvalidBody) //nolint:wrapcheck
	}

	return nil
}

// Validate decodes the request body into data and then validates it against its struct tags.
// https://github.com/go-playground/validator
func Validate[T any](r *http.Request, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// formToJSON turns a form body into a flat JSON object. Empty values are dropped so that
// optional numeric fields stay unset.
func formToJSON(r *http.Request) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, constant.RequestMaxMemory))
	if err != nil {
		return nil, fmt.Errorf("failed to read form body: %w", err)
	}

	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse form values: %w", err)
	}

	fields := make(map[string]string, len(values))

	for key := range values {
		if v := values.Get(key); v != "" {
			fields[key] = v
		}
	}

	return json.Marshal(fields) //nolint:wrapcheck
}
