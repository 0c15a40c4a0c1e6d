package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxBodyBytes caps request bodies on both deployment shapes.
const MaxBodyBytes = 1_048_576

// decodeJSON decodes a single JSON object from body into dst. Malformed JSON
// and type mismatches come back as a *ValidationError naming the offending
// field, so the client gets the same shape of error for every kind of bad
// input. Unknown fields are ignored.
func decodeJSON(body []byte, dst any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return ErrEmptyBody
	}
	if len(body) > MaxBodyBytes {
		return newValidationError("body", fmt.Sprintf("must not be larger than %d bytes", MaxBodyBytes))
	}

	dec := json.NewDecoder(bytes.NewReader(body))

	err := dec.Decode(dst)
	if err != nil {
		var (
			syntaxError        *json.SyntaxError
			unmarshalTypeError *json.UnmarshalTypeError
		)

		switch {
		case errors.As(err, &syntaxError):
			return newValidationError("body", fmt.Sprintf("contains badly-formed JSON (at character %d)", syntaxError.Offset))

		case errors.Is(err, io.ErrUnexpectedEOF):
			return newValidationError("body", "contains badly-formed JSON")

		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field == "" {
				return newValidationError("body", "must be a JSON object")
			}
			field, _, _ := strings.Cut(unmarshalTypeError.Field, ".")
			return newValidationError(field, "must be of type "+typeName(unmarshalTypeError.Type.String()))

		default:
			return err
		}
	}

	// Ensure there is no second JSON value in the body.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return newValidationError("body", "must only contain a single JSON value")
	}

	return nil
}

func typeName(goType string) string {
	switch strings.TrimLeft(goType, "*") {
	case "int", "int64":
		return "integer"
	case "[]string":
		return "array of strings"
	default:
		return strings.TrimLeft(goType, "*")
	}
}
