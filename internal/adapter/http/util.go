package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"healthlog/internal/app"
	"healthlog/internal/domain"
)

type errorBody struct {
	Error   bool `json:"error"`
	Message any  `json:"message"`
}

type messageBody struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError is the single place where errors become HTTP responses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr     *domain.ValidationError
		notFound *domain.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		if len(verr.Fields) > 0 {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: true, Message: verr.Fields})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Error: true, Message: verr.Message})
	case errors.Is(err, errTokenMissing):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: true, Message: "Unauthorized: Token not present"})
	case errors.Is(err, app.ErrTokenExpired):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: true, Message: "Unauthorized: Token has expired"})
	case errors.Is(err, app.ErrTokenInvalid):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: true, Message: "Unauthorized: Token is not valid"})
	case errors.Is(err, errSSOFailed):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: true, Message: "Unauthorized: SSO login failed"})
	case errors.Is(err, app.ErrIncorrectPassword):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: true, Message: "Incorrect password"})
	case errors.Is(err, app.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorBody{Error: true, Message: "Forbidden: You can only access your account"})
	case errors.Is(err, app.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: true, Message: "User not found"})
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: true, Message: fmt.Sprintf("The %s could not be found", notFound.Resource)})
	case errors.Is(err, errSSODisabled):
		writeJSON(w, http.StatusNotFound, errorBody{Error: true, Message: "SSO is not enabled"})
	case errors.Is(err, app.ErrUserExists):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: true, Message: "User already exists"})
	case errors.Is(err, app.ErrEmailTaken):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: true, Message: "Email already exists"})
	default:
		s.log.Error(r.Context(), "request failed",
			"request_id", requestIDFrom(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: true, Message: "Internal server error"})
	}
}

// parseJSON decodes the request body into dst. An empty body leaves dst at
// its zero value so validation reports the missing fields; a value of the
// wrong JSON type is reported against its field.
func parseJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	case errors.As(err, &typeErr) && typeErr.Field != "":
		// Fields promoted from embedded structs arrive as "Profile.age".
		field := typeErr.Field[strings.LastIndexByte(typeErr.Field, '.')+1:]
		return &domain.ValidationError{Fields: []domain.FieldError{{
			Field:   field,
			Message: fmt.Sprintf("%s must be %s", field, jsonKind(typeErr.Type)),
		}}}
	default:
		return domain.Invalid("Request body is not valid JSON")
	}
}

// jsonKind names the JSON value a Go type decodes from.
func jsonKind(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}

// pathID parses an integer path segment.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	return id, err == nil
}
