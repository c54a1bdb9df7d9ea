package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgtype"

	"musicdb/internal/store"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// A null date is absent as far as `required` is concerned.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(pgtype.Date); ok && d.Valid {
			return d.Time
		}
		return nil
	}, pgtype.Date{})
	return v
}

// fieldError is one entry of a 422 response body.
type fieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

type validationResponse struct {
	Detail []fieldError `json:"detail"`
}

func writeValidation(w http.ResponseWriter, errs ...fieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Detail: errs})
}

// decodeBody reads a JSON object into dst and runs its validation tags.
// It reports false after writing a 422 response.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeValidation(w, decodeError(err))
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			writeValidation(w, fieldError{Loc: []any{"body"}, Msg: err.Error(), Type: "value_error"})
			return false
		}
		out := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, tagError(fe))
		}
		writeValidation(w, out...)
		return false
	}
	return true
}

func decodeError(err error) fieldError {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return fieldError{Loc: []any{"body"}, Msg: "field required", Type: "value_error.missing"}
	case errors.As(err, &typeErr):
		loc := []any{"body"}
		if typeErr.Field != "" {
			loc = append(loc, typeErr.Field)
		}
		return fieldError{
			Loc:  loc,
			Msg:  fmt.Sprintf("value is not a valid %s", typeErr.Type),
			Type: "type_error." + typeErr.Type.Kind().String(),
		}
	default:
		return fieldError{Loc: []any{"body"}, Msg: err.Error(), Type: "value_error.jsondecode"}
	}
}

func tagError(fe validator.FieldError) fieldError {
	loc := []any{"body", fe.Field()}
	switch fe.Tag() {
	case "required":
		return fieldError{Loc: loc, Msg: "field required", Type: "value_error.missing"}
	case "email":
		return fieldError{Loc: loc, Msg: "value is not a valid email address", Type: "value_error.email"}
	default:
		return fieldError{Loc: loc, Msg: fe.Error(), Type: "value_error." + fe.Tag()}
	}
}

// parsePage reads skip and limit from the query string.
func parsePage(w http.ResponseWriter, r *http.Request) (store.Page, bool) {
	page := store.Page{Skip: 0, Limit: store.DefaultLimit}
	query := r.URL.Query()

	var errs []fieldError
	if raw := query.Get("skip"); raw != "" {
		n, ferr := queryInt("skip", raw, 0)
		if ferr != nil {
			errs = append(errs, *ferr)
		}
		page.Skip = n
	}
	if raw := query.Get("limit"); raw != "" {
		n, ferr := queryInt("limit", raw, 1)
		if ferr != nil {
			errs = append(errs, *ferr)
		}
		page.Limit = n
	}

	if len(errs) > 0 {
		writeValidation(w, errs...)
		return store.Page{}, false
	}
	return page, true
}

func queryInt(name, raw string, floor int) (int, *fieldError) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &fieldError{
			Loc:  []any{"query", name},
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		}
	}
	if n < floor {
		return 0, &fieldError{
			Loc:  []any{"query", name},
			Msg:  fmt.Sprintf("ensure this value is greater than or equal to %d", floor),
			Type: "value_error.number.not_ge",
		}
	}
	return n, nil
}

// pathID parses the named path variable as an integer id.
func pathID(w http.ResponseWriter, vars map[string]string, name string) (int64, bool) {
	ids, ok := pathIDs(w, vars, name)
	if !ok {
		return 0, false
	}
	return ids[0], true
}

// pathIDs parses several path variables, reporting every bad one at once.
func pathIDs(w http.ResponseWriter, vars map[string]string, names ...string) ([]int64, bool) {
	ids := make([]int64, len(names))
	var errs []fieldError
	for i, name := range names {
		id, err := strconv.ParseInt(vars[name], 10, 64)
		if err != nil {
			errs = append(errs, fieldError{
				Loc:  []any{"path", name},
				Msg:  "value is not a valid integer",
				Type: "type_error.integer",
			})
			continue
		}
		ids[i] = id
	}
	if len(errs) > 0 {
		writeValidation(w, errs...)
		return nil, false
	}
	return ids, true
}
