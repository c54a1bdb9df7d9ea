package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// createShape is a validated request body that becomes a new row.
type createShape[T any] interface {
	row() T
}

// updateShape is a validated request body that becomes a partial update.
type updateShape[P any] interface {
	patch() P
}

// registerEntity mounts list, create, read, update and delete handlers for
// one entity under prefix. The zero shape values only fix the request types.
func registerEntity[T, P any, C createShape[T], U updateShape[P]](
	router *mux.Router,
	prefix, noun string,
	svc EntityService[T, P],
	_ C,
	_ U,
) {
	item := prefix + "{id}/"

	router.HandleFunc(prefix, func(w http.ResponseWriter, r *http.Request) {
		page, ok := parsePage(w, r)
		if !ok {
			return
		}
		rows, err := svc.List(r.Context(), page)
		if err != nil {
			writeServiceError(w, r, noun, err)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}).Methods(http.MethodGet)

	router.HandleFunc(prefix, func(w http.ResponseWriter, r *http.Request) {
		var body C
		if !decodeBody(w, r, &body) {
			return
		}
		created, err := svc.Create(r.Context(), body.row())
		if err != nil {
			writeServiceError(w, r, noun, err)
			return
		}
		writeJSON(w, http.StatusOK, created)
	}).Methods(http.MethodPost)

	router.HandleFunc(item, func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, mux.Vars(r), "id")
		if !ok {
			return
		}
		row, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, noun, err)
			return
		}
		writeJSON(w, http.StatusOK, row)
	}).Methods(http.MethodGet)

	router.HandleFunc(item, func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, mux.Vars(r), "id")
		if !ok {
			return
		}
		var body U
		if !decodeBody(w, r, &body) {
			return
		}
		updated, err := svc.Update(r.Context(), id, body.patch())
		if err != nil {
			writeServiceError(w, r, noun, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}).Methods(http.MethodPut)

	router.HandleFunc(item, func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, mux.Vars(r), "id")
		if !ok {
			return
		}
		deleted, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, noun, err)
			return
		}
		writeJSON(w, http.StatusOK, deleted)
	}).Methods(http.MethodDelete)
}

// linkRoute names the path and body keys of one association.
type linkRoute struct {
	prefix      string
	noun        string
	left, right string
}

// registerLink mounts list, create, read and delete handlers for one
// association. Rows are addressed as prefix/{left}/{right}/.
func registerLink[T any](router *mux.Router, route linkRoute, svc LinkService[T], build func(left, right int64) T) {
	item := route.prefix + "{" + route.left + "}/{" + route.right + "}/"

	router.HandleFunc(route.prefix, func(w http.ResponseWriter, r *http.Request) {
		page, ok := parsePage(w, r)
		if !ok {
			return
		}
		rows, err := svc.List(r.Context(), page)
		if err != nil {
			writeServiceError(w, r, route.noun, err)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}).Methods(http.MethodGet)

	router.HandleFunc(route.prefix, func(w http.ResponseWriter, r *http.Request) {
		left, right, ok := decodeLinkBody(w, r, route)
		if !ok {
			return
		}
		created, err := svc.Create(r.Context(), build(left, right))
		if err != nil {
			writeServiceError(w, r, route.noun, err)
			return
		}
		writeJSON(w, http.StatusOK, created)
	}).Methods(http.MethodPost)

	router.HandleFunc(item, func(w http.ResponseWriter, r *http.Request) {
		ids, ok := pathIDs(w, mux.Vars(r), route.left, route.right)
		if !ok {
			return
		}
		row, err := svc.Get(r.Context(), ids[0], ids[1])
		if err != nil {
			writeServiceError(w, r, route.noun, err)
			return
		}
		writeJSON(w, http.StatusOK, row)
	}).Methods(http.MethodGet)

	router.HandleFunc(item, func(w http.ResponseWriter, r *http.Request) {
		ids, ok := pathIDs(w, mux.Vars(r), route.left, route.right)
		if !ok {
			return
		}
		deleted, err := svc.Delete(r.Context(), ids[0], ids[1])
		if err != nil {
			writeServiceError(w, r, route.noun, err)
			return
		}
		writeJSON(w, http.StatusOK, deleted)
	}).Methods(http.MethodDelete)
}
