package adapthttp

import (
	"fmt"
	"net/http"

	"healthlog/internal/app"
	"healthlog/internal/domain"
)

// registerEntryRoutes mounts the owner-scoped CRUD routes of one entry
// collection under /users/{user_id}/<collection>.
func registerEntryRoutes[E any, In domain.Input](s *Server, mux *http.ServeMux, collection string, svc *app.EntryService[E, In]) {
	base := "/users/{user_id}/" + collection
	item := base + "/{entry_id}"

	mux.Handle("GET "+base, s.guard(listEntries(s, svc)))
	mux.Handle("POST "+base, s.guard(createEntry(s, svc)))
	mux.Handle("GET "+item, s.guard(getEntry(s, svc)))
	mux.Handle("PUT "+item, s.guard(updateEntry(s, svc)))
	mux.Handle("DELETE "+item, s.guard(deleteEntry(s, svc)))
}

func listEntries[E any, In domain.Input](s *Server, svc *app.EntryService[E, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), claimsFrom(r.Context()).UserID)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func getEntry[E any, In domain.Input](s *Server, svc *app.EntryService[E, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "entry_id")
		if !ok {
			s.writeError(w, r, &domain.NotFoundError{Resource: svc.Resource()})
			return
		}
		entry, err := svc.Get(r.Context(), claimsFrom(r.Context()).UserID, id)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, entry)
	}
}

func createEntry[E any, In domain.Input](s *Server, svc *app.EntryService[E, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := parseJSON(r, &in); err != nil {
			s.writeError(w, r, err)
			return
		}
		entry, err := svc.Create(r.Context(), claimsFrom(r.Context()).UserID, in)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)
	}
}

func updateEntry[E any, In domain.Input](s *Server, svc *app.EntryService[E, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "entry_id")
		if !ok {
			s.writeError(w, r, &domain.NotFoundError{Resource: svc.Resource()})
			return
		}
		var in In
		if err := parseJSON(r, &in); err != nil {
			s.writeError(w, r, err)
			return
		}
		entry, err := svc.Update(r.Context(), claimsFrom(r.Context()).UserID, id, in)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, entry)
	}
}

func deleteEntry[E any, In domain.Input](s *Server, svc *app.EntryService[E, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "entry_id")
		if !ok {
			s.writeError(w, r, &domain.NotFoundError{Resource: svc.Resource()})
			return
		}
		if err := svc.Delete(r.Context(), claimsFrom(r.Context()).UserID, id); err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, messageBody{Message: fmt.Sprintf("The %s has been deleted", svc.Resource())})
	}
}
