package httpapi

import (
	"net/http"
)

func (s *Server) handleAddHorse(w http.ResponseWriter, r *http.Request) {
	principal := principalID(r.Context())

	name := r.PostFormValue("input_horse_name")
	if name == "" {
		writeBadRequest(w, "horse name is required")
		return
	}

	horse, err := s.horses.Create(r.Context(), principal, name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "horse added",
		"horse":   newHorseView(horse),
	})
}

func (s *Server) handleHorsePage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid horse id")
		return
	}

	horse, owner, err := s.horses.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"horse": newHorseView(horse),
		"owner": newUserView(owner),
	})
}

func (s *Server) handleHorseUpdate(w http.ResponseWriter, r *http.Request) {
	principal := principalID(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid horse id")
		return
	}

	fields := collectFields(r, horseFormFields)

	if err := s.horses.UpdateProfile(r.Context(), principal, id, fields); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "horse profile updated"})
}
