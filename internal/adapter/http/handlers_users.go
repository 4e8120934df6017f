package adapthttp

import (
	"net/http"

	"inhome/internal/domain"
)

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch domain.ProfilePatch
	if err := parseJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := s.auth.UpdateProfile(r.Context(), patch)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	var change domain.PasswordChange
	if err := parseJSON(r, &change); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.auth.UpdatePassword(r.Context(), r.PathValue("id"), change); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var fields domain.NewUser
	if err := parseJSON(r, &fields); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := s.auth.CreateUser(r.Context(), fields)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"user": user})
}

func (s *Server) handleFreezeUser(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.FreezeUser(r.Context(), r.PathValue("id")); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
