package httpapi

import (
	"errors"
	"net/http"

	"github.com/mhartwell/equinesocial/internal/common"
)

func (s *Server) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("input_email")
	password := r.PostFormValue("input_password")
	if email == "" || password == "" {
		writeBadRequest(w, "email and password are required")
		return
	}

	token, err := s.users.Login(r.Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Message: "no account registered for this email"})
		case errors.Is(err, common.ErrorUnauthorized):
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Message: "incorrect email or password"})
		default:
			writeError(w, err)
		}
		return
	}

	http.SetCookie(w, s.sessionCookie(token, int(s.sessionValidity.Seconds())))
	writeJSON(w, http.StatusOK, map[string]string{"message": "login successful"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, s.sessionCookie("", -1))
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (s *Server) handleAddUser(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("input_email")
	password := r.PostFormValue("input_password")
	firstName := r.PostFormValue("input_first_name")
	lastName := r.PostFormValue("input_last_name")

	if email == "" || password == "" {
		writeBadRequest(w, "email and password are required")
		return
	}

	user, err := s.users.Register(r.Context(), email, password, firstName, lastName)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "registration_failed", Message: "could not create the account"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "account created successfully",
		"user":    newUserView(user),
	})
}

func (s *Server) handleUserPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid user id")
		return
	}

	user, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	posts, err := s.posts.ListWall(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	horses, err := s.horses.ListByOwner(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":   newUserView(user),
		"posts":  newPostViews(posts),
		"horses": newHorseViews(horses),
	})
}

func (s *Server) handleMyConnections(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.ListConnections(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": newUserViews(users)})
}

func (s *Server) handleUserUpdate(w http.ResponseWriter, r *http.Request) {
	principal := principalID(r.Context())

	fields := collectFields(r, userFormFields)

	if err := s.users.UpdateProfile(r.Context(), principal, principal, fields); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "profile updated"})
}

func (s *Server) handleUpdateUserPassword(w http.ResponseWriter, r *http.Request) {
	principal := principalID(r.Context())

	oldPassword := r.PostFormValue("input_old_password")
	newPassword := r.PostFormValue("input_new_password")
	if oldPassword == "" || newPassword == "" {
		writeBadRequest(w, "old and new passwords are required")
		return
	}

	if err := s.users.ChangePassword(r.Context(), principal, oldPassword, newPassword); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Message: "current password is incorrect"})
			return
		}
		writeError(w, err)
		return
	}

	// old sessions keep working until expiry; drop at least this one
	http.SetCookie(w, s.sessionCookie("", -1))
	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated, please log in again"})
}
