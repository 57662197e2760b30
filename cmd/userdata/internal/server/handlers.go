package server

import (
	"encoding/json"
	"net/http"

	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/constants"
	apierrors "github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/errors"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/users"
)

// healthHandler reports liveness and database reachability.
// Always returns HTTP 200; clients check the "status" field.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	status := "live"
	if err := s.db.Ping(r.Context()); err != nil {
		status = "down"
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  status,
		"name":    "userdata",
		"version": s.version,
	})
}

// statusHandler is the unauthenticated API liveness probe.
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// listUsersHandler returns every user. The password hash never serializes
// (json:"-" on the model); everything else is visible to the authenticated
// caller.
func (s *Server) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		s.errors.WriteError(w, r, apierrors.MapDatabaseError(err))
		return
	}
	if list == nil {
		list = []*users.User{}
	}

	s.writeJSON(w, http.StatusOK, list)
}

// createUserRequest is the POST /api/v1/users payload.
type createUserRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	SSN       string `json:"ssn"`
	Password  string `json:"password"`
	IP        string `json:"ip"`
	LastLogin string `json:"last_login"`
	UserAgent string `json:"user_agent"`
}

// createUserHandler inserts a user. The plaintext password is hashed by the
// store and never persisted or logged.
func (s *Server) createUserHandler(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errors.WriteError(w, r, apierrors.NewBadRequestError("Invalid JSON payload"))
		return
	}

	if req.Email == "" || req.Password == "" {
		s.errors.WriteError(w, r, apierrors.NewBadRequestError("email and password are required"))
		return
	}

	user := &users.User{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		SSN:       req.SSN,
		IP:        req.IP,
		LastLogin: req.LastLogin,
		UserAgent: req.UserAgent,
	}
	if err := s.store.Create(r.Context(), user, req.Password); err != nil {
		s.errors.WriteError(w, r, apierrors.MapDatabaseError(err))
		return
	}

	s.writeJSON(w, http.StatusCreated, user)
}

// notFoundHandler handles unknown routes.
func (s *Server) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	s.errors.WriteError(w, r, apierrors.NewNotFoundError("Endpoint"))
}

// writeJSON writes a JSON response with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set(constants.HeaderContentType, constants.MIMEApplicationJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.ErrorWithErr("Failed to encode response", err)
	}
}
