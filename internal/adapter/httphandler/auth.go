package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/warehouse/internal/core/port"
)

// POST /auth JSON {username, password} (200 OK, 401 Unauthorized)

type AuthHandler struct {
	auth port.Authenticator
}

func RegisterAuth(mux *http.ServeMux, auth port.Authenticator) {
	h := AuthHandler{auth}
	mux.HandleFunc("POST /auth", h.Authenticate)
	mux.HandleFunc("OPTIONS /auth", preflight("POST, OPTIONS"))
	mux.HandleFunc("/auth", methodNotAllowed)
}

func (h AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.Authenticate"
	log := slog.With("op", op)

	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	token, err := h.auth.Authenticate(
		r.Context(), creds.Username, creds.Password,
	)
	if err != nil {
		writeDomainError(w, err)
		log.Warn("authentication rejected", "username", creds.Username)
		return
	}

	writeJSON(w, http.StatusOK, AccessToken{token})
	log.Info("token issued", "username", creds.Username)
}
