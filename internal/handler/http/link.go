package http

import (
	"encoding/json"
	"net/http"

	"github.com/ekalin/fintrack/internal/logger"
	"github.com/ekalin/fintrack/internal/utils"
	"github.com/ekalin/fintrack/models"
)

func (h *Handler) createLinkToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	session, err := h.services.LinkService.CreateLinkSession(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("link session creation failed")
		writeError(w, "link session creation failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) exchangeToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ExchangeTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.LinkService.ExchangePublicToken(ctx, userID, req.PublicToken); err != nil {
		log.Err(err).Int64("id", userID).Msg("public token exchange failed")
		writeError(w, "public token exchange failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Token exchanged successfully"}, http.StatusOK)
}
