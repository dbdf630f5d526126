package http

import (
	"net/http"

	"github.com/ekalin/fintrack/internal/logger"
	"github.com/ekalin/fintrack/internal/utils"
)

func (h *Handler) getTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	transactions, err := h.services.TransactionService.SyncTransactions(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("transaction sync failed")
		writeError(w, "transaction sync failed", statusFromError(err))
		return
	}

	log.Debug().Int64("id", userID).Int("count", len(transactions)).Msg("transactions synced")

	utils.WriteJSON(w, transactions, http.StatusOK)
}
