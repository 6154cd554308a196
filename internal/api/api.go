// Package api exposes a read-only HTTP view of the recorded ledger.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oswaldo-hello/capirubot/internal/ledger"
)

// Handler serves the transaction read endpoints.
type Handler struct {
	store ledger.Store
	log   zerolog.Logger
}

// NewHandler creates an API handler over the given store.
func NewHandler(store ledger.Store, log zerolog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// NewRouter builds the Gin engine with all routes registered.
func NewRouter(store ledger.Store, log zerolog.Logger) *gin.Engine {
	h := NewHandler(store, log)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", h.Health)
	r.GET("/api/transactions", h.ListTransactions)

	return r
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListTransactions handles GET /api/transactions. Rows come back
// header-keyed, exactly as stored in the sheet.
func (h *Handler) ListTransactions(c *gin.Context) {
	rows, err := h.store.ReadAll(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to read transactions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": rows,
		"count":        len(rows),
	})
}
