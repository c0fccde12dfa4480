package api

import (
	"context"
	"net/http"
	"time"

	authUsecase "notevault-backend/internal/auth/usecase"
	noteUsecase "notevault-backend/internal/note/usecase"
	"notevault-backend/pkg/config"
	"notevault-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	noteUsecase noteUsecase.NoteUsecase
	tokens      *token.Service
	config      *config.Config
	server      *http.Server
}

func NewHandler(authUc authUsecase.AuthUsecase, noteUc noteUsecase.NoteUsecase, tokens *token.Service, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase: authUc,
		noteUsecase: noteUc,
		tokens:      tokens,
		config:      cfg,
	}
}

func (h *Handler) Start(addr string) error {
	if h.config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", h.config.Origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.noteUsecase, h.tokens, h.config)

	h.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	err := h.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops accepting new requests and drains in-flight ones.
func (h *Handler) Shutdown(ctx context.Context) error {
	if h.server == nil {
		return nil
	}
	return h.server.Shutdown(ctx)
}
