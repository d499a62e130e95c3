// In file: cmd/gateway/router.go
package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// newRouter registers the routes and wraps them in a CORS policy that allows
// every origin, method and header.
func newRouter(h *ChatHandler) http.Handler {
	engine := gin.Default()
	engine.GET("/", h.HandleRoot)
	engine.POST("/chat", h.HandleChat)
	engine.GET("/status", h.HandleStatus)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions, http.MethodHead},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(engine)
}
