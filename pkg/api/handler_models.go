package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// modelsHandler handles GET /api/v1/models: the active model catalog in
// serving order (tier, then sort order).
func (s *Server) modelsHandler(c *gin.Context) {
	entries, err := s.deps.Catalog.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": entries})
}
