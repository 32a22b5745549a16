package v1

import (
	"net/http"

	"candidate-intake/internal/delivery/http/response"
	"candidate-intake/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(r *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	r.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health check
// @Description  Reports database and redis reachability
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	if h.healthUC == nil {
		response.Success(c, http.StatusOK, "System operational", nil)
		return
	}

	status, healthy := h.healthUC.Check(c.Request.Context())
	if !healthy {
		response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
		return
	}
	response.Success(c, http.StatusOK, "System operational", status)
}
