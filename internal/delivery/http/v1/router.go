package v1

import (
	"net/http"

	"candidate-intake/config"
	"candidate-intake/internal/delivery/http/middleware"
	"candidate-intake/internal/delivery/http/response"
	"candidate-intake/internal/domain"
	"candidate-intake/internal/usecase"
	"candidate-intake/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CandidateUC    domain.CandidateUsecase
	HealthUC       usecase.HealthUsecase
	SecurityLogger *security.SecurityLogger
	Redis          *goredis.Client // optional, rate limit counters
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := v1.Group("")
	api.Use(middleware.SecurityHeadersMiddleware())
	limit := middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		deps.Config.RateLimitWindow(),
		deps.Redis,
		deps.SecurityLogger,
	)
	limit.OnLimit = rejectRateLimited
	api.Use(middleware.RateLimitMiddleware(limit))
	{
		NewCandidateHandler(api, deps.CandidateUC, deps.SecurityLogger)
	}

	return r
}

// rejectRateLimited keeps the intake contract (201 or 400 only) for POSTs;
// other routes get the plain 429.
func rejectRateLimited(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		response.Error(c, http.StatusBadRequest, msgAddFailed, middleware.RateLimitMessage)
		return
	}
	response.Error(c, http.StatusTooManyRequests, middleware.RateLimitMessage, nil)
}
