package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pocketfin/pocketfin_app/cmd/docs"
	portssvc "github.com/pocketfin/pocketfin_app/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_app/internal/middleware"
	"github.com/pocketfin/pocketfin_app/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

var stockSymbolRegex = regexp.MustCompile(`^[A-Za-z]{1,5}$`)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	RegisterCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// RegisterCustomValidators adds binding validators used by the DTOs.
// Idempotent; called from RegisterRoutes and from handler tests that bind
// DTOs carrying the custom tags.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("stocksymbol", func(fl validator.FieldLevel) bool {
			return stockSymbolRegex.MatchString(fl.Field().String())
		})
	}
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterAccountRoutes(v1, services.Account, services.CascadeDelete)

	// Price routes are rate limited per IP; cache misses hit the external
	// quote API and its quota is shared by all users.
	rate, err := limiter.NewRateFromFormatted(cfg.PriceRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("30-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	priceGroup := v1.Group("", middleware.RateLimit(ipLimiter))
	registerPriceRoutes(priceGroup, services.Price)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
