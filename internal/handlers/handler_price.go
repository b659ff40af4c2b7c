package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketfin/pocketfin_app/internal/apperrors"
	portssvc "github.com/pocketfin/pocketfin_app/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_app/internal/dto"
	"github.com/pocketfin/pocketfin_app/internal/middleware"
)

// priceHandler handles HTTP requests related to stock prices.
type priceHandler struct {
	priceService portssvc.PriceSvcFacade
}

func newPriceHandler(ps portssvc.PriceSvcFacade) *priceHandler {
	return &priceHandler{priceService: ps}
}

// registerPriceRoutes registers stock price routes. The group is expected
// to be rate limited, since misses fan out to the external quote API.
func registerPriceRoutes(rg *gin.RouterGroup, priceService portssvc.PriceSvcFacade) {
	h := newPriceHandler(priceService)

	prices := rg.Group("/prices")
	{
		prices.GET("/:symbol", h.getPrice)
		prices.GET("/cache/stats", h.getCacheStats)
		prices.POST("/cache/clear", h.clearCache)
	}
}

// getPrice godoc
// @Summary Get a stock price
// @Description Resolves a fresh quote for the symbol through the tiered cache
// @Tags prices
// @Produce  json
// @Param   symbol path string true "Stock symbol (1-5 letters)"
// @Success 200 {object} dto.StockPriceResponse
// @Failure 400 {object} map[string]string "Invalid symbol"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Quote provider unavailable"
// @Failure 500 {object} map[string]string "Failed to retrieve price"
// @Security BearerAuth
// @Router /prices/{symbol} [get]
func (h *priceHandler) getPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	symbol := c.Param("symbol")

	price, err := h.priceService.GetPrice(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid symbol", slog.String("symbol", symbol))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrPriceProvider) {
			logger.Error("Quote provider failure", slog.String("symbol", symbol), slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Quote provider unavailable"})
		} else {
			logger.Error("Failed to get price", slog.String("symbol", symbol), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve price"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStockPriceResponse(price))
}

// getCacheStats godoc
// @Summary Get price cache statistics
// @Description Reports how many symbols the in-process price cache holds
// @Tags prices
// @Produce  json
// @Success 200 {object} dto.PriceCacheStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /prices/cache/stats [get]
func (h *priceHandler) getCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PriceCacheStatsResponse{CachedSymbols: h.priceService.CacheStats()})
}

// clearCache godoc
// @Summary Clear the in-process price cache
// @Description Empties the in-process tier; the persistent store is untouched
// @Tags prices
// @Produce  json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /prices/cache/clear [post]
func (h *priceHandler) clearCache(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	h.priceService.ClearLocalCache()
	logger.Info("Price cache cleared")
	c.JSON(http.StatusOK, gin.H{"message": "Price cache cleared"})
}
