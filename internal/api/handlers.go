package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/courtlens/casefetch/internal/cache"
	"github.com/courtlens/casefetch/internal/config"
	"github.com/courtlens/casefetch/internal/database"
	"github.com/courtlens/casefetch/internal/scraper"
	"github.com/courtlens/casefetch/pkg/logger"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	db      *gorm.DB
	cache   cache.Cache
	scraper *scraper.Scraper
	logger  *logger.Logger
	cfg     *config.Config
}

// NewHandlers creates a new handlers instance
func NewHandlers(db *gorm.DB, cache cache.Cache, scraper *scraper.Scraper, logger *logger.Logger, cfg *config.Config) *Handlers {
	return &Handlers{
		db:      db,
		cache:   cache,
		scraper: scraper,
		logger:  logger,
		cfg:     cfg,
	}
}

// SearchCase runs a case search and persists the outcome
func (h *Handlers) SearchCase(c *gin.Context) {
	var req scraper.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid request body: " + err.Error(),
		})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	cacheKey := cache.Key(req)
	if cached, found := h.cache.Get(cacheKey); found {
		h.logger.Info("cache hit", "key", cacheKey)
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"data":      publicResult(cached),
			"fromCache": true,
		})
		return
	}

	queryLog := &database.QueryLog{
		CaseType:   req.CaseType,
		CaseNumber: req.CaseNumber,
		FilingYear: req.FilingYear,
		QueryTime:  time.Now(),
		IPAddress:  c.ClientIP(),
	}

	result, err := h.scraper.SearchCase(c.Request.Context(), req)

	queryLog.Success = result.Success
	queryLog.ErrorMessage = result.Error
	queryLog.RawResponse = result.RawResponse
	if dbErr := h.db.Create(queryLog).Error; dbErr != nil {
		h.logger.Error("failed to save query log", "error", dbErr)
	}

	if err != nil {
		status := http.StatusBadGateway
		var notFound *scraper.NotFoundError
		if errors.As(err, &notFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"success": false,
			"error":   result.Error,
		})
		return
	}

	record := recordFromResult(req, result, queryLog.ID)
	if dbErr := h.db.Create(record).Error; dbErr != nil {
		h.logger.Error("failed to save case record", "error", dbErr)
	}

	h.cache.Set(cacheKey, result)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"data":      publicResult(result),
		"fromCache": false,
	})
}

// ListCases returns persisted case records with pagination
func (h *Handlers) ListCases(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int64
	h.db.Model(&database.CaseRecord{}).Count(&total)

	var records []database.CaseRecord
	h.db.Preload("Documents").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&records)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    records,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// GetCase returns a single persisted case record
func (h *Handlers) GetCase(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid case record id",
		})
		return
	}

	var record database.CaseRecord
	if err := h.db.Preload("Documents").First(&record, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "case record not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    record,
	})
}

// FetchDocument streams a court document by its previously discovered URL
func (h *Handlers) FetchDocument(c *gin.Context) {
	docURL := c.Query("url")
	if docURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "missing required parameter: url",
		})
		return
	}

	// only proxy documents hosted by the configured court site
	if !strings.HasPrefix(docURL, strings.TrimRight(h.cfg.CourtBaseURL, "/")) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "url is outside the configured court site",
		})
		return
	}

	data, err := h.scraper.FetchDocument(c.Request.Context(), docURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "application/pdf", data)
}

// CaseTypes returns the static case type vocabulary
func (h *Handlers) CaseTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    scraper.CaseTypes,
	})
}

// HealthCheck returns the health status
func (h *Handlers) HealthCheck(c *gin.Context) {
	var count int64
	dbHealthy := h.db.Model(&database.QueryLog{}).Count(&count).Error == nil

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealthy,
		"cache":    h.cache.Stats(),
		"time":     time.Now().Unix(),
	})
}

// CacheStats returns cache statistics
func (h *Handlers) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   h.cache.Stats(),
	})
}

// publicResult strips the raw markup from API responses; it is persisted
// in the query log for operators, not meant for clients.
func publicResult(r *scraper.CaseResult) gin.H {
	return gin.H{
		"success":           r.Success,
		"parties_names":     r.PartiesNames,
		"filing_date":       r.FilingDate,
		"next_hearing_date": r.NextHearingDate,
		"case_status":       r.CaseStatus,
		"document_links":    r.DocumentLinks,
	}
}

func recordFromResult(req scraper.SearchRequest, result *scraper.CaseResult, queryLogID uint) *database.CaseRecord {
	record := &database.CaseRecord{
		QueryLogID:      queryLogID,
		CaseType:        req.CaseType,
		CaseNumber:      req.CaseNumber,
		FilingYear:      req.FilingYear,
		PartiesNames:    result.PartiesNames,
		FilingDate:      result.FilingDate,
		NextHearingDate: result.NextHearingDate,
		CaseStatus:      result.CaseStatus,
	}
	for _, link := range result.DocumentLinks {
		record.Documents = append(record.Documents, database.DocumentLink{
			URL:          link.URL,
			Title:        link.Title,
			DocumentType: link.Type,
		})
	}
	return record
}
