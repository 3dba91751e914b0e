// Package http provides HTTP handlers for masking operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/pseudonym/internal/httputil"
	"github.com/allisson/pseudonym/internal/masking/http/dto"
	"github.com/allisson/pseudonym/internal/masking/usecase"
	customValidation "github.com/allisson/pseudonym/internal/validation"
)

// MaskingHandler handles HTTP requests for masking operations.
type MaskingHandler struct {
	maskingUseCase usecase.MaskingUseCase
	logger         *slog.Logger
}

// NewMaskingHandler creates a new masking handler with required dependencies.
func NewMaskingHandler(maskingUseCase usecase.MaskingUseCase, logger *slog.Logger) *MaskingHandler {
	return &MaskingHandler{
		maskingUseCase: maskingUseCase,
		logger:         logger,
	}
}

// RegisterRoutes attaches the masking endpoints to the given router group.
func (h *MaskingHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/mask/name", h.MaskNameHandler)
	group.POST("/mask/email", h.MaskEmailHandler)
	group.POST("/mask/phone", h.MaskPhoneHandler)
	group.POST("/mask/address", h.MaskAddressHandler)
	group.POST("/mask/bank-id", h.MaskBankIDHandler)
	group.POST("/mask/free-text", h.MaskFreeTextHandler)
	group.POST("/mask/records", h.MaskRecordsHandler)
	group.POST("/surrogate-id", h.SurrogateIDHandler)
	group.POST("/detect", h.DetectHandler)
	group.GET("/stats/:tenant_id", h.StatsHandler)
	group.DELETE("/stats/:tenant_id", h.ResetStatsHandler)
}

// MaskNameHandler masks a personal name.
// POST /v1/mask/name
func (h *MaskingHandler) MaskNameHandler(c *gin.Context) {
	var req dto.MaskNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.maskingUseCase.MaskName(c.Request.Context(), req.TenantID, req.Locale, req.Value, req.SubjectKey, req.Options())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMaskResult(result))
}

// MaskEmailHandler masks an email address.
// POST /v1/mask/email
func (h *MaskingHandler) MaskEmailHandler(c *gin.Context) {
	var req dto.MaskEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.maskingUseCase.MaskEmail(c.Request.Context(), req.TenantID, req.Locale, req.Value, req.SubjectKey, req.Options())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMaskResult(result))
}

// MaskPhoneHandler masks a phone number.
// POST /v1/mask/phone
func (h *MaskingHandler) MaskPhoneHandler(c *gin.Context) {
	var req dto.MaskPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.maskingUseCase.MaskPhone(c.Request.Context(), req.TenantID, req.Locale, req.Value, req.SubjectKey, req.Options())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMaskResult(result))
}

// MaskAddressHandler masks a postal address.
// POST /v1/mask/address
func (h *MaskingHandler) MaskAddressHandler(c *gin.Context) {
	var req dto.MaskAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.maskingUseCase.MaskAddress(c.Request.Context(), req.TenantID, req.Locale, req.Value, req.SubjectKey, req.Options())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMaskResult(result))
}

// MaskBankIDHandler masks a bank identifier.
// POST /v1/mask/bank-id
func (h *MaskingHandler) MaskBankIDHandler(c *gin.Context) {
	var req dto.MaskBankIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.maskingUseCase.MaskBankIdentifier(c.Request.Context(), req.TenantID, req.Locale, req.Value, req.SubjectKey, req.Options())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMaskResult(result))
}

// MaskFreeTextHandler masks free-form text.
// POST /v1/mask/free-text
func (h *MaskingHandler) MaskFreeTextHandler(c *gin.Context) {
	var req dto.MaskFreeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.maskingUseCase.MaskFreeText(c.Request.Context(), req.TenantID, req.Locale, req.Text, req.SubjectKey, req.Options())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMaskResult(result))
}

// MaskRecordsHandler masks a batch of records.
// POST /v1/mask/records
func (h *MaskingHandler) MaskRecordsHandler(c *gin.Context) {
	var req dto.MaskRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	results, err := h.maskingUseCase.MaskRecords(c.Request.Context(), req.TenantID, req.Locale, req.DomainRecords())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRecordResults(results))
}

// SurrogateIDHandler generates a deterministic surrogate identifier.
// POST /v1/surrogate-id
func (h *MaskingHandler) SurrogateIDHandler(c *gin.Context) {
	var req dto.SurrogateIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.maskingUseCase.GenerateSurrogateID(c.Request.Context(), req.TenantID, req.SubjectKey)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.SurrogateIDResponse{SurrogateID: token})
}

// DetectHandler scans text for PII-shaped substrings.
// POST /v1/detect
func (h *MaskingHandler) DetectHandler(c *gin.Context) {
	var req dto.DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	spans, err := h.maskingUseCase.DetectPII(c.Request.Context(), req.Text)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDetectedSpans(spans))
}

// StatsHandler returns the tenant's masking counters.
// GET /v1/stats/:tenant_id
func (h *MaskingHandler) StatsHandler(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	stats, err := h.maskingUseCase.Stats(c.Request.Context(), tenantID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapStats(stats))
}

// ResetStatsHandler zeroes the tenant's masking counters.
// DELETE /v1/stats/:tenant_id
func (h *MaskingHandler) ResetStatsHandler(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	if err := h.maskingUseCase.ResetStats(c.Request.Context(), tenantID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
