package v1

import (
	"net/http"

	"github.com/facturio/facturio/internal/logger"
	"github.com/facturio/facturio/internal/service"
	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	service service.CompanyService
	log     *logger.Logger
}

func NewCompanyHandler(
	service service.CompanyService,
	log *logger.Logger,
) *CompanyHandler {
	return &CompanyHandler{
		service: service,
		log:     log,
	}
}

// ListCompanies returns all companies; this is the tenant-switcher source and
// is deliberately unscoped.
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	resp, err := h.service.ListCompanies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
