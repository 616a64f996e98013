package middleware

import (
	"github.com/facturio/facturio/internal/types"
	"github.com/gin-gonic/gin"
)

// TenantMiddleware maps the tenant selection header onto the request context.
// Services reject tenant-scoped operations when no tenant is present, so the
// middleware itself does not fail the request; company listing and health
// work without a tenant.
func TenantMiddleware(c *gin.Context) {
	if tenantID := c.GetHeader(types.HeaderTenantID); tenantID != "" {
		ctx := types.SetTenantID(c.Request.Context(), tenantID)
		c.Request = c.Request.WithContext(ctx)
	}

	c.Next()
}
