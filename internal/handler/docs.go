package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterDocs(r *gin.Engine) {
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/markdown; charset=utf-8")
		c.String(http.StatusOK, `# Trade Journal Service

Stores a user's discretionary trades and computes journal analytics over them.

## Auth

All /api/* routes require "Authorization: Bearer <jwt>". The token's "sub"
claim is the user id. Tokens are issued by the account service.
Health endpoints are public.

## Routes

- GET /healthz
- GET /readyz
- GET /swagger/index.html
- GET /api/analytics
- GET /api/analytics/performance
- GET /api/analytics/risk-metrics
- GET /api/trades
- POST /api/trades
- GET /api/trades/{id}
- PUT /api/trades/{id}
- DELETE /api/trades/{id}
- POST /api/trades/bulk-delete
- POST /api/trades/bulk-tag
- DELETE /api/screenshots/{id}
- GET /api/tags
- POST /api/tags
- DELETE /api/tags/{id}

Filters accepted by /api/analytics* and GET /api/trades: symbol, session,
status, strategy, date_from, date_to (YYYY-MM-DD in the analytics time zone,
or RFC3339).
`)
	})
}
