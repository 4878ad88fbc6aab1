package server

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	subscriptiondomain "github.com/loanflowlabs/loanflow/internal/subscription/domain"
)

// @Summary      List Billing Overview
// @Description  Admin listing of tenant subscriptions joined with tenant and plan
// @Tags         billing
// @Produce      json
// @Param        tenant_id  query  string  false  "Filter by tenant id"
// @Success      200  {object}  DataResponse
// @Router       /billing/subscriptions [get]
func (s *Server) ListBillingOverview(c *gin.Context) {
	var filter subscriptiondomain.OverviewFilter
	if raw := strings.TrimSpace(c.Query("tenant_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			invalidRequestError(c, "invalid tenant_id filter")
			return
		}
		filter.TenantID = &id
	}

	rows, err := s.subscriptionSvc.ListOverview(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, rows)
}

type cancelSubscriptionRequest struct {
	Reason string `json:"reason,omitempty"`
}

// @Summary      Cancel Subscription
// @Description  Cancel a tenant-wide subscription
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        id       path  string                     true   "Subscription ID"
// @Param        request  body  cancelSubscriptionRequest  false  "Cancellation"
// @Success      200  {object}  DataResponse
// @Router       /billing/subscriptions/{id}/cancel [post]
func (s *Server) CancelSubscription(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		invalidRequestError(c, "invalid subscription id")
		return
	}

	var req cancelSubscriptionRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			invalidRequestError(c, "invalid request body")
			return
		}
	}

	row, err := s.subscriptionSvc.Cancel(c.Request.Context(), id, strings.TrimSpace(req.Reason))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, row)
}

// @Summary      List Tenant Payments
// @Description  Payment ledger history for a tenant, newest first
// @Tags         billing
// @Produce      json
// @Param        id  path  string  true  "Tenant ID"
// @Success      200  {object}  DataResponse
// @Router       /tenants/{id}/payments [get]
func (s *Server) ListTenantPayments(c *gin.Context) {
	tenantID, ok := tenantIDParam(c)
	if !ok {
		return
	}

	entries, err := s.ledgerSvc.ListByTenant(c.Request.Context(), snowflake.ID(tenantID))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, entries)
}
