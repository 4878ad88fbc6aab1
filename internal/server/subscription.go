package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	subscriptiondomain "github.com/loanflowlabs/loanflow/internal/subscription/domain"
)

type createSubscriptionRequest struct {
	PlanID        int64  `json:"plan_id"`
	UserID        *int64 `json:"user_id,omitempty"`
	BillingCycle  string `json:"billing_cycle,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

func tenantIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		invalidRequestError(c, "invalid tenant id")
		return 0, false
	}
	return id, true
}

// @Summary      Subscribe Tenant To Plan
// @Description  Apply a subscription transition (new or upgrade) for a tenant
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        id       path  string                     true  "Tenant ID"
// @Param        request  body  createSubscriptionRequest  true  "Subscription Request"
// @Success      200  {object}  DataResponse
// @Router       /tenants/{id}/subscriptions [post]
func (s *Server) CreateTenantSubscription(c *gin.Context) {
	tenantID, ok := tenantIDParam(c)
	if !ok {
		return
	}

	var req createSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequestError(c, "invalid request body")
		return
	}

	receipt, err := s.subscriptionSvc.CreateOrUpdate(c.Request.Context(), subscriptiondomain.CreateOrUpdateRequest{
		TenantID:      tenantID,
		UserID:        req.UserID,
		PlanID:        req.PlanID,
		BillingCycle:  strings.TrimSpace(req.BillingCycle),
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.metrics.ObserveTransition(receipt.TransitionKind)
	respondData(c, receipt)
}

// @Summary      Get Tenant Subscriptions
// @Description  Current subscriptions and enabled products for a tenant
// @Tags         subscriptions
// @Produce      json
// @Param        id  path  string  true  "Tenant ID"
// @Success      200  {object}  DataResponse
// @Router       /tenants/{id}/subscriptions [get]
func (s *Server) GetTenantSubscriptions(c *gin.Context) {
	tenantID, ok := tenantIDParam(c)
	if !ok {
		return
	}

	resp, err := s.subscriptionSvc.GetCurrentTenantSubscriptions(c.Request.Context(), tenantID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      List Product Subscriptions
// @Description  Product add-on subscriptions for a tenant
// @Tags         subscriptions
// @Produce      json
// @Param        id  path  string  true  "Tenant ID"
// @Success      200  {object}  DataResponse
// @Router       /tenants/{id}/products [get]
func (s *Server) ListProductSubscriptions(c *gin.Context) {
	tenantID, ok := tenantIDParam(c)
	if !ok {
		return
	}

	views, err := s.subscriptionSvc.ListProductSubscriptions(c.Request.Context(), tenantID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, views)
}

// @Summary      Unsubscribe Product
// @Description  Cancel a tenant's product add-on subscription
// @Tags         subscriptions
// @Produce      json
// @Param        id   path  string  true  "Tenant ID"
// @Param        key  path  string  true  "Product Key"
// @Success      200  {object}  DataResponse
// @Router       /tenants/{id}/products/{key} [delete]
func (s *Server) UnsubscribeProduct(c *gin.Context) {
	tenantID, ok := tenantIDParam(c)
	if !ok {
		return
	}

	key := strings.TrimSpace(c.Param("key"))
	if err := s.subscriptionSvc.UnsubscribeProduct(c.Request.Context(), tenantID, key); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"cancelled": true})
}
