package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	plandomain "github.com/loanflowlabs/loanflow/internal/plan/domain"
	subscriptiondomain "github.com/loanflowlabs/loanflow/internal/subscription/domain"
	tenantdomain "github.com/loanflowlabs/loanflow/internal/tenant/domain"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id for log correlation. An inbound
// header wins so upstream proxies can pre-assign one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AbortWithError translates domain errors to HTTP statuses. Anything
// unmapped is a 500 with a generic body; the detail stays in the logs.
func AbortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	body := errorBody{Code: "internal_error", Message: "internal server error"}

	switch {
	case errors.Is(err, plandomain.ErrPlanNotFound):
		status = http.StatusNotFound
		body = errorBody{Code: "plan_not_found", Message: err.Error()}
	case errors.Is(err, tenantdomain.ErrTenantNotFound):
		status = http.StatusNotFound
		body = errorBody{Code: "tenant_not_found", Message: err.Error()}
	case errors.Is(err, subscriptiondomain.ErrSubscriptionNotFound):
		status = http.StatusNotFound
		body = errorBody{Code: "subscription_not_found", Message: err.Error()}
	case errors.Is(err, subscriptiondomain.ErrInvalidPlanID),
		errors.Is(err, subscriptiondomain.ErrInvalidProductKey):
		status = http.StatusBadRequest
		body = errorBody{Code: "invalid_request", Message: err.Error()}
	}

	c.AbortWithStatusJSON(status, gin.H{"error": body})
}

func invalidRequestError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error": errorBody{Code: "invalid_request", Message: message},
	})
}
