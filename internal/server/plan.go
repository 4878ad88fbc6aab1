package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// @Summary      List Plans
// @Description  List the subscription plan catalog
// @Tags         plans
// @Produce      json
// @Success      200  {object}  DataResponse
// @Router       /plans [get]
func (s *Server) ListPlans(c *gin.Context) {
	plans, err := s.planSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, plans)
}

// @Summary      Get Plan
// @Description  Fetch one catalog plan by id
// @Tags         plans
// @Produce      json
// @Param        id  path  string  true  "Plan ID"
// @Success      200  {object}  DataResponse
// @Router       /plans/{id} [get]
func (s *Server) GetPlan(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		invalidRequestError(c, "invalid plan id")
		return
	}

	plan, err := s.planSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, plan)
}
