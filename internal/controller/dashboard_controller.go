package controller

import (
	"errors"

	"quiz_portal_backend/internal/service"
	"quiz_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Service: svc}
}

// StudentDashboard godoc
// @Summary Own results, aggregates and available quizzes
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/dashboard [get]
func (c *DashboardController) StudentDashboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	dashboard, err := c.Service.StudentView(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}

// Roster godoc
// @Summary All students with their completed attempt counts
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/students [get]
func (c *DashboardController) Roster(ctx *gin.Context) {
	roster, err := c.Service.Roster()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, roster)
}

// ReviewStudent godoc
// @Summary One student's results for review
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "student id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/students/{id}/results [get]
func (c *DashboardController) ReviewStudent(ctx *gin.Context) {
	studentID := util.MustParseUint(ctx.Param("id"))
	if studentID == 0 {
		util.BadRequest(ctx, "invalid student id")
		return
	}

	review, err := c.Service.ReviewStudent(studentID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, review)
}
