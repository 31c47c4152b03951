package controller

import (
	"errors"

	"quiz_portal_backend/internal/service"
	"quiz_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *service.ReviewService
}

func NewReviewController(svc *service.ReviewService) *ReviewController {
	return &ReviewController{Service: svc}
}

// swagger:model CommentRequest
type CommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// CommentResult godoc
// @Summary Attach a review comment to a quiz result
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "result id"
// @Param body body CommentRequest true "comment"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/results/{id}/comment [post]
func (c *ReviewController) CommentResult(ctx *gin.Context) {
	resultID := util.MustParseUint(ctx.Param("id"))
	if resultID == 0 {
		util.BadRequest(ctx, "invalid result id")
		return
	}

	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.CommentResult(resultID, req.Comment)
	if err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// CreateFeedback godoc
// @Summary Leave feedback on a question for a student
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.FeedbackRequest true "feedback"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/feedback [post]
func (c *ReviewController) CreateFeedback(ctx *gin.Context) {
	var req service.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	f, err := c.Service.CreateFeedback(req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound), errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, f)
}

// ListFeedback godoc
// @Summary All feedback across students
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/feedback [get]
func (c *ReviewController) ListFeedback(ctx *gin.Context) {
	fs, err := c.Service.ListFeedback()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, fs)
}

// ListCommentedResults godoc
// @Summary Results that carry a review comment
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/results/commented [get]
func (c *ReviewController) ListCommentedResults(ctx *gin.Context) {
	results, err := c.Service.ListCommentedResults()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}
