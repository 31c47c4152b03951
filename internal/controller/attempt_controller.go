package controller

import (
	"errors"

	"quiz_portal_backend/internal/service"
	"quiz_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	Service *service.AttemptService
}

func NewAttemptController(svc *service.AttemptService) *AttemptController {
	return &AttemptController{Service: svc}
}

func (c *AttemptController) respondAttemptError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrQuizSetNotFound),
		errors.Is(err, util.ErrAttemptNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrNotAttemptOwner):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrAttemptCompleted),
		errors.Is(err, util.ErrAlreadyAnswered),
		errors.Is(err, util.ErrQuestionNotInAttempt):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// Start godoc
// @Summary Start an attempt, freezing the quiz set's question list
// @Tags attempts
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz set id"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/attempts [post]
func (c *AttemptController) Start(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	quizSetID := util.MustParseUint(ctx.Param("id"))
	if quizSetID == 0 {
		util.BadRequest(ctx, "invalid quiz set id")
		return
	}

	resp, err := c.Service.Start(ctx.Request.Context(), user.UserID, quizSetID)
	if err != nil {
		c.respondAttemptError(ctx, err)
		return
	}
	util.Created(ctx, resp)
}

// Questions godoc
// @Summary Frozen question list of an attempt, answers stripped
// @Tags attempts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "attempt id"
// @Success 200 {object} util.Response
// @Router /api/attempts/{id}/questions [get]
func (c *AttemptController) Questions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	questions, err := c.Service.Questions(ctx.Request.Context(), user.UserID, ctx.Param("id"))
	if err != nil {
		c.respondAttemptError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// swagger:model SubmitRequest
type SubmitRequest struct {
	// Answers maps question id to the selected option text.
	Answers map[uint]string `json:"answers"`
}

// Submit godoc
// @Summary Grade a full answer map and record the result
// @Tags attempts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "attempt id"
// @Param body body SubmitRequest true "answers"
// @Success 200 {object} util.Response
// @Router /api/attempts/{id}/submit [post]
func (c *AttemptController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.SubmitBulk(ctx.Request.Context(), user.UserID, ctx.Param("id"), req.Answers)
	if err != nil {
		c.respondAttemptError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// swagger:model StepAnswerRequest
type StepAnswerRequest struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Selected   string `json:"selected" binding:"required"`
}

// Answer godoc
// @Summary Answer one question of an attempt (stepwise mode)
// @Tags attempts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "attempt id"
// @Param body body StepAnswerRequest true "answer"
// @Success 200 {object} util.Response
// @Router /api/attempts/{id}/answers [post]
func (c *AttemptController) Answer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StepAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.Service.Answer(ctx.Request.Context(), user.UserID, ctx.Param("id"), req.QuestionID, req.Selected)
	if err != nil {
		c.respondAttemptError(ctx, err)
		return
	}
	util.Success(ctx, resp)
}

// Finalize godoc
// @Summary Close a stepwise attempt and record its result
// @Tags attempts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "attempt id"
// @Success 200 {object} util.Response
// @Router /api/attempts/{id}/finalize [post]
func (c *AttemptController) Finalize(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.Service.Finalize(ctx.Request.Context(), user.UserID, ctx.Param("id"))
	if err != nil {
		c.respondAttemptError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
