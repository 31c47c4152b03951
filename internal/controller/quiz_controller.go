package controller

import (
	"errors"

	"quiz_portal_backend/internal/model"
	"quiz_portal_backend/internal/service"
	"quiz_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

// ListQuizSets godoc
// @Summary List quiz sets with their question counts
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/quizzes [get]
func (c *QuizController) ListQuizSets(ctx *gin.Context) {
	sets, err := c.Service.ListQuizSets()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sets)
}

// CreateQuizSet godoc
// @Summary Create a quiz set
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuizSetRequest true "quiz set"
// @Success 201 {object} util.Response
// @Router /api/admin/quizzes [post]
func (c *QuizController) CreateQuizSet(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuizSetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	qs, err := c.Service.CreateQuizSet(req, user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, qs)
}

// CreateQuestion godoc
// @Summary Create a question in a quiz set
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuestionRequest true "question"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/questions [post]
func (c *QuizController) CreateQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.CreateQuestion(req, user.UserID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCorrectOptionNotListed):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrQuizSetNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, q)
}

// ListQuestions godoc
// @Summary List questions of a quiz set, correct answers included
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz set id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/quizzes/{id}/questions [get]
func (c *QuizController) ListQuestions(ctx *gin.Context) {
	quizSetID := util.MustParseUint(ctx.Param("id"))
	if quizSetID == 0 {
		util.BadRequest(ctx, "invalid quiz set id")
		return
	}

	questions, err := c.Service.ListQuestions(quizSetID)
	if err != nil {
		if errors.Is(err, util.ErrQuizSetNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, questions)
}
