package controller

import (
	"strconv"

	"vsl_edu_backend/internal/service"
	"vsl_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizSetService *service.QuizSetService
	GradingService *service.GradingService
}

func NewQuizController(quizSetService *service.QuizSetService, gradingService *service.GradingService) *QuizController {
	return &QuizController{
		QuizSetService: quizSetService,
		GradingService: gradingService,
	}
}

// CreateSet godoc
// @Summary Create a quiz set
// @Description Optionally assigns the new set to a lesson in the same call
// @Tags quiz-sets
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.QuizSetRequest true "quiz set payload"
// @Success 201 {object} util.Response{data=model.QuizSet}
// @Failure 400 {object} util.Response "invalid payload"
// @Failure 404 {object} util.Response "lesson not found"
// @Router /api/admin/quiz-sets [post]
func (c *QuizController) CreateSet(ctx *gin.Context) {
	var req service.QuizSetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	set, err := c.QuizSetService.CreateSet(req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, set)
}

// ListSets godoc
// @Summary List quiz sets
// @Tags quiz-sets
// @Produce  json
// @Security BearerAuth
// @Param   page  query int false "page number" default(1)
// @Param   limit query int false "page size" default(20)
// @Success 200 {object} util.PageResponse{data=[]model.QuizSet}
// @Router /api/admin/quiz-sets [get]
func (c *QuizController) ListSets(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	sets, total, err := c.QuizSetService.ListSets(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Page(ctx, sets, total, page, limit)
}

// GetSet godoc
// @Summary Quiz set with its questions
// @Tags quiz-sets
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "quiz set id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "quiz set not found"
// @Router /api/admin/quiz-sets/{id} [get]
func (c *QuizController) GetSet(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	set, err := c.QuizSetService.GetSet(id)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	quizzes, err := c.QuizSetService.ListQuestions(id)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"quizSet": set,
		"quizzes": quizzes,
	})
}

// UpdateSet godoc
// @Summary Update a quiz set
// @Tags quiz-sets
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int true "quiz set id"
// @Param   body body service.QuizSetUpdateRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.QuizSet}
// @Failure 404 {object} util.Response "quiz set not found"
// @Router /api/admin/quiz-sets/{id} [put]
func (c *QuizController) UpdateSet(ctx *gin.Context) {
	var req service.QuizSetUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	set, err := c.QuizSetService.UpdateSet(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, set)
}

// DeleteSet godoc
// @Summary Delete a quiz set and its questions
// @Description Also detaches the set from any lesson it was assigned to
// @Tags quiz-sets
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "quiz set id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "quiz set not found"
// @Router /api/admin/quiz-sets/{id} [delete]
func (c *QuizController) DeleteSet(ctx *gin.Context) {
	if err := c.QuizSetService.DeleteSet(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type AssignQuizSetRequest struct {
	QuizSetID *uint `json:"quizSetId"`
}

// AssignToLesson godoc
// @Summary Assign a quiz set to a lesson
// @Description A null quizSetId clears the assignment
// @Tags quiz-sets
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int true "lesson id"
// @Param   body body AssignQuizSetRequest true "target quiz set"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "lesson or quiz set not found"
// @Router /api/admin/lessons/{id}/quiz-set [put]
func (c *QuizController) AssignToLesson(ctx *gin.Context) {
	var req AssignQuizSetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.QuizSetService.AssignToLesson(util.MustParseUint(ctx.Param("id")), req.QuizSetID); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateQuestion godoc
// @Summary Add a question to a quiz set
// @Tags quiz-sets
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int true "quiz set id"
// @Param   body body service.QuizQuestionRequest true "question payload"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Failure 400 {object} util.Response "invalid payload"
// @Failure 404 {object} util.Response "quiz set not found"
// @Router /api/admin/quiz-sets/{id}/quizzes [post]
func (c *QuizController) CreateQuestion(ctx *gin.Context) {
	var req service.QuizQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizSetService.CreateQuestion(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, quiz)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags quiz-sets
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int true "question id"
// @Param   body body service.QuizQuestionRequest true "question payload"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response "question not found"
// @Router /api/admin/quizzes/{id} [put]
func (c *QuizController) UpdateQuestion(ctx *gin.Context) {
	var req service.QuizQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizSetService.UpdateQuestion(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags quiz-sets
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "question id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "question not found"
// @Router /api/admin/quizzes/{id} [delete]
func (c *QuizController) DeleteQuestion(ctx *gin.Context) {
	if err := c.QuizSetService.DeleteQuestion(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type ReplaceQuestionsRequest struct {
	Quizzes []service.QuizQuestionRequest `json:"quizzes" binding:"required"`
}

// ReplaceQuestions godoc
// @Summary Replace all questions of a quiz set
// @Description Atomically swaps the question list for the provided one
// @Tags quiz-sets
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int true "quiz set id"
// @Param   body body ReplaceQuestionsRequest true "replacement questions"
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Failure 400 {object} util.Response "invalid payload"
// @Failure 404 {object} util.Response "quiz set not found"
// @Router /api/admin/quiz-sets/{id}/quizzes [put]
func (c *QuizController) ReplaceQuestions(ctx *gin.Context) {
	var req ReplaceQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quizzes, err := c.QuizSetService.ReplaceQuestions(util.MustParseUint(ctx.Param("id")), req.Quizzes)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

type SubmitQuizRequest struct {
	Answers []service.SubmittedAnswer `json:"answers" binding:"required"`
}

// Submit godoc
// @Summary Submit quiz answers for a lesson
// @Description Grades the submission against the lesson's assigned quiz set
// @Tags quiz-sets
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int true "lesson id"
// @Param   body body SubmitQuizRequest true "submitted answers"
// @Success 200 {object} util.Response{data=service.GradeResult}
// @Failure 404 {object} util.Response "lesson has no quiz set"
// @Router /api/lessons/{id}/quiz/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.GradingService.Submit(util.MustParseUint(ctx.Param("id")), req.Answers)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
