package controller

import (
	"strconv"

	"vsl_edu_backend/internal/repository"
	"vsl_edu_backend/internal/service"
	"vsl_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// List godoc
// @Summary List lessons
// @Description Filterable by course, category and level
// @Tags lessons
// @Produce  json
// @Security BearerAuth
// @Param   courseId query int false "filter by course"
// @Param   category query string false "filter by category" Enums(alphabet, numbers, common, advanced)
// @Param   level    query string false "filter by level" Enums(beginner, intermediate, advanced)
// @Param   page     query int false "page number" default(1)
// @Param   limit    query int false "page size" default(20)
// @Success 200 {object} util.PageResponse{data=[]model.Lesson}
// @Router /api/lessons [get]
func (c *LessonController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	filter := repository.LessonFilter{
		CourseID: util.MustParseUint(ctx.Query("courseId")),
		Category: ctx.Query("category"),
		Level:    ctx.Query("level"),
	}

	lessons, total, err := c.LessonService.List(filter, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Page(ctx, lessons, total, page, limit)
}

// Get godoc
// @Summary Lesson detail
// @Description Returns the lesson with its videos and quiz questions; correct answers are never included
// @Tags lessons
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "lesson id"
// @Success 200 {object} util.Response{data=service.LessonDetail}
// @Failure 404 {object} util.Response "lesson not found"
// @Router /api/lessons/{id} [get]
func (c *LessonController) Get(ctx *gin.Context) {
	detail, err := c.LessonService.GetDetail(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// Create godoc
// @Summary Create a lesson
// @Tags lessons
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.LessonRequest true "lesson payload"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Failure 400 {object} util.Response "invalid payload"
// @Router /api/admin/lessons [post]
func (c *LessonController) Create(ctx *gin.Context) {
	var req service.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.Create(req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// Update godoc
// @Summary Update a lesson
// @Description Applies only the fields present in the payload
// @Tags lessons
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int true "lesson id"
// @Param   body body service.LessonUpdateRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response "lesson not found"
// @Router /api/admin/lessons/{id} [put]
func (c *LessonController) Update(ctx *gin.Context) {
	var req service.LessonUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.Update(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// Delete godoc
// @Summary Delete a lesson
// @Tags lessons
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "lesson id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "lesson not found"
// @Router /api/admin/lessons/{id} [delete]
func (c *LessonController) Delete(ctx *gin.Context) {
	if err := c.LessonService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
