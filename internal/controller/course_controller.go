package controller

import (
	"strconv"

	"vsl_edu_backend/internal/service"
	"vsl_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// List godoc
// @Summary List courses
// @Tags courses
// @Produce  json
// @Security BearerAuth
// @Param   level query string false "filter by level" Enums(beginner, intermediate, advanced)
// @Param   page  query int false "page number" default(1)
// @Param   limit query int false "page size" default(20)
// @Success 200 {object} util.PageResponse{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	level := ctx.Query("level")

	courses, total, err := c.CourseService.List(level, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Page(ctx, courses, total, page, limit)
}

// Get godoc
// @Summary Course by id
// @Tags courses
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response "course not found"
// @Router /api/courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	course, err := c.CourseService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// Create godoc
// @Summary Create a course
// @Tags courses
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.CourseRequest true "course payload"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response "invalid payload"
// @Router /api/admin/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Create(req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// Update godoc
// @Summary Update a course
// @Description Applies only the fields present in the payload
// @Tags courses
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int true "course id"
// @Param   body body service.CourseUpdateRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response "course not found"
// @Router /api/admin/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	var req service.CourseUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Update(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// Delete godoc
// @Summary Delete a course
// @Tags courses
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "course not found"
// @Router /api/admin/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	if err := c.CourseService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Enroll godoc
// @Summary Enroll in a course
// @Tags courses
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Success 201 {object} util.Response{data=model.UserCourse}
// @Failure 404 {object} util.Response "course not found"
// @Failure 409 {object} util.Response "already enrolled"
// @Router /api/courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	enrollment, err := c.CourseService.Enroll(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, enrollment)
}

// ListEnrolled godoc
// @Summary Courses the current user is enrolled in
// @Tags courses
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/my-courses [get]
func (c *CourseController) ListEnrolled(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.CourseService.ListEnrolled(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}
