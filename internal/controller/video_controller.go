package controller

import (
	"vsl_edu_backend/internal/service"
	"vsl_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VideoController struct {
	VideoService *service.VideoService
}

func NewVideoController(videoService *service.VideoService) *VideoController {
	return &VideoController{VideoService: videoService}
}

// ListByLesson godoc
// @Summary Videos of a lesson
// @Tags videos
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "lesson id"
// @Success 200 {object} util.Response{data=[]model.Video}
// @Router /api/lessons/{id}/videos [get]
func (c *VideoController) ListByLesson(ctx *gin.Context) {
	videos, err := c.VideoService.ListByLesson(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, videos)
}

// Create godoc
// @Summary Register a video by URL
// @Tags videos
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.VideoRequest true "video payload"
// @Success 201 {object} util.Response{data=model.Video}
// @Failure 404 {object} util.Response "lesson not found"
// @Router /api/admin/videos [post]
func (c *VideoController) Create(ctx *gin.Context) {
	var req service.VideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	video, err := c.VideoService.Create(req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, video)
}

// Upload godoc
// @Summary Upload a video file
// @Description Stores the file, probes its duration and generates a thumbnail
// @Tags videos
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   lessonId formData int true "lesson id"
// @Param   title    formData string false "video title"
// @Param   file     formData file true "video file"
// @Success 201 {object} util.Response{data=model.Video}
// @Failure 400 {object} util.Response "missing file or unsupported format"
// @Failure 404 {object} util.Response "lesson not found"
// @Router /api/admin/videos/upload [post]
func (c *VideoController) Upload(ctx *gin.Context) {
	lessonID := util.MustParseUint(ctx.PostForm("lessonId"))
	if lessonID == 0 {
		util.BadRequest(ctx, "lessonId is required")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	video, err := c.VideoService.Upload(ctx.Request.Context(), lessonID, ctx.PostForm("title"), fileHeader)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, video)
}

// Update godoc
// @Summary Update a video
// @Tags videos
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int true "video id"
// @Param   body body service.VideoUpdateRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.Video}
// @Failure 404 {object} util.Response "video not found"
// @Router /api/admin/videos/{id} [put]
func (c *VideoController) Update(ctx *gin.Context) {
	var req service.VideoUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	video, err := c.VideoService.Update(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, video)
}

// Delete godoc
// @Summary Delete a video
// @Tags videos
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "video id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "video not found"
// @Router /api/admin/videos/{id} [delete]
func (c *VideoController) Delete(ctx *gin.Context) {
	if err := c.VideoService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
