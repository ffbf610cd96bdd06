package controller

import (
	"strconv"

	"vsl_edu_backend/internal/service"
	"vsl_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// Save godoc
// @Summary Save learning progress
// @Description Creates or updates the caller's progress record for a lesson; only provided fields change
// @Tags progress
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.SaveProgressRequest true "progress fields"
// @Success 200 {object} util.Response{data=model.Progress}
// @Failure 400 {object} util.Response "invalid payload"
// @Failure 404 {object} util.Response "lesson not found"
// @Failure 409 {object} util.Response "concurrent creation conflict"
// @Router /api/progress [post]
func (c *ProgressController) Save(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SaveProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.Save(claims.UserID, req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// ListMine godoc
// @Summary Current user's progress
// @Tags progress
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Progress}
// @Router /api/progress/me [get]
func (c *ProgressController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.ProgressService.ListMine(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// ListAll godoc
// @Summary All progress records
// @Tags progress
// @Produce  json
// @Security BearerAuth
// @Param   page  query int false "page number" default(1)
// @Param   limit query int false "page size" default(20)
// @Success 200 {object} util.PageResponse{data=[]model.Progress}
// @Router /api/admin/progress [get]
func (c *ProgressController) ListAll(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	progress, total, err := c.ProgressService.ListAll(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Page(ctx, progress, total, page, limit)
}

// ListByUser godoc
// @Summary Progress of a specific user
// @Tags progress
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "user id"
// @Success 200 {object} util.Response{data=[]model.Progress}
// @Router /api/admin/users/{id}/progress [get]
func (c *ProgressController) ListByUser(ctx *gin.Context) {
	progress, err := c.ProgressService.ListByUser(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
