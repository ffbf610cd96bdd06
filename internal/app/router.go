package app

import (
	"vsl_edu_backend/internal/config"
	"vsl_edu_backend/internal/middleware"
	"vsl_edu_backend/internal/model"
	"vsl_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	router.GET("/api/health", c.health.HealthCheck)
	router.POST("/api/auth/register", c.auth.Register)
	router.POST("/api/auth/login", c.auth.Login)

	// Authenticated routes
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/profile", c.auth.GetProfile)
		api.PUT("/profile", c.user.UpdateProfile)

		api.GET("/courses", c.course.List)
		api.GET("/courses/:id", c.course.Get)
		api.POST("/courses/:id/enroll", c.course.Enroll)
		api.GET("/my-courses", c.course.ListEnrolled)

		api.GET("/lessons", c.lesson.List)
		api.GET("/lessons/:id", c.lesson.Get)
		api.GET("/lessons/:id/videos", c.video.ListByLesson)
		api.POST("/lessons/:id/quiz/submit", c.quiz.Submit)

		api.POST("/progress", c.progress.Save)
		api.GET("/progress/me", c.progress.ListMine)
	}

	// Admin routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.List)
		admin.PUT("/users/:id/disabled", c.user.SetDisabled)
		admin.GET("/users/:id/progress", c.progress.ListByUser)

		admin.POST("/courses", c.course.Create)
		admin.PUT("/courses/:id", c.course.Update)
		admin.DELETE("/courses/:id", c.course.Delete)

		admin.POST("/lessons", c.lesson.Create)
		admin.PUT("/lessons/:id", c.lesson.Update)
		admin.DELETE("/lessons/:id", c.lesson.Delete)
		admin.PUT("/lessons/:id/quiz-set", c.quiz.AssignToLesson)

		admin.POST("/videos", c.video.Create)
		admin.POST("/videos/upload", c.video.Upload)
		admin.PUT("/videos/:id", c.video.Update)
		admin.DELETE("/videos/:id", c.video.Delete)

		admin.POST("/quiz-sets", c.quiz.CreateSet)
		admin.GET("/quiz-sets", c.quiz.ListSets)
		admin.GET("/quiz-sets/:id", c.quiz.GetSet)
		admin.PUT("/quiz-sets/:id", c.quiz.UpdateSet)
		admin.DELETE("/quiz-sets/:id", c.quiz.DeleteSet)
		admin.POST("/quiz-sets/:id/quizzes", c.quiz.CreateQuestion)
		admin.PUT("/quiz-sets/:id/quizzes", c.quiz.ReplaceQuestions)
		admin.PUT("/quizzes/:id", c.quiz.UpdateQuestion)
		admin.DELETE("/quizzes/:id", c.quiz.DeleteQuestion)

		admin.GET("/progress", c.progress.ListAll)
	}
}
