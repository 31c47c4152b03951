package app

import (
	"quiz_portal_backend/docs"
	"quiz_portal_backend/internal/config"
	"quiz_portal_backend/internal/middleware"
	"quiz_portal_backend/internal/model"
	"quiz_portal_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		// Quiz taking: any authenticated user.
		authGroup.GET("/quizzes", c.quiz.ListQuizSets)
		authGroup.POST("/quizzes/:id/attempts", c.attempt.Start)
		authGroup.GET("/attempts/:id/questions", c.attempt.Questions)
		authGroup.POST("/attempts/:id/submit", c.attempt.Submit)
		authGroup.POST("/attempts/:id/answers", c.attempt.Answer)
		authGroup.POST("/attempts/:id/finalize", c.attempt.Finalize)
		authGroup.GET("/dashboard", c.dashboard.StudentDashboard)

		admin := authGroup.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.Admin))
		{
			admin.POST("/quizzes", c.quiz.CreateQuizSet)
			admin.GET("/quizzes/:id/questions", c.quiz.ListQuestions)
			admin.POST("/questions", c.quiz.CreateQuestion)

			admin.GET("/students", c.dashboard.Roster)
			admin.GET("/students/:id/results", c.dashboard.ReviewStudent)

			admin.POST("/results/:id/comment", c.review.CommentResult)
			admin.GET("/results/commented", c.review.ListCommentedResults)
			admin.POST("/feedback", c.review.CreateFeedback)
			admin.GET("/feedback", c.review.ListFeedback)
		}
	}
}
