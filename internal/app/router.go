package app

import (
	"github.com/yaxyobekuz/ielts-mock-backend/docs"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/config"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/middleware"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
	"github.com/yaxyobekuz/ielts-mock-backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// Public routes.
	router.POST("/api/auth/register", c.auth.Register)
	router.POST("/api/auth/login", c.auth.Login)
	router.GET("/api/links/:token/preview", c.link.Preview)

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		api.GET("/auth/me", c.auth.Me)

		// Candidate routes.
		student := api.Group("")
		{
			student.POST("/links/:token/start", c.submission.Start)
			student.PUT("/submissions/:id/answers", c.submission.SaveAnswers)
			student.POST("/submissions/:id/finish", c.submission.Finish)
			student.GET("/submissions", c.submission.List)
			student.GET("/submissions/:id", c.submission.Get)
			student.GET("/results", c.result.List)
			student.GET("/results/:id", c.result.Get)
		}

		// Authoring and grading routes.
		teacher := api.Group("")
		teacher.Use(middleware.RoleMiddleware(model.Teacher))
		{
			teacher.POST("/tests", c.test.Create)
			teacher.GET("/tests", c.test.List)
			teacher.GET("/tests/:id", c.test.Get)
			teacher.PUT("/tests/:id", c.test.Update)
			teacher.DELETE("/tests/:id", c.test.Delete)
			teacher.POST("/tests/:id/copy", c.test.Copy)
			teacher.GET("/tests/:id/answer-keys", c.result.AnswerKeys)

			teacher.POST("/tests/:id/parts", c.part.Add)
			teacher.GET("/parts/:id", c.part.Get)
			teacher.PUT("/parts/:id", c.part.Update)
			teacher.DELETE("/parts/:id", c.part.Delete)

			teacher.POST("/parts/:id/sections", c.section.Create)
			teacher.PUT("/sections/:id", c.section.Update)
			teacher.DELETE("/sections/:id", c.section.Delete)

			teacher.POST("/links", c.link.Create)
			teacher.GET("/links", c.link.List)
			teacher.DELETE("/links/:token", c.link.Delete)

			teacher.POST("/submissions/:id/grade", c.result.Grade)

			teacher.POST("/tests/:id/audios", c.audio.Upload)
			teacher.GET("/tests/:id/audios", c.audio.List)
			teacher.DELETE("/audios/:id", c.audio.Delete)

			teacher.GET("/stats/dashboard", c.stats.Dashboard)
			teacher.GET("/stats/detailed", c.stats.Detailed)
			teacher.GET("/stats/me", c.stats.Lifetime)
		}

		// Supervisor-only routes.
		supervisor := api.Group("")
		supervisor.Use(middleware.RoleMiddleware(model.Supervisor))
		{
			supervisor.POST("/templates", c.template.Create)
			supervisor.GET("/templates", c.template.List)
			supervisor.GET("/templates/:id", c.template.Get)
			supervisor.PUT("/templates/:id", c.template.Update)
			supervisor.DELETE("/templates/:id", c.template.Delete)

			supervisor.POST("/stats/users/:id/recalculate", c.stats.Recalculate)
			supervisor.POST("/stats/backfill", c.stats.Backfill)
		}
	}
}
