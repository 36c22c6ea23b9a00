package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pradana/tracerstudy/internal/app/controllers"
	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	alumniController *controllers.AlumniController,
	tracerController *controllers.TracerController,
	referenceController *controllers.ReferenceController,
	statisticController *controllers.StatisticController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public auth route ---
	router.POST("/login", authController.Login)

	// --- Alumni routes ---
	alumni := router.Group("/alumni")
	{
		alumni.POST("/check", alumniController.Check)
		alumni.POST("/create", authMiddleware.JWTAuth(), alumniController.Create)
	}

	// --- Survey routes ---
	questionnaire := router.Group("/questionnaire")
	{
		questionnaire.GET("/detail/:id_alumni", alumniController.Detail)
		questionnaire.POST("/submit", tracerController.Submit)
	}

	tracer := router.Group("/tracer")
	{
		tracer.GET("/status/:id_alumni", alumniController.TracerStatus)
		tracer.GET("/all", tracerController.GetAll)
	}

	// --- Reference routes ---
	referensi := router.Group("/referensi")
	{
		referensi.GET("/perguruan-tinggi", referenceController.GetInstitutions)
		referensi.GET("/kuesioner", referenceController.GetQuestionnaire)
		referensi.GET("/jawaban", referenceController.GetAnswers)
		referensi.GET("/status", referenceController.GetStatuses)
	}
	router.GET("/programStudi/:id_perguruan_tinggi", referenceController.GetProgramsByInstitution)
	router.GET("/quesioner-metadata", referenceController.GetMetadata)

	// --- Statistics routes ---
	statistik := router.Group("/statistik")
	{
		statistik.GET("/alumni", statisticController.GetAlumniStatistics)
		statistik.GET("/kuesioner", statisticController.GetQuestionnaireBreakdown)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})
}
