package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mkamau/collegehub/internal/app/controllers"
	"github.com/mkamau/collegehub/internal/app/models"
	"github.com/mkamau/collegehub/internal/app/models/dto"
	"github.com/mkamau/collegehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	admissionController *controllers.AdmissionController,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
	activityController *controllers.ActivityController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.GetProfile)

		// Course routes: every signed-in user can browse; only management
		// roles can change the catalogue and fee structures.
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetAllCourses)
			courses.GET("/:id", courseController.GetCourse)

			coursesManagement := courses.Group("")
			coursesManagement.Use(authMiddleware.RoleRequired(
				models.RoleRegistrar, models.RoleDirector))
			{
				coursesManagement.POST("", courseController.CreateCourse)
				coursesManagement.POST("/:id/fees", courseController.AddFeeComponent)
			}
		}

		// Admission and student records are registrar territory; management
		// roles get read access too.
		staff := authenticated.Group("")
		staff.Use(authMiddleware.RoleRequired(
			models.RoleRegistrar, models.RoleDirector, models.RoleHeadteacher))
		{
			staff.GET("/students", studentController.ListStudents)
			staff.GET("/students/:studentId", studentController.GetStudent)
			staff.GET("/students/:studentId/fees", studentController.GetStudentFees)

			registrarOnly := staff.Group("")
			registrarOnly.Use(authMiddleware.RoleRequired(models.RoleRegistrar))
			{
				registrarOnly.POST("/admissions", admissionController.AdmitStudent)
			}
		}

		// Audit trail is restricted to the director
		activity := authenticated.Group("/activity")
		activity.Use(authMiddleware.RoleRequired(models.RoleDirector))
		{
			activity.GET("", activityController.ListRecent)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
