package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkamau/collegehub/internal/app/models/dto"
	"github.com/mkamau/collegehub/internal/app/services"
	"github.com/mkamau/collegehub/internal/middleware"
)

// StudentController handles student read endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// ListStudents lists all students
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// GetStudent retrieves a student by the generated student ID
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx.Request.Context(), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// GetStudentFees retrieves a student's invoice rows with totals
func (c *StudentController) GetStudentFees(ctx *gin.Context) {
	fees, err := c.studentService.GetStudentFees(ctx.Request.Context(), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fees))
}
