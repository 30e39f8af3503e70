package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kaan/staffdesk/internal/app/controllers"
	"github.com/kaan/staffdesk/internal/app/models/dto"
)

// SetupRouter configures all application routes: the server-rendered pages at
// the root and the JSON API under /api/v1.
func SetupRouter(
	router *gin.Engine,
	pagesController *controllers.EmployeePagesController,
	employeeController *controllers.EmployeeController,
) {
	// --- HTML pages ---
	router.GET("/", pagesController.Home)
	router.GET("/create/", pagesController.CreateForm)
	router.POST("/create_employee/", pagesController.CreateEmployee)
	router.GET("/update/:id/", pagesController.UpdateForm)
	router.POST("/update_employee/:id/", pagesController.UpdateEmployee)
	// Deleting requires a confirmation page plus a POST; a plain GET never mutates.
	router.GET("/delete/:id/", pagesController.ConfirmDelete)
	router.POST("/delete_employee/:id/", pagesController.DeleteEmployee)

	// --- JSON API ---
	v1 := router.Group("/api/v1")

	employees := v1.Group("/employees")
	{
		employees.GET("", employeeController.GetAllEmployees)
		employees.GET("/:id", employeeController.GetEmployeeByID)
		employees.POST("", employeeController.CreateEmployee)
		employees.PUT("/:id", employeeController.UpdateEmployee)
		employees.DELETE("/:id", employeeController.DeleteEmployee)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
