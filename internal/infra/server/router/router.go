// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-planner/backend/internal/integration/entrypoint/controller"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	plannerController    *controller.PlannerController
	incomeController     *controller.IncomeController
	expenseController    *controller.ExpenseController
	cardController       *controller.CardController
	adjustmentController *controller.AdjustmentController
	dashboardController  *controller.DashboardController
	loginRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	plannerController *controller.PlannerController,
	incomeController *controller.IncomeController,
	expenseController *controller.ExpenseController,
	cardController *controller.CardController,
	adjustmentController *controller.AdjustmentController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		plannerController:    plannerController,
		incomeController:     incomeController,
		expenseController:    expenseController,
		cardController:       cardController,
		adjustmentController: adjustmentController,
		dashboardController:  dashboardController,
		loginRateLimiter:     loginRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/recovery-question", r.authController.RecoveryQuestion)
				auth.POST("/recover-password", r.loginRateLimiter.Middleware(), r.authController.RecoverPassword)
			}

			// User approval (requires authentication; master-only is
			// enforced in the use case)
			if r.authMiddleware != nil {
				users := v1.Group("/auth/users")
				users.Use(r.authMiddleware.Authenticate())
				{
					users.POST("/:id/approve", r.authController.ApproveUser)
				}
			}
		}

		// Planner routes (require authentication)
		if r.plannerController != nil && r.authMiddleware != nil {
			planners := v1.Group("/planners")
			planners.Use(r.authMiddleware.Authenticate())
			{
				planners.POST("", r.plannerController.Create)
				planners.GET("", r.plannerController.List)
				planners.GET("/:id", r.plannerController.Get)

				// Income routes (nested under planners)
				if r.incomeController != nil {
					planners.POST("/:id/incomes", r.incomeController.Create)
					planners.GET("/:id/incomes", r.incomeController.List)
				}

				// Expense routes (nested under planners)
				if r.expenseController != nil {
					planners.POST("/:id/expenses", r.expenseController.Create)
					planners.GET("/:id/expenses", r.expenseController.List)
				}

				// Card and bill routes (nested under planners)
				if r.cardController != nil {
					planners.POST("/:id/cards", r.cardController.CreateCard)
					planners.GET("/:id/cards", r.cardController.ListCards)
					planners.GET("/:id/bills", r.cardController.ListBills)
				}

				// Savings adjustment routes (nested under planners)
				if r.adjustmentController != nil {
					planners.POST("/:id/adjustments", r.adjustmentController.Create)
					planners.GET("/:id/adjustments", r.adjustmentController.List)
					planners.DELETE("/:id/adjustments/:adjustmentId", r.adjustmentController.Delete)
				}

				// Dashboard and digest routes (nested under planners)
				if r.dashboardController != nil {
					planners.GET("/:id/dashboard", r.dashboardController.Get)
					planners.POST("/:id/digest", r.dashboardController.EnqueueDigest)
				}
			}
		}

		// Income entry routes addressed by entry ID
		if r.incomeController != nil && r.authMiddleware != nil {
			incomes := v1.Group("/incomes")
			incomes.Use(r.authMiddleware.Authenticate())
			{
				incomes.DELETE("/:id", r.incomeController.Delete)
			}
		}

		// Expense entry routes addressed by entry ID
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.PATCH("/:id/paid", r.expenseController.SetPaid)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Card bill routes addressed by bill ID
		if r.cardController != nil && r.authMiddleware != nil {
			bills := v1.Group("/bills")
			bills.Use(r.authMiddleware.Authenticate())
			{
				bills.POST("", r.cardController.CreateBill)
				bills.PATCH("/:id/paid", r.cardController.SetBillPaid)
				bills.DELETE("/:id", r.cardController.DeleteBill)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
