// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/config"
	"github.com/finance-planner/backend/internal/application/usecase/adjustment"
	"github.com/finance-planner/backend/internal/application/usecase/auth"
	"github.com/finance-planner/backend/internal/application/usecase/card"
	"github.com/finance-planner/backend/internal/application/usecase/dashboard"
	"github.com/finance-planner/backend/internal/application/usecase/expense"
	"github.com/finance-planner/backend/internal/application/usecase/income"
	"github.com/finance-planner/backend/internal/application/usecase/notification"
	"github.com/finance-planner/backend/internal/application/usecase/planner"
	"github.com/finance-planner/backend/internal/infra/server/router"
	"github.com/finance-planner/backend/internal/integration/adapters"
	"github.com/finance-planner/backend/internal/integration/email"
	"github.com/finance-planner/backend/internal/integration/entrypoint/controller"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-planner/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	plannerRepo := persistence.NewPlannerRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	cardRepo := persistence.NewCardRepository(db)
	adjustmentRepo := persistence.NewAdjustmentRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	tokenStore := persistence.NewRedisTokenStore(redisClient)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenStore)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	recoveryQuestionUseCase := auth.NewGetRecoveryQuestionUseCase(userRepo)
	recoverPasswordUseCase := auth.NewRecoverPasswordUseCase(userRepo, passwordService)
	approveUserUseCase := auth.NewApproveUserUseCase(userRepo)

	// Create planner use cases
	createPlannerUseCase := planner.NewCreatePlannerUseCase(plannerRepo)
	listPlannersUseCase := planner.NewListPlannersUseCase(plannerRepo)
	getPlannerUseCase := planner.NewGetPlannerUseCase(plannerRepo)

	// Create income use cases
	createIncomeUseCase := income.NewCreateIncomeUseCase(plannerRepo, incomeRepo)
	listIncomesUseCase := income.NewListIncomesUseCase(plannerRepo, incomeRepo)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(plannerRepo, incomeRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(plannerRepo, expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(plannerRepo, expenseRepo)
	setExpensePaidUseCase := expense.NewSetExpensePaidUseCase(plannerRepo, expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(plannerRepo, expenseRepo)

	// Create card use cases
	createCardUseCase := card.NewCreateCardUseCase(plannerRepo, cardRepo)
	listCardsUseCase := card.NewListCardsUseCase(plannerRepo, cardRepo)
	createBillUseCase := card.NewCreateBillUseCase(plannerRepo, cardRepo)
	listBillsUseCase := card.NewListBillsUseCase(plannerRepo, cardRepo)
	setBillPaidUseCase := card.NewSetBillPaidUseCase(plannerRepo, cardRepo)
	deleteBillUseCase := card.NewDeleteBillUseCase(plannerRepo, cardRepo)

	// Create adjustment use cases
	createAdjustmentUseCase := adjustment.NewCreateAdjustmentUseCase(plannerRepo, adjustmentRepo)
	listAdjustmentsUseCase := adjustment.NewListAdjustmentsUseCase(plannerRepo, adjustmentRepo)
	deleteAdjustmentUseCase := adjustment.NewDeleteAdjustmentUseCase(plannerRepo, adjustmentRepo)

	// Create dashboard and notification use cases
	buildDashboardUseCase := dashboard.NewBuildDashboardUseCase(
		plannerRepo,
		incomeRepo,
		expenseRepo,
		cardRepo,
		adjustmentRepo,
	)
	enqueueDigestUseCase := notification.NewEnqueueAlertDigestUseCase(
		userRepo,
		buildDashboardUseCase,
		emailQueueRepo,
	)

	// Create email delivery
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		recoveryQuestionUseCase,
		recoverPasswordUseCase,
		approveUserUseCase,
	)

	plannerController := controller.NewPlannerController(
		createPlannerUseCase,
		listPlannersUseCase,
		getPlannerUseCase,
	)

	incomeController := controller.NewIncomeController(
		createIncomeUseCase,
		listIncomesUseCase,
		deleteIncomeUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		setExpensePaidUseCase,
		deleteExpenseUseCase,
	)

	cardController := controller.NewCardController(
		createCardUseCase,
		listCardsUseCase,
		createBillUseCase,
		listBillsUseCase,
		setBillPaidUseCase,
		deleteBillUseCase,
	)

	adjustmentController := controller.NewAdjustmentController(
		createAdjustmentUseCase,
		listAdjustmentsUseCase,
		deleteAdjustmentUseCase,
	)

	dashboardController := controller.NewDashboardController(
		buildDashboardUseCase,
		enqueueDigestUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		plannerController,
		incomeController,
		expenseController,
		cardController,
		adjustmentController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}
}
