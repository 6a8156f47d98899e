// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-ledger/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	accountController *controller.AccountController
	cardController    *controller.CardController
	incomeController  *controller.IncomeController
	expenseController *controller.ExpenseController
	budgetController  *controller.BudgetController
	summaryController *controller.SummaryController
	adminController   *controller.AdminController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	accountController *controller.AccountController,
	cardController *controller.CardController,
	incomeController *controller.IncomeController,
	expenseController *controller.ExpenseController,
	budgetController *controller.BudgetController,
	summaryController *controller.SummaryController,
	adminController *controller.AdminController,
) *Router {
	return &Router{
		healthController:  healthController,
		accountController: accountController,
		cardController:    cardController,
		incomeController:  incomeController,
		expenseController: expenseController,
		budgetController:  budgetController,
		summaryController: summaryController,
		adminController:   adminController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.engine.GET("/health", r.healthController.Check)

	api := r.engine.Group("/api/v1")
	{
		accounts := api.Group("/accounts")
		{
			accounts.GET("", r.accountController.List)
			accounts.POST("", r.accountController.Create)
			accounts.PATCH("/:id", r.accountController.Update)
			accounts.DELETE("/:id", r.accountController.Delete)
		}

		cards := api.Group("/cards")
		{
			cards.GET("", r.cardController.List)
			cards.POST("", r.cardController.Create)
			cards.PATCH("/:id", r.cardController.Update)
			cards.DELETE("/:id", r.cardController.Delete)
		}

		incomes := api.Group("/incomes")
		{
			incomes.GET("", r.incomeController.List)
			incomes.POST("", r.incomeController.Create)
			incomes.PUT("/:id", r.incomeController.Update)
			incomes.DELETE("/:id", r.incomeController.Delete)
		}

		expenses := api.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			expenses.PUT("/:id", r.expenseController.Update)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}

		budgets := api.Group("/budgets")
		{
			budgets.GET("", r.budgetController.List)
			budgets.POST("", r.budgetController.Create)
			budgets.PATCH("/:id", r.budgetController.Update)
			budgets.DELETE("/:id", r.budgetController.Delete)
			budgets.PUT("/:id/payments/:month", r.budgetController.TogglePayment)
			budgets.GET("/:id/payments/:month", r.budgetController.GetPaymentStatus)
		}

		summary := api.Group("/summary")
		{
			summary.GET("/monthly", r.summaryController.MonthlyTotals)
			summary.GET("/net-worth", r.summaryController.NetWorth)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/reset", r.adminController.FactoryReset)
		}
	}

	return r.engine
}
