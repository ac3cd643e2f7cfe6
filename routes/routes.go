package routes

import (
	"github.com/azadgupta1010/GD-2.0/controllers"
	"github.com/azadgupta1010/GD-2.0/middlewares"
	"github.com/azadgupta1010/GD-2.0/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *controllers.Handler, secret []byte) {
	ownerOnly := middlewares.RequireRole(string(models.RoleOwner))

	api := r.Group("/api")
	{
		api.POST("/auth/login", h.Login)

		// everything below needs a dashboard token
		authed := api.Group("/", middlewares.AuthRequired(secret))

		authed.POST("/auth/users", ownerOnly, h.UserCreate)

		accounts := authed.Group("/accounts")
		{
			accounts.POST("", ownerOnly, h.AccountCreate)
			accounts.GET("", h.AccountList)
			accounts.GET("/:id/transactions", h.AccountTransactions)
			accounts.GET("/:id/transactions/export", h.AccountTransactionsExport)
		}

		feriwala := authed.Group("/feriwala")
		{
			feriwala.POST("/add", h.FeriwalaAdd)
			feriwala.GET("/list", h.FeriwalaList)
		}

		kabadiwala := authed.Group("/kabadiwala")
		{
			kabadiwala.POST("/add", h.KabadiwalaAdd)
			kabadiwala.GET("/list/:company_id", h.KabadiwalaList)
		}

		maalOut := authed.Group("/maalOut")
		{
			maalOut.POST("/add", h.MaalOutAdd)
			maalOut.GET("/list/:company_id", h.MaalOutList)
		}

		maalIn := authed.Group("/maalin")
		{
			maalIn.POST("", h.MaalInCreate)
			maalIn.GET("/list", h.MaalInList)
			maalIn.GET("/range", h.MaalInRange)
			maalIn.GET("/:id", h.MaalInGet)
			maalIn.DELETE("/:id", h.MaalInDelete)
			maalIn.POST("/:id/items", h.MaalInAddItems)
			maalIn.POST("/:id/approve", ownerOnly, h.MaalInApprove)
			maalIn.POST("/:id/pay", h.MaalInPay)
		}

		labour := authed.Group("/labour")
		{
			labour.POST("/add", ownerOnly, h.LabourAdd)
			labour.GET("/all", h.LabourAll)
			labour.POST("/attendance/mark", h.AttendanceMark)
			labour.POST("/payment", h.LabourPayment)
		}
	}
}
