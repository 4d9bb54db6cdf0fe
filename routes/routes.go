package routes

import (
	"net/http"

	"fastfood-ui/controllers"
	"fastfood-ui/middleware"
	"fastfood-ui/repositories"
	"fastfood-ui/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func SetupRoutes(router *gin.Engine, sessions *repositories.SessionRepository, client *services.Client, logger zerolog.Logger) {
	authSvc := services.NewAuthService(client)
	menuSvc := services.NewMenuService(client)
	orderSvc := services.NewOrderService(client)

	authCtrl := controllers.NewAuthController(authSvc, sessions, logger)
	menuCtrl := controllers.NewMenuController(menuSvc, orderSvc, sessions, logger)
	historyCtrl := controllers.NewHistoryController(orderSvc, sessions, logger)
	adminMenuCtrl := controllers.NewAdminMenuController(menuSvc, sessions, logger)
	adminOrderCtrl := controllers.NewAdminOrderController(orderSvc, sessions, logger)

	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/", func(c *gin.Context) { c.Redirect(http.StatusSeeOther, "/login") })
	router.GET("/login", authCtrl.ShowLogin)
	router.POST("/login", authCtrl.Login)
	router.GET("/register", authCtrl.ShowRegister)
	router.POST("/register", authCtrl.Register)

	authed := router.Group("/")
	authed.Use(middleware.SessionMiddleware(sessions))
	{
		authed.GET("/menu", menuCtrl.ShowMenu)
		authed.POST("/cart", menuCtrl.AddToCart)
		authed.POST("/orders", menuCtrl.PlaceOrder)
		authed.GET("/history", historyCtrl.ShowHistory)
		authed.POST("/logout", authCtrl.Logout)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.SessionMiddleware(sessions), middleware.AdminMiddleware())
	{
		admin.GET("/menu", adminMenuCtrl.ShowMenu)
		admin.POST("/menu", adminMenuCtrl.AddItem)
		admin.GET("/menu/:id/edit", adminMenuCtrl.ShowEdit)
		admin.POST("/menu/:id", adminMenuCtrl.UpdateItem)
		admin.GET("/menu/:id/delete", adminMenuCtrl.ShowDelete)
		admin.POST("/menu/:id/delete", adminMenuCtrl.DeleteItem)

		admin.GET("/orders", adminOrderCtrl.ShowOrders)
		admin.GET("/orders/:id", adminOrderCtrl.ShowDetail)
		admin.GET("/orders/:id/confirm", adminOrderCtrl.ShowConfirm)
		admin.POST("/orders/:id/status", adminOrderCtrl.UpdateStatus)
	}
}
