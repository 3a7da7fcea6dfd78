package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/store-app/controllers"
	"github.com/yeremiapane/store-app/middlewares"
	"github.com/yeremiapane/store-app/store"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	notifier := store.NewNotifier(db)

	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	orderItemCtrl := controllers.NewOrderItemController(db)
	adminProductCtrl := controllers.NewAdminProductController(db)
	adminOrderCtrl := controllers.NewAdminOrderController(db, notifier)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      CUSTOMER ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/menu", menuCtrl.GetMenu)

		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		auth.PATCH("/orders/:order_id", orderCtrl.UpdateOrder)

		auth.POST("/orders/:order_id/order-items", orderItemCtrl.CreateOrderItem)
		auth.PATCH("/orders/:order_id/order-items/:item_id", orderItemCtrl.UpdateOrderItem)
		auth.DELETE("/orders/:order_id/order-items/:item_id", orderItemCtrl.DeleteOrderItem)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.GET("/products", adminProductCtrl.GetAllProducts)
		admin.POST("/products", adminProductCtrl.CreateProduct)
		admin.PATCH("/products/:product_id", adminProductCtrl.UpdateProduct)
		admin.DELETE("/products/:product_id", adminProductCtrl.DeleteProduct)
		admin.DELETE("/products/:product_id/variations/:variation_id", adminProductCtrl.DeleteVariation)

		admin.GET("/orders", adminOrderCtrl.GetAllOrders)
		admin.PATCH("/orders/:order_id/status", adminOrderCtrl.UpdateOrderStatus)
	}

	return r
}
