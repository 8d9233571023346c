package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mw "github.com/Skotchmaster/marketplace/internal/middleware/auth"
)

type Deps struct {
	UserHandler    *UserHandler
	ProductHandler *ProductHandler
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.Validator = NewValidator()
	e.HTTPErrorHandler = errorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMW := &mw.Middleware{JWTSecret: d.JWTSecret}

	api := e.Group("/api")

	users := api.Group("/users")
	users.POST("/register", d.UserHandler.Register)
	users.POST("/login", d.UserHandler.Login)
	users.GET("/profile", d.UserHandler.Profile, authMW.RequireLogin)
	users.GET("", d.UserHandler.ListUsers, authMW.RequireLogin, authMW.RequireAdmin)
	users.PUT("/:userId/ban", d.UserHandler.BanUser, authMW.RequireLogin, authMW.RequireAdmin)
	users.PUT("/:userId/unban", d.UserHandler.UnbanUser, authMW.RequireLogin, authMW.RequireAdmin)

	products := api.Group("/products")
	products.GET("/approved", d.ProductHandler.ApprovedProducts)
	products.GET("/:productId/public", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct, authMW.RequireLogin)
	products.GET("/my-products", d.ProductHandler.MyProducts, authMW.RequireLogin)
	products.PUT("/:productId", d.ProductHandler.UpdateProduct, authMW.RequireLogin)
	products.DELETE("/:productId", d.ProductHandler.DeleteProduct, authMW.RequireLogin)
	products.GET("/admin/all", d.ProductHandler.AllProductsForAdmin, authMW.RequireLogin, authMW.RequireAdmin)
	products.PUT("/:productId/approve", d.ProductHandler.ApproveProduct, authMW.RequireLogin, authMW.RequireAdmin)
	products.PUT("/:productId/disapprove", d.ProductHandler.DisapproveProduct, authMW.RequireLogin, authMW.RequireAdmin)
}
