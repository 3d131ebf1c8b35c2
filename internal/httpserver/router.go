package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/shop/internal/db"
	"github.com/Skotchmaster/shop/internal/logging"
	"github.com/Skotchmaster/shop/internal/middleware/auth"
	"github.com/Skotchmaster/shop/internal/models"
)

type Deps struct {
	CategoryHandler *CategoryHTTP
	ProductHandler  *ProductHTTP
	UserHandler     *UserHTTP
	Gate            *auth.Gate
	DB              *gorm.DB
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx, d.DB); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("readiness_failed")
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	})

	employee := d.Gate.Require(models.RoleEmployee)
	manager := d.Gate.Require(models.RoleManager)

	categories := e.Group("/categories")
	categories.GET("", d.CategoryHandler.GetCategories)
	categories.GET("/:id", d.CategoryHandler.GetCategory)
	categories.POST("", d.CategoryHandler.CreateCategory)
	categories.PUT("/:id", d.CategoryHandler.UpdateCategory)
	categories.DELETE("/:id", d.CategoryHandler.DeleteCategory)

	products := e.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/categories/:id", d.ProductHandler.GetProductsByCategory)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct, employee)
	products.PUT("/:id", d.ProductHandler.UpdateProduct, manager)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct, manager)

	users := e.Group("/users")
	users.POST("", d.UserHandler.Register)
	users.POST("/login", d.UserHandler.Login)
	users.GET("", d.UserHandler.GetUsers, manager)
	users.PUT("/:id", d.UserHandler.UpdateUser, manager)
	users.DELETE("/:id", d.UserHandler.DeleteUser, manager)
}
