package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/edevyatkin/shop-api/internal/handlers"
)

type Deps struct {
	DB             *gorm.DB
	UserHandler    *handlers.UserHandler
	ProductHandler *handlers.ProductHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"hello": "world"})
	})

	e.GET("/users", d.UserHandler.GetUsers)
	e.POST("/user", d.UserHandler.CreateUser)
	e.PUT("/user/:id", d.UserHandler.UpdateUser)
	e.DELETE("/user/:id", d.UserHandler.DeleteUser)

	e.GET("/products", d.ProductHandler.GetProducts)
	e.POST("/product", d.ProductHandler.CreateProduct)
}
