package restapi

import "github.com/labstack/echo/v4"

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"error": message})
}

func envelope(c echo.Context, status int, message string, product interface{}) error {
	return c.JSON(status, echo.Map{"message": message, "product": product})
}
