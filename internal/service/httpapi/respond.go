package httpapi

import "github.com/labstack/echo/v4"

// errorBody — единый конверт ошибок API.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func ok(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, data)
}

func fail(c echo.Context, status int, code, message string) error {
	return c.JSON(status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}
