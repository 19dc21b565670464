package handler

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"helloapi/internal/config"
	"helloapi/internal/model"
	"helloapi/internal/service"
)

// ProcessText handles POST /process.
// An empty body, a null body or a missing "text" field all mean "".
//
// @Summary  Append "abc" to text
// @Accept   json
// @Produce  json
// @Param    body  body      model.ProcessRequest  false  "text to transform"
// @Success  200   {object}  model.Transformation
// @Failure  400   {object}  errorPayload
// @Router   /process [post]
func ProcessText(svc service.TextService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.ProcessRequest
		if body := c.Body(); len(bytes.TrimSpace(body)) > 0 {
			if err := c.App().Config().JSONDecoder(body, &req); err != nil {
				return fiber.ErrBadRequest
			}
		}
		return c.JSON(svc.Process(c.UserContext(), req.Text))
	}
}

// GetName handles GET /get_name, reading the query parameter named param.
//
// @Summary  Append "_abc" to a name
// @Produce  json
// @Param    name  query     string  false  "name to transform (nome when QUERY_PARAM=nome)"
// @Success  200   {object}  model.Transformation
// @Router   /get_name [get]
func GetName(svc service.TextService, param string) fiber.Handler {
	if param == "" {
		param = config.QueryParamName
	}
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.GetName(c.UserContext(), c.Query(param)))
	}
}

// Root handles GET /.
//
// @Summary  Static greeting
// @Produce  json
// @Success  200  {object}  model.Greeting
// @Router   / [get]
func Root(svc service.TextService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Greeting(c.UserContext()))
	}
}

// LivenessProbe reports that the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
