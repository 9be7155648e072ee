package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"office-workflow-backend/controllers"
	requesthandler "office-workflow-backend/lib/request"
	apimodels "office-workflow-backend/models/api"
	requestapimodels "office-workflow-backend/models/api/request"
)

type publicApiController struct {
	controllers.BaseAPIController
}

// InitPublicApiRouters mounts the unauthenticated intake form endpoint.
func InitPublicApiRouters(app *fiber.App) {
	controller := publicApiController{}
	app.Route("public", func(router fiber.Router) {
		router.Post("request", controller.createRequest)
	})
}

// @Summary Submit request
// @Tags Public
// @Description Submit a new work request from the intake form
// @Param	body body	 requestapimodels.RequestCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/request [post]
func (c *publicApiController) createRequest(ctx *fiber.Ctx) error {
	var payload requestapimodels.RequestCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := requesthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}
