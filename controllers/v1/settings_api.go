package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"office-workflow-backend/controllers"
	settingshandler "office-workflow-backend/lib/settings"
	"office-workflow-backend/middleware"
	apimodels "office-workflow-backend/models/api"
	settingsapimodels "office-workflow-backend/models/api/settings"
)

type settingsApiController struct {
	controllers.BaseAPIController
}

func InitSettingsApiRouters(app *fiber.App) {
	controller := settingsApiController{}
	app.Route("settings", func(router fiber.Router) {
		router.Use(middleware.MasterRequired())
		router.Get("", controller.get)
		router.Put("", controller.update)
	})
}

// @Summary Get settings
// @Tags Settings
// @Description Workspace settings
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=settingsapimodels.SettingsView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings [get]
func (c *settingsApiController) get(ctx *fiber.Ctx) error {
	resp, err := settingshandler.Instance.Get()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load settings")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update settings
// @Tags Settings
// @Description Update workspace settings
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 settingsapimodels.SettingsData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings [put]
func (c *settingsApiController) update(ctx *fiber.Ctx) error {
	var payload settingsapimodels.SettingsData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := settingshandler.Instance.Update(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update settings")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
