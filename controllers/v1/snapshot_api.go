package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"office-workflow-backend/controllers"
	snapshothandler "office-workflow-backend/lib/snapshot"
	"office-workflow-backend/middleware"
	apimodels "office-workflow-backend/models/api"
)

type snapshotApiController struct {
	controllers.BaseAPIController
}

func InitSnapshotApiRouters(app *fiber.App) {
	controller := snapshotApiController{}
	app.Route("snapshot", func(router fiber.Router) {
		router.Use(middleware.MasterRequired())
		router.Post("export", controller.export)
		router.Post("import", controller.restore)
	})
}

// @Summary Export snapshot
// @Tags Snapshot
// @Description Write a full state backup to the configured storage
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/snapshot/export [post]
func (c *snapshotApiController) export(ctx *fiber.Ctx) error {
	err := snapshothandler.Instance.ExportToStorage()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export snapshot")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Import snapshot
// @Tags Snapshot
// @Description Restore state from the configured storage
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/snapshot/import [post]
func (c *snapshotApiController) restore(ctx *fiber.Ctx) error {
	err := snapshothandler.Instance.ImportFromStorage()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to import snapshot")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
