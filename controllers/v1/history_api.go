package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"office-workflow-backend/controllers"
	historyhandler "office-workflow-backend/lib/history"
	"office-workflow-backend/middleware"
	apimodels "office-workflow-backend/models/api"
)

type historyApiController struct {
	controllers.BaseAPIController
}

func InitHistoryApiRouters(app *fiber.App) {
	controller := historyApiController{}
	app.Route("history", func(router fiber.Router) {
		router.Get("feed", controller.feed)
	})
}

// @Summary Activity feed
// @Tags History
// @Description Aggregated timeline across every visible request, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]historyapimodels.HistoryFeedView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/history/feed [get]
func (c *historyApiController) feed(ctx *fiber.Ctx) error {
	resp, err := historyhandler.Instance.Feed(middleware.GetViewer(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load activity feed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
