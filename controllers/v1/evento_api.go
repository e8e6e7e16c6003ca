package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"talentos-backend/controllers"
	eventohandler "talentos-backend/lib/evento"
	"talentos-backend/middleware"
	apimodels "talentos-backend/models/api"
	eventoapimodels "talentos-backend/models/api/evento"
)

type eventoApiController struct {
	controllers.BaseAPIController
}

func InitEventoApiRouters(app *fiber.App) {
	controller := eventoApiController{}
	app.Route("evento", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("list", controller.list)
	})
}

// @Summary Trilha de auditoria
// @Tags Evento
// @Description Lista os eventos de um registro, do mais recente ao mais antigo
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 eventoapimodels.EventoFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]eventoapimodels.EventoView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/evento/list [post]
func (c *eventoApiController) list(ctx *fiber.Ctx) error {
	var payload eventoapimodels.EventoFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := eventohandler.Instance.List(payload.Entity, payload.EntityID, payload.Pagination)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter a trilha de eventos")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
