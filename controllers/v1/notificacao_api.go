package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"talentos-backend/controllers"
	notificacaohandler "talentos-backend/lib/notificacao"
	"talentos-backend/middleware"
	apimodels "talentos-backend/models/api"
	dbmodels "talentos-backend/models/db"
)

type notificacaoApiController struct {
	controllers.BaseAPIController
}

type notificacaoListRequest struct {
	apimodels.Pagination
	dbmodels.NotificacaoFilter
}

func InitNotificacaoApiRouters(app *fiber.App) {
	controller := notificacaoApiController{}
	app.Route("notificacao", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("list", controller.list)
		router.Put("read_all", controller.markTodasLidas)
		router.Put(":id/read", controller.markLida)
	})
}

// @Summary Lista de notificações
// @Tags Notificação
// @Description Lista as notificações do usuário logado
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 notificacaoListRequest	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]notificacaoapimodels.NotificacaoView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notificacao/list [post]
func (c *notificacaoApiController) list(ctx *fiber.Ctx) error {
	var payload notificacaoListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	list, rowCount, err := notificacaohandler.Instance.List(userID, payload.NotificacaoFilter, payload.Pagination)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter a lista de notificações")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Marcação de notificação como lida
// @Tags Notificação
// @Description Marca a notificação como lida
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notificacao/{id}/read [put]
func (c *notificacaoApiController) markLida(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = notificacaohandler.Instance.MarkLida(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao marcar a notificação como lida")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Marcação de todas as notificações como lidas
// @Tags Notificação
// @Description Marca todas as notificações do usuário como lidas
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notificacao/read_all [put]
func (c *notificacaoApiController) markTodasLidas(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	err := notificacaohandler.Instance.MarkTodasLidas(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao marcar as notificações como lidas")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
