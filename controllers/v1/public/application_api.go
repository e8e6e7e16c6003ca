package public

import (
	"github.com/gofiber/fiber/v2"

	"talentos-backend/controllers"
	sharelinkhandler "talentos-backend/lib/sharelink"
	apimodels "talentos-backend/models/api"
	candidatoapimodels "talentos-backend/models/api/candidato"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

// InitApplicationApiRouters registra as rotas públicas de inscrição. Sem
// autenticação: o token do link é a credencial.
func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("vaga/:token", func(router fiber.Router) {
		router.Get("", controller.getVaga)
		router.Post("inscricao", controller.apply)
	})
}

// @Summary Página pública da vaga
// @Tags Inscrição pública
// @Description Dados públicos da vaga pelo token do link compartilhado
// @Param   token          	path    string  true    "token do link"
// @Success 200 {object} apimodels.Response{data=sharelinkapimodels.PublicVagaView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/vaga/{token} [get]
func (c *applicationApiController) getVaga(ctx *fiber.Ctx) error {
	token, err := c.GetIDByKey(ctx, "token")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := sharelinkhandler.Instance.GetPublicVaga(token)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Inscrição pública na vaga
// @Tags Inscrição pública
// @Description Registra a candidatura pelo link compartilhado
// @Param   token          	path    string  true    "token do link"
// @Param	body body	 candidatoapimodels.ApplicationRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/vaga/{token}/inscricao [post]
func (c *applicationApiController) apply(ctx *fiber.Ctx) error {
	token, err := c.GetIDByKey(ctx, "token")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidatoapimodels.ApplicationRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := sharelinkhandler.Instance.Apply(token, payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}
