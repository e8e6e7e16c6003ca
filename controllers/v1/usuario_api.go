package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"talentos-backend/controllers"
	usuariohandler "talentos-backend/lib/usuario"
	"talentos-backend/middleware"
	apimodels "talentos-backend/models/api"
	usuarioapimodels "talentos-backend/models/api/usuario"
)

type usuarioApiController struct {
	controllers.BaseAPIController
}

func InitUsuarioApiRouters(app *fiber.App) {
	controller := usuarioApiController{}
	app.Route("usuario", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Get("list", controller.list)
		router.Post("", middleware.AdminRequired(), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", middleware.AdminRequired(), controller.update)
			idRoute.Put("deactivate", middleware.AdminRequired(), controller.deactivate)
		})
	})
}

// @Summary Criação de usuário
// @Tags Usuário
// @Description Criação de usuário (somente admin)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 usuarioapimodels.UsuarioData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/usuario [post]
func (c *usuarioApiController) create(ctx *fiber.Ctx) error {
	var payload usuarioapimodels.UsuarioData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(true); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := usuariohandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao criar usuário")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Atualização de usuário
// @Tags Usuário
// @Description Atualização de usuário (somente admin)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param	body body	 usuarioapimodels.UsuarioData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/usuario/{id} [put]
func (c *usuarioApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload usuarioapimodels.UsuarioData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(false); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = usuariohandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao atualizar usuário")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Obtenção de usuário por ID
// @Tags Usuário
// @Description Obtenção de usuário por ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=usuarioapimodels.UsuarioView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/usuario/{id} [get]
func (c *usuarioApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := usuariohandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter usuário")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Lista de usuários
// @Tags Usuário
// @Description Lista de usuários
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]usuarioapimodels.UsuarioView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/usuario/list [get]
func (c *usuarioApiController) list(ctx *fiber.Ctx) error {
	resp, err := usuariohandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter a lista de usuários")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Desativação de usuário
// @Tags Usuário
// @Description Desativação de usuário (somente admin)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/usuario/{id}/deactivate [put]
func (c *usuarioApiController) deactivate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = usuariohandler.Instance.Deactivate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao desativar usuário")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
