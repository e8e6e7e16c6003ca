package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"talentos-backend/controllers"
	clientehandler "talentos-backend/lib/cliente"
	cnpjhandler "talentos-backend/lib/cnpj"
	"talentos-backend/middleware"
	apimodels "talentos-backend/models/api"
	clienteapimodels "talentos-backend/models/api/cliente"
)

type clienteApiController struct {
	controllers.BaseAPIController
}

func InitClienteApiRouters(app *fiber.App) {
	controller := clienteApiController{}
	app.Route("cliente", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Get("cnpj/:numero", controller.cnpjLookup)
		router.Post("from_cnpj/:numero", controller.createFromCnpj)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("change_stage", controller.changeStage)
			idRoute.Get("timeline", controller.timeline)
		})
	})
}

// @Summary Criação de cliente
// @Tags Cliente
// @Description Criação de cliente
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 clienteapimodels.ClienteData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cliente [post]
func (c *clienteApiController) create(ctx *fiber.Ctx) error {
	var payload clienteapimodels.ClienteData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := clientehandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao criar cliente")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Consulta de CNPJ
// @Tags Cliente
// @Description Consulta os dados cadastrais do CNPJ na BrasilAPI
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   numero          	path    string  true    "CNPJ"
// @Success 200 {object} apimodels.Response{data=clienteapimodels.CnpjView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cliente/cnpj/{numero} [get]
func (c *clienteApiController) cnpjLookup(ctx *fiber.Ctx) error {
	numero, err := c.GetIDByKey(ctx, "numero")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := cnpjhandler.Instance.Lookup(ctx.UserContext(), numero)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao consultar o CNPJ")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Criação de cliente a partir do CNPJ
// @Tags Cliente
// @Description Cria o cliente pré-preenchido com os dados da consulta de CNPJ
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   numero          	path    string  true    "CNPJ"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cliente/from_cnpj/{numero} [post]
func (c *clienteApiController) createFromCnpj(ctx *fiber.Ctx) error {
	numero, err := c.GetIDByKey(ctx, "numero")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := clientehandler.Instance.CreateFromCnpj(ctx.UserContext(), userID, numero)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao criar cliente pelo CNPJ")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Atualização de cliente
// @Tags Cliente
// @Description Atualização de cliente
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param	body body	 clienteapimodels.ClienteData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cliente/{id} [put]
func (c *clienteApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload clienteapimodels.ClienteData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = clientehandler.Instance.Update(userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao atualizar cliente")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Obtenção de cliente por ID
// @Tags Cliente
// @Description Obtenção de cliente por ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=clienteapimodels.ClienteView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cliente/{id} [get]
func (c *clienteApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := clientehandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter cliente")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Exclusão de cliente
// @Tags Cliente
// @Description Exclusão de cliente
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cliente/{id} [delete]
func (c *clienteApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = clientehandler.Instance.Delete(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao excluir cliente")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Lista de clientes
// @Tags Cliente
// @Description Lista de clientes com filtro e paginação
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 clienteapimodels.ClienteFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]clienteapimodels.ClienteView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cliente/list [post]
func (c *clienteApiController) list(ctx *fiber.Ctx) error {
	var payload clienteapimodels.ClienteFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := clientehandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter a lista de clientes")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Mudança de etapa do cliente
// @Tags Cliente
// @Description Move o cliente para outra etapa do funil comercial
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param	body body	 clienteapimodels.ClienteStageRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cliente/{id}/change_stage [put]
func (c *clienteApiController) changeStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload clienteapimodels.ClienteStageRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = clientehandler.Instance.ChangeStage(userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao mover o cliente de etapa")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Linha do tempo do cliente
// @Tags Cliente
// @Description Linha do tempo do funil comercial
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=[]timeline.Entry}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cliente/{id}/timeline [get]
func (c *clienteApiController) timeline(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := clientehandler.Instance.Timeline(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter a linha do tempo do cliente")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
