package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"talentos-backend/controllers"
	pdfexport "talentos-backend/lib/export/pdf"
	sharelinkhandler "talentos-backend/lib/sharelink"
	vagahandler "talentos-backend/lib/vaga"
	"talentos-backend/middleware"
	apimodels "talentos-backend/models/api"
	sharelinkapimodels "talentos-backend/models/api/sharelink"
	vagaapimodels "talentos-backend/models/api/vaga"
)

type vagaApiController struct {
	controllers.BaseAPIController
}

func InitVagaApiRouters(app *fiber.App) {
	controller := vagaApiController{}
	app.Route("vaga", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("change_stage", controller.changeStage)
			idRoute.Get("timeline", controller.timeline)
			idRoute.Get("board", controller.board)
			idRoute.Get("report", controller.report)
			idRoute.Route("sharelink", func(linkRoute fiber.Router) {
				linkRoute.Get("list", controller.shareLinkList)
				linkRoute.Post("", controller.shareLinkCreate)
			})
		})
	})
}

// @Summary Criação de vaga
// @Tags Vaga
// @Description Criação de vaga
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vagaapimodels.VagaData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vaga [post]
func (c *vagaApiController) create(ctx *fiber.Ctx) error {
	var payload vagaapimodels.VagaData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := vagahandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao criar vaga")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Atualização de vaga
// @Tags Vaga
// @Description Atualização de vaga
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param	body body	 vagaapimodels.VagaData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vaga/{id} [put]
func (c *vagaApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload vagaapimodels.VagaData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = vagahandler.Instance.Update(userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao atualizar vaga")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Obtenção de vaga por ID
// @Tags Vaga
// @Description Obtenção de vaga por ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=vagaapimodels.VagaView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vaga/{id} [get]
func (c *vagaApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := vagahandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter vaga")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Arquivamento de vaga
// @Tags Vaga
// @Description Arquivamento de vaga
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vaga/{id} [delete]
func (c *vagaApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = vagahandler.Instance.Delete(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao excluir vaga")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Lista de vagas
// @Tags Vaga
// @Description Lista de vagas com filtro e paginação
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vagaapimodels.VagaFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]vagaapimodels.VagaView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vaga/list [post]
func (c *vagaApiController) list(ctx *fiber.Ctx) error {
	var payload vagaapimodels.VagaFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := vagahandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter a lista de vagas")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Mudança de etapa da vaga
// @Tags Vaga
// @Description Move a vaga para outra etapa do funil
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param	body body	 vagaapimodels.VagaStageRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vaga/{id}/change_stage [put]
func (c *vagaApiController) changeStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload vagaapimodels.VagaStageRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = vagahandler.Instance.ChangeStage(userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao mover a vaga de etapa")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Linha do tempo da vaga
// @Tags Vaga
// @Description Linha do tempo do funil com dias úteis por etapa
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=[]timeline.Entry}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vaga/{id}/timeline [get]
func (c *vagaApiController) timeline(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := vagahandler.Instance.Timeline(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter a linha do tempo da vaga")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Kanban de candidatos da vaga
// @Tags Vaga
// @Description Colunas do kanban na ordem do funil de candidatos
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=[]board.Column}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vaga/{id}/board [get]
func (c *vagaApiController) board(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := vagahandler.Instance.Board(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter o kanban da vaga")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Relatório da vaga em PDF
// @Tags Vaga
// @Description Relatório da vaga com a linha do tempo do funil
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vaga/{id}/report [get]
func (c *vagaApiController) report(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	vaga, err := vagahandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter vaga")
	}
	entries, err := vagahandler.Instance.Timeline(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter a linha do tempo da vaga")
	}
	pdfFile, err := pdfexport.GenerateVagaReport(vaga, entries)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao gerar o relatório da vaga")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="vaga-%v.pdf"`, id))
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}

// @Summary Links públicos da vaga
// @Tags Vaga
// @Description Lista os links públicos de inscrição da vaga
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=[]sharelinkapimodels.ShareLinkView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vaga/{id}/sharelink/list [get]
func (c *vagaApiController) shareLinkList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := sharelinkhandler.Instance.ListByVaga(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter os links da vaga")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Criação de link público da vaga
// @Tags Vaga
// @Description Cria um link público de inscrição para a vaga
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param	body body	 sharelinkapimodels.ShareLinkData	true	"request body"
// @Success 200 {object} apimodels.Response{data=sharelinkapimodels.ShareLinkView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vaga/{id}/sharelink [post]
func (c *vagaApiController) shareLinkCreate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload sharelinkapimodels.ShareLinkData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := sharelinkhandler.Instance.Create(userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao criar o link da vaga")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
