package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"talentos-backend/controllers"
	sharelinkhandler "talentos-backend/lib/sharelink"
	"talentos-backend/middleware"
	apimodels "talentos-backend/models/api"
	sharelinkapimodels "talentos-backend/models/api/sharelink"
)

type shareLinkApiController struct {
	controllers.BaseAPIController
}

func InitShareLinkApiRouters(app *fiber.App) {
	controller := shareLinkApiController{}
	app.Route("sharelink", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("", controller.update)
			idRoute.Put("toggle", controller.toggle)
			idRoute.Put("regenerate", controller.regenerate)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Atualização de link público
// @Tags Link público
// @Description Atualização do título e da expiração do link
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param	body body	 sharelinkapimodels.ShareLinkData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sharelink/{id} [put]
func (c *shareLinkApiController) update(ctx *fiber.Ctx) error {
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
	err = sharelinkhandler.Instance.Update(userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao atualizar o link")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Ativação/desativação de link público
// @Tags Link público
// @Description Ativa ou desativa o link sem trocar o token
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param	set					query 	bool	false	"ativo/inativo"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sharelink/{id}/toggle [put]
func (c *shareLinkApiController) toggle(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	isSet := ctx.QueryBool("set", false)
	userID := middleware.GetUserID(ctx)
	err = sharelinkhandler.Instance.Toggle(userID, id, isSet)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao alterar o estado do link")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Regeneração do token do link público
// @Tags Link público
// @Description Troca o token do link; o link antigo deixa de funcionar
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=sharelinkapimodels.ShareLinkView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sharelink/{id}/regenerate [put]
func (c *shareLinkApiController) regenerate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := sharelinkhandler.Instance.Regenerate(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao regenerar o link")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Exclusão de link público
// @Tags Link público
// @Description Exclusão de link público
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sharelink/{id} [delete]
func (c *shareLinkApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = sharelinkhandler.Instance.Delete(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao excluir o link")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
