package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"talentos-backend/controllers"
	agendahandler "talentos-backend/lib/agenda"
	"talentos-backend/middleware"
	apimodels "talentos-backend/models/api"
	agendaapimodels "talentos-backend/models/api/agenda"
)

type agendaApiController struct {
	controllers.BaseAPIController
}

func InitAgendaApiRouters(app *fiber.App) {
	controller := agendaApiController{}
	app.Route("agenda", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Get("login_uri", controller.loginUri)
		router.Get("callback", controller.callback)
		router.Get("status", controller.status)
		router.Delete("", controller.disconnect)
		router.Post("entrevista", controller.createInterview)
	})
}

// @Summary URI de consentimento do Google Agenda
// @Tags Agenda
// @Description URI para o usuário autorizar o acesso ao Google Agenda
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=agendaapimodels.LoginUriView}
// @Failure 403
// @router /api/v1/agenda/login_uri [get]
func (c *agendaApiController) loginUri(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp := agendahandler.Instance.GetLoginUri(userID)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Callback do consentimento do Google
// @Tags Agenda
// @Description Troca o código de autorização pelos tokens de acesso
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	code				query 	string	true	"código de autorização"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/agenda/callback [get]
func (c *agendaApiController) callback(ctx *fiber.Ctx) error {
	code := ctx.Query("code", "")
	userID := middleware.GetUserID(ctx)
	err := agendahandler.Instance.HandleCallback(ctx.UserContext(), userID, code)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao conectar o Google Agenda")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Estado da conexão com o Google Agenda
// @Tags Agenda
// @Description Indica se o usuário conectou o Google Agenda
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=agendaapimodels.StatusView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/agenda/status [get]
func (c *agendaApiController) status(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := agendahandler.Instance.Status(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter o estado da agenda")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Desconexão do Google Agenda
// @Tags Agenda
// @Description Remove os tokens do Google Agenda do usuário
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/agenda [delete]
func (c *agendaApiController) disconnect(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	err := agendahandler.Instance.Disconnect(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao desconectar a agenda")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Agendamento de entrevista
// @Tags Agenda
// @Description Cria o evento de entrevista no Google Agenda com o candidato convidado
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 agendaapimodels.InterviewRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=agendaapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/agenda/entrevista [post]
func (c *agendaApiController) createInterview(ctx *fiber.Ctx) error {
	var payload agendaapimodels.InterviewRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := agendahandler.Instance.CreateInterviewEvent(ctx.UserContext(), userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao agendar a entrevista")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
