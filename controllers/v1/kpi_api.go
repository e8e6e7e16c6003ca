package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"talentos-backend/controllers"
	kpihandler "talentos-backend/lib/kpi"
	"talentos-backend/middleware"
	apimodels "talentos-backend/models/api"
)

type kpiApiController struct {
	controllers.BaseAPIController
}

func InitKpiApiRouters(app *fiber.App) {
	controller := kpiApiController{}
	app.Route("kpi", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Get("dashboard", controller.dashboard)
		router.Get("export", controller.exportXls)
		router.Put("refresh", middleware.AdminRequired(), controller.refresh)
	})
}

// @Summary Painel de indicadores
// @Tags Indicadores
// @Description Indicadores de vagas por etapa do funil
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=kpiapimodels.KpiDashboardView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/kpi/dashboard [get]
func (c *kpiApiController) dashboard(ctx *fiber.Ctx) error {
	resp, err := kpihandler.Instance.Dashboard()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter os indicadores")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Exportação dos indicadores em XLSX
// @Tags Indicadores
// @Description Exporta os indicadores por etapa em XLSX
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} file
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/kpi/export [get]
func (c *kpiApiController) exportXls(ctx *fiber.Ctx) error {
	buf, err := kpihandler.Instance.ExportXls()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao exportar os indicadores")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="indicadores.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Atualização dos indicadores
// @Tags Indicadores
// @Description Atualiza a view materializada de indicadores (somente admin)
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/kpi/refresh [put]
func (c *kpiApiController) refresh(ctx *fiber.Ctx) error {
	err := kpihandler.Instance.RefreshView()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao atualizar os indicadores")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
