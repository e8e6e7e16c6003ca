package apiv1

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"talentos-backend/controllers"
	candidatohandler "talentos-backend/lib/candidato"
	xlsexport "talentos-backend/lib/export/xls"
	filestorage "talentos-backend/lib/file-storage"
	"talentos-backend/middleware"
	apimodels "talentos-backend/models/api"
	candidatoapimodels "talentos-backend/models/api/candidato"
)

type candidatoApiController struct {
	controllers.BaseAPIController
}

func InitCandidatoApiRouters(app *fiber.App) {
	controller := candidatoApiController{}
	app.Route("candidato", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("list", controller.list)
		router.Post("export", controller.exportXls)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("change_stage", controller.changeStage)
			idRoute.Put("join_vaga/:vaga_id", controller.joinVaga)
			idRoute.Put("isolate", controller.isolateVaga)
			idRoute.Post("note", controller.addNote)
			idRoute.Get("timeline", controller.timeline)
			idRoute.Route("arquivo", func(fileRoute fiber.Router) {
				fileRoute.Get("list", controller.fileList)
				fileRoute.Post("curriculo", controller.uploadCurriculo)
				fileRoute.Post("documento", controller.uploadDocumento)
				fileRoute.Get("curriculo", controller.downloadCurriculo)
			})
		})
	})
	app.Route("arquivo", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Route(":file_id", func(fileRoute fiber.Router) {
			fileRoute.Get("", controller.downloadFile)
			fileRoute.Delete("", controller.deleteFile)
		})
	})
}

// @Summary Criação de candidato
// @Tags Candidato
// @Description Criação de candidato
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidatoapimodels.CandidatoData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidato [post]
func (c *candidatoApiController) create(ctx *fiber.Ctx) error {
	var payload candidatoapimodels.CandidatoData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := candidatohandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao criar candidato")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Atualização de candidato
// @Tags Candidato
// @Description Atualização de candidato
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param	body body	 candidatoapimodels.CandidatoData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidato/{id} [put]
func (c *candidatoApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidatoapimodels.CandidatoData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = candidatohandler.Instance.Update(userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao atualizar candidato")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Obtenção de candidato por ID
// @Tags Candidato
// @Description Obtenção de candidato por ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=candidatoapimodels.CandidatoView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidato/{id} [get]
func (c *candidatoApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := candidatohandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter candidato")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Exclusão de candidato
// @Tags Candidato
// @Description Exclusão de candidato
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidato/{id} [delete]
func (c *candidatoApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = candidatohandler.Instance.Delete(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao excluir candidato")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Lista de candidatos
// @Tags Candidato
// @Description Lista de candidatos com filtro e paginação
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidatoapimodels.CandidatoFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidatoapimodels.CandidatoView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidato/list [post]
func (c *candidatoApiController) list(ctx *fiber.Ctx) error {
	var payload candidatoapimodels.CandidatoFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := candidatohandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter a lista de candidatos")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Exportação de candidatos em XLSX
// @Tags Candidato
// @Description Exporta a lista filtrada de candidatos em XLSX
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidatoapimodels.CandidatoFilter	true	"request filter body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidato/export [post]
func (c *candidatoApiController) exportXls(ctx *fiber.Ctx) error {
	var payload candidatoapimodels.CandidatoFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, _, err := candidatohandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter a lista de candidatos")
	}
	buf, err := xlsexport.Instance.ExportCandidatoList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao exportar a lista de candidatos")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="candidatos.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Mudança de etapa do candidato
// @Tags Candidato
// @Description Move o candidato para outra etapa do funil
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param	body body	 candidatoapimodels.CandidatoStageRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidato/{id}/change_stage [put]
func (c *candidatoApiController) changeStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidatoapimodels.CandidatoStageRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = candidatohandler.Instance.ChangeStage(userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao mover o candidato de etapa")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Vínculo do candidato a uma vaga
// @Tags Candidato
// @Description Vincula o candidato do banco de talentos a uma vaga
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param   vaga_id          	path    string  true    "vaga ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidato/{id}/join_vaga/{vaga_id} [put]
func (c *candidatoApiController) joinVaga(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	vagaID, err := c.GetIDByKey(ctx, "vaga_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = candidatohandler.Instance.JoinVaga(userID, id, vagaID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao vincular o candidato à vaga")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Desvínculo do candidato da vaga
// @Tags Candidato
// @Description Devolve o candidato ao banco de talentos
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidato/{id}/isolate [put]
func (c *candidatoApiController) isolateVaga(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = candidatohandler.Instance.IsolateVaga(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao desvincular o candidato da vaga")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Adição de anotação ao candidato
// @Tags Candidato
// @Description Adiciona uma anotação na trilha do candidato
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param	body body	 candidatoapimodels.CandidatoNoteRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidato/{id}/note [post]
func (c *candidatoApiController) addNote(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidatoapimodels.CandidatoNoteRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = candidatohandler.Instance.AddNote(userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao adicionar anotação")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Linha do tempo do candidato
// @Tags Candidato
// @Description Linha do tempo do funil com dias úteis por etapa
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=[]timeline.Entry}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidato/{id}/timeline [get]
func (c *candidatoApiController) timeline(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := candidatohandler.Instance.Timeline(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter a linha do tempo do candidato")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Upload de currículo
// @Tags Candidato
// @Description Upload do currículo do candidato (multipart, campo file)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param   file				formData	file	true	"arquivo"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidato/{id}/arquivo/curriculo [post]
func (c *candidatoApiController) uploadCurriculo(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, file, err := c.getFormFile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileID, err := filestorage.Instance.UploadCurriculo(ctx.UserContext(), id, fileName, file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao enviar o currículo")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fileID))
}

// @Summary Upload de documento
// @Tags Candidato
// @Description Upload de documento do candidato (multipart, campo file)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param   file				formData	file	true	"arquivo"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidato/{id}/arquivo/documento [post]
func (c *candidatoApiController) uploadDocumento(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, file, err := c.getFormFile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileID, err := filestorage.Instance.UploadDocumento(ctx.UserContext(), id, fileName, file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao enviar o documento")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fileID))
}

// @Summary Lista de arquivos do candidato
// @Tags Candidato
// @Description Lista os arquivos anexados ao candidato
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidato/{id}/arquivo/list [get]
func (c *candidatoApiController) fileList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := filestorage.Instance.ListByCandidato(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter os arquivos do candidato")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Download do currículo
// @Tags Candidato
// @Description Download do currículo mais recente do candidato
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidato/{id}/arquivo/curriculo [get]
func (c *candidatoApiController) downloadCurriculo(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, fileName, err := filestorage.Instance.GetCurriculo(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter o currículo")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%v"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(data)
}

// @Summary Download de arquivo
// @Tags Candidato
// @Description Download de arquivo pelo identificador
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file_id          	path    string  true    "file ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/arquivo/{file_id} [get]
func (c *candidatoApiController) downloadFile(ctx *fiber.Ctx) error {
	fileID, err := c.GetIDByKey(ctx, "file_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, fileName, err := filestorage.Instance.GetFile(ctx.UserContext(), fileID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao obter o arquivo")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%v"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(data)
}

// @Summary Exclusão de arquivo
// @Tags Candidato
// @Description Exclusão de arquivo pelo identificador
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file_id          	path    string  true    "file ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/arquivo/{file_id} [delete]
func (c *candidatoApiController) deleteFile(ctx *fiber.Ctx) error {
	fileID, err := c.GetIDByKey(ctx, "file_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = filestorage.Instance.Delete(ctx.UserContext(), fileID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao excluir o arquivo")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *candidatoApiController) getFormFile(ctx *fiber.Ctx) (fileName string, file []byte, err error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return "", nil, errors.New("arquivo não informado")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return "", nil, errors.New("não foi possível ler o arquivo")
	}
	defer f.Close()
	file, err = io.ReadAll(f)
	if err != nil {
		return "", nil, errors.New("não foi possível ler o arquivo")
	}
	return fileHeader.Filename, file, nil
}
