package apimodels

type Response struct {
	Status  string      `json:"status"`            //resultado do processamento fail/success
	Message string      `json:"message,omitempty"` //mensagem de erro
	Data    interface{} `json:"data,omitempty"`    //dados da resposta
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //para listas, total de registros considerando o filtro
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // registros por pagina
	Page  int `json:"page"`  // pagina (1,2,3..)
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
