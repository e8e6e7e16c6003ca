package cnpjclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	//https://brasilapi.com.br/docs#tag/CNPJ
	GetByCnpj(ctx context.Context, cnpj string) (*CnpjResponse, error)
}

var Instance Provider

type impl struct {
	host string
}

func NewProvider(host string) {
	Instance = &impl{
		host: host,
	}
}

const cnpjPath string = "/api/cnpj/v1/%v"

type CnpjResponse struct {
	Cnpj              string `json:"cnpj"`
	RazaoSocial       string `json:"razao_social"`
	NomeFantasia      string `json:"nome_fantasia"`
	Municipio         string `json:"municipio"`
	Uf                string `json:"uf"`
	DescricaoSituacao string `json:"descricao_situacao_cadastral"`
	SituacaoCadastral int    `json:"situacao_cadastral"`
}

type errorData struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (i impl) GetByCnpj(ctx context.Context, cnpj string) (*CnpjResponse, error) {
	uri := i.host + fmt.Sprintf(cnpjPath, cnpj)
	logger := log.
		WithField("external_request", uri)

	r, _ := http.NewRequestWithContext(ctx, "GET", uri, nil)
	r.Header.Add("Content-Type", "application/json")
	resp := new(CnpjResponse)

	err := i.sendRequest(logger, r, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) sendRequest(logger *log.Entry, r *http.Request, resp interface{}) error {
	r.Header.Add("User-Agent", "Talentos/1.0")
	client := &http.Client{}
	response, err := client.Do(r)
	if err != nil {
		logger.WithError(err).Error("erro ao enviar requisição para a BrasilAPI")
		return errors.New("erro ao consultar o CNPJ")
	}
	defer response.Body.Close()
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if resp != nil {
			responseBody, _ := io.ReadAll(response.Body)
			err = json.Unmarshal(responseBody, resp)
			if err != nil {
				return errors.Wrap(err, "erro ao serializar a resposta")
			}
		}
		return nil
	}

	errorResp := errorData{}
	responseBody, _ := io.ReadAll(response.Body)
	logger = logger.WithField("response_body", string(responseBody))
	err = json.Unmarshal(responseBody, &errorResp)
	if err != nil {
		logger.WithError(err).Error("erro ao serializar a resposta")
	}
	logger.Error("erro ao enviar requisição para a BrasilAPI")
	if response.StatusCode == http.StatusNotFound {
		return errors.New("CNPJ não encontrado")
	}
	return errors.Errorf("Requisição inválida. Erro: %+v", errorResp.Message)
}
