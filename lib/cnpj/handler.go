package cnpj

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"talentos-backend/config"
	cnpjclient "talentos-backend/lib/cnpj/client"
	"talentos-backend/lib/utils/helpers"
	clienteapimodels "talentos-backend/models/api/cliente"
)

type Provider interface {
	// Lookup consulta os dados cadastrais do CNPJ. Resultado fica em cache no
	// redis pelo TTL configurado; indisponibilidade do cache não bloqueia a
	// consulta.
	Lookup(ctx context.Context, cnpj string) (view clienteapimodels.CnpjView, err error)
}

var Instance Provider

func NewHandler(redisClient *redis.Client) {
	cnpjclient.NewProvider(config.Conf.Cnpj.Host)
	Instance = impl{
		client:   cnpjclient.Instance,
		cache:    redisClient,
		cacheTTL: time.Duration(config.Conf.Cnpj.CacheTTLMin) * time.Minute,
	}
}

type impl struct {
	client   cnpjclient.Provider
	cache    *redis.Client
	cacheTTL time.Duration
}

const cacheKeyPrefix = "cnpj:"

func (i impl) Lookup(ctx context.Context, cnpj string) (view clienteapimodels.CnpjView, err error) {
	numero := helpers.OnlyDigits(cnpj)
	if err = Validate(numero); err != nil {
		return clienteapimodels.CnpjView{}, err
	}
	logger := log.WithField("cnpj", numero)

	if cached, ok := i.fromCache(ctx, numero); ok {
		return cached, nil
	}

	resp, err := i.client.GetByCnpj(ctx, numero)
	if err != nil {
		return clienteapimodels.CnpjView{}, err
	}
	view = clienteapimodels.CnpjView{
		Cnpj:         numero,
		RazaoSocial:  resp.RazaoSocial,
		NomeFantasia: resp.NomeFantasia,
		Cidade:       resp.Municipio,
		Uf:           resp.Uf,
		Situacao:     resp.DescricaoSituacao,
	}
	i.toCache(ctx, numero, view)
	logger.Info("CNPJ consultado na BrasilAPI")
	return view, nil
}

func (i impl) fromCache(ctx context.Context, numero string) (view clienteapimodels.CnpjView, ok bool) {
	if i.cache == nil {
		return clienteapimodels.CnpjView{}, false
	}
	data, err := i.cache.Get(ctx, cacheKeyPrefix+numero).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.WithError(err).Warn("erro ao ler o cache de CNPJ")
		}
		return clienteapimodels.CnpjView{}, false
	}
	if err = json.Unmarshal(data, &view); err != nil {
		return clienteapimodels.CnpjView{}, false
	}
	return view, true
}

func (i impl) toCache(ctx context.Context, numero string, view clienteapimodels.CnpjView) {
	if i.cache == nil {
		return
	}
	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	err = i.cache.Set(ctx, cacheKeyPrefix+numero, data, i.cacheTTL).Err()
	if err != nil {
		log.WithError(err).Warn("erro ao gravar o cache de CNPJ")
	}
}

// Validate confere o tamanho e os dígitos verificadores do CNPJ.
func Validate(numero string) error {
	if len(numero) != 14 {
		return errors.New("CNPJ deve ter 14 dígitos")
	}
	igual := true
	for idx := 1; idx < 14; idx++ {
		if numero[idx] != numero[0] {
			igual = false
			break
		}
	}
	if igual {
		return errors.New("CNPJ inválido")
	}
	if digit(numero[:12]) != int(numero[12]-'0') || digit(numero[:13]) != int(numero[13]-'0') {
		return errors.New("CNPJ inválido")
	}
	return nil
}

func digit(base string) int {
	weight := 2
	sum := 0
	for idx := len(base) - 1; idx >= 0; idx-- {
		sum += int(base[idx]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
