package agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"talentos-backend/config"
	"talentos-backend/db"
	googleclient "talentos-backend/lib/agenda/client"
	store "talentos-backend/lib/agenda/store"
	candidatostore "talentos-backend/lib/candidato/store"
	"talentos-backend/lib/evento"
	initchecker "talentos-backend/lib/utils/init-checker"
	"talentos-backend/models"
	agendaapimodels "talentos-backend/models/api/agenda"
	dbmodels "talentos-backend/models/db"
)

type Provider interface {
	GetLoginUri(userID string) agendaapimodels.LoginUriView
	// HandleCallback troca o code do consentimento pelos tokens e os guarda.
	HandleCallback(ctx context.Context, userID, code string) error
	Status(userID string) (agendaapimodels.StatusView, error)
	Disconnect(userID string) error
	CreateInterviewEvent(ctx context.Context, userID string, data agendaapimodels.InterviewRequest) (*agendaapimodels.InterviewView, error)
}

var Instance Provider

func NewHandler() {
	googleclient.NewProvider(
		config.Conf.Google.ClientID,
		config.Conf.Google.ClientSecret,
		config.Conf.Google.RedirectUri,
	)
	instance := impl{
		store:          store.NewInstance(db.DB),
		candidatoStore: candidatostore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"candidatoStore", instance.candidatoStore,
		"googleclient", googleclient.Instance,
		"evento", evento.Instance,
	)
	Instance = instance
}

type impl struct {
	store          store.Provider
	candidatoStore candidatostore.Provider
}

func (i impl) GetLoginUri(userID string) agendaapimodels.LoginUriView {
	return agendaapimodels.LoginUriView{
		Uri: googleclient.Instance.GetLoginUri(userID),
	}
}

func (i impl) HandleCallback(ctx context.Context, userID, code string) error {
	logger := log.WithField("user_id", userID)
	if code == "" {
		return errors.New("código de autorização ausente")
	}
	tokens, err := googleclient.Instance.ExchangeCode(ctx, code)
	if err != nil {
		logger.WithError(err).Error("erro ao trocar o código de autorização do Google")
		return err
	}
	_, err = i.store.Save(dbmodels.AgendaToken{
		UserID:       userID,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(tokens.ExpiresIn) * time.Second),
	})
	if err != nil {
		logger.WithError(err).Error("erro ao guardar os tokens do Google Agenda")
		return errors.New("erro ao conectar o Google Agenda")
	}
	logger.Info("Google Agenda conectado")
	return nil
}

func (i impl) Status(userID string) (agendaapimodels.StatusView, error) {
	token, err := i.store.GetByUserID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("erro ao obter o token da agenda")
		return agendaapimodels.StatusView{}, errors.New("erro ao obter o estado da agenda")
	}
	if token == nil {
		return agendaapimodels.StatusView{Conectado: false}, nil
	}
	return agendaapimodels.StatusView{
		Conectado: true,
		ExpiraEm:  token.ExpiresAt,
	}, nil
}

func (i impl) Disconnect(userID string) error {
	err := i.store.DeleteByUserID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("erro ao desconectar a agenda")
		return errors.New("erro ao desconectar a agenda")
	}
	return nil
}

func (i impl) CreateInterviewEvent(ctx context.Context, userID string, data agendaapimodels.InterviewRequest) (*agendaapimodels.InterviewView, error) {
	logger := log.
		WithField("user_id", userID).
		WithField("candidato_id", data.CandidatoID)
	if err := data.Validate(); err != nil {
		return nil, err
	}
	candidato, err := i.candidatoStore.GetByID(data.CandidatoID)
	if err != nil {
		logger.WithError(err).Error("erro ao obter o candidato da entrevista")
		return nil, errors.New("erro ao obter o candidato")
	}
	if candidato == nil {
		return nil, errors.New("candidato não encontrado")
	}

	accessToken, err := i.usableAccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	titulo := data.Titulo
	if titulo == "" {
		titulo = fmt.Sprintf("Entrevista - %v", candidato.GetNomeCompleto())
	}
	attendees := []googleclient.EventAttendee{}
	if candidato.Email != "" {
		attendees = append(attendees, googleclient.EventAttendee{Email: candidato.Email})
	}
	for _, email := range data.Convidados {
		attendees = append(attendees, googleclient.EventAttendee{Email: email})
	}
	event, err := googleclient.Instance.CreateEvent(ctx, accessToken, googleclient.EventRequest{
		Summary:     titulo,
		Description: data.Descricao,
		Start:       googleclient.EventDateTime{DateTime: data.Inicio, TimeZone: googleclient.TimeZoneName},
		End:         googleclient.EventDateTime{DateTime: data.Fim, TimeZone: googleclient.TimeZoneName},
		Attendees:   attendees,
	})
	if err != nil {
		logger.WithError(err).Error("erro ao criar o evento no Google Agenda")
		return nil, err
	}

	err = evento.Instance.LogEvent(evento.LogParams{
		Entity:      models.EntityCandidato,
		EntityID:    candidato.ID,
		UserID:      userID,
		EventType:   models.EventTypeInterview,
		Description: fmt.Sprintf("entrevista agendada para %v", data.Inicio.Format("02/01/2006 15:04")),
	})
	if err != nil {
		logger.WithError(err).Warn("entrevista criada, erro ao registrar o evento")
	}
	logger.WithField("event_id", event.ID).Info("entrevista agendada")
	return &agendaapimodels.InterviewView{
		EventID:  event.ID,
		HtmlLink: event.HtmlLink,
	}, nil
}

// usableAccessToken devolve um access token válido, renovando pelo
// refresh token quando o atual já expirou.
func (i impl) usableAccessToken(ctx context.Context, userID string) (string, error) {
	logger := log.WithField("user_id", userID)
	token, err := i.store.GetByUserID(userID)
	if err != nil {
		logger.WithError(err).Error("erro ao obter o token da agenda")
		return "", errors.New("erro ao obter o estado da agenda")
	}
	if token == nil {
		return "", errors.New("conecte o Google Agenda antes de agendar entrevistas")
	}
	if !token.IsExpired(time.Now()) {
		return token.AccessToken, nil
	}
	if token.RefreshToken == "" {
		return "", errors.New("autorização do Google Agenda expirada, conecte novamente")
	}
	refreshed, err := googleclient.Instance.RefreshToken(ctx, token.RefreshToken)
	if err != nil {
		logger.WithError(err).Error("erro ao renovar o token do Google Agenda")
		return "", err
	}
	token.AccessToken = refreshed.AccessToken
	token.ExpiresAt = time.Now().Add(time.Duration(refreshed.ExpiresIn) * time.Second)
	if _, err = i.store.Save(*token); err != nil {
		logger.WithError(err).Error("erro ao guardar o token renovado da agenda")
		return "", errors.New("erro ao renovar a autorização da agenda")
	}
	return token.AccessToken, nil
}
