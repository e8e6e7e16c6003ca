package googleclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	//https://developers.google.com/identity/protocols/oauth2/web-server
	GetLoginUri(state string) string
	ExchangeCode(ctx context.Context, code string) (*TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error)
	//https://developers.google.com/calendar/api/v3/reference/events/insert
	CreateEvent(ctx context.Context, accessToken string, event EventRequest) (*EventResponse, error)
}

var Instance Provider

type impl struct {
	clientID     string
	clientSecret string
	redirectUri  string
}

func NewProvider(clientID, clientSecret, redirectUri string) {
	Instance = &impl{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectUri:  redirectUri,
	}
}

const (
	authUri     = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenUri    = "https://oauth2.googleapis.com/token"
	calendarUri = "https://www.googleapis.com/calendar/v3/calendars/primary/events"
	oauthScope  = "https://www.googleapis.com/auth/calendar.events"
	sendUpdates = "all"

	TimeZoneName = "America/Sao_Paulo"
)

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

type EventDateTime struct {
	DateTime time.Time `json:"dateTime"`
	TimeZone string    `json:"timeZone"`
}

type EventAttendee struct {
	Email string `json:"email"`
}

type EventRequest struct {
	Summary     string          `json:"summary"`
	Description string          `json:"description,omitempty"`
	Start       EventDateTime   `json:"start"`
	End         EventDateTime   `json:"end"`
	Attendees   []EventAttendee `json:"attendees,omitempty"`
}

type EventResponse struct {
	ID       string `json:"id"`
	HtmlLink string `json:"htmlLink"`
	Status   string `json:"status"`
}

type errorData struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (i impl) GetLoginUri(state string) string {
	params := url.Values{}
	params.Set("client_id", i.clientID)
	params.Set("redirect_uri", i.redirectUri)
	params.Set("response_type", "code")
	params.Set("scope", oauthScope)
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	params.Set("state", state)
	return authUri + "?" + params.Encode()
}

func (i impl) ExchangeCode(ctx context.Context, code string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("client_id", i.clientID)
	form.Set("client_secret", i.clientSecret)
	form.Set("redirect_uri", i.redirectUri)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	return i.requestToken(ctx, form)
}

func (i impl) RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("client_id", i.clientID)
	form.Set("client_secret", i.clientSecret)
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	return i.requestToken(ctx, form)
}

func (i impl) requestToken(ctx context.Context, form url.Values) (*TokenResponse, error) {
	logger := log.
		WithField("external_request", tokenUri)

	r, _ := http.NewRequestWithContext(ctx, "POST", tokenUri, strings.NewReader(form.Encode()))
	r.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	resp := new(TokenResponse)

	err := i.sendRequest(logger, r, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) CreateEvent(ctx context.Context, accessToken string, event EventRequest) (*EventResponse, error) {
	uri := calendarUri + "?sendUpdates=" + sendUpdates
	logger := log.
		WithField("external_request", uri)

	body, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o evento da agenda")
	}
	r, _ := http.NewRequestWithContext(ctx, "POST", uri, strings.NewReader(string(body)))
	r.Header.Add("Content-Type", "application/json")
	r.Header.Add("Authorization", "Bearer "+accessToken)
	resp := new(EventResponse)

	err = i.sendRequest(logger, r, resp)
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
		logger.WithError(err).Error("erro ao enviar requisição para o Google")
		return errors.New("erro ao falar com o Google Agenda")
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
	logger.Error("erro ao enviar requisição para o Google")
	if response.StatusCode == http.StatusUnauthorized {
		return errors.New("autorização do Google Agenda expirada")
	}
	return errors.Errorf("Requisição inválida. Erro: %+v", fmt.Sprintf("%v %v", errorResp.Error, errorResp.ErrorDescription))
}
