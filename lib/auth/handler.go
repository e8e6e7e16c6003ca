package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"talentos-backend/config"
	"talentos-backend/db"
	usuariostore "talentos-backend/lib/usuario/store"
	authutils "talentos-backend/lib/utils/auth-utils"
	initchecker "talentos-backend/lib/utils/init-checker"
	authapimodels "talentos-backend/models/api/auth"
	usuarioapimodels "talentos-backend/models/api/usuario"
	dbmodels "talentos-backend/models/db"
)

type Provider interface {
	Login(email, password string) (resp authapimodels.LoginResponse, err error)
	RefreshToken(refreshToken string) (resp authapimodels.LoginResponse, err error)
	Me(ctx *fiber.Ctx) (item usuarioapimodels.UsuarioView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		userStore: usuariostore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"userStore", instance.userStore,
	)
	Instance = instance
}

type impl struct {
	userStore usuariostore.Provider
}

func (i impl) Login(email, password string) (resp authapimodels.LoginResponse, err error) {
	logger := log.WithField("user_email", email)
	user, err := i.userStore.GetByEmail(email)
	if err != nil {
		logger.WithError(err).Error("erro ao autenticar usuário")
		return authapimodels.LoginResponse{}, errors.New("erro ao autenticar usuário")
	}
	if user == nil || !user.Ativo {
		return authapimodels.LoginResponse{}, errors.New("credenciais inválidas")
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return authapimodels.LoginResponse{}, errors.New("credenciais inválidas")
	}
	return i.issueTokens(*user)
}

func (i impl) RefreshToken(refreshToken string) (resp authapimodels.LoginResponse, err error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de assinatura inválido")
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return authapimodels.LoginResponse{}, errors.New("refresh token inválido")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return authapimodels.LoginResponse{}, errors.New("refresh token inválido")
	}
	userID, _ := claims["sub"].(string)
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("erro ao renovar o token")
		return authapimodels.LoginResponse{}, errors.New("erro ao renovar o token")
	}
	if user == nil || !user.Ativo {
		return authapimodels.LoginResponse{}, errors.New("refresh token inválido")
	}
	return i.issueTokens(*user)
}

func (i impl) Me(ctx *fiber.Ctx) (item usuarioapimodels.UsuarioView, err error) {
	claims := authutils.GetClaims(ctx)
	userID, _ := claims["sub"].(string)
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("erro ao obter o usuário atual")
		return usuarioapimodels.UsuarioView{}, errors.New("erro ao obter o usuário atual")
	}
	if user == nil {
		return usuarioapimodels.UsuarioView{}, errors.New("usuário não encontrado")
	}
	return usuarioapimodels.Convert(*user), nil
}

func (i impl) issueTokens(user dbmodels.Usuario) (authapimodels.LoginResponse, error) {
	accessToken, err := authutils.GetToken(user.ID, user.GetNomeCompleto(), user.Role)
	if err != nil {
		log.WithField("user_id", user.ID).WithError(err).Error("erro ao emitir o token de acesso")
		return authapimodels.LoginResponse{}, errors.New("erro ao autenticar usuário")
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.GetNomeCompleto())
	if err != nil {
		log.WithField("user_id", user.ID).WithError(err).Error("erro ao emitir o refresh token")
		return authapimodels.LoginResponse{}, errors.New("erro ao autenticar usuário")
	}
	return authapimodels.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
