package authhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"labo-isometeer-backend/db"
	usersstore "labo-isometeer-backend/lib/users/store"
	authutils "labo-isometeer-backend/lib/utils/auth-utils"
	authapimodels "labo-isometeer-backend/models/api/auth"
	userapimodels "labo-isometeer-backend/models/api/user"
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	RefreshToken(refreshToken string) (response authapimodels.JWTResponse, err error)
	Me(userID string) (user userapimodels.UserView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore usersstore.Provider
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.usersStore.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("error buscando el usuario por correo")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("no existe un usuario con ese correo")
		return authapimodels.JWTResponse{}, errors.New("usuario o contraseña incorrectos")
	}
	if !user.IsActive {
		logger.Debug("el usuario está inactivo")
		return authapimodels.JWTResponse{}, errors.New("el usuario está inactivo")
	}
	if authutils.GetMD5Hash(password) != user.Password {
		logger.Debug("la contraseña no coincide")
		return authapimodels.JWTResponse{}, errors.New("usuario o contraseña incorrectos")
	}
	token, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		logger.WithError(err).Error("error generando el JWT")
		return authapimodels.JWTResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		logger.WithError(err).Error("error generando el refresh token")
		return authapimodels.JWTResponse{}, err
	}
	err = i.usersStore.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("error actualizando la fecha del último ingreso")
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (i impl) RefreshToken(refreshToken string) (response authapimodels.JWTResponse, err error) {
	userID, _, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.New("refresh token inválido")
	}
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		return authapimodels.JWTResponse{}, errors.New("refresh token inválido")
	}
	token, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	newRefresh, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: newRefresh,
	}, nil
}

func (i impl) Me(userID string) (user userapimodels.UserView, err error) {
	rec, err := i.usersStore.GetByID(userID)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if rec == nil {
		return userapimodels.UserView{}, errors.New("usuario no encontrado")
	}
	return rec.ToModel(), nil
}
