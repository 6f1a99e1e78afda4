package usershandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"labo-isometeer-backend/db"
	usersstore "labo-isometeer-backend/lib/users/store"
	authutils "labo-isometeer-backend/lib/utils/auth-utils"
	"labo-isometeer-backend/models"
	userapimodels "labo-isometeer-backend/models/api/user"
	dbmodels "labo-isometeer-backend/models/db"
)

type Provider interface {
	CreateUser(request userapimodels.CreateUser) (id string, err error)
	UpdateUser(userID string, request userapimodels.UpdateUser) error
	DeleteUser(userID string) error
	GetListUsers(request userapimodels.UserListRequest) (usersList []userapimodels.UserView, rowCount int64, err error)
	GetByID(userID string) (user userapimodels.UserView, err error)
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

func (i impl) GetByID(userID string) (user userapimodels.UserView, err error) {
	userDB, err := i.usersStore.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("error buscando el usuario")
		return userapimodels.UserView{}, err
	}
	if userDB == nil {
		return userapimodels.UserView{}, errors.New("usuario no encontrado")
	}
	return userDB.ToModel(), nil
}

func (i impl) CreateUser(request userapimodels.CreateUser) (id string, err error) {
	userExist, err := i.usersStore.ExistByEmail(request.Email)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("error verificando usuario existente")
		return "", err
	}
	if userExist {
		return "", errors.New("ya existe un usuario con ese correo")
	}
	rec := dbmodels.User{
		Password:    authutils.GetMD5Hash(request.Password),
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Email:       request.Email,
		IsActive:    true,
		PhoneNumber: request.PhoneNumber,
		Role:        models.UserRole(request.Role),
	}
	id, err = i.usersStore.Create(rec)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("error creando el usuario")
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("email", rec.Email).
		Info("usuario creado")
	return id, nil
}

func (i impl) UpdateUser(userID string, request userapimodels.UpdateUser) error {
	user, err := i.GetByID(userID)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"first_name":   request.FirstName,
		"last_name":    request.LastName,
		"phone_number": request.PhoneNumber,
		"is_active":    request.IsActive,
		"role":         request.Role,
	}
	if request.Password != "" {
		updMap["password"] = authutils.GetMD5Hash(request.Password)
	}
	if user.Email != request.Email {
		emailTaken, err := i.usersStore.ExistByEmail(request.Email)
		if err != nil {
			return err
		}
		if emailTaken {
			return errors.New("ya existe un usuario con ese correo")
		}
		updMap["email"] = request.Email
	}
	err = i.usersStore.Update(userID, updMap)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("error actualizando el usuario")
		return err
	}
	log.WithField("rec_id", userID).Info("usuario actualizado")
	return nil
}

func (i impl) DeleteUser(userID string) error {
	err := i.usersStore.Delete(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("error eliminando el usuario")
		return err
	}
	log.WithField("rec_id", userID).Info("usuario eliminado")
	return nil
}

func (i impl) GetListUsers(request userapimodels.UserListRequest) (usersList []userapimodels.UserView, rowCount int64, err error) {
	page, limit := request.GetPage()
	rowCount, err = i.usersStore.GetListCount(request.Search)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.usersStore.GetList(request.Search, page, limit)
	if err != nil {
		log.WithError(err).Error("error obteniendo la lista de usuarios")
		return nil, 0, err
	}
	usersList = make([]userapimodels.UserView, 0, len(list))
	for _, user := range list {
		usersList = append(usersList, user.ToModel())
	}
	return usersList, rowCount, nil
}
