package userapimodels

import (
	"net/mail"

	"github.com/pkg/errors"

	"labo-isometeer-backend/models"
	apimodels "labo-isometeer-backend/models/api"
)

type UserCommonData struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	IsActive    bool   `json:"is_active"`
	Role        string `json:"role"`
}

type CreateUser struct {
	UserCommonData
	Password string `json:"password"`
}

func (r CreateUser) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("el correo tiene un formato inválido")
	}
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("nombre y apellido son obligatorios")
	}
	if r.Password == "" {
		return errors.New("la contraseña no puede estar vacía")
	}
	if !models.UserRole(r.Role).IsValid() {
		return errors.New("rol desconocido")
	}
	return nil
}

type UpdateUser struct {
	UserCommonData
	Password string `json:"password,omitempty"`
}

func (r UpdateUser) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("el correo tiene un formato inválido")
	}
	if !models.UserRole(r.Role).IsValid() {
		return errors.New("rol desconocido")
	}
	return nil
}

type UserView struct {
	UserCommonData
	ID       string `json:"id"`
	RoleName string `json:"role_name"`
}

type UserListRequest struct {
	apimodels.Pagination
	Search string `json:"search"`
}
