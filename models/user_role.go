package models

type UserRole string

const (
	UserRoleAdmin       UserRole = "ADMIN"
	UserRoleDirector    UserRole = "DIRECTOR"
	UserRoleEmpleado    UserRole = "EMPLEADO"
	UserRoleFacturacion UserRole = "FACTURACION"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:       "Administrador",
	UserRoleDirector:    "Director técnico",
	UserRoleEmpleado:    "Empleado",
	UserRoleFacturacion: "Facturación",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

const SystemUser = "Sistema"
