package dbmodels

import (
	"fmt"
	"time"

	"labo-isometeer-backend/models"
	userapimodels "labo-isometeer-backend/models/api/user"
)

type User struct {
	BaseModel
	Password    string `gorm:"type:varchar(128)"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	IsActive    bool
	PhoneNumber string          `gorm:"type:varchar(20)"`
	Role        models.UserRole `gorm:"type:varchar(50)"`
	LastLogin   time.Time
}

func (r User) ToModel() userapimodels.UserView {
	return userapimodels.UserView{
		ID: r.ID,
		UserCommonData: userapimodels.UserCommonData{
			Email:       r.Email,
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			PhoneNumber: r.PhoneNumber,
			IsActive:    r.IsActive,
			Role:        string(r.Role),
		},
		RoleName: r.Role.ToHuman(),
	}
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
