package dbmodels

// UserSetting guarda preferencias por usuario como blobs JSON,
// entre ellas el orden manual del tablero de carga de trabajo.
type UserSetting struct {
	BaseModel
	UserID string `gorm:"type:varchar(36);uniqueIndex:idx_user_setting"`
	Key    string `gorm:"type:varchar(100);uniqueIndex:idx_user_setting"`
	Value  []byte
}
