package models

// User is an account that can authenticate. Passwords are stored as given,
// without hashing; this mirrors the upstream system and is a known gap, so
// any migration away from it must be an explicit behavior change.
type User struct {
	ID       int    `json:"id" gorm:"primaryKey"`
	Guid     string `json:"guid" gorm:"type:text;not null"`
	UserName string `json:"userName" gorm:"size:50;not null;uniqueIndex:idx_users_user_name"`
	Password string `json:"-" gorm:"size:20;not null"`
	IsActive bool   `json:"isActive" gorm:"not null;default:false"`
	RoleID   int    `json:"roleId" gorm:"not null"`

	Role Role `json:"role,omitempty" gorm:"foreignKey:RoleID;references:ID"`
}
