package models

type Role struct {
	ID    int    `json:"id" gorm:"primaryKey"`
	Guid  string `json:"guid" gorm:"type:text;not null"`
	Name  string `json:"name" gorm:"size:50;not null"`
	Users []User `json:"users,omitempty" gorm:"foreignKey:RoleID;references:ID"`
}
