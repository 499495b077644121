// Package model contains the GORM persistence models mirroring the database
// schema. They stay inside the infrastructure layer; repositories map them to
// and from domain entities.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64   `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string  `gorm:"column:username;type:varchar(255);unique;not null"`
	Password     string  `gorm:"column:password;type:varchar(255);not null"`
	RoleID       int64   `gorm:"column:role_id;not null"`
	RefreshToken *string `gorm:"column:refresh_token;type:text"`
	CreatedAt    time.Time
	UpdatedAt    *time.Time

	Role    RoleModel     `gorm:"foreignKey:RoleID;references:ID"`
	Siswa   *SiswaModel   `gorm:"foreignKey:UserID;references:ID"`
	Sekolah *SekolahModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
