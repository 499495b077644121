package model

// RoleModel mirrors the 'roles' reference table. Rows are seeded by migration
// and never written by the service.
type RoleModel struct {
	ID   int64  `gorm:"column:role_id;primaryKey;autoIncrement"`
	Nama string `gorm:"column:role_nama;type:varchar(50);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}
