package model

// SiswaModel mirrors the 'siswa' table. UserID is a nullable unique foreign
// key: a student exists before an account is registered for them.
type SiswaModel struct {
	ID            int64  `gorm:"column:siswa_id;primaryKey;autoIncrement"`
	Nama          string `gorm:"column:nama;type:varchar(255);not null"`
	SekolahAsalID int64  `gorm:"column:sekolah_asal_id;not null"`
	UserID        *int64 `gorm:"column:user_id;unique"`
}

// TableName explicitly sets the table name for GORM.
func (SiswaModel) TableName() string {
	return "siswa"
}

// SekolahModel mirrors the 'sekolah' table. UserID links the school to its
// admin account, nullable until one is registered.
type SekolahModel struct {
	ID     int64  `gorm:"column:sekolah_id;primaryKey;autoIncrement"`
	Nama   string `gorm:"column:sekolah_nama;type:varchar(255);not null"`
	UserID *int64 `gorm:"column:user_id;unique"`
}

// TableName explicitly sets the table name for GORM.
func (SekolahModel) TableName() string {
	return "sekolah"
}
