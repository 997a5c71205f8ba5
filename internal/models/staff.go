package models

// Doctor represents the doctors table, one-to-one with a user account
type Doctor struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"not null;uniqueIndex" json:"user_id"`
	Specialty  string `gorm:"size:100" json:"specialty"`
	IsArchived bool   `gorm:"default:false" json:"is_archived"`
	User       User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}

// Nurse represents the nurses table, one-to-one with a user account
type Nurse struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"not null;uniqueIndex" json:"user_id"`
	Department string `gorm:"size:100" json:"department"`
	IsArchived bool   `gorm:"default:false" json:"is_archived"`
	User       User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Nurse model
func (Nurse) TableName() string {
	return "nurses"
}

// PharmacyStaff represents the pharmacy_staff table
type PharmacyStaff struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	UserID        uint    `gorm:"not null;uniqueIndex" json:"user_id"`
	LicenseNumber *string `gorm:"size:100;uniqueIndex" json:"license_number"`
	Shift         string  `gorm:"type:enum('morning','afternoon','night');default:'morning'" json:"shift"`
	IsArchived    bool    `gorm:"default:false" json:"is_archived"`
	User          User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for PharmacyStaff model
func (PharmacyStaff) TableName() string {
	return "pharmacy_staff"
}
