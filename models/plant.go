package models

import "time"

// Plant is a registered plant belonging to a user, identified by email.
type Plant struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"nombre" gorm:"column:nombre;not null"`
	Location     string    `json:"ubicacion" gorm:"column:ubicacion"`
	TypeID       string    `json:"tipo_id" gorm:"column:tipo_id;not null"`
	OwnerEmail   string    `json:"correo" gorm:"column:correo;not null"`
	RegisteredAt time.Time `json:"fecha_registro" gorm:"column:fecha_registro"`
}

func (Plant) TableName() string {
	return "plantas"
}

// PlantRequest is the registration payload. Location is optional and
// defaults to an empty string.
type PlantRequest struct {
	Name     string `json:"nombre" binding:"required"`
	Location string `json:"ubicacion"`
	TypeID   string `json:"tipo_id" binding:"required"`
	Email    string `json:"correo" binding:"required"`
}
