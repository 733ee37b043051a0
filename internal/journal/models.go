package journal

import "time"

type Submission struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Account     string    `gorm:"size:42;not null;index"`
	Contract    string    `gorm:"size:32;not null"`
	Method      string    `gorm:"size:64;not null"`
	Nonce       uint64    `gorm:"not null"`
	TxHash      string    `gorm:"size:66;index"` // 0x + 64 hex chars, empty before signing
	Status      string    `gorm:"size:16;not null"`
	BlockNumber uint64    `gorm:"not null;default:0"`
	Error       string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
