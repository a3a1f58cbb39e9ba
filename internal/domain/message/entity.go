package message

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message represents the messages table. Messages are immutable once
// created; there is no update or delete path.
type Message struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	Msg         string    `gorm:"not null" json:"msg"`
	MsgFrom     string    `gorm:"not null" json:"msgFrom"`
	MsgDateTime time.Time `gorm:"index" json:"msgDateTime"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Valid reports whether all required fields are set.
func (m Message) Valid() bool {
	return m.Msg != "" && m.MsgFrom != "" && !m.MsgDateTime.IsZero()
}
