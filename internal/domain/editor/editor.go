package editor

import "time"

// Editor is a registered user who authors revisions and owns collections.
type Editor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Editor) TableName() string { return "editor" }
