package models

import "time"

type Audio struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"-"`
	Name      string    `db:"name" json:"name"` // display name given by the uploader
	FilePath  string    `db:"file_path" json:"file_path"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
