package models

type User struct {
	ID          int64  `db:"id" json:"id"`
	Email       string `db:"email" json:"email"`
	IsActive    bool   `db:"is_active" json:"-"`
	IsSuperuser bool   `db:"is_superuser" json:"is_superuser"`
	YandexID    string `db:"yandex_id" json:"-"`
}
