package entity

import "time"

// Product — снимок товара из внешнего каталога. Движок его не владеет
// и читает только имя и картинку для рендеринга.
type Product struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
