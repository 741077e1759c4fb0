package domain

import "time"

// Vendor é o dono/revendedor de um conjunto de contas de anúncio
type Vendor struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	ContactTelegram   *string   `json:"contact_telegram,omitempty"`
	BusinessManagerID *string   `json:"business_manager_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
