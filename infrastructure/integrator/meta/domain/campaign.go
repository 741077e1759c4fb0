package metadomain

import "github.com/vfg2006/ad-control-api/internal/domain"

type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
}

func (c Campaign) ToDomain() domain.Campaign {
	return domain.Campaign{
		ID:              c.ID,
		Name:            c.Name,
		Status:          c.Status,
		EffectiveStatus: c.EffectiveStatus,
	}
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// ListResponse é o envelope paginado dos edges da Graph API
type ListResponse[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

// SuccessResponse é a resposta de um POST de atualização
type SuccessResponse struct {
	Success bool `json:"success"`
}
