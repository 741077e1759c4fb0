package metadomain

import (
	"fmt"
	"strings"
)

type BatchRequest struct {
	Method      string `json:"method"`
	RelativeURL string `json:"relative_url"`
	Body        string `json:"body,omitempty"`
}

// BatchResponseItem pode vir nulo na resposta quando a Graph API não processou o item
type BatchResponseItem struct {
	Code int    `json:"code"`
	Body string `json:"body"`
}

// BatchError lista os itens de um batch que não foram aplicados
type BatchError struct {
	FailedIDs    []string
	SucceededIDs []string
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch parcialmente aplicado: %d falha(s): %s", len(e.FailedIDs), strings.Join(e.FailedIDs, ","))
}
