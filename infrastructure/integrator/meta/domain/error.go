package metadomain

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	IsTransient  bool        `json:"is_transient,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado ou inválido
func (e *ErrorResponse) IsTokenExpired() bool {
	// 190 = token inválido; subcódigos 460, 463 e 467 são variações de expiração
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsRateLimited cobre os limites de chamadas da aplicação, do usuário e da conta de anúncios
func (e *ErrorResponse) IsRateLimited() bool {
	switch e.Error.Code {
	case 4, 17, 32, 613, 80000, 80003, 80004, 80014:
		return true
	}
	return false
}

// IsRetryable indica falhas temporárias que podem ser repetidas mais tarde
func (e *ErrorResponse) IsRetryable() bool {
	return e.Error.IsTransient || e.IsRateLimited() || e.Error.Code == 1 || e.Error.Code == 2
}

// IsObjectNotFound indica que o id consultado não existe ou não é visível para o token
func (e *ErrorResponse) IsObjectNotFound() bool {
	return (e.Error.Code == 100 && e.Error.ErrorSubcode == 33) || e.Error.Code == 803
}
