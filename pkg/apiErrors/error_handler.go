package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro retornados pela API
const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // corpo malformado
	ErrMissingRequiredData = "VAL_002" // campo obrigatório ausente
	ErrInvalidFormat       = "VAL_003" // valor fora do intervalo ou ilegível
	ErrPayloadTooLarge     = "VAL_004"

	// Erros de busca
	ErrSaleNotFound  = "NF_001"
	ErrRouteNotFound = "NF_002"

	// Erros do servidor
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrStoreUnavailable  = "SRV_003"
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrPayloadTooLarge:     http.StatusRequestEntityTooLarge,
	ErrSaleNotFound:        http.StatusNotFound,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrStoreUnavailable:    http.StatusServiceUnavailable,
}

// APIError é o corpo JSON de erro escrito pela API
type APIError struct {
	Message string `json:"error"`
	Details any    `json:"details,omitempty"`
	Success *bool  `json:"success,omitempty"`
}

// Status retorna o status HTTP associado ao código, 500 para códigos desconhecidos
func Status(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve {error, details} com o status mapeado do código
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	write(w, code, APIError{
		Message: message,
		Details: details,
	})
}

// WriteFailure é o WriteError com success:false explícito, usado pelos
// endpoints cujas respostas de sucesso trazem success:true
func WriteFailure(w http.ResponseWriter, code string, message string, details any) {
	success := false
	write(w, code, APIError{
		Message: message,
		Details: details,
		Success: &success,
	})
}

func write(w http.ResponseWriter, code string, apiErr APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}
