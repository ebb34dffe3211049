package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListResponse listado sin paginación (el catálogo es pequeño).
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
