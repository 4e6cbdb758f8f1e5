package dto

type APIErrorResponse struct {
	Error string `json:"error"`
}
