package models

// APIErrorResponse is the weather API error envelope. The API can return it
// with any HTTP status, including 200.
type APIErrorResponse struct {
	Error *APIErrorContent `json:"error"`
}

type APIErrorContent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
