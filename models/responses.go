package models

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by the service root endpoint.
type StatusResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
