package rest

// ErrorResponse is the JSON envelope returned for request failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
