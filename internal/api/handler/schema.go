package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses built directly by handlers; the central error handler renders
// the same shape.
type errorResponse struct {
	Error string `json:"error"`
}
