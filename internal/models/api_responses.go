package models

// AskResponse is returned by the assistant endpoint.
type AskResponse struct {
	Response string `json:"response"`
}

// FormatResponse is returned by the status formatter endpoint.
type FormatResponse struct {
	FormattedStatus string `json:"formatted_status"`
}

// ErrorResponse is returned by JSON endpoints on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
