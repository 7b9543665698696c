package model

type ConvertResponse struct {
	PNote string `json:"pnote"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
