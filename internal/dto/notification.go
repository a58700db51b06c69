package dto

// NotifyByAreaResponse reports how many users a dispatch reached.
type NotifyByAreaResponse struct {
	Message string `json:"mensaje"`
	Count   int    `json:"count"`
}
