package server

import "time"

// ScriptRecord is what the stand-in endpoint keeps for every script it
// receives.
type ScriptRecord struct {
	ID         string    `json:"id"`
	Language   string    `json:"language"`
	Length     int       `json:"length"`
	Content    string    `json:"content"`
	RemoteAddr string    `json:"remote_addr"`
	ReceivedAt time.Time `json:"received_at"`
}

type ExecResponse struct {
	ID     string `json:"id"`
	Length int    `json:"length"`
	Status string `json:"status"`
}
