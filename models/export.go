package models

// ExportVersion is written into every export document.
const ExportVersion = "1.0"

// ExportData is the JSON envelope produced by export and consumed by import.
type ExportData struct {
	Sessions   []Session `json:"sessions"`
	Version    string    `json:"version"`
	ExportDate int64     `json:"exportDate"`
}
