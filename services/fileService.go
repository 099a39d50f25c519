// Package services holds the file-exchange collaborator: serializing the
// store's contents to and from a JSON document on the local file system.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/PrayerVault/models"
	"github.com/PrayerVault/store"
)

// ExportToFile writes the full session snapshot to path as an indented JSON
// document with the versioned export envelope.
func ExportToFile(ctx context.Context, s *store.Store, path string) error {
	sessions, err := s.ExportAll(ctx)
	if err != nil {
		return fmt.Errorf("export sessions: %w", err)
	}
	if sessions == nil {
		sessions = []models.Session{}
	}

	doc := models.ExportData{
		Sessions:   sessions,
		Version:    models.ExportVersion,
		ExportDate: time.Now().UnixMilli(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export document: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("failed to write export file %s: %v", path, err)
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

// ImportFromFile reads an export document from path and atomically replaces
// the stored sessions with its contents.
func ImportFromFile(ctx context.Context, s *store.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	sessions, err := DecodeExport(data)
	if err != nil {
		return err
	}
	return s.ImportAll(ctx, sessions)
}

// DecodeExport validates an export document and returns its sessions. The
// document must carry a "sessions" key holding an array; anything else fails
// with store.ErrFormat before any data is touched.
func DecodeExport(data []byte) ([]models.Session, error) {
	var envelope struct {
		Sessions json.RawMessage `json:"sessions"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrFormat, err)
	}
	if len(envelope.Sessions) == 0 {
		return nil, fmt.Errorf("%w: missing sessions array", store.ErrFormat)
	}

	var sessions []models.Session
	if err := json.Unmarshal(envelope.Sessions, &sessions); err != nil {
		return nil, fmt.Errorf("%w: sessions is not an array: %v", store.ErrFormat, err)
	}
	if sessions == nil {
		return nil, fmt.Errorf("%w: sessions is not an array", store.ErrFormat)
	}
	return sessions, nil
}
