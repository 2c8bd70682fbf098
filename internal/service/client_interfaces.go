package service

import (
	"context"

	"github.com/MKhiriev/go-qr-keeper/models"
)

// ClientHistoryService is the part of the history the CLI works with when it
// talks to a remote server instead of its local SQLite file.
type ClientHistoryService interface {
	List(ctx context.Context, filter models.HistoryFilter) ([]models.ResultView, error)
	Clear(ctx context.Context) error
}
