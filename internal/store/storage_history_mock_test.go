// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/mock"
	"github.com/MKhiriev/go-qr-keeper/models"
)

func newMockedStorage(t *testing.T, capacity int) (*historyStorage, *mock.MockHistoryRepository, *mock.MockHistoryFileStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockHistoryRepository(ctrl)
	files := mock.NewMockHistoryFileStorage(ctrl)

	return &historyStorage{
		repository:  repo,
		fileStorage: files,
		capacity:    capacity,
		logger:      logger.Nop(),
	}, repo, files
}

func TestHistoryStorage_Append_SavesThenPrunes(t *testing.T) {
	h, repo, _ := newMockedStorage(t, 5)
	ctx := context.Background()
	r := result(1, "hello", 0)

	gomock.InOrder(
		repo.EXPECT().SaveResults(ctx, r).Return(nil),
		repo.EXPECT().Prune(ctx, 5).Return(int64(0), nil),
	)

	require.NoError(t, h.Append(ctx, r))
}

func TestHistoryStorage_Append_SaveErrorSkipsPrune(t *testing.T) {
	h, repo, _ := newMockedStorage(t, 5)
	ctx := context.Background()
	r := result(1, "hello", 0)
	boom := errors.New("boom")

	repo.EXPECT().SaveResults(ctx, r).Return(boom)
	// Prune не должен вызываться

	assert.ErrorIs(t, h.Append(ctx, r), boom)
}

func TestHistoryStorage_Get_RehydratesFields(t *testing.T) {
	h, repo, _ := newMockedStorage(t, 5)
	ctx := context.Background()

	repo.EXPECT().GetResult(ctx, int64(7)).
		Return(result(7, "WIFI:T:WPA;S:CafeNet;P:letmein;H:false;;", 0), nil)

	got, err := h.Get(ctx, 7)
	require.NoError(t, err)

	ssid, ok := got.Lookup("SSID")
	require.True(t, ok)
	assert.Equal(t, "CafeNet", ssid)
}

func TestHistoryStorage_Export_UsesWholeHistory(t *testing.T) {
	h, repo, files := newMockedStorage(t, 5)
	ctx := context.Background()
	var buf bytes.Buffer

	r1, r2 := result(2, "second", 0), result(1, "first", 0)
	repo.EXPECT().ListResults(ctx, models.HistoryFilter{}).Return([]models.ClassifiedResult{r1, r2}, nil)
	files.EXPECT().Export(ctx, &buf, r1, r2).Return(nil)

	require.NoError(t, h.Export(ctx, &buf))
}

func TestHistoryStorage_Import_AppendsDecodedEntries(t *testing.T) {
	h, repo, files := newMockedStorage(t, 5)
	ctx := context.Background()
	in := strings.NewReader("[]")

	r1, r2 := result(1, "first", 0), result(2, "second", 0)
	files.EXPECT().Import(ctx, in).Return([]models.ClassifiedResult{r1, r2}, nil)
	repo.EXPECT().SaveResults(ctx, r1, r2).Return(nil)
	repo.EXPECT().Prune(ctx, 5).Return(int64(0), nil)

	n, err := h.Import(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestHistoryStorage_Import_InvalidFile(t *testing.T) {
	h, _, files := newMockedStorage(t, 5)
	ctx := context.Background()
	in := strings.NewReader("{")

	files.EXPECT().Import(ctx, in).Return(nil, ErrInvalidHistoryFile)

	n, err := h.Import(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidHistoryFile)
	assert.Zero(t, n)
}
