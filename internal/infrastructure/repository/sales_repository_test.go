package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSales_EmptyStore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSalesRepository(db)
	ctx := context.Background()

	count, err := repo.CountReceipts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	revenue, err := repo.Revenue(ctx)
	require.NoError(t, err)
	assert.True(t, revenue.IsZero())
}

func TestSales_AggregatesOverReceipts(t *testing.T) {
	db := setupTestDB(t)
	salesRepo := NewSalesRepository(db)
	receiptRepo := NewReceiptRepository(db)
	ctx := context.Background()

	productA := createTestProduct(t, db, "Wine", "4860000000093", "12.50")
	productB := createTestProduct(t, db, "Water", "4860000000109", "0.80")

	first, err := receiptRepo.Open(ctx)
	require.NoError(t, err)
	_, err = receiptRepo.AddItem(ctx, first.ID, productA.ID, 2, productA.Price)
	require.NoError(t, err)

	second, err := receiptRepo.Open(ctx)
	require.NoError(t, err)
	_, err = receiptRepo.AddItem(ctx, second.ID, productB.ID, 5, productB.Price)
	require.NoError(t, err)

	// An empty open receipt still counts, contributing zero revenue
	_, err = receiptRepo.Open(ctx)
	require.NoError(t, err)

	count, err := salesRepo.CountReceipts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	revenue, err := salesRepo.Revenue(ctx)
	require.NoError(t, err)
	assert.True(t, revenue.Equal(decimal.RequireFromString("29.00")), "revenue %s", revenue)
}
