package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/skhirtladze/pos-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSummary(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewSalesService(env.salesRepo)
	ctx := context.Background()

	summary, err := svc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Receipts)
	assert.True(t, summary.Revenue.IsZero())

	receipts := []entity.Receipt{
		{Status: false, Total: decimal.RequireFromString("12.50")},
		{Status: false, Total: decimal.RequireFromString("4.00")},
		{Status: true, Total: decimal.RequireFromString("9.99")},
	}
	for i := range receipts {
		require.NoError(t, env.db.Create(&receipts[i]).Error)
	}

	summary, err = svc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.Receipts)
	assert.True(t, summary.Revenue.Equal(decimal.RequireFromString("26.49")))
}
