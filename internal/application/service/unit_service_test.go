package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/skhirtladze/pos-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUnit(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewUnitService(env.unitRepo)
	ctx := context.Background()

	unit, err := svc.CreateUnit(ctx, "kilogram")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, unit.ID)
	assert.Equal(t, "kilogram", unit.Name)

	_, err = svc.CreateUnit(ctx, "")
	assertAppErrorCode(t, err, http.StatusBadRequest)

	_, err = svc.CreateUnit(ctx, "kilogram")
	assertAppErrorCode(t, err, http.StatusConflict)
}

func TestGetUnit(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewUnitService(env.unitRepo)
	ctx := context.Background()

	created, err := svc.CreateUnit(ctx, "litre")
	require.NoError(t, err)

	got, err := svc.GetUnit(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetUnit(ctx, uuid.New())
	assertAppErrorCode(t, err, http.StatusNotFound)
}

func TestListUnits(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewUnitService(env.unitRepo)
	ctx := context.Background()

	for _, name := range []string{"piece", "kilogram", "litre"} {
		_, err := svc.CreateUnit(ctx, name)
		require.NoError(t, err)
	}

	result, err := svc.ListUnits(ctx, pagination.DefaultPagination(), "")
	require.NoError(t, err)
	assert.Len(t, result.Items, 3)

	result, err = svc.ListUnits(ctx, pagination.DefaultPagination(), "kilo")
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "kilogram", result.Items[0].Name)
}
