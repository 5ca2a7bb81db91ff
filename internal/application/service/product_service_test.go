package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skhirtladze/pos-api/internal/domain/entity"
	"github.com/skhirtladze/pos-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewProductService(env.productRepo, env.unitRepo)
	ctx := context.Background()

	unit := &entity.Unit{Name: "piece"}
	require.NoError(t, env.db.Create(unit).Error)

	product, err := svc.CreateProduct(ctx, &CreateProductInput{
		UnitID:  unit.ID,
		Name:    "Chocolate",
		Barcode: "4860000000161",
		Price:   decimal.RequireFromString("4.25"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("4.25")))
}

func TestCreateProduct_Validation(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewProductService(env.productRepo, env.unitRepo)
	ctx := context.Background()

	unit := &entity.Unit{Name: "piece"}
	require.NoError(t, env.db.Create(unit).Error)

	cases := []struct {
		name  string
		input *CreateProductInput
		code  int
	}{
		{
			name:  "empty name",
			input: &CreateProductInput{UnitID: unit.ID, Barcode: "b1", Price: decimal.NewFromInt(1)},
			code:  http.StatusBadRequest,
		},
		{
			name:  "empty barcode",
			input: &CreateProductInput{UnitID: unit.ID, Name: "X", Price: decimal.NewFromInt(1)},
			code:  http.StatusBadRequest,
		},
		{
			name:  "zero price",
			input: &CreateProductInput{UnitID: unit.ID, Name: "X", Barcode: "b1", Price: decimal.Zero},
			code:  http.StatusBadRequest,
		},
		{
			name:  "negative price",
			input: &CreateProductInput{UnitID: unit.ID, Name: "X", Barcode: "b1", Price: decimal.NewFromInt(-2)},
			code:  http.StatusBadRequest,
		},
		{
			name:  "unknown unit",
			input: &CreateProductInput{UnitID: uuid.New(), Name: "X", Barcode: "b1", Price: decimal.NewFromInt(1)},
			code:  http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(ctx, tc.input)
			assertAppErrorCode(t, err, tc.code)
		})
	}
}

func TestCreateProduct_DuplicateBarcode(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewProductService(env.productRepo, env.unitRepo)
	ctx := context.Background()

	unit := &entity.Unit{Name: "piece"}
	require.NoError(t, env.db.Create(unit).Error)

	input := &CreateProductInput{
		UnitID:  unit.ID,
		Name:    "Chips",
		Barcode: "4860000000178",
		Price:   decimal.RequireFromString("1.99"),
	}
	_, err := svc.CreateProduct(ctx, input)
	require.NoError(t, err)

	_, err = svc.CreateProduct(ctx, input)
	assertAppErrorCode(t, err, http.StatusConflict)
}

func TestUpdatePrice(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewProductService(env.productRepo, env.unitRepo)
	ctx := context.Background()

	product := env.createProduct(t, "Yogurt", "4860000000185", "1.10")

	updated, err := svc.UpdatePrice(ctx, product.ID, decimal.RequireFromString("1.35"))
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("1.35")))

	_, err = svc.UpdatePrice(ctx, product.ID, decimal.Zero)
	assertAppErrorCode(t, err, http.StatusBadRequest)

	_, err = svc.UpdatePrice(ctx, uuid.New(), decimal.NewFromInt(2))
	assertAppErrorCode(t, err, http.StatusNotFound)
}

func TestGetProduct_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewProductService(env.productRepo, env.unitRepo)

	_, err := svc.GetProduct(context.Background(), uuid.New())
	assertAppErrorCode(t, err, http.StatusNotFound)
}

func TestListProducts(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewProductService(env.productRepo, env.unitRepo)
	ctx := context.Background()

	env.createProduct(t, "Rice", "4860000000192", "2.20")
	env.createProduct(t, "Pasta", "4860000000208", "1.80")

	result, err := svc.ListProducts(ctx, pagination.DefaultPagination(), "")
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.Pagination.Total)
}
