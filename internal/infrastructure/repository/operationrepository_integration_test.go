package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siloops/internal/domain/operation"
)

func createTestOperation(t *testing.T, companyID string, opType operation.Type, occurredAt time.Time) *operation.Operation {
	t.Helper()
	op, err := operation.NewOperation(companyID, opType, "Client", "Driver", "corn", "Silo 1", 18000, occurredAt, "")
	require.NoError(t, err)
	return op
}

func TestOperationRepository_CreateAndGet(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewOperationRepository(gdb, nopLogger{})
	ctx := context.Background()

	op := createTestOperation(t, "cmp_ops1", operation.TypeDelivery, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, op))
	assert.NotZero(t, op.ID())

	found, err := repo.GetBySID(ctx, op.SID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, op.SID(), found.SID())
	assert.Equal(t, operation.TypeDelivery, found.OpType())
	assert.Equal(t, 18000.0, found.QuantityKG())
}

func TestOperationRepository_GetMissingReturnsNil(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewOperationRepository(gdb, nopLogger{})

	found, err := repo.GetBySID(context.Background(), "op_missing")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestOperationRepository_ListByCompany(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewOperationRepository(gdb, nopLogger{})
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		op := createTestOperation(t, "cmp_list", operation.TypeDelivery, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Create(ctx, op))
	}
	withdrawal := createTestOperation(t, "cmp_list", operation.TypeWithdrawal, base.Add(time.Hour))
	require.NoError(t, repo.Create(ctx, withdrawal))
	other := createTestOperation(t, "cmp_other", operation.TypeDelivery, base)
	require.NoError(t, repo.Create(ctx, other))

	t.Run("scoped to company, newest first", func(t *testing.T) {
		ops, total, err := repo.ListByCompany(ctx, operation.ListFilter{CompanyID: "cmp_list", Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		require.Len(t, ops, 4)
		assert.Equal(t, withdrawal.SID(), ops[0].SID())
	})

	t.Run("type filter", func(t *testing.T) {
		withdrawalType := operation.TypeWithdrawal
		ops, total, err := repo.ListByCompany(ctx, operation.ListFilter{
			CompanyID: "cmp_list", OpType: &withdrawalType, Page: 1, PageSize: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, ops, 1)
	})

	t.Run("pagination", func(t *testing.T) {
		ops, total, err := repo.ListByCompany(ctx, operation.ListFilter{CompanyID: "cmp_list", Page: 2, PageSize: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, ops, 1)
	})
}

func TestOperationRepository_Delete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewOperationRepository(gdb, nopLogger{})
	ctx := context.Background()

	op := createTestOperation(t, "cmp_del", operation.TypeDelivery, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, op))
	require.NoError(t, repo.DeleteBySID(ctx, op.SID()))

	found, err := repo.GetBySID(ctx, op.SID())
	require.NoError(t, err)
	assert.Nil(t, found)
}
