package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoentorno/internal/models"
)

func TestMemoryUserStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()

	require.NoError(t, s.Create(ctx, &models.User{DocumentID: 10, Name: "Ana", Surname: "Gómez", Role: models.RoleOperator}))
	require.NoError(t, s.Create(ctx, &models.User{DocumentID: 205, Name: "Luis", Surname: "Pérez", Role: models.RoleCoordinator}))
	require.ErrorIs(t, s.Create(ctx, &models.User{DocumentID: 10}), ErrConflict)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(10), all[0].DocumentID)

	byDoc, err := s.List(ctx, "20")
	require.NoError(t, err)
	require.Len(t, byDoc, 1)
	assert.Equal(t, "Luis", byDoc[0].Name)

	byName, err := s.List(ctx, "PÉR")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, int64(205), byName[0].DocumentID)

	// % и _ — обычные символы
	wild, err := s.List(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, wild)

	u, err := s.Update(ctx, 10, UserUpdate{Name: "Ana María", Surname: "Gómez", Role: models.RoleAdministrator})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdministrator, u.Role)

	_, err = s.Update(ctx, 99, UserUpdate{})
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete(ctx, 10))
	require.ErrorIs(t, s.Delete(ctx, 10), ErrNotFound)
	_, err = s.Get(ctx, 10)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCredentialStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryCredentialStore()

	c := &models.Credential{EmployeeID: 12345, PasswordHash: "old"}
	require.NoError(t, s.Create(ctx, c))
	assert.NotZero(t, c.ID)
	require.ErrorIs(t, s.Create(ctx, &models.Credential{EmployeeID: 12345}), ErrConflict)

	require.NoError(t, s.SetPasswordHash(ctx, 12345, "new"))
	got, err := s.GetByEmployeeID(ctx, 12345)
	require.NoError(t, err)
	assert.Equal(t, "new", got.PasswordHash)

	require.ErrorIs(t, s.SetPasswordHash(ctx, 1, "x"), ErrNotFound)
	require.NoError(t, s.Delete(ctx, 12345))
	_, err = s.GetByEmployeeID(ctx, 12345)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryWeightAndEPPStores(t *testing.T) {
	ctx := context.Background()
	ws := NewMemoryWeightStore()
	require.NoError(t, ws.Create(ctx, &models.WeightRecord{EmployeeID: 1, Shift: "day", WeightKg: 70}))
	require.NoError(t, ws.Create(ctx, &models.WeightRecord{EmployeeID: 1, Shift: "night", WeightKg: 71}))

	w, err := ws.FirstByEmployee(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "day", w.Shift)
	_, err = ws.FirstByEmployee(ctx, 2)
	require.ErrorIs(t, err, ErrNotFound)

	es := NewMemoryEPPStore()
	require.NoError(t, es.Create(ctx, &models.EPPDelivery{EmployeeID: 3, Item: "guantes", Quantity: 2}))
	list, err := es.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, uint(1), list[0].ID)
}
