package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoentorno/internal/models"
)

const seedYAML = `
users:
  - document_id: 1001
    name: Admin
    surname: Root
    role: administrator
    password: change-me
  - document_id: 1002
    name: Eva
    surname: Ruiz
    role: epp_user
`

func TestSeedFromFile_Idempotent(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	ctx := context.Background()
	require.NoError(t, SeedFromFile(ctx, path, f.users, f.mgmt))

	first, err := f.creds.GetByEmployeeID(ctx, 1001)
	require.NoError(t, err)

	require.NoError(t, SeedFromFile(ctx, path, f.users, f.mgmt))
	second, err := f.creds.GetByEmployeeID(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, first.PasswordHash, second.PasswordHash)

	u, err := f.users.Get(ctx, 1002)
	require.NoError(t, err)
	assert.Equal(t, models.RoleEPPUser, u.Role)
	_, err = f.creds.GetByEmployeeID(ctx, 1002)
	require.Error(t, err)

	res, err := f.svc.Login(ctx, 1001, "change-me")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdministrator, res.Role)
}

func TestSeedFromFile_InvalidRole(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users:\n  - document_id: 1\n    role: manager\n"), 0o600))

	require.Error(t, SeedFromFile(context.Background(), path, f.users, f.mgmt))
}
