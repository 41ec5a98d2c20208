package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ecoentorno/internal/models"
	"ecoentorno/internal/repo"
)

type fixture struct {
	users  *repo.MemoryUserStore
	creds  *repo.MemoryCredentialStore
	hasher *Hasher
	issuer *Issuer
	svc    *Service
	mgmt   *Credentials
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:  repo.NewMemoryUserStore(),
		creds:  repo.NewMemoryCredentialStore(),
		hasher: NewHasher(bcrypt.MinCost),
		issuer: NewIssuer("test-secret", 0),
	}
	svc, err := NewService(f.creds, f.users, f.hasher, f.issuer)
	require.NoError(t, err)
	f.svc = svc
	f.mgmt = NewCredentials(f.creds, f.hasher)
	return f
}

func (f *fixture) addEmployee(t *testing.T, id int64, role models.Role, password string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.users.Create(ctx, &models.User{DocumentID: id, Name: "N", Surname: "S", Role: role}))
	_, err := f.mgmt.Register(ctx, id, password)
	require.NoError(t, err)
}

func TestLogin_Success(t *testing.T) {
	f := newFixture(t)
	f.addEmployee(t, 12345, models.RoleAdministrator, "hunter2")

	res, err := f.svc.Login(context.Background(), 12345, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, TokenTypeBearer, res.TokenType)
	assert.Equal(t, models.RoleAdministrator, res.Role)

	claims, err := f.issuer.Verify(res.AccessToken)
	require.NoError(t, err)
	id, err := claims.EmployeeID()
	require.NoError(t, err)
	assert.Equal(t, int64(12345), id)
	assert.Equal(t, models.RoleAdministrator, claims.Role)
}

func TestLogin_UniformFailure(t *testing.T) {
	f := newFixture(t)
	f.addEmployee(t, 1, models.RoleOperator, "right")

	_, errUnknown := f.svc.Login(context.Background(), 12345, "hunter2")
	_, errWrong := f.svc.Login(context.Background(), 1, "wrong")

	require.ErrorIs(t, errUnknown, ErrAuthenticationFailed)
	require.ErrorIs(t, errWrong, ErrAuthenticationFailed)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestLogin_CredentialWithoutUser(t *testing.T) {
	f := newFixture(t)
	_, err := f.mgmt.Register(context.Background(), 77, "pw")
	require.NoError(t, err)

	_, err = f.svc.Login(context.Background(), 77, "pw")
	require.ErrorIs(t, err, ErrInconsistentState)
}

func TestLogin_InvalidStoredRole(t *testing.T) {
	f := newFixture(t)
	f.addEmployee(t, 12345, models.Role("manager"), "hunter2")

	_, err := f.svc.Login(context.Background(), 12345, "hunter2")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestNewService_TimingDigestFailure(t *testing.T) {
	f := newFixture(t)
	broken := &Hasher{cost: bcrypt.MaxCost + 1}

	svc, err := NewService(f.creds, f.users, broken, f.issuer)
	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestNewService_PreparesTimingDigest(t *testing.T) {
	f := newFixture(t)
	require.NotEmpty(t, f.svc.dummyHash)
	assert.True(t, f.hasher.Verify("ecoentorno-timing-equalizer", f.svc.dummyHash))
}

type brokenCreds struct{}

func (brokenCreds) GetByEmployeeID(context.Context, int64) (*models.Credential, error) {
	return nil, errors.New("connection refused")
}

func TestLogin_StoreErrorIsInternal(t *testing.T) {
	f := newFixture(t)
	svc, err := NewService(brokenCreds{}, f.users, f.hasher, f.issuer)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), 1, "x")
	require.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrAuthenticationFailed)
}

func TestLogin_SigningFailureIsInternal(t *testing.T) {
	f := newFixture(t)
	f.addEmployee(t, 5, models.RoleCoordinator, "pw")
	svc, err := NewService(f.creds, f.users, f.hasher, NewIssuer("", 0))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), 5, "pw")
	require.ErrorIs(t, err, ErrInternal)
}

func TestCredentials_UpdateWithoutPasswordKeepsHash(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addEmployee(t, 12345, models.RoleOperator, "old-pass")

	before, err := f.creds.GetByEmployeeID(ctx, 12345)
	require.NoError(t, err)

	after, err := f.mgmt.Update(ctx, 12345, "")
	require.NoError(t, err)
	assert.Equal(t, []byte(before.PasswordHash), []byte(after.PasswordHash))
}

func TestCredentials_UpdateWithPasswordRehashes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addEmployee(t, 12345, models.RoleOperator, "old-pass")

	before, err := f.creds.GetByEmployeeID(ctx, 12345)
	require.NoError(t, err)

	after, err := f.mgmt.Update(ctx, 12345, "new-pass")
	require.NoError(t, err)
	assert.NotEqual(t, before.PasswordHash, after.PasswordHash)

	_, err = f.svc.Login(ctx, 12345, "new-pass")
	require.NoError(t, err)
	_, err = f.svc.Login(ctx, 12345, "old-pass")
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestCredentials_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.mgmt.Register(ctx, 1, "")
	require.ErrorIs(t, err, ErrEmptyPassword)

	_, err = f.mgmt.Register(ctx, 1, string(make([]byte, 73)))
	require.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = f.mgmt.Update(ctx, 404, "x")
	require.ErrorIs(t, err, repo.ErrNotFound)

	_, err = f.mgmt.Register(ctx, 2, "a")
	require.NoError(t, err)
	_, err = f.mgmt.Register(ctx, 2, "b")
	require.ErrorIs(t, err, repo.ErrConflict)
}
