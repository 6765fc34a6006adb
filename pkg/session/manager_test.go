package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/communityexpress/laundry-client/pkg/db/models"
	pkgerrors "github.com/communityexpress/laundry-client/pkg/errors"
)

func setupSessionDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.SessionRecord{}))
	return conn
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestManagerSaveAndLoad(t *testing.T) {
	mgr, err := NewManager(setupSessionDB(t))
	require.NoError(t, err)

	user := &models.User{ID: uuid.New(), Name: "Asha", Email: "asha@example.com"}
	require.NoError(t, mgr.Save(context.Background(), "opaque-token", user))

	token, err := mgr.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)

	cached, err := mgr.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user.ID, cached.ID)
	assert.Equal(t, "Asha", cached.Name)
}

func TestManagerSaveReplacesSession(t *testing.T) {
	mgr, err := NewManager(setupSessionDB(t))
	require.NoError(t, err)

	require.NoError(t, mgr.Save(context.Background(), "first", nil))
	require.NoError(t, mgr.Save(context.Background(), "second", &models.User{Name: "B"}))

	token, err := mgr.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}

func TestManagerRejectsEmptyToken(t *testing.T) {
	mgr, err := NewManager(setupSessionDB(t))
	require.NoError(t, err)

	saveErr := mgr.Save(context.Background(), "  ", nil)
	require.Error(t, saveErr)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(saveErr).Code())
}

func TestManagerExpiredJWTReadsAsNoSession(t *testing.T) {
	mgr, err := NewManager(setupSessionDB(t))
	require.NoError(t, err)

	require.NoError(t, mgr.Save(context.Background(), signedToken(t, time.Now().Add(-time.Hour)), nil))
	token, err := mgr.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, mgr.Save(context.Background(), signedToken(t, time.Now().Add(time.Hour)), nil))
	token, err = mgr.Token(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestManagerClear(t *testing.T) {
	mgr, err := NewManager(setupSessionDB(t))
	require.NoError(t, err)

	require.NoError(t, mgr.Save(context.Background(), "tok", &models.User{Name: "C"}))
	require.NoError(t, mgr.Clear(context.Background()))

	token, err := mgr.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)

	_, userErr := mgr.CurrentUser(context.Background())
	require.Error(t, userErr)
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(userErr).Code())
}
