package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/communityexpress/laundry-client/pkg/db/models"
	pkgerrors "github.com/communityexpress/laundry-client/pkg/errors"
)

// The store keeps exactly one session row.
const recordID = 1

// Manager persists the auth token plus the cached user profile and hands
// the token to the API client.
type Manager struct {
	db  *gorm.DB
	now func() time.Time
}

// NewManager builds a session manager over the provided connection.
func NewManager(conn *gorm.DB) (*Manager, error) {
	if conn == nil {
		return nil, fmt.Errorf("db connection required")
	}
	return &Manager{db: conn, now: time.Now}, nil
}

// Save stores the token and user, replacing any previous session.
func (m *Manager) Save(ctx context.Context, token string, user *models.User) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session token is required")
	}
	record := models.SessionRecord{
		ID:    recordID,
		Token: token,
		User:  user,
	}
	err := m.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "user_payload", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist session")
	}
	return nil
}

// Token returns the stored bearer token, or "" when no live session exists.
// Expired JWTs read as no session; opaque tokens are returned as stored.
func (m *Manager) Token(ctx context.Context) (string, error) {
	record, err := m.load(ctx)
	if err != nil {
		return "", err
	}
	if record == nil {
		return "", nil
	}
	if expired(record.Token, m.now()) {
		return "", nil
	}
	return record.Token, nil
}

// CurrentUser returns the cached profile from the last Save.
func (m *Manager) CurrentUser(ctx context.Context) (*models.User, error) {
	record, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	if record == nil || record.User == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}
	return record.User, nil
}

// Clear drops the stored session.
func (m *Manager) Clear(ctx context.Context) error {
	err := m.db.WithContext(ctx).Delete(&models.SessionRecord{}, recordID).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear session")
	}
	return nil
}

func (m *Manager) load(ctx context.Context) (*models.SessionRecord, error) {
	var record models.SessionRecord
	err := m.db.WithContext(ctx).First(&record, recordID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load session")
	}
	return &record, nil
}

// expired inspects JWT expiry without verifying the signature; the client
// holds no signing secret. Unparsable tokens are assumed opaque and live.
func expired(token string, now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
