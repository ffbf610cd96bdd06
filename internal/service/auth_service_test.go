package service

import (
	"testing"
	"time"

	"vsl_edu_backend/internal/config"
	"vsl_edu_backend/internal/model"
	"vsl_edu_backend/internal/repository"
	"vsl_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegister_HashesPasswordAndRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Name: "Linh", Email: "linh@example.com", Password: "s3cret123", Role: model.Student}
	require.NoError(t, svc.Register(user))
	assert.NotEqual(t, "s3cret123", user.Password)

	dup := &model.User{Name: "Other", Email: "linh@example.com", Password: "whatever1", Role: model.Student}
	assert.ErrorIs(t, svc.Register(dup), util.ErrEmailRegistered)
}

func TestLogin_IssuesParsableToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Name: "Linh", Email: "linh@example.com", Password: "s3cret123", Role: model.Student}
	require.NoError(t, svc.Register(user))

	token, err := svc.Login("linh@example.com", "s3cret123")
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.Student, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Name: "Linh", Email: "linh@example.com", Password: "s3cret123", Role: model.Student}
	require.NoError(t, svc.Register(user))

	_, err := svc.Login("linh@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "s3cret123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Name: "Linh", Email: "linh@example.com", Password: "s3cret123", Role: model.Student}
	require.NoError(t, svc.Register(user))

	require.NoError(t, db.Model(user).Update("disabled", true).Error)

	_, err := svc.Login("linh@example.com", "s3cret123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}
