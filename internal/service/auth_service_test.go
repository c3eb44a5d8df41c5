package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"quiznight_backend/internal/config"
	"quiznight_backend/internal/model"
	"quiznight_backend/internal/repository"
	"quiznight_backend/internal/store"
	"quiznight_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (*AuthService, *repository.ScoreRepository) {
	t.Helper()
	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	users := model.Users{}
	for name, pw := range map[string]string{"jas": "harhar", "vinita": "toothless"} {
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
		require.NoError(t, err)
		users[name] = model.User{Password: string(hash)}
	}
	data, err := json.Marshal(users)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "users.json"), data, 0644))

	userRepo, err := repository.NewUserRepository(s)
	require.NoError(t, err)
	scoreRepo, err := repository.NewScoreRepository(s)
	require.NoError(t, err)

	cfg := &config.Config{
		Session: config.SessionConfig{
			Secret:     "test-secret",
			ExpireTime: time.Hour,
			CookieName: "quiz_session",
		},
	}

	return NewAuthService(userRepo, scoreRepo, cfg), scoreRepo
}

func TestLogin_Success(t *testing.T) {
	svc, scores := newAuthService(t)

	token, err := svc.Login("jas", "harhar")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ParseSessionToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "jas", claims.Username)

	// score entry initialized to 0
	score, ok := scores.Get("jas")
	assert.True(t, ok)
	assert.Equal(t, 0, score)
}

func TestLogin_DoesNotResetScore(t *testing.T) {
	svc, scores := newAuthService(t)

	_, err := svc.Login("jas", "harhar")
	require.NoError(t, err)
	require.NoError(t, scores.AddPoints("jas", 10))

	_, err = svc.Login("jas", "harhar")
	require.NoError(t, err)

	score, _ := scores.Get("jas")
	assert.Equal(t, 10, score)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, scores := newAuthService(t)

	_, err := svc.Login("jas", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, ok := scores.Get("jas")
	assert.False(t, ok)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login("nobody", "whatever")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	svc, _ := newAuthService(t)

	token, err := svc.Login("vinita", "toothless")
	require.NoError(t, err)

	_, err = util.ParseSessionToken(token, "other-secret")
	assert.Error(t, err)
}
