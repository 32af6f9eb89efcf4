package buissines

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pr-poehali-dev/wild-politics-portal/config"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/dto"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/entities"
	domainerrors "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/errors"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/repository/postgres"
)

type fakeSender struct {
	chatIDs []int64
	codes   []string
	err     error
}

func (f *fakeSender) SendAdminCode(_ context.Context, chatID int64, code string, _ time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.chatIDs = append(f.chatIDs, chatID)
	f.codes = append(f.codes, code)
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.AdminCode{},
	))

	return db
}

func newTestUseCase(t *testing.T, db *gorm.DB, botToken string, allowedIDs ...int64) (*UseCase, *fakeSender) {
	t.Helper()

	sender := &fakeSender{}
	uc := NewUseCase(
		postgres.NewUserRepository(db),
		postgres.NewAdminCodeRepository(db),
		sender,
		&config.AuthConfig{AdminTelegramIDs: allowedIDs, AdminCodeTTL: 10 * time.Minute},
		&config.TelegramConfig{BotToken: botToken},
		zerolog.Nop(),
	)
	return uc, sender
}

// widgetHash reproduces the Login Widget signature the way Telegram computes it
func widgetHash(req *dto.TelegramLoginRequest, botToken string) string {
	pairs := []string{
		fmt.Sprintf("auth_date=%d", req.AuthDate),
		fmt.Sprintf("id=%d", req.ID),
	}
	if req.Username != "" {
		pairs = append(pairs, "username="+req.Username)
	}
	if req.FirstName != "" {
		pairs = append(pairs, "first_name="+req.FirstName)
	}
	if req.LastName != "" {
		pairs = append(pairs, "last_name="+req.LastName)
	}
	if req.PhotoURL != "" {
		pairs = append(pairs, "photo_url="+req.PhotoURL)
	}
	sort.Strings(pairs)

	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(strings.Join(pairs, "\n")))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestLoginWithTelegram_CreatesUserInDevMode(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newTestUseCase(t, db, "")

	resp, err := uc.LoginWithTelegram(context.Background(), &dto.TelegramLoginRequest{
		ID:        555,
		Username:  "ivan",
		FirstName: "Иван",
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.UserID)
	assert.Equal(t, int64(555), resp.TelegramID)
	assert.False(t, resp.IsAdmin)
}

func TestLoginWithTelegram_RepeatLoginKeepsIdentityAndRole(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newTestUseCase(t, db, "")

	first, err := uc.LoginWithTelegram(context.Background(), &dto.TelegramLoginRequest{
		ID:        555,
		FirstName: "Иван",
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&entities.User{}).
		Where("id = ?", first.UserID).
		Update("is_admin", true).Error)

	second, err := uc.LoginWithTelegram(context.Background(), &dto.TelegramLoginRequest{
		ID:        555,
		FirstName: "Иван Иванович",
	})
	require.NoError(t, err)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, "Иван Иванович", second.FirstName)
	assert.True(t, second.IsAdmin)

	var count int64
	require.NoError(t, db.Model(&entities.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoginWithTelegram_AcceptsValidHash(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newTestUseCase(t, db, "12345:bot-token")

	req := &dto.TelegramLoginRequest{
		ID:        555,
		Username:  "ivan",
		FirstName: "Иван",
		AuthDate:  1756600000,
	}
	req.Hash = widgetHash(req, "12345:bot-token")

	_, err := uc.LoginWithTelegram(context.Background(), req)
	require.NoError(t, err)
}

func TestLoginWithTelegram_RejectsForgedHash(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newTestUseCase(t, db, "12345:bot-token")

	req := &dto.TelegramLoginRequest{
		ID:        555,
		Username:  "ivan",
		AuthDate:  1756600000,
		Hash:      "deadbeef",
	}

	_, err := uc.LoginWithTelegram(context.Background(), req)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTelegramData)

	var count int64
	require.NoError(t, db.Model(&entities.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLoginWithTelegram_RejectsTamperedPayload(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newTestUseCase(t, db, "12345:bot-token")

	req := &dto.TelegramLoginRequest{
		ID:       555,
		Username: "ivan",
		AuthDate: 1756600000,
	}
	req.Hash = widgetHash(req, "12345:bot-token")
	req.Username = "admin"

	_, err := uc.LoginWithTelegram(context.Background(), req)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTelegramData)
}

func TestLoginWithTelegram_RequiresTelegramID(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newTestUseCase(t, db, "")

	_, err := uc.LoginWithTelegram(context.Background(), &dto.TelegramLoginRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrMissingTelegramID)
}

func TestRequestAdminCode_SendsSixDigitCode(t *testing.T) {
	db := newTestDB(t)
	uc, sender := newTestUseCase(t, db, "", 555)

	resp, err := uc.RequestAdminCode(context.Background(), &dto.RequestAdminCodeRequest{TelegramID: 555})
	require.NoError(t, err)
	assert.True(t, resp.Sent)

	require.Len(t, sender.codes, 1)
	assert.Equal(t, []int64{555}, sender.chatIDs)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), sender.codes[0])

	var stored entities.AdminCode
	require.NoError(t, db.Where("telegram_id = ?", 555).First(&stored).Error)
	assert.Equal(t, sender.codes[0], stored.Code)
	assert.False(t, stored.Used)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), stored.ExpiresAt, time.Minute)
}

func TestRequestAdminCode_RejectsOutsideAllowList(t *testing.T) {
	db := newTestDB(t)
	uc, sender := newTestUseCase(t, db, "", 555)

	_, err := uc.RequestAdminCode(context.Background(), &dto.RequestAdminCodeRequest{TelegramID: 999})
	assert.ErrorIs(t, err, domainerrors.ErrElevationNotAllowed)
	assert.Empty(t, sender.codes)

	var count int64
	require.NoError(t, db.Model(&entities.AdminCode{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestVerifyAdminCode_ElevatesUser(t *testing.T) {
	db := newTestDB(t)
	uc, sender := newTestUseCase(t, db, "", 555)

	login, err := uc.LoginWithTelegram(context.Background(), &dto.TelegramLoginRequest{ID: 555, FirstName: "Иван"})
	require.NoError(t, err)

	_, err = uc.RequestAdminCode(context.Background(), &dto.RequestAdminCodeRequest{TelegramID: 555})
	require.NoError(t, err)

	resp, err := uc.VerifyAdminCode(context.Background(), &dto.VerifyAdminCodeRequest{
		TelegramID: 555,
		Code:       sender.codes[0],
		UserID:     login.UserID,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsAdmin)

	var user entities.User
	require.NoError(t, db.First(&user, login.UserID).Error)
	assert.True(t, user.IsAdmin)
}

func TestVerifyAdminCode_CodeIsSingleUse(t *testing.T) {
	db := newTestDB(t)
	uc, sender := newTestUseCase(t, db, "", 555)

	login, err := uc.LoginWithTelegram(context.Background(), &dto.TelegramLoginRequest{ID: 555, FirstName: "Иван"})
	require.NoError(t, err)

	_, err = uc.RequestAdminCode(context.Background(), &dto.RequestAdminCodeRequest{TelegramID: 555})
	require.NoError(t, err)

	req := &dto.VerifyAdminCodeRequest{TelegramID: 555, Code: sender.codes[0], UserID: login.UserID}
	_, err = uc.VerifyAdminCode(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.VerifyAdminCode(context.Background(), req)
	assert.ErrorIs(t, err, domainerrors.ErrCodeInvalidOrExpired)
}

func TestVerifyAdminCode_RejectsWrongCode(t *testing.T) {
	db := newTestDB(t)
	uc, sender := newTestUseCase(t, db, "", 555)

	login, err := uc.LoginWithTelegram(context.Background(), &dto.TelegramLoginRequest{ID: 555, FirstName: "Иван"})
	require.NoError(t, err)

	_, err = uc.RequestAdminCode(context.Background(), &dto.RequestAdminCodeRequest{TelegramID: 555})
	require.NoError(t, err)

	wrong := "000000"
	if sender.codes[0] == wrong {
		wrong = "111111"
	}

	_, err = uc.VerifyAdminCode(context.Background(), &dto.VerifyAdminCodeRequest{
		TelegramID: 555,
		Code:       wrong,
		UserID:     login.UserID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrCodeInvalidOrExpired)

	var user entities.User
	require.NoError(t, db.First(&user, login.UserID).Error)
	assert.False(t, user.IsAdmin)

	var stored entities.AdminCode
	require.NoError(t, db.Where("telegram_id = ?", 555).First(&stored).Error)
	assert.False(t, stored.Used)
}

func TestVerifyAdminCode_RejectsExpiredCode(t *testing.T) {
	db := newTestDB(t)
	uc, sender := newTestUseCase(t, db, "", 555)

	login, err := uc.LoginWithTelegram(context.Background(), &dto.TelegramLoginRequest{ID: 555, FirstName: "Иван"})
	require.NoError(t, err)

	_, err = uc.RequestAdminCode(context.Background(), &dto.RequestAdminCodeRequest{TelegramID: 555})
	require.NoError(t, err)

	require.NoError(t, db.Model(&entities.AdminCode{}).
		Where("telegram_id = ?", 555).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	_, err = uc.VerifyAdminCode(context.Background(), &dto.VerifyAdminCodeRequest{
		TelegramID: 555,
		Code:       sender.codes[0],
		UserID:     login.UserID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrCodeInvalidOrExpired)
}

func TestVerifyAdminCode_RequiresCodeFields(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newTestUseCase(t, db, "", 555)

	_, err := uc.VerifyAdminCode(context.Background(), &dto.VerifyAdminCodeRequest{TelegramID: 555})
	assert.ErrorIs(t, err, domainerrors.ErrMissingCodeFields)

	_, err = uc.VerifyAdminCode(context.Background(), &dto.VerifyAdminCodeRequest{Code: "123456"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingCodeFields)
}
