package buissines

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/dto"
)

// checkWidgetHash validates the Telegram Login Widget payload: the hash must
// equal HMAC-SHA256 of the sorted k=v field lines keyed with SHA256(botToken).
func checkWidgetHash(req *dto.TelegramLoginRequest, botToken string) bool {
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
	computed := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(computed), []byte(req.Hash))
}
