package yourls

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Supported authentication modes.
const (
	ModeStatic = "static"
	ModeSigned = "signed"
)

// DefaultSignatureTTL is the signature validity window YOURLS assumes when
// none is configured (12 hours, in seconds). The client never enforces it –
// every request is stamped freshly – it only documents the server's window.
const DefaultSignatureTTL = 43200

// Auth selects and parameterises one of the two authentication schemes the
// YOURLS API accepts: plaintext credentials or the passwordless signature
// scheme (md5 of unix timestamp concatenated with a shared token).
type Auth struct {
	Mode           string
	Username       string
	Password       string
	SignatureToken string
	SignatureTTL   int
}

func (a Auth) validate() error {
	switch a.Mode {
	case ModeStatic:
		if a.Username == "" || a.Password == "" {
			return fmt.Errorf("%w: static auth requires username and password", ErrConfiguration)
		}
	case ModeSigned:
		if a.SignatureToken == "" {
			return fmt.Errorf("%w: signed auth requires a signature token", ErrConfiguration)
		}
	default:
		return fmt.Errorf("%w: unknown auth mode %q", ErrConfiguration, a.Mode)
	}
	return nil
}

// sign appends the credentials for the configured mode to the request form.
// Signed mode derives timestamp and signature from now on every call; a pair
// is never reused across requests.
func (a Auth) sign(form url.Values, now time.Time) {
	switch a.Mode {
	case ModeStatic:
		form.Set("username", a.Username)
		form.Set("password", a.Password)
	case ModeSigned:
		timestamp := strconv.FormatInt(now.Unix(), 10)
		digest := md5.Sum([]byte(timestamp + a.SignatureToken))
		form.Set("timestamp", timestamp)
		form.Set("signature", hex.EncodeToString(digest[:]))
	}
}
