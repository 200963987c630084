package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadToken = errors.New("invalid token")

// Scheme tags how a stored password is encoded. Rows written before hashing
// was introduced hold the raw password.
type Scheme int

const (
	Plaintext Scheme = iota
	Hashed
)

type Credential struct {
	Scheme Scheme
	Value  string
}

// ParseCredential classifies a stored password once, at load time.
func ParseCredential(stored string) Credential {
	for _, p := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(stored, p) {
			return Credential{Scheme: Hashed, Value: stored}
		}
	}
	return Credential{Scheme: Plaintext, Value: stored}
}

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

// VerifyPassword checks pw against a stored credential. needsRehash reports
// that a legacy plaintext row matched and should be upgraded to a digest.
func VerifyPassword(cred Credential, pw string) (ok, needsRehash bool) {
	if cred.Scheme == Hashed {
		return bcrypt.CompareHashAndPassword([]byte(cred.Value), []byte(pw)) == nil, false
	}
	ok = subtle.ConstantTimeCompare([]byte(cred.Value), []byte(pw)) == 1
	return ok, ok
}

type Claims struct {
	UserID  int64 `json:"uid"`
	IsAdmin bool  `json:"adm"`
	jwt.RegisteredClaims
}

// short-lived access token (15 min)
func MakeToken(userID int64, isAdmin bool, secret string) (string, error) {
	c := Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

func ParseToken(raw, secret string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrBadToken
	}
	return c, nil
}

// GenerateRefreshToken returns an opaque session token and the sha256 digest
// that goes to the database. The raw value is only ever sent to the client.
func GenerateRefreshToken() (raw string, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(b)
	h := sha256.Sum256([]byte(raw))
	hash = hex.EncodeToString(h[:])
	return raw, hash, nil
}

func HashRefreshToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
