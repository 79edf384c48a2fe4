package token

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// ErrInvalid is the parent of every validation failure. Callers that do not
// care about the reason match against this one.
var ErrInvalid = errors.New("token invalid")

var (
	ErrMalformed        = fmt.Errorf("%w: malformed", ErrInvalid)
	ErrSignatureInvalid = fmt.Errorf("%w: signature mismatch", ErrInvalid)
	ErrExpired          = fmt.Errorf("%w: expired", ErrInvalid)
)

// Claims defines the JWT payload.
type Claims struct {
	UserID string `json:"user_id"`
	jwtlib.RegisteredClaims
}

// Service issues and validates signed bearer tokens. Tokens are stateless:
// nothing is stored server side and there is no revocation.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService constructs a Service around a signing secret and token lifetime.
func NewService(secret string, ttl time.Duration) Service {
	return Service{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the given user, expiring ttl from now.
func (s Service) Issue(userID string) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    "manhattan",
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate checks signature and expiry and returns the subject user id.
// Failures classify as ErrMalformed, ErrSignatureInvalid or ErrExpired; all
// of them match ErrInvalid.
func (s Service) Validate(raw string) (string, error) {
	parsed, err := jwtlib.ParseWithClaims(raw, &Claims{}, func(*jwtlib.Token) (any, error) {
		return s.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Name}),
		jwtlib.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", classify(err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return "", ErrMalformed
	}
	return claims.UserID, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
		return ErrSignatureInvalid
	default:
		return ErrMalformed
	}
}
