package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tradehub/internal/domain/shared/party"
	"tradehub/internal/shared/biztime"
)

// Claims identify the calling party. Tokens are issued by the accounts
// subsystem; this service only needs to verify them (and mint them for
// local development).
type Claims struct {
	PartyType party.Type `json:"party_type"`
	PartyID   uint       `json:"party_id"`
	jwt.RegisteredClaims
}

// Viewer converts verified claims into the request's viewer.
func (c *Claims) Viewer() (party.Viewer, error) {
	return party.NewViewer(c.PartyType, c.PartyID)
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

func (s *JWTService) Generate(viewer party.Viewer) (string, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)

	claims := &Claims{
		PartyType: viewer.Type,
		PartyID:   viewer.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%s:%d", viewer.Type, viewer.ID),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if !claims.PartyType.IsValid() {
		return nil, fmt.Errorf("invalid token: unknown party type %q", claims.PartyType)
	}

	return claims, nil
}
