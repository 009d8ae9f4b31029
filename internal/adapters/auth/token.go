package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"sectionschedule/internal/domain"
)

// ErrNoRole is returned for tokens that carry none of the known roles.
var ErrNoRole = errors.New("token has no schedule role")

type jwtClaims struct {
	jwt.RegisteredClaims
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

type jwtVerifier struct {
	secret []byte
}

// NewJWTVerifier returns a TokenVerifier for HS256 tokens signed with secret by the
// identity service.
func NewJWTVerifier(secret string) domain.TokenVerifier {
	return &jwtVerifier{secret: []byte(secret)}
}

// Verify checks signature and expiry and returns the subject with its schedule role.
// When a token lists several roles, TEACHER wins over STUDENT, which wins over ADMIN.
func (v *jwtVerifier) Verify(token string) (domain.Identity, error) {
	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Identity{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return domain.Identity{}, errors.New("invalid token")
	}
	role, ok := pickRole(claims.Roles)
	if !ok {
		return domain.Identity{}, ErrNoRole
	}
	return domain.Identity{UserID: claims.Subject, Role: role, Token: token}, nil
}

func pickRole(roles []string) (domain.Role, bool) {
	have := make(map[domain.Role]bool, len(roles))
	for _, r := range roles {
		have[domain.Role(strings.ToUpper(strings.TrimSpace(r)))] = true
	}
	for _, r := range []domain.Role{domain.RoleTeacher, domain.RoleStudent, domain.RoleAdmin} {
		if have[r] {
			return r, true
		}
	}
	return "", false
}
