package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims incluye los claims estándar JWT más los datos del usuario.
// AccessType viaja en el token para que el middleware RBAC decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID     int64  `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	AccessType int    `json:"accessType"` // 1 admin, 2 gerente, 3 funcionário
}

// Subject datos del usuario que se firman en el token.
type Subject struct {
	UserID     int64
	Email      string
	Name       string
	AccessType int
}

// Generate genera un token JWT firmado (HS256) con un jti único para permitir su revocación.
func Generate(secret, issuer string, sub Subject, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   strconv.FormatInt(sub.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:     sub.UserID,
		Email:      sub.Email,
		Name:       sub.Name,
		AccessType: sub.AccessType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.UserID <= 0 {
		return nil, fmt.Errorf("claims inválidos: id de usuario ausente")
	}
	return claims, nil
}

// TTL devuelve el tiempo restante de validez del token.
func (c *Claims) TTL(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	d := c.ExpiresAt.Time.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
