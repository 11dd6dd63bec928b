package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/itchan-dev/confluence-bridge/shared/domain"
	internal_errors "github.com/itchan-dev/confluence-bridge/shared/errors"
	"github.com/itchan-dev/confluence-bridge/shared/logger"
)

const issuer = "confluence-bridge"

type JwtService interface {
	NewToken(client domain.Client) (string, error)
	DecodeToken(jwtStr string) (*domain.Client, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(client domain.Client) (string, error) {
	if client.Name == "" {
		return "", errors.New("client name is required")
	}
	issuedAt := client.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   client.Name,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(j.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("can't sign token", "error", err)
		return "", errors.New("Can't create token")
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (*domain.Client, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(jwtStr, &claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		logger.Log.Debug("token rejected", "error", err)
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}
	if !token.Valid || claims.Subject == "" {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	client := &domain.Client{Name: claims.Subject}
	if claims.IssuedAt != nil {
		client.IssuedAt = claims.IssuedAt.Time
	}
	return client, nil
}
