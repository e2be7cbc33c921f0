package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/itchan-dev/itchan-auth/shared/domain"
	internal_errors "github.com/itchan-dev/itchan-auth/shared/errors"
	"github.com/itchan-dev/itchan-auth/shared/logger"
)

// Claims embeds the registered claims; Subject carries the user id as a
// decimal string and Uid carries it as a number.
type Claims struct {
	jwt.RegisteredClaims
	Uid domain.UserId `json:"uid"`
}

type Jwt struct {
	secretKey []byte
	now       func() time.Time
}

var ErrEmptySecret = errors.New("jwt secret key is empty")

func New(secretKey string) (*Jwt, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	return &Jwt{secretKey: []byte(secretKey), now: time.Now}, nil
}

// NewToken signs a HS256 token for user that expires ttl after issuance.
func (j *Jwt) NewToken(user domain.User, ttl time.Duration) (string, error) {
	issuedAt := j.now().Truncate(time.Second)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(user.Id, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
		Uid: user.Id,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		logger.Log.Error("failed to sign token", "user_id", user.Id, "error", err)
		return "", fmt.Errorf("can't create token: %w", err)
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(jwtStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		logger.Log.Debug("token rejected", "error", err)
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid token signature", StatusCode: http.StatusUnauthorized}
	}

	if !token.Valid {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	return claims, nil
}
