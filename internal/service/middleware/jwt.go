package middleware

import (
	"errors"
	"strconv"
	"time"

	"finance_api/domain"

	jwt "github.com/golang-jwt/jwt"
)

type JwtTokenService interface {
	Create(userID uint, tokenExpTime int64) (string, error)
	Validate(tokenString string) (*JwtClaims, error)
	ParseSecretGetter(token *jwt.Token) (interface{}, error)
}

type JwtToken struct {
	Secret []byte
}

func NewJwtToken(secret string) (JwtTokenService, error) {
	return &JwtToken{
		Secret: []byte(secret),
	}, nil
}

// JwtClaims carries the numeric user id as a string claim.
type JwtClaims struct {
	UserID string `json:"user_id"`
	jwt.StandardClaims
}

// SubjectID parses the string claim back to the storage engine's id type.
func (c *JwtClaims) SubjectID() (uint, error) {
	id, err := strconv.ParseUint(c.UserID, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (tk *JwtToken) Create(userID uint, tokenExpTime int64) (string, error) {
	data := JwtClaims{
		UserID: strconv.FormatUint(uint64(userID), 10),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: tokenExpTime,
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, data)
	return token.SignedString(tk.Secret)
}

// Validate distinguishes an expired token from a tampered or malformed one;
// both are 401 but carry their own diagnostic code.
func (tk *JwtToken) Validate(tokenString string) (*JwtClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtClaims{}, tk.ParseSecretGetter)
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, &domain.AuthError{Code: domain.AuthCodeTokenExpired, Message: "token has expired"}
		}
		return nil, &domain.AuthError{Code: domain.AuthCodeTokenInvalid, Message: "invalid token"}
	}

	claims, ok := token.Claims.(*JwtClaims)
	if !ok || !token.Valid {
		return nil, &domain.AuthError{Code: domain.AuthCodeTokenInvalid, Message: "invalid token"}
	}

	if claims.ExpiresAt < time.Now().Unix() {
		return nil, &domain.AuthError{Code: domain.AuthCodeTokenExpired, Message: "token has expired"}
	}

	return claims, nil
}

func (tk *JwtToken) ParseSecretGetter(token *jwt.Token) (interface{}, error) {
	method, ok := token.Method.(*jwt.SigningMethodHMAC)
	if !ok || method.Alg() != "HS256" {
		return nil, &domain.AuthError{Code: domain.AuthCodeTokenInvalid, Message: "bad sign method"}
	}
	return tk.Secret, nil
}
