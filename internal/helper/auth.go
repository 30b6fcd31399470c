package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt only consumes the first 72 bytes of its input. Longer passwords
// are truncated to that limit before hashing AND before verification, so a
// password differing only past byte 72 still authenticates. Intentional,
// keep both paths identical.
const bcryptInputLimit = 72

type Auth struct {
	Secret string
	TTL    time.Duration
}

func SetupAuth(secret string, ttl time.Duration) Auth {
	return Auth{Secret: secret, TTL: ttl}
}

func (a Auth) GenerateToken(userID, email string, isAdmin bool) (string, error) {
	if userID == "" || email == "" {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now().Unix()
	exp := time.Now().Add(a.TTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      userID,
		"email":    email,
		"is_admin": isAdmin,
		"iat":      now,
		"exp":      exp,
	})

	tokenStr, err := token.SignedString([]byte(a.Secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}
	return tokenStr, nil
}

// VerifyToken accepts both "Bearer <token>" and a bare token, and fails
// closed with an auth error on any signature, shape or expiry problem.
func (a Auth) VerifyToken(tokenString string) (dto.AuthClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return dto.AuthClaims{}, apperr.Auth("missing token")
	}

	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return dto.AuthClaims{}, apperr.Auth("invalid token format")
		}
		tokenString = strings.TrimSpace(parts[1])
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	})
	if err != nil {
		return dto.AuthClaims{}, apperr.Auth("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return dto.AuthClaims{}, apperr.Auth("invalid token claims")
	}

	expAny, ok := claims["exp"]
	if !ok {
		return dto.AuthClaims{}, apperr.Auth("missing expiry")
	}
	expFloat, ok := expAny.(float64)
	if !ok {
		return dto.AuthClaims{}, apperr.Auth("invalid expiry type")
	}
	if float64(time.Now().Unix()) > expFloat {
		return dto.AuthClaims{}, apperr.Auth("token expired")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return dto.AuthClaims{}, apperr.Auth("missing subject")
	}
	email, _ := claims["email"].(string)
	isAdmin, _ := claims["is_admin"].(bool)
	iat, _ := claims["iat"].(float64)

	return dto.AuthClaims{
		UserID:  sub,
		Email:   email,
		IsAdmin: isAdmin,
		Expiry:  expFloat,
		Iat:     iat,
	}, nil
}

func (a Auth) GetCurrentUser(ctx *fiber.Ctx) (dto.AuthClaims, error) {
	u := ctx.Locals("user")
	claims, ok := u.(dto.AuthClaims)
	if !ok {
		return dto.AuthClaims{}, apperr.Auth("missing auth user in context")
	}
	return claims, nil
}

func truncateForBcrypt(plain string) []byte {
	b := []byte(plain)
	if len(b) > bcryptInputLimit {
		b = b[:bcryptInputLimit]
	}
	return b
}

func (a Auth) HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncateForBcrypt(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("failed to hash password")
	}
	return string(hashed), nil
}

func (a Auth) VerifyPassword(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), truncateForBcrypt(plain)); err != nil {
		return apperr.Auth("incorrect email or password")
	}
	return nil
}
