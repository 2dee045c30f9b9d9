package jwt

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/MeyerNigrini/SmartPantry-sub000/domain"
	"github.com/MeyerNigrini/SmartPantry-sub000/internal/utils"
	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateTokenUser(userID string, name string, email string) string
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserIDByToken(token string) (string, error)
	}

	jwtUserClaim struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		audience  string
		expiry    time.Duration
	}
)

func NewJWTService() JWTService {
	expiryMinutes, err := strconv.Atoi(utils.GetConfig("JWT_EXPIRY_MINUTES"))
	if err != nil || expiryMinutes <= 0 {
		expiryMinutes = 120
	}

	return &jwtService{
		secretKey: utils.GetConfig("JWT_SECRET"),
		issuer:    utils.GetConfig("JWT_ISSUER"),
		audience:  utils.GetConfig("JWT_AUDIENCE"),
		expiry:    time.Duration(expiryMinutes) * time.Minute,
	}
}

func (j *jwtService) GenerateTokenUser(userID string, name string, email string) string {
	claims := jwtUserClaim{
		name,
		email,
		jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    j.issuer,
			Audience:  jwt.ClaimStrings{j.audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserIDByToken(token string) (string, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtUserClaim)
	if !claims.VerifyIssuer(j.issuer, true) {
		return "", domain.ErrTokenInvalid
	}
	if !claims.VerifyAudience(j.audience, true) {
		return "", domain.ErrTokenInvalid
	}

	return claims.Subject, nil
}
