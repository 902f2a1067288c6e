package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orris-inc/setracker/internal/shared/authorization"
	"github.com/orris-inc/setracker/internal/shared/biztime"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

var ErrWrongTokenType = errors.New("unexpected token type")

type Claims struct {
	UserID       uint                   `json:"user_id"`
	Username     string                 `json:"username"`
	IsTeamMember bool                   `json:"team_member"`
	Role         authorization.UserRole `json:"role"`
	TokenType    TokenType              `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// Subject is the identity a token pair is issued for.
type Subject struct {
	UserID       uint
	Username     string
	IsTeamMember bool
	Role         authorization.UserRole
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
	refreshExpDays   int
}

func NewJWTService(secret string, accessExpMinutes, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		refreshExpDays:   refreshExpDays,
	}
}

func (s *JWTService) Generate(subject Subject) (*TokenPair, error) {
	now := biztime.NowUTC()

	accessToken, err := s.sign(subject, TokenTypeAccess, now, now.Add(time.Duration(s.accessExpMinutes)*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := s.sign(subject, TokenTypeRefresh, now, now.Add(time.Duration(s.refreshExpDays)*24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessExpMinutes * 60),
	}, nil
}

// Verify parses a signed token of any type.
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

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// VerifyAccess accepts only access tokens.
func (s *JWTService) VerifyAccess(tokenString string) (*Claims, error) {
	return s.verifyType(tokenString, TokenTypeAccess)
}

// ParseRefresh accepts only refresh tokens and returns the subject they carry.
func (s *JWTService) ParseRefresh(tokenString string) (*Subject, error) {
	claims, err := s.verifyType(tokenString, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	subject := claims.Subject()
	return &subject, nil
}

func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}

func (c *Claims) Subject() Subject {
	return Subject{
		UserID:       c.UserID,
		Username:     c.Username,
		IsTeamMember: c.IsTeamMember,
		Role:         c.Role,
	}
}

func (s *JWTService) verifyType(tokenString string, want TokenType) (*Claims, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != want {
		return nil, fmt.Errorf("%w: %s", ErrWrongTokenType, claims.TokenType)
	}
	return claims, nil
}

func (s *JWTService) sign(subject Subject, tokenType TokenType, now, exp time.Time) (string, error) {
	claims := &Claims{
		UserID:       subject.UserID,
		Username:     subject.Username,
		IsTeamMember: subject.IsTeamMember,
		Role:         subject.Role,
		TokenType:    tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
