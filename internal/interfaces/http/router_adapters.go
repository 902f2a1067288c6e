package http

import (
	"github.com/orris-inc/setracker/internal/application/user/usecases"
	"github.com/orris-inc/setracker/internal/infrastructure/auth"
)

// jwtServiceAdapter adapts auth.JWTService to usecases.TokenService interface
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(subject usecases.TokenSubject) (*usecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(auth.Subject{
		UserID:       subject.UserID,
		Username:     subject.Username,
		IsTeamMember: subject.IsTeamMember,
		Role:         subject.Role,
	})
	if err != nil {
		return nil, err
	}
	return &usecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *jwtServiceAdapter) ParseRefresh(refreshToken string) (*usecases.TokenSubject, error) {
	subject, err := a.JWTService.ParseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}
	return &usecases.TokenSubject{
		UserID:       subject.UserID,
		Username:     subject.Username,
		IsTeamMember: subject.IsTeamMember,
		Role:         subject.Role,
	}, nil
}
