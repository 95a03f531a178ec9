package services

import (
	"testing"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	service TokenServiceInterface
	userID  uuid.UUID
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.service = NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "smart-budget-api",
		AccessTokenDuration: 15 * time.Minute,
	})
	s.userID = uuid.New()
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) TestGenerateAndValidateAccessToken() {
	tokenString, expiresAt, err := s.service.GenerateAccessToken(s.userID, "user@example.com")

	s.Require().NoError(err)
	s.NotEmpty(tokenString)
	s.WithinDuration(time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := s.service.ValidateAccessToken(tokenString)

	s.Require().NoError(err)
	s.Equal(s.userID.String(), claims.UserID)
	s.Equal("user@example.com", claims.Email)
	s.Equal(TokenTypeAccess, claims.TokenType)
	s.Equal("smart-budget-api", claims.Issuer)
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_NilUserID() {
	_, _, err := s.service.GenerateAccessToken(uuid.Nil, "user@example.com")
	s.Error(err)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_EmptyToken() {
	_, err := s.service.ValidateAccessToken("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Garbage() {
	_, err := s.service.ValidateAccessToken("not.a.jwt")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongIssuer() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	other := NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "someone-else",
		AccessTokenDuration: 15 * time.Minute,
	})
	tokenString, _, err := other.GenerateAccessToken(s.userID, "user@example.com")
	s.Require().NoError(err)

	// Different keypair fails signature verification before the issuer
	// check even gets a chance.
	_, err = s.service.ValidateAccessToken(tokenString)
	s.Error(err)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_ExpiredToken() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	expired := NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "smart-budget-api",
		AccessTokenDuration: -time.Minute,
	})
	tokenString, _, err := expired.GenerateAccessToken(s.userID, "user@example.com")
	s.Require().NoError(err)

	validator := NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "smart-budget-api",
		AccessTokenDuration: 15 * time.Minute,
	})
	_, err = validator.ValidateAccessToken(tokenString)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	token, err := s.service.ExtractTokenFromHeader("Bearer abc.def.ghi")
	s.NoError(err)
	s.Equal("abc.def.ghi", token)

	// The prefix check is case-insensitive.
	token, err = s.service.ExtractTokenFromHeader("bearer abc.def.ghi")
	s.NoError(err)
	s.Equal("abc.def.ghi", token)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader_Invalid() {
	for _, header := range []string{"", "Basic abc", "Bearer", "Bearer "} {
		_, err := s.service.ExtractTokenFromHeader(header)
		s.ErrorIs(err, ErrInvalidAuthHeader, "header %q", header)
	}
}
