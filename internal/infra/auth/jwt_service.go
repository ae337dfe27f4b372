package auth

import (
	"time"

	"estate/config"
	"estate/internal/domain/entity"
	"estate/internal/domain/service"
	"estate/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	claimKind   = "kind"
	tokenIssuer = "estate"
)

var ErrInvalidToken = errors.New("invalid token")

type jwtService struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTService signs HS256 access tokens carrying the principal kind.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("secretKey.access must be provided")
	}

	ttl := 7 * 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{secret: []byte(cfg.SecretKey.Access), accessTTL: ttl, now: time.Now}, nil
}

func (s *jwtService) GenerateAccessToken(principal entity.Principal) (string, time.Time, error) {
	if principal.IsZero() {
		return "", time.Time{}, errors.New("cannot issue a token for an empty principal")
	}

	now := s.now()
	expiresAt := now.Add(s.accessTTL)
	claims := jwt.MapClaims{
		"sub":     principal.ID.String(),
		"iss":     tokenIssuer,
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
		claimKind: principal.Kind.String(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign access token")
	}

	return signed, expiresAt, nil
}

func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	kindRaw, _ := claims[claimKind].(string)
	kind := entity.PrincipalKind(kindRaw)
	if !kind.IsValid() {
		return nil, errors.Wrapf(ErrInvalidToken, "unknown principal kind %q", kindRaw)
	}

	exp, _ := claims.GetExpirationTime()
	iat, _ := claims.GetIssuedAt()

	return &service.Claims{
		Principal: entity.Principal{Kind: kind, ID: id},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    tokenIssuer,
			ExpiresAt: exp,
			IssuedAt:  iat,
		},
	}, nil
}
