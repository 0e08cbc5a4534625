package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "facultyhub.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.GenerateAccessToken("CS-104", "asha.verma@facultyhub.app")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	require.Equal(t, "CS-104", claims.FacultyID)
	require.Equal(t, "asha.verma@facultyhub.app", claims.Email)
	require.Equal(t, "facultyhub.test", claims.Issuer)
	require.Equal(t, "CS-104", claims.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	token, err := svc.GenerateAccessToken("CS-104", "asha.verma@facultyhub.app")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", AccessTokenExp: time.Hour})
	_, err = other.ValidateAndExtractClaims(token)
	require.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService(-time.Minute)
	token, err := svc.GenerateAccessToken("CS-104", "asha.verma@facultyhub.app")
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenEmptyAndGarbage(t *testing.T) {
	svc := newTestService(time.Hour)

	_, err := svc.ValidateAndExtractClaims("")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateAndExtractClaims("not.a.jwt")
	require.Error(t, err)
}

func TestValidateTokenMissingIdentityClaims(t *testing.T) {
	svc := newTestService(time.Hour)
	token, err := svc.GenerateAccessToken("", "")
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", token)

	// A bare token is tolerated
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	require.ErrorIs(t, err, ErrInvalidFormat)
}
