package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/estoque-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

var testSubject = pkgjwt.Subject{UserID: 7, Email: "ana@loja.com", Name: "Ana", AccessType: 2}

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "estoque-test", testSubject, 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "ana@loja.com", claims.Email)
	assert.Equal(t, 2, claims.AccessType)
	assert.Equal(t, "7", claims.Subject)
	assert.NotEmpty(t, claims.ID, "cada token lleva un jti")
	assert.InDelta(t, time.Hour.Seconds(), claims.TTL(time.Now()).Seconds(), 5)
}

func TestGenerate_JTIDistintos(t *testing.T) {
	a, err := pkgjwt.Generate(testSecret, "estoque-test", testSubject, 60)
	require.NoError(t, err)
	b, err := pkgjwt.Generate(testSecret, "estoque-test", testSubject, 60)
	require.NoError(t, err)

	ca, _ := pkgjwt.Parse(testSecret, a)
	cb, _ := pkgjwt.Parse(testSecret, b)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "estoque-test", testSubject, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "estoque-test", testSubject, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestGenerate_SinSecret(t *testing.T) {
	_, err := pkgjwt.Generate("", "estoque-test", testSubject, 60)
	assert.Error(t, err)
}
