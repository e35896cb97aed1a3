package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cotizador-api/pkg/session"
)

const (
	testSecret = "secreto-de-prueba"
	testIssuer = "cotizador-test"
)

func TestGenerateYParse_IdaYVuelta(t *testing.T) {
	tok, err := session.Generate(testSecret, "sesion-123", testIssuer, 60)
	require.NoError(t, err, "debe generarse un token válido")

	id, err := session.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "sesion-123", id, "el token debe conservar el id de sesión")
}

func TestParse_FirmaIncorrectaFalla(t *testing.T) {
	tok, err := session.Generate(testSecret, "sesion-123", testIssuer, 60)
	require.NoError(t, err)

	_, err = session.Parse("otro-secreto", tok)
	assert.Error(t, err, "un token firmado con otro secreto debe rechazarse")
}

func TestParse_TokenExpiradoFalla(t *testing.T) {
	tok, err := session.Generate(testSecret, "sesion-123", testIssuer, -1)
	require.NoError(t, err)

	_, err = session.Parse(testSecret, tok)
	assert.Error(t, err, "un token expirado debe rechazarse")
}

func TestGenerate_SecretVacioFalla(t *testing.T) {
	_, err := session.Generate("", "sesion-123", testIssuer, 60)
	assert.Error(t, err)
}

func TestGenerate_SessionIDVacioFalla(t *testing.T) {
	_, err := session.Generate(testSecret, "", testIssuer, 60)
	assert.Error(t, err)
}
