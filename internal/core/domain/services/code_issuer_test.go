package services_test

import (
	"bytes"
	"errors"
	"regexp"
	"testing"

	"fooddelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tokenPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)
	codePattern  = regexp.MustCompile(`^[0-9]{6}$`)
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestCodeIssuer_Issue(t *testing.T) {
	t.Run("should issue well-formed codes", func(t *testing.T) {
		issuer := services.NewCodeIssuer()

		codes, err := issuer.Issue()

		require.NoError(t, err)
		assert.Regexp(t, tokenPattern, codes.PickupToken())
		assert.Regexp(t, codePattern, codes.ConfirmationCode())
	})

	t.Run("should issue different tokens on each call", func(t *testing.T) {
		issuer := services.NewCodeIssuer()
		seen := make(map[string]struct{})

		for range 100 {
			token, err := issuer.IssuePickupToken()
			require.NoError(t, err)
			seen[token] = struct{}{}
		}

		assert.Len(t, seen, 100)
	})

	t.Run("should encode the random source verbatim", func(t *testing.T) {
		// Given
		source := bytes.NewReader(bytes.Repeat([]byte{0xab}, 16))
		issuer := services.NewCodeIssuerWithSource(source)

		// When
		token, err := issuer.IssuePickupToken()

		// Then
		require.NoError(t, err)
		assert.Equal(t, "abababababababababababababababab", token)
	})

	t.Run("should zero-pad small confirmation codes", func(t *testing.T) {
		issuer := services.NewCodeIssuerWithSource(bytes.NewReader(make([]byte, 64)))

		code, err := issuer.IssueConfirmationCode()

		require.NoError(t, err)
		assert.Equal(t, "000000", code)
	})

	t.Run("should fail when the random source fails", func(t *testing.T) {
		issuer := services.NewCodeIssuerWithSource(failingReader{})

		_, err := issuer.Issue()

		require.Error(t, err)
	})
}
