package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessingErrorDetailEmbedsCause(t *testing.T) {
	err := NewProcessingError("Erreur lors de l'extraction du texte", errors.New("failed to open PDF: broken xref"))

	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, "Erreur lors de l'extraction du texte: failed to open PDF: broken xref", err.Detail())
}

func TestValidationErrorDetailHidesCause(t *testing.T) {
	err := NewValidationError("Le fichier doit être au format PDF", errors.New("image/png"))

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "Le fichier doit être au format PDF", err.Detail())
}

func TestGetStatusCode_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewMissingInputError("missing", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, GetStatusCode(wrapped))
	assert.True(t, IsType(wrapped, ErrorTypeMissingInput))
	assert.Equal(t, http.StatusInternalServerError, GetStatusCode(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewProcessingError("boom", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "processing: boom (root cause)", err.Error())
}
