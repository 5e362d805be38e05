package locale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocumentLabel(t *testing.T) {
	parsed, err := NewDocumentLabel("User Guide")
	assert.NoError(t, err)
	assert.Equal(t, DocumentLabel("User Guide"), parsed)

	_, err = NewDocumentLabel("")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = NewDocumentLabel(strings.Repeat("l", 101))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestDocumentationIsEmpty(t *testing.T) {
	var doc Documentation
	assert.True(t, doc.IsEmpty())

	doc.Label = "User Guide"
	assert.False(t, doc.IsEmpty())
}

func TestAgreementIsEmpty(t *testing.T) {
	var agreement Agreement
	assert.True(t, agreement.IsEmpty())

	agreement.Label = "EULA"
	assert.False(t, agreement.IsEmpty())
}
