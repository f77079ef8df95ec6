package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	require.NoError(t, Load(DefaultLanguage))
	assert.Equal(t, "Moved to: ROOM{Hallway}", T("MOVED_TO", "Hallway"))
	assert.Equal(t, "Turns: 3", T("STATUS_TURNS", 3))
}

func TestLoad_UnknownLanguage(t *testing.T) {
	assert.Error(t, Load("xx"))
	assert.Equal(t, "Thank you for playing!", T("GOODBYE"), "the active catalog is kept")
}

func TestLanguages(t *testing.T) {
	assert.Contains(t, Languages(), DefaultLanguage)
}
