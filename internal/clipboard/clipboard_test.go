package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	var m Memory

	text, writes := m.Text()
	assert.Empty(t, text)
	assert.Zero(t, writes)

	require.NoError(t, m.WriteText("first"))
	require.NoError(t, m.WriteText("second"))

	text, writes = m.Text()
	assert.Equal(t, "second", text)
	assert.Equal(t, 2, writes)
}

func TestBrowser(t *testing.T) {
	var w Writer = Browser{}
	assert.NoError(t, w.WriteText("ignored"))
}
