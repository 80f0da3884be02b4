package ttview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/ttview"
	"github.com/srlehn/ttview/internal/consts"
)

func TestViewerDefaults(t *testing.T) {
	v, err := ttview.Viewer()
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, consts.DefaultWidth, v.Width())
	// repeated calls return the same viewer
	v2, err := ttview.Viewer()
	require.NoError(t, err)
	assert.Same(t, v, v2)
	assert.NoError(t, ttview.CleanUp())
}
