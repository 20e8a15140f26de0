package testsuite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSuite(t *testing.T, body string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.epd")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadParsesBestMoveAndAvoidMove(t *testing.T) {
	path := writeSuite(t, ""+
		"7k/R7/8/8/8/8/8/1R5K w - - 0 1 bm Rb8; id \"mate-in-one\";\n"+
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1 am Ke2; id \"edge-avoid\";\n")

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Tests, 2)

	assert.Equal(t, "mate-in-one", s.Tests[0].ID)
	assert.Equal(t, opBestMove, s.Tests[0].Op)
	assert.Equal(t, []string{"Rb8"}, s.Tests[0].Targets)

	assert.Equal(t, "edge-avoid", s.Tests[1].ID)
	assert.Equal(t, opAvoidMove, s.Tests[1].Op)
}

func TestLoadSkipsBlankAndCommentLines(t *testing.T) {
	path := writeSuite(t, "\n# just a comment\n\n"+
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1 bm Kd2; id \"t1\";\n")
	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Tests, 1)
}

func TestRunFindsForcedMateInOne(t *testing.T) {
	path := writeSuite(t, "7k/R7/8/8/8/8/8/1R5K w - - 0 1 bm Rb8; id \"mate-in-one\";\n")
	s, err := Load(path)
	require.NoError(t, err)

	passed, failed := s.Run(200*time.Millisecond, 3)
	assert.Equal(t, 1, passed)
	assert.Equal(t, 0, failed)
}

// A bm line can list several acceptable moves. The engine's actual choice
// only has to equal one of them - not necessarily the first one enumerated.
func TestMatchesTargetAcceptsAnyListedTarget(t *testing.T) {
	assert.True(t, matchesTarget("Rb8", []string{"Qh8", "Rb8"}))
	assert.True(t, matchesTarget("Rb8#", []string{"Qh8", "Rb8"}))
	assert.False(t, matchesTarget("Rb8", []string{"Qh8", "Ra2"}))
}

func TestRunPassesWhenActualMoveMatchesASecondaryTarget(t *testing.T) {
	path := writeSuite(t, "7k/R7/8/8/8/8/8/1R5K w - - 0 1 bm Qh8 Rb8; id \"mate-in-one\";\n")
	s, err := Load(path)
	require.NoError(t, err)

	passed, failed := s.Run(200*time.Millisecond, 3)
	assert.Equal(t, 1, passed)
	assert.Equal(t, 0, failed)
}
