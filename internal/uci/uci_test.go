package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
)

func newTestHandler() (*Handler, *bytes.Buffer) {
	var buf bytes.Buffer
	h := NewHandler(strings.NewReader(""), &buf)
	return h, &buf
}

func TestUciCommandRepliesWithIdAndOk(t *testing.T) {
	h, buf := newTestHandler()
	h.Handle("uci")
	out := buf.String()
	assert.Contains(t, out, "id name")
	assert.Contains(t, out, "uciok")
}

func TestIsReadyReplies(t *testing.T) {
	h, buf := newTestHandler()
	h.Handle("isready")
	assert.Contains(t, buf.String(), "readyok")
}

func TestPositionStartposThenMoves(t *testing.T) {
	h, _ := newTestHandler()
	h.Handle("position startpos moves e2e4 e7e5")
	assert.Equal(t, 2, len(h.pos.History()))
}

func TestPositionFen(t *testing.T) {
	h, _ := newTestHandler()
	h.Handle("position fen 4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	assert.Equal(t, White, h.pos.SideToMove())
}

func TestQuitStopsARunningSearch(t *testing.T) {
	h, _ := newTestHandler()
	h.Handle("position startpos")
	h.Handle("go infinite")
	assert.True(t, h.Handle("quit"))
}

func TestLoopStopsOnQuit(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(bufio.NewReader(strings.NewReader("uci\nquit\n")), &buf)
	h.Loop()
	assert.Contains(t, buf.String(), "uciok")
}
