package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"janggi/internal/janggi"
)

func TestClassifyScoreLines(t *testing.T) {
	ev := ClassifyLine("info depth 12 seldepth 18 multipv 1 score cp -137 nodes 34567 pv a6a5 e8d8")
	require.Equal(t, EventScore, ev.Type)
	require.Equal(t, -137, ev.Cp)
	require.InDelta(t, -1.37, ev.Pawns(), 1e-9)

	ev = ClassifyLine("info depth 20 score cp 4 lowerbound nodes 1")
	require.Equal(t, EventScore, ev.Type)
	require.Equal(t, 4, ev.Cp)
}

func TestClassifyMateLines(t *testing.T) {
	ev := ClassifyLine("info depth 31 score mate 4 pv e3e4")
	require.Equal(t, EventMate, ev.Type)
	require.Equal(t, 4, ev.MateIn)

	ev = ClassifyLine("info score mate -2")
	require.Equal(t, EventMate, ev.Type)
	require.Equal(t, -2, ev.MateIn)
}

func TestClassifyBestMove(t *testing.T) {
	ev := ClassifyLine("bestmove a6a5 ponder e8d8")
	require.Equal(t, EventBestMove, ev.Type)
	require.True(t, ev.HasMove)
	require.Equal(t, "a6a5", janggi.EncodeMove(ev.Move))

	// 无着可走的哨兵值：是终局信号，不是错误
	for _, line := range []string{"bestmove (none)", "bestmove none"} {
		ev = ClassifyLine(line)
		require.Equal(t, EventBestMove, ev.Type, line)
		require.False(t, ev.HasMove, line)
	}
}

func TestClassifyUnrecognized(t *testing.T) {
	for _, line := range []string{
		"",
		"id name Fairy-Stockfish 14",
		"uciok",
		"readyok",
		"option name Threads type spin default 1 min 1 max 512",
		"bestmove",       // 残缺
		"bestmove zz99",  // 记号越界
		"info score cp x",
	} {
		ev := ClassifyLine(line)
		require.Equal(t, EventUnrecognized, ev.Type, "line %q", line)
	}
}
