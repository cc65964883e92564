package game

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"janggi/internal/engine"
	"janggi/internal/janggi"
)

func waitEvent(t *testing.T, events <-chan engine.Event) engine.Event {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "event stream closed early")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for engine event")
		return engine.Event{}
	}
}

func newEngineGame(t *testing.T) (*GameState, *io.PipeWriter) {
	t.Helper()
	mgr := NewManager(zap.NewNop())
	g := mgr.NewGame(janggi.SetupInnerElephant, janggi.SetupInnerElephant)

	pr, pw := io.Pipe()
	sess := engine.NewSession(io.Discard, pr, nil)
	g.AttachEngine(sess, nil)
	t.Cleanup(func() { pw.Close() })
	return g, pw
}

func TestEngineBestMoveDrivesMatch(t *testing.T) {
	g, pw := newEngineGame(t)
	events, cancel := g.Subscribe()
	defer cancel()

	require.NoError(t, g.RequestAnalysis(1))
	go io.WriteString(pw, "info depth 7 score cp 15\nbestmove a6a5\n")

	ev := waitEvent(t, events)
	require.Equal(t, engine.EventScore, ev.Type)
	ev = waitEvent(t, events)
	require.Equal(t, engine.EventBestMove, ev.Type)
	require.True(t, ev.HasMove)

	// a6a5 = 楚卒 (3,0)->(4,0)，落子后轮到汉
	snap := g.Snapshot()
	require.Equal(t, janggi.Han, snap.ToMove)
	require.Equal(t, []string{"1. Cho: (3,0)->(4,0)"}, snap.MoveLog)
}

// 哨兵值只清旗标，不动盘面。
func TestNoneSentinelLeavesBoardAlone(t *testing.T) {
	g, pw := newEngineGame(t)
	events, cancel := g.Subscribe()
	defer cancel()

	before := g.Snapshot()
	require.NoError(t, g.RequestAnalysis(1))
	go io.WriteString(pw, "bestmove (none)\n")

	ev := waitEvent(t, events)
	require.Equal(t, engine.EventBestMove, ev.Type)
	require.False(t, ev.HasMove)

	after := g.Snapshot()
	require.Equal(t, before.Position, after.Position)
	require.Equal(t, before.ToMove, after.ToMove)

	// 旗标清了，可以立刻再请求
	require.NoError(t, g.RequestAnalysis(1))
}

func TestRequestAnalysisGuards(t *testing.T) {
	mgr := NewManager(nil)
	g := mgr.NewGame(janggi.SetupInnerElephant, janggi.SetupInnerElephant)
	require.ErrorIs(t, g.RequestAnalysis(1), ErrNoEngine)

	g2, _ := newEngineGame(t)
	g2.Resign()
	require.ErrorIs(t, g2.RequestAnalysis(1), ErrGameOver)
}

func TestPlayUndoResignFlow(t *testing.T) {
	mgr := NewManager(nil)
	g := mgr.NewGame(janggi.SetupInnerElephant, janggi.SetupInnerElephant)

	require.ErrorIs(t, g.Play(0, 1), ErrIllegalMove)
	require.NoError(t, g.Play(27, 36)) // (3,0)->(4,0)
	require.True(t, g.Undo())
	require.False(t, g.Undo())

	g.Resign()
	require.ErrorIs(t, g.Play(27, 36), ErrGameOver)

	// 重开之后一切照旧
	g.Restart(janggi.SetupInnerElephant, janggi.SetupInnerElephant)
	require.NoError(t, g.Play(27, 36))
}

func TestManagerLookupAndCloseAll(t *testing.T) {
	mgr := NewManager(nil)
	g := mgr.NewGame(janggi.SetupInnerElephant, janggi.SetupInnerElephant)

	got, err := mgr.Get(g.ID)
	require.NoError(t, err)
	require.Same(t, g, got)

	_, err = mgr.Get("nope")
	require.ErrorIs(t, err, ErrGameNotFound)

	require.NoError(t, mgr.CloseAll())
	_, err = mgr.Get(g.ID)
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestDestinationsMatchPredicate(t *testing.T) {
	mgr := NewManager(nil)
	g := mgr.NewGame(janggi.SetupInnerElephant, janggi.SetupInnerElephant)

	dests := g.Destinations(27) // 楚卒 (3,0)
	require.NotEmpty(t, dests)
	for _, d := range dests {
		require.NotEqual(t, 27, d)
	}
}
