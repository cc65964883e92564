package game

import (
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"janggi/internal/engine"
	"janggi/internal/janggi"
)

var (
	ErrNoEngine    = errors.New("game: no engine attached")
	ErrGameOver    = errors.New("game: match not active")
	ErrIllegalMove = errors.New("game: illegal move")
)

// GameState 一局棋的会话对象：状态机 + 引擎会话都归它所有，
// 谁要发命令就拿这个句柄，不留任何全局共享盘面。
type GameState struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	match     *janggi.Match
	eng       *engine.Session
	proc      io.Closer
	subs      map[chan engine.Event]struct{}
	updatedAt time.Time
	logger    *zap.Logger
}

// Snapshot 给 HTTP/WS 层用的只读视图。
type Snapshot struct {
	Position string
	ToMove   janggi.Side
	Status   janggi.MatchStatus
	MoveLog  []string
	HanScore int
	ChoScore int
}

func (g *GameState) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Snapshot{
		Position: janggi.Encode(&g.match.Board, g.match.SideToMove),
		ToMove:   g.match.SideToMove,
		Status:   g.match.Status,
		MoveLog:  g.match.MoveLog(),
		HanScore: janggi.MaterialScore(&g.match.Board, janggi.Han),
		ChoScore: janggi.MaterialScore(&g.match.Board, janggi.Cho),
	}
}

// Play 人类走子。非法走法返回 ErrIllegalMove，盘面不动。
func (g *GameState) Play(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.match.Active() {
		return ErrGameOver
	}
	if !g.match.ApplyMove(from, to) {
		return ErrIllegalMove
	}
	g.updatedAt = time.Now()
	return nil
}

func (g *GameState) Pass() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.match.ApplyPass() {
		return ErrGameOver
	}
	g.updatedAt = time.Now()
	return nil
}

func (g *GameState) Undo() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.match.Undo() {
		return false
	}
	g.updatedAt = time.Now()
	return true
}

func (g *GameState) Resign() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.match.Resign()
	g.updatedAt = time.Now()
}

// Restart 重开一局。无论上一局是不是认输收场，都回到楚方先走。
func (g *GameState) Restart(han, cho janggi.Setup) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.match.Start(han, cho)
	g.updatedAt = time.Now()
}

// Destinations 选子高亮：穷举谓词，现算现用。
func (g *GameState) Destinations(from int) []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return janggi.LegalDestinations(&g.match.Board, from, g.match.SideToMove)
}

// AttachEngine 挂上引擎会话并启动事件泵。proc 可以为 nil
//（测试时直接给内存管道）。
func (g *GameState) AttachEngine(sess *engine.Session, proc io.Closer) {
	g.mu.Lock()
	g.eng = sess
	g.proc = proc
	g.mu.Unlock()
	go g.pump(sess)
}

// RequestAnalysis 把当前盘面重新编码后丢给引擎搜一手。
// in-flight 限制由 Session 自己守，这里不重复判。
func (g *GameState) RequestAnalysis(seconds int) error {
	g.mu.Lock()
	if g.eng == nil {
		g.mu.Unlock()
		return ErrNoEngine
	}
	if !g.match.Active() {
		g.mu.Unlock()
		return ErrGameOver
	}
	pos := janggi.Encode(&g.match.Board, g.match.SideToMove)
	sess := g.eng
	g.mu.Unlock()
	return sess.RequestSearch(pos, seconds)
}

// Subscribe 订阅引擎事件（评分、杀着、bestmove）。cancel 必须调。
func (g *GameState) Subscribe() (<-chan engine.Event, func()) {
	ch := make(chan engine.Event, 16)
	g.mu.Lock()
	g.subs[ch] = struct{}{}
	g.mu.Unlock()
	cancel := func() {
		g.mu.Lock()
		if _, ok := g.subs[ch]; ok {
			delete(g.subs, ch)
			close(ch)
		}
		g.mu.Unlock()
	}
	return ch, cancel
}

// pump 消费引擎事件：bestmove 走状态机，其余原样广播。
// “无着可走”只是终局信号，盘面不动。
func (g *GameState) pump(sess *engine.Session) {
	for ev := range sess.Events() {
		if ev.Type == engine.EventBestMove && ev.HasMove {
			g.mu.Lock()
			if !g.match.ApplyMove(ev.Move.From, ev.Move.To) {
				g.logger.Warn("engine move rejected",
					zap.String("game", g.ID),
					zap.String("move", janggi.EncodeMove(ev.Move)))
			} else {
				g.updatedAt = time.Now()
			}
			g.mu.Unlock()
		}
		g.broadcast(ev)
	}
}

func (g *GameState) broadcast(ev engine.Event) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for ch := range g.subs {
		select {
		case ch <- ev:
		default: // 订阅方读不过来就丢，不能卡住事件泵
		}
	}
}

// Close 停引擎会话、收进程、清订阅。
func (g *GameState) Close() error {
	g.mu.Lock()
	eng, proc := g.eng, g.proc
	g.eng, g.proc = nil, nil
	for ch := range g.subs {
		delete(g.subs, ch)
		close(ch)
	}
	g.mu.Unlock()

	if eng != nil {
		eng.Stop()
	}
	if proc != nil {
		return proc.Close()
	}
	return nil
}
