package engine

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	// ErrSearchPending 同一时刻只允许一个未完成的搜索请求。
	ErrSearchPending = errors.New("engine: search already pending")
	// ErrSessionStopped 会话停掉之后不再接受任何请求。
	ErrSessionStopped = errors.New("engine: session stopped")
)

// Session 维护对引擎进程的单向命令流和单向行流。
// 它自己不持有任何盘面：position 行由调用方（状态机 + 编码器）给。
//
// 并发约束就一条：in-flight 单旗标。只有“自己刚发过搜索请求、
// 还在等回复”的时候，bestmove 行才会被放行；没有挂起请求时
// 收到的 bestmove（迟到、重复）只记日志，不往外发，免得重复落子。
type Session struct {
	w      io.Writer
	logger *zap.Logger

	mu      sync.Mutex
	pending bool
	stopped bool

	events chan Event
}

// NewSession 在 (w, r) 这对行通道上开一个会话并启动读循环。
// 进程本身怎么来的不归这里管（见 Process）。
func NewSession(w io.Writer, r io.Reader, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		w:      w,
		logger: logger,
		events: make(chan Event, 16),
	}
	go s.readLoop(r)
	return s
}

// Events 分类后的事件流。读循环遇到 EOF 会把它关掉。
func (s *Session) Events() <-chan Event { return s.events }

// Handshake 会话开始时固定的三行：协议初始化、选变体、就绪探测。
func (s *Session) Handshake() error {
	for _, cmd := range []string{
		"uci",
		"setoption name UCI_Variant value janggi",
		"isready",
	} {
		if err := s.send(cmd); err != nil {
			return err
		}
	}
	return nil
}

// RequestSearch 发 position + go movetime。seconds 是整秒的时间预算，
// 发给引擎时换算成毫秒。已有挂起请求时拒绝，不排队。
func (s *Session) RequestSearch(position string, seconds int) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return ErrSessionStopped
	}
	if s.pending {
		s.mu.Unlock()
		return ErrSearchPending
	}
	s.pending = true
	s.mu.Unlock()

	if err := s.send("position fen " + position); err != nil {
		s.clearPending()
		return err
	}
	if err := s.send(fmt.Sprintf("go movetime %d", seconds*1000)); err != nil {
		s.clearPending()
		return err
	}
	return nil
}

// Stop 停会话：丢弃挂起状态，之后迟到的行全部作废。
func (s *Session) Stop() {
	s.mu.Lock()
	s.pending = false
	s.stopped = true
	s.mu.Unlock()
}

func (s *Session) send(cmd string) error {
	_, err := fmt.Fprintln(s.w, cmd)
	return errors.Wrap(err, "engine write")
}

func (s *Session) clearPending() {
	s.mu.Lock()
	s.pending = false
	s.mu.Unlock()
}

func (s *Session) readLoop(r io.Reader) {
	defer close(s.events)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ev := ClassifyLine(sc.Text())

		s.mu.Lock()
		stopped := s.stopped
		deliver := true
		if ev.Type == EventBestMove {
			if stopped || !s.pending {
				deliver = false
			} else {
				s.pending = false
			}
		}
		s.mu.Unlock()

		switch {
		case ev.Type == EventUnrecognized:
			continue
		case stopped:
			continue
		case !deliver:
			// 协议失步：没有挂起请求却来了 bestmove。只留诊断日志。
			s.logger.Debug("stray bestmove dropped", zap.String("line", ev.Raw))
			continue
		}
		s.events <- ev
	}
	if err := sc.Err(); err != nil {
		s.logger.Warn("engine read loop ended", zap.Error(err))
	}
}
