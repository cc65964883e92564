package janggi

import "fmt"

type MatchStatus int8

const (
	StatusNotStarted MatchStatus = iota
	StatusActive
	StatusResigned
)

func (s MatchStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusResigned:
		return "resigned"
	}
	return "not_started"
}

// MoveRecord 一步的历史：走之前的完整盘面快照 + 是谁走的。
// Board 是值类型，快照就是一次值拷贝，跟活动盘面互不串改。
type MoveRecord struct {
	Seq  int
	From int
	To   int
	Pass bool
	Side Side
	Prev Board
}

// PassNotation 棋谱里 pass 一步的固定写法。
const PassNotation = "pass"

// Match 回合状态机：NotStarted → Active → (Resigned | Active)。
// 所有变更都发生在单一控制流上，这里不加锁；并发归上层管。
type Match struct {
	Board      Board
	SideToMove Side
	History    []MoveRecord
	Status     MatchStatus
}

func NewMatch() *Match {
	return &Match{SideToMove: NoSide}
}

// Start 开新局：重铺棋盘、清空历史、楚方先走。
// 不管上一局是怎么结束的（包括认输），都从头来。
func (m *Match) Start(han, cho Setup) {
	m.Board = NewBoard(han, cho)
	m.SideToMove = Cho
	m.History = m.History[:0]
	m.Status = StatusActive
}

func (m *Match) Active() bool { return m.Status == StatusActive }

// ApplyMove 先过 IsLegal，合法才落子：快照入史、挪子（吃子隐含在
// 覆盖里）、换边。非法走法对调用方就是一次无声的 no-op。
func (m *Match) ApplyMove(from, to int) bool {
	if m.Status != StatusActive {
		return false
	}
	if !IsLegal(&m.Board, from, to, m.SideToMove) {
		return false
	}
	m.History = append(m.History, MoveRecord{
		Seq:  len(m.History) + 1,
		From: from,
		To:   to,
		Side: m.SideToMove,
		Prev: m.Board,
	})
	m.Board.Squares[to] = m.Board.Squares[from]
	m.Board.Squares[from] = 0
	m.SideToMove = opposite(m.SideToMove)
	return true
}

// ApplyPass 虚着：不动盘面，记一条历史，换边。
func (m *Match) ApplyPass() bool {
	if m.Status != StatusActive {
		return false
	}
	m.History = append(m.History, MoveRecord{
		Seq:  len(m.History) + 1,
		Pass: true,
		Side: m.SideToMove,
		Prev: m.Board,
	})
	m.SideToMove = opposite(m.SideToMove)
	return true
}

// Undo 弹掉最后一条历史，把盘面和走子方恢复到那一步之前。
// 历史为空时是 no-op。
func (m *Match) Undo() bool {
	if m.Status != StatusActive {
		return false
	}
	if len(m.History) == 0 {
		return false
	}
	last := m.History[len(m.History)-1]
	m.History = m.History[:len(m.History)-1]
	m.Board = last.Prev
	m.SideToMove = last.Side
	return true
}

// Resign 只是状态标记，不动盘面；之后的走子全部被拒，直到新开局。
func (m *Match) Resign() {
	if m.Status == StatusActive {
		m.Status = StatusResigned
	}
}

// MoveLog 导出棋谱：每条记录一行，
// “<序号>. <方>: (r,c)->(r,c)”，虚着写固定的 pass 记号。
func (m *Match) MoveLog() []string {
	out := make([]string, 0, len(m.History))
	for _, rec := range m.History {
		if rec.Pass {
			out = append(out, fmt.Sprintf("%d. %s: %s", rec.Seq, rec.Side, PassNotation))
			continue
		}
		out = append(out, fmt.Sprintf("%d. %s: (%d,%d)->(%d,%d)",
			rec.Seq, rec.Side,
			rowOf(rec.From), colOf(rec.From),
			rowOf(rec.To), colOf(rec.To)))
	}
	return out
}
