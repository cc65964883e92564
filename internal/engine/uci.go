package engine

import (
	"strconv"
	"strings"

	"janggi/internal/janggi"
)

// 引擎输出逐行分类成显式事件，取代回调注册。
// 没认出来的行一律 Unrecognized，上层直接忽略。

type EventType int8

const (
	EventUnrecognized EventType = iota
	EventScore
	EventMate
	EventBestMove
)

type Event struct {
	Type   EventType
	Cp     int  // EventScore：引擎给的原始 centipawn。
	MateIn int  // EventMate：几步杀
	Move   janggi.Move
	// HasMove=false 的 EventBestMove 表示引擎报“无着可走”（bestmove (none)），
	// 是正常的终局信号，不是错误。
	HasMove bool
	Raw     string
}

// Pawns 把 centipawn 折算成“几个兵”。符号照引擎原样透传：
// 分数到底是绝对视角还是行棋方视角，引擎文档没说清，这里不猜、不翻转。
func (e Event) Pawns() float64 { return float64(e.Cp) / 100 }

// ClassifyLine 把一行引擎输出归到四种事件之一。
// 行与行相互独立，夹在中间的杂项 telemetry 都会落到 Unrecognized。
func ClassifyLine(line string) Event {
	raw := strings.TrimSpace(line)
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Event{Type: EventUnrecognized, Raw: raw}
	}

	if fields[0] == "bestmove" {
		if len(fields) < 2 {
			return Event{Type: EventUnrecognized, Raw: raw}
		}
		tok := fields[1]
		if tok == "(none)" || tok == "none" {
			return Event{Type: EventBestMove, Raw: raw}
		}
		mv, err := janggi.DecodeMove(tok)
		if err != nil {
			return Event{Type: EventUnrecognized, Raw: raw}
		}
		return Event{Type: EventBestMove, Move: mv, HasMove: true, Raw: raw}
	}

	for i := 0; i+2 < len(fields); i++ {
		if fields[i] != "score" {
			continue
		}
		v, err := strconv.Atoi(fields[i+2])
		if err != nil {
			return Event{Type: EventUnrecognized, Raw: raw}
		}
		switch fields[i+1] {
		case "cp":
			return Event{Type: EventScore, Cp: v, Raw: raw}
		case "mate":
			return Event{Type: EventMate, MateIn: v, Raw: raw}
		}
		break
	}
	return Event{Type: EventUnrecognized, Raw: raw}
}
