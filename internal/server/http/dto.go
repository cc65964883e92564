package httpserver

import (
	"janggi/internal/engine"
	"janggi/internal/janggi"
	"janggi/internal/server/game"
)

// 前端用的招法结构
type MoveDTO struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// NewGameRequest 两方各自选布阵；空串用默认（마상상마）。
type NewGameRequest struct {
	HanSetup string `json:"han_setup"`
	ChoSetup string `json:"cho_setup"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

type DestinationsRequest struct {
	GameID string `json:"game_id"`
	From   int    `json:"from"`
}

type AiMoveRequest struct {
	GameID string `json:"game_id"`
	// 整秒的思考预算；<=0 用服务端默认值
	MoveTimeSec int `json:"move_time_sec"`
}

type StateResponse struct {
	GameID   string   `json:"game_id,omitempty"`
	Position string   `json:"position"`
	ToMove   int      `json:"to_move"` // 0=汉(w) 1=楚(b)
	Status   string   `json:"status"`  // "active" / "resigned" / "not_started"
	MoveLog  []string `json:"move_log"`
	HanScore int      `json:"han_score"`
	ChoScore int      `json:"cho_score"`
}

type DestinationsResponse struct {
	From         int   `json:"from"`
	Destinations []int `json:"destinations"`
}

// EventDTO 引擎事件往 websocket 推的形状。
type EventDTO struct {
	Type    string  `json:"type"` // "score" / "mate" / "bestmove"
	Pawns   float64 `json:"pawns,omitempty"`
	MateIn  int     `json:"mate_in,omitempty"`
	Move    string  `json:"move,omitempty"` // 4 字符记号
	HasMove bool    `json:"has_move"`
}

func sideToInt(s janggi.Side) int {
	switch s {
	case janggi.Han:
		return 0
	case janggi.Cho:
		return 1
	default:
		return -1
	}
}

func parseSetup(v string) janggi.Setup {
	switch v {
	case "", "inner", "msm", "mssm":
		return janggi.SetupInnerElephant
	case "outer", "smms":
		return janggi.SetupOuterElephant
	case "left", "smsm":
		return janggi.SetupLeftElephant
	case "right", "msms":
		return janggi.SetupRightElephant
	}
	return janggi.SetupInnerElephant
}

func snapshotToDTO(id string, s game.Snapshot) StateResponse {
	return StateResponse{
		GameID:   id,
		Position: s.Position,
		ToMove:   sideToInt(s.ToMove),
		Status:   s.Status.String(),
		MoveLog:  s.MoveLog,
		HanScore: s.HanScore,
		ChoScore: s.ChoScore,
	}
}

func eventToDTO(ev engine.Event) (EventDTO, bool) {
	switch ev.Type {
	case engine.EventScore:
		return EventDTO{Type: "score", Pawns: ev.Pawns()}, true
	case engine.EventMate:
		return EventDTO{Type: "mate", MateIn: ev.MateIn}, true
	case engine.EventBestMove:
		dto := EventDTO{Type: "bestmove", HasMove: ev.HasMove}
		if ev.HasMove {
			dto.Move = janggi.EncodeMove(ev.Move)
		}
		return dto, true
	}
	return EventDTO{}, false
}
