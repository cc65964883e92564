package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"janggi/internal/engine"
	"janggi/internal/server/game"
)

type Config struct {
	// EnginePath 外部搜索引擎可执行文件；空串关掉 ai 相关接口。
	EnginePath string
	// MoveTimeSec 默认搜索时间预算（整秒）。
	MoveTimeSec int
}

type Handler struct {
	mgr    *game.Manager
	cfg    Config
	logger *zap.Logger
}

func NewHandler(mgr *game.Manager, cfg Config, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MoveTimeSec <= 0 {
		cfg.MoveTimeSec = 3
	}
	return &Handler{mgr: mgr, cfg: cfg, logger: logger}
}

func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")
	api.Post("/new_game", h.handleNewGame)
	api.Post("/state", h.handleState)
	api.Post("/play", h.handlePlay)
	api.Post("/pass", h.handlePass)
	api.Post("/undo", h.handleUndo)
	api.Post("/resign", h.handleResign)
	api.Post("/destinations", h.handleDestinations)
	api.Post("/ai_move", h.handleAiMove)

	app.Get("/ws/game/:id", websocket.New(h.handleWS))
}

func (h *Handler) handleNewGame(c *fiber.Ctx) error {
	var req NewGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "bad json")
		}
	}

	g := h.mgr.NewGame(parseSetup(req.HanSetup), parseSetup(req.ChoSetup))

	if h.cfg.EnginePath != "" {
		proc, err := engine.StartProcess(h.cfg.EnginePath)
		if err != nil {
			h.logger.Error("engine start failed", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "engine unavailable")
		}
		sess := engine.NewSession(proc.Writer(), proc.Reader(), h.logger)
		if err := sess.Handshake(); err != nil {
			_ = proc.Close()
			return fiber.NewError(fiber.StatusInternalServerError, "engine handshake failed")
		}
		g.AttachEngine(sess, proc)
	}

	return c.JSON(snapshotToDTO(g.ID, g.Snapshot()))
}

func (h *Handler) lookup(id string) (*game.GameState, error) {
	g, err := h.mgr.Get(id)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "game not found")
	}
	return g, nil
}

func (h *Handler) handleState(c *fiber.Ctx) error {
	var req StateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bad json")
	}
	g, err := h.lookup(req.GameID)
	if err != nil {
		return err
	}
	return c.JSON(snapshotToDTO(g.ID, g.Snapshot()))
}

func (h *Handler) handlePlay(c *fiber.Ctx) error {
	var req PlayRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bad json")
	}
	g, err := h.lookup(req.GameID)
	if err != nil {
		return err
	}
	switch err := g.Play(req.Move.From, req.Move.To); {
	case errors.Is(err, game.ErrIllegalMove):
		return fiber.NewError(fiber.StatusBadRequest, "illegal move")
	case errors.Is(err, game.ErrGameOver):
		return fiber.NewError(fiber.StatusConflict, "match not active")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(snapshotToDTO(g.ID, g.Snapshot()))
}

func (h *Handler) handlePass(c *fiber.Ctx) error {
	var req StateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bad json")
	}
	g, err := h.lookup(req.GameID)
	if err != nil {
		return err
	}
	if err := g.Pass(); err != nil {
		return fiber.NewError(fiber.StatusConflict, "match not active")
	}
	return c.JSON(snapshotToDTO(g.ID, g.Snapshot()))
}

func (h *Handler) handleUndo(c *fiber.Ctx) error {
	var req StateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bad json")
	}
	g, err := h.lookup(req.GameID)
	if err != nil {
		return err
	}
	// 历史为空时 undo 是 no-op，返回当前状态即可
	g.Undo()
	return c.JSON(snapshotToDTO(g.ID, g.Snapshot()))
}

func (h *Handler) handleResign(c *fiber.Ctx) error {
	var req StateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bad json")
	}
	g, err := h.lookup(req.GameID)
	if err != nil {
		return err
	}
	g.Resign()
	return c.JSON(snapshotToDTO(g.ID, g.Snapshot()))
}

func (h *Handler) handleDestinations(c *fiber.Ctx) error {
	var req DestinationsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bad json")
	}
	g, err := h.lookup(req.GameID)
	if err != nil {
		return err
	}
	dests := g.Destinations(req.From)
	if dests == nil {
		dests = []int{}
	}
	return c.JSON(DestinationsResponse{From: req.From, Destinations: dests})
}

func (h *Handler) handleAiMove(c *fiber.Ctx) error {
	var req AiMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bad json")
	}
	g, err := h.lookup(req.GameID)
	if err != nil {
		return err
	}
	seconds := req.MoveTimeSec
	if seconds <= 0 {
		seconds = h.cfg.MoveTimeSec
	}
	switch err := g.RequestAnalysis(seconds); {
	case errors.Is(err, game.ErrNoEngine):
		return fiber.NewError(fiber.StatusConflict, "no engine attached")
	case errors.Is(err, game.ErrGameOver):
		return fiber.NewError(fiber.StatusConflict, "match not active")
	case errors.Is(err, engine.ErrSearchPending):
		return fiber.NewError(fiber.StatusConflict, "search already pending")
	case err != nil:
		h.logger.Error("ai_move failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "engine request failed")
	}
	// 结果异步从 /ws/game/:id 推回来
	return c.JSON(fiber.Map{"status": "searching"})
}

// handleWS 把该局的引擎事件流推给订阅方。
func (h *Handler) handleWS(conn *websocket.Conn) {
	defer conn.Close()

	g, err := h.mgr.Get(conn.Params("id"))
	if err != nil {
		_ = conn.WriteJSON(fiber.Map{"error": "game not found"})
		return
	}

	events, cancel := g.Subscribe()
	defer cancel()

	// 读循环只为探测断连
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			dto, ok := eventToDTO(ev)
			if !ok {
				continue
			}
			if err := conn.WriteJSON(dto); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
