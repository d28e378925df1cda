package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type StatusResponse struct {
	GameID          string            `json:"game_id"`
	Settings        GameSettingsDTO   `json:"settings"`
	Config          Config            `json:"config"`
	Board           [][]int           `json:"board"`
	NextPlayer      int               `json:"next_player"`
	Status          string            `json:"status"`
	RedPieces       int               `json:"red_pieces"`
	BluePieces      int               `json:"blue_pieces"`
	Jumps           int               `json:"jumps"`
	AiThinking      bool              `json:"ai_thinking"`
	History         []historyEntryDTO `json:"history"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type GameSettingsDTO struct {
	RedPlayer  string   `json:"red_player"`
	BluePlayer string   `json:"blue_player"`
	RedStarts  *bool    `json:"red_starts,omitempty"`
	JumpLimit  int      `json:"jump_limit"`
	Blocks     []string `json:"blocks"`
}

type historyEntryDTO struct {
	Move      string   `json:"move"`
	Player    int      `json:"player"`
	Converted []string `json:"converted"`
	ElapsedMs float64  `json:"elapsed_ms"`
	IsAi      bool     `json:"is_ai"`
	Depth     int      `json:"depth"`
}

type historyPayload struct {
	History []historyEntryDTO `json:"history"`
}

type resetPayload struct {
	GameID     string  `json:"game_id"`
	Board      [][]int `json:"board"`
	NextPlayer int     `json:"next_player"`
	Status     string  `json:"status"`
	JumpLimit  int     `json:"jump_limit"`
}

type settingsPayload struct {
	Settings GameSettingsDTO `json:"settings"`
	Config   Config          `json:"config"`
}

func main() {
	log := NewLogger()
	defer func() { _ = log.Sync() }()

	cfg, err := LoadConfig(os.Getenv("ATAXX_CONFIG"))
	if err != nil {
		log.Fatalw("failed to load configuration", zap.Error(err))
	}
	configStore.Update(cfg)

	controller := NewGameController(DefaultGameSettings())
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx.Done())
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.TickIntervalMs) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if controller.Tick() {
					if entry, ok := controller.LatestHistoryEntry(); ok {
						hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
					}
					hub.broadcastStatus <- controllerStatus(controller)
				}
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings GameSettingsDTO `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings := settingsFromDTO(payload.Settings, DefaultGameSettings())
		controller.StartGame(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/stop", func(w http.ResponseWriter, r *http.Request) {
		controller.Reset(controller.Settings())
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettingsDTO `json:"settings"`
			Config   *Config          `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			configStore.Update(*payload.Config)
		}
		if payload.Settings != nil {
			controller.UpdateSettings(settingsFromDTO(*payload.Settings, controller.Settings()))
		}
		hub.broadcastSettings <- settingsPayload{
			Settings: settingsToDTO(controller.Settings()),
			Config:   GetConfig(),
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Move string `json:"move"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		move, err := ParseMove(payload.Move)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		applied, errMsg := controller.ApplyHumanMove(move)
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		if entry, ok := controller.LatestHistoryEntry(); ok {
			hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
		}
		hub.broadcastStatus <- controllerStatus(controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/blocks", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Squares []string `json:"squares"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if err := controller.PlaceBlocks(payload.Squares); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		hub.broadcastStatus <- controllerStatus(controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})

	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Infow("backend listening", "addr", cfg.ServerAddr)
	select {
	case <-sigCtx.Done():
		log.Infow("shutdown signal received")
	case err, ok := <-serverErrCh:
		if ok {
			log.Errorw("server error", zap.Error(err))
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Errorw("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Errorw("forced close failed", zap.Error(closeErr))
		}
	}
	cancel()
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})

	go func() {
		defer conn.Close()
		_ = writeWSWithHeartbeat(conn, client.send)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			hub.Unregister(client)
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func settingsFromDTO(dto GameSettingsDTO, base GameSettings) GameSettings {
	settings := base
	switch dto.RedPlayer {
	case "human":
		settings.RedType = PlayerHuman
	case "ai":
		settings.RedType = PlayerAI
	}
	switch dto.BluePlayer {
	case "human":
		settings.BlueType = PlayerHuman
	case "ai":
		settings.BlueType = PlayerAI
	}
	if dto.RedStarts != nil {
		settings.RedStarts = *dto.RedStarts
	}
	if dto.JumpLimit > 0 {
		settings.JumpLimit = dto.JumpLimit
	}
	if dto.Blocks != nil {
		settings.Blocks = append([]string(nil), dto.Blocks...)
	}
	return settings
}

func settingsToDTO(settings GameSettings) GameSettingsDTO {
	label := func(t PlayerType) string {
		if t == PlayerAI {
			return "ai"
		}
		return "human"
	}
	redStarts := settings.RedStarts
	return GameSettingsDTO{
		RedPlayer:  label(settings.RedType),
		BluePlayer: label(settings.BlueType),
		RedStarts:  &redStarts,
		JumpLimit:  settings.JumpLimit,
		Blocks:     append([]string(nil), settings.Blocks...),
	}
}

func playerToInt(player PlayerColor) int {
	if player == PlayerRed {
		return 1
	}
	return 2
}

func boardGrid(board Board) [][]int {
	grid := make([][]int, boardSide)
	for r := 0; r < boardSide; r++ {
		grid[r] = make([]int, boardSide)
		for c := 0; c < boardSide; c++ {
			switch board.AtColRow(byte('a'+c), byte('1'+r)) {
			case CellRed:
				grid[r][c] = 1
			case CellBlue:
				grid[r][c] = 2
			case CellBlocked:
				grid[r][c] = 3
			}
		}
	}
	return grid
}

func historyEntryToDTO(entry HistoryEntry) historyEntryDTO {
	return historyEntryDTO{
		Move:      entry.Move.String(),
		Player:    playerToInt(entry.Player),
		Converted: entry.Converted,
		ElapsedMs: entry.ElapsedMs,
		IsAi:      entry.IsAi,
		Depth:     entry.Depth,
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	history := controller.History().All()
	dtoHistory := make([]historyEntryDTO, 0, len(history))
	for _, entry := range history {
		dtoHistory = append(dtoHistory, historyEntryToDTO(entry))
	}
	return StatusResponse{
		GameID:          controller.GameID(),
		Settings:        settingsToDTO(controller.Settings()),
		Config:          GetConfig(),
		Board:           boardGrid(state.Board),
		NextPlayer:      playerToInt(state.ToMove),
		Status:          statusLabel(state.Status),
		RedPieces:       state.Board.RedPieces(),
		BluePieces:      state.Board.BluePieces(),
		Jumps:           state.ConsecutiveJumps,
		AiThinking:      controller.AiThinking(),
		History:         dtoHistory,
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

func resetFromController(controller *GameController) resetPayload {
	state := controller.State()
	return resetPayload{
		GameID:     controller.GameID(),
		Board:      boardGrid(state.Board),
		NextPlayer: playerToInt(state.ToMove),
		Status:     statusLabel(state.Status),
		JumpLimit:  controller.Settings().JumpLimit,
	}
}
