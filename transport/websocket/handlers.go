package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/apperror"
)

const (
	actionConnect   = "connect"
	actionGameState = "game:state"
	actionGameTurn  = "game:turn"
	actionGameReset = "game:reset"
	actionGameLeave = "game:leave"

	actionSessionEnd = "session:end"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, err.Error())
	}

	var playerID string
	if payloadReq.Player != nil {
		playerID = payloadReq.Player.ID
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to create a new player")
	}

	payloadResp := Payload{Player: player}

	if player.InGame() {
		if payloadResp.Game, err = that.gameUseCase.GetOrCreateGame(ctx, player.ID); err != nil {
			log.Error("failed to get game", "gameID", player.GameID, "error", err)
			return that.sendErrorResponse(bufrw, msg.Action, "failed to get the game")
		}
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "playerID", player.ID)

	return nil
}

func (that *Server) handleGameState(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	payloadReq, err := decodePlayerPayload(msg)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, err.Error())
	}

	game, err := that.gameUseCase.GetOrCreateGame(ctx, payloadReq.Player.ID)
	if err != nil {
		return that.sendUseCaseError(bufrw, msg.Action, err)
	}

	return that.sendMessage(bufrw, msg.Action, Payload{Player: payloadReq.Player, Game: game})
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleGameTurn")

	payloadReq, err := decodePlayerPayload(msg)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, err.Error())
	}

	if payloadReq.Cell == nil {
		return that.sendErrorResponse(bufrw, msg.Action, "cell is required")
	}

	game, accepted, err := that.gameUseCase.MakeTurn(ctx, payloadReq.Player.ID, *payloadReq.Cell)
	if err != nil {
		return that.sendUseCaseError(bufrw, msg.Action, err)
	}

	log.Debug("turn played", "playerID", payloadReq.Player.ID, "cell", *payloadReq.Cell, "accepted", accepted)

	return that.sendMessage(bufrw, msg.Action, Payload{
		Player:   payloadReq.Player,
		Game:     game,
		Accepted: &accepted,
	})
}

func (that *Server) handleGameReset(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	payloadReq, err := decodePlayerPayload(msg)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, err.Error())
	}

	game, err := that.gameUseCase.ResetGame(ctx, payloadReq.Player.ID)
	if err != nil {
		return that.sendUseCaseError(bufrw, msg.Action, err)
	}

	return that.sendMessage(bufrw, msg.Action, Payload{Player: payloadReq.Player, Game: game})
}

func (that *Server) handleGameLeave(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleGameLeave")

	payloadReq, err := decodePlayerPayload(msg)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, err.Error())
	}

	player, err := that.gameUseCase.EndGame(ctx, payloadReq.Player.ID)
	if err != nil {
		return that.sendUseCaseError(bufrw, msg.Action, err)
	}

	log.Info("player left the game", "playerID", player.ID)

	return that.sendMessage(bufrw, msg.Action, Payload{Player: player})
}

// handleSessionEnd - forgets the player; the client connects again without an id.
func (that *Server) handleSessionEnd(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	payloadReq, err := decodePlayerPayload(msg)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, err.Error())
	}

	if err = that.gameUseCase.EndSession(ctx, payloadReq.Player.ID); err != nil {
		return that.sendUseCaseError(bufrw, msg.Action, err)
	}

	return that.sendMessage(bufrw, msg.Action, Payload{})
}

func decodePayload(msg *Message) (Payload, error) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, errors.New("malformed payload")
	}

	return payload, nil
}

func decodePlayerPayload(msg *Message) (Payload, error) {
	payload, err := decodePayload(msg)
	if err != nil {
		return payload, err
	}

	if payload.Player == nil || payload.Player.ID == "" {
		return payload, errors.New("player is required")
	}

	return payload, nil
}

// sendUseCaseError - reports a use case failure, hiding storage details.
func (that *Server) sendUseCaseError(bufrw *bufio.ReadWriter, action string, err error) error {
	switch {
	case errors.Is(err, apperror.ErrPlayerNotFound):
		return that.sendErrorResponse(bufrw, action, apperror.ErrPlayerNotFound.Error())
	case errors.Is(err, apperror.ErrGameNotFound):
		return that.sendErrorResponse(bufrw, action, apperror.ErrGameNotFound.Error())
	}

	that.logger.Error("use case failed", "action", action, "error", err)

	return that.sendErrorResponse(bufrw, action, "internal error")
}

func (that *Server) sendErrorResponse(bufrw *bufio.ReadWriter, action, errorMsg string) error {
	if err := that.sendMessage(bufrw, action, Payload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
