package remote

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
	"github.com/rocketscienceinc/santorini-backend/internal/entity"
)

type MessageType string

const (
	TypeHello             MessageType = "hello"
	TypeWelcome           MessageType = "welcome"
	TypePlacementRequest  MessageType = "placement:request"
	TypePlacementResponse MessageType = "placement:response"
	TypeTurnRequest       MessageType = "turn:request"
	TypeTurnResponse      MessageType = "turn:response"
	TypeNotify            MessageType = "game:notify"
	TypeFinish            MessageType = "game:finish"
	TypeError             MessageType = "error"
	TypeBye               MessageType = "bye"
)

// Envelope - every message on the wire. Responses repeat the seq of their request.
type Envelope struct {
	Type    MessageType     `json:"type"`
	Seq     uint64          `json:"seq,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type HelloPayload struct {
	Name string `json:"name"`
}

type WelcomePayload struct {
	PlayerID entity.PlayerID `json:"player_id"`
}

type PlacementRequestPayload struct {
	Player entity.PlayerID     `json:"player"`
	Placed []entity.InitWorker `json:"placed"`
}

type TurnRequestPayload struct {
	View entity.GameView `json:"view"`
}

type NotifyPayload struct {
	View entity.GameView `json:"view"`
}

type FinishPayload struct {
	Outcome entity.GameOutcome `json:"outcome"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func NewEnvelope(typ MessageType, seq uint64, payload any) (Envelope, error) {
	envelope := Envelope{Type: typ, Seq: seq}

	if payload == nil {
		return envelope, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to marshal %s payload: %w", typ, err)
	}

	envelope.Payload = raw

	return envelope, nil
}

// Decode - unmarshals the payload; a malformed payload is a protocol violation.
func (that Envelope) Decode(v any) error {
	if len(that.Payload) == 0 {
		return fmt.Errorf("%w: %s without payload", apperror.ErrProtocolViolation, that.Type)
	}

	if err := json.Unmarshal(that.Payload, v); err != nil {
		return fmt.Errorf("%w: bad %s payload: %w", apperror.ErrProtocolViolation, that.Type, err)
	}

	return nil
}

func decodeEnvelope(raw []byte) (Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Envelope{}, fmt.Errorf("%w: failed to unmarshal message: %w", apperror.ErrProtocolViolation, err)
	}

	if envelope.Type == "" {
		return Envelope{}, fmt.Errorf("%w: message without type", apperror.ErrProtocolViolation)
	}

	return envelope, nil
}

func encodeEnvelope(envelope Envelope) ([]byte, error) {
	raw, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return raw, nil
}
