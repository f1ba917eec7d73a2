package discord

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/cse-discord/verify-bot/pkg/verification"
)

// Handle serves the interactions webhook: it classifies inbound button and
// modal events into verification transitions and renders the outcomes as
// interaction responses. All user-visible messages are ephemeral.
type Handle struct {
	svc *verification.Service
}

// NewHandle creates a new interactions handler.
func NewHandle(svc *verification.Service) Handle {
	return Handle{svc: svc}
}

// HandleInteraction handles POST /interactions.
func (h Handle) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	var interaction Interaction
	if err := json.NewDecoder(r.Body).Decode(&interaction); err != nil {
		slog.Error("Failed to decode interaction", "err", err)
		http.Error(w, "invalid interaction payload", http.StatusBadRequest)
		return
	}

	switch interaction.Type {
	case InteractionPing:
		render.JSON(w, r, InteractionResponse{Type: ResponsePong})
	case InteractionMessageComponent:
		render.JSON(w, r, h.handleButton(r.Context(), interaction))
	case InteractionModalSubmit:
		render.JSON(w, r, h.handleModalSubmit(r.Context(), interaction))
	default:
		render.JSON(w, r, ephemeralMessage(msgUnknownInteraction))
	}
}

func (h Handle) handleButton(ctx context.Context, interaction Interaction) InteractionResponse {
	userID := interaction.UserID()
	if interaction.Data == nil {
		return ephemeralMessage(msgUnknownInteraction)
	}

	switch interaction.Data.CustomID {
	case CustomIDEmailButton:
		return renderOutcome(h.svc.RequestEmailEntry(ctx, userID))
	case CustomIDReentryButton:
		return renderOutcome(h.svc.RequestReentry(ctx, userID))
	case CustomIDCodeButton:
		out := h.svc.RequestCodeEntry(ctx, userID)
		if out == verification.OutcomeNoPendingAttempt {
			return ephemeralMessage(msgPressEmailFirst)
		}
		return renderOutcome(out)
	default:
		slog.Warn("Unknown component interaction", "custom_id", interaction.Data.CustomID, "user_id", userID)
		return ephemeralMessage(msgUnknownInteraction)
	}
}

func (h Handle) handleModalSubmit(ctx context.Context, interaction Interaction) InteractionResponse {
	userID := interaction.UserID()
	if interaction.Data == nil {
		return ephemeralMessage(msgUnknownInteraction)
	}

	switch interaction.Data.CustomID {
	case CustomIDEmailModal:
		return renderOutcome(h.svc.SubmitEmail(ctx, userID, interaction.FieldValue(fieldEmail)))
	case CustomIDCodeModal:
		out := h.svc.SubmitCode(ctx, userID, interaction.DisplayName(), interaction.FieldValue(fieldCode))
		if out == verification.OutcomeNoPendingAttempt {
			return ephemeralMessage(msgCodeNotFound)
		}
		return renderOutcome(out)
	default:
		slog.Warn("Unknown modal interaction", "custom_id", interaction.Data.CustomID, "user_id", userID)
		return ephemeralMessage(msgUnknownInteraction)
	}
}

// renderOutcome maps a transition outcome to its interaction response.
func renderOutcome(out verification.Outcome) InteractionResponse {
	switch out {
	case verification.OutcomeAlreadyVerified:
		return ephemeralMessage(msgAlreadyVerified)
	case verification.OutcomeShowEmailForm:
		return EmailModal()
	case verification.OutcomeReentryOffer:
		resp := ephemeralMessage(msgReentryOffer)
		resp.Data.Components = reentryComponents()
		return resp
	case verification.OutcomeInvalidEmail:
		return ephemeralMessage(msgInvalidEmail)
	case verification.OutcomeCodeSent:
		return ephemeralMessage(msgCodeSent)
	case verification.OutcomeShowCodeForm:
		return CodeModal()
	case verification.OutcomeNoPendingAttempt:
		return ephemeralMessage(msgPressEmailFirst)
	case verification.OutcomeCodeMismatch:
		return ephemeralMessage(msgCodeMismatch)
	case verification.OutcomeComplete:
		return ephemeralMessage(msgVerified)
	default:
		return ephemeralMessage(msgInternalError)
	}
}
