package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cse-discord/verify-bot/pkg/notification"
	"github.com/cse-discord/verify-bot/pkg/verification"
)

type stubRoles struct {
	verified map[string]bool
}

func (s *stubRoles) HasRole(ctx context.Context, userID string) (bool, error) {
	return s.verified[userID], nil
}

func (s *stubRoles) GrantRole(ctx context.Context, userID string) error {
	s.verified[userID] = true
	return nil
}

type handleEnv struct {
	handle Handle
	repo   *verification.InMemoryAttemptRepository
	roles  *stubRoles
	mock   *notification.MockNotifier
}

func newHandleEnv(t *testing.T) *handleEnv {
	t.Helper()

	mock := &notification.MockNotifier{}
	nm := notification.NewNotificationManager()
	nm.RegisterNotifier(notification.EmailSystem, mock)
	err := nm.RegisterNotification(notification.VerificationCodeNotice, notification.EmailSystem, notification.NoticeTemplate{
		Subject: "CSE Discord Verification Code",
		Text:    "Your code is {{.Code}}",
	})
	require.NoError(t, err)

	repo := verification.NewInMemoryAttemptRepository()
	roles := &stubRoles{verified: make(map[string]bool)}
	svc := verification.NewService(repo, verification.NewValidator("osu.edu", "buckeyemail."), roles, nm, nil)

	return &handleEnv{
		handle: NewHandle(svc),
		repo:   repo,
		roles:  roles,
		mock:   mock,
	}
}

func (e *handleEnv) post(t *testing.T, interaction Interaction) InteractionResponse {
	t.Helper()

	body, err := json.Marshal(interaction)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	e.handle.HandleInteraction(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp InteractionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func buttonInteraction(userID, customID string) Interaction {
	return Interaction{
		Type:   InteractionMessageComponent,
		Member: &Member{User: &User{ID: userID, Username: "brutus", Discriminator: "1234"}},
		Data:   &InteractionData{CustomID: customID},
	}
}

func modalInteraction(userID, customID, fieldID, value string) Interaction {
	return Interaction{
		Type:   InteractionModalSubmit,
		Member: &Member{User: &User{ID: userID, Username: "brutus", Discriminator: "1234"}},
		Data: &InteractionData{
			CustomID: customID,
			Components: []ActionRow{{
				Type: componentTypeActionRow,
				Components: []Component{{
					Type:     componentTypeTextInput,
					CustomID: fieldID,
					Value:    value,
				}},
			}},
		},
	}
}

func TestHandlePing(t *testing.T) {
	env := newHandleEnv(t)
	resp := env.post(t, Interaction{Type: InteractionPing})
	assert.Equal(t, ResponsePong, resp.Type)
	assert.Nil(t, resp.Data)
}

func TestHandleMalformedPayload(t *testing.T) {
	env := newHandleEnv(t)
	req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	env.handle.HandleInteraction(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUnknownCustomID(t *testing.T) {
	env := newHandleEnv(t)
	resp := env.post(t, buttonInteraction("u1", "mystery"))
	assert.Equal(t, ResponseChannelMessage, resp.Type)
	assert.Equal(t, msgUnknownInteraction, resp.Data.Content)
	assert.Equal(t, FlagEphemeral, resp.Data.Flags)
}

func TestHandleComponentWithoutData(t *testing.T) {
	env := newHandleEnv(t)
	resp := env.post(t, Interaction{
		Type:   InteractionMessageComponent,
		Member: &Member{User: &User{ID: "u1"}},
	})
	assert.Equal(t, msgUnknownInteraction, resp.Data.Content)
}

func TestHandleEmailButtonOpensModal(t *testing.T) {
	env := newHandleEnv(t)
	resp := env.post(t, buttonInteraction("u1", CustomIDEmailButton))
	assert.Equal(t, ResponseModal, resp.Type)
	assert.Equal(t, CustomIDEmailModal, resp.Data.CustomID)
}

func TestHandleCodeButtonWithoutAttempt(t *testing.T) {
	env := newHandleEnv(t)
	resp := env.post(t, buttonInteraction("u1", CustomIDCodeButton))
	assert.Equal(t, ResponseChannelMessage, resp.Type)
	assert.Equal(t, msgPressEmailFirst, resp.Data.Content)
}

func TestHandleVerificationFlow(t *testing.T) {
	env := newHandleEnv(t)

	// Enter email.
	resp := env.post(t, modalInteraction("u1", CustomIDEmailModal, fieldEmail, "brutus.1@buckeyemail.osu.edu"))
	assert.Equal(t, msgCodeSent, resp.Data.Content)
	assert.Equal(t, FlagEphemeral, resp.Data.Flags)
	require.Len(t, env.mock.SentNotifications, 1)
	code := env.mock.SentNotifications[0].Data["Code"]
	require.Len(t, code, 6)

	// Pressing the email button again offers re-entry with the button row.
	resp = env.post(t, buttonInteraction("u1", CustomIDEmailButton))
	assert.Equal(t, msgReentryOffer, resp.Data.Content)
	require.Len(t, resp.Data.Components, 1)
	assert.Equal(t, CustomIDReentryButton, resp.Data.Components[0].Components[0].CustomID)

	// Re-entry button reopens the email modal.
	resp = env.post(t, buttonInteraction("u1", CustomIDReentryButton))
	assert.Equal(t, ResponseModal, resp.Type)
	assert.Equal(t, CustomIDEmailModal, resp.Data.CustomID)

	// Code button now opens the code modal.
	resp = env.post(t, buttonInteraction("u1", CustomIDCodeButton))
	assert.Equal(t, ResponseModal, resp.Type)
	assert.Equal(t, CustomIDCodeModal, resp.Data.CustomID)

	// Wrong code is rejected.
	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}
	resp = env.post(t, modalInteraction("u1", CustomIDCodeModal, fieldCode, wrong))
	assert.Equal(t, msgCodeMismatch, resp.Data.Content)

	// Correct code completes and grants the role.
	resp = env.post(t, modalInteraction("u1", CustomIDCodeModal, fieldCode, code))
	assert.Equal(t, msgVerified, resp.Data.Content)
	assert.True(t, env.roles.verified["u1"])

	// Every input now short-circuits.
	resp = env.post(t, buttonInteraction("u1", CustomIDEmailButton))
	assert.Equal(t, msgAlreadyVerified, resp.Data.Content)
	resp = env.post(t, modalInteraction("u1", CustomIDCodeModal, fieldCode, code))
	assert.Equal(t, msgAlreadyVerified, resp.Data.Content)
}

func TestHandleInvalidEmail(t *testing.T) {
	env := newHandleEnv(t)
	resp := env.post(t, modalInteraction("u1", CustomIDEmailModal, fieldEmail, "brutus@gmail.com"))
	assert.Equal(t, msgInvalidEmail, resp.Data.Content)
	assert.Empty(t, env.mock.SentNotifications)
}

func TestHandleCodeModalWithoutAttempt(t *testing.T) {
	env := newHandleEnv(t)
	resp := env.post(t, modalInteraction("u1", CustomIDCodeModal, fieldCode, "123456"))
	assert.Equal(t, msgCodeNotFound, resp.Data.Content)
}

func TestInstructionsMessage(t *testing.T) {
	msg := InstructionsMessage("help-channel")

	require.Len(t, msg.Embeds, 1)
	assert.Equal(t, 16711680, msg.Embeds[0].Color)
	assert.Contains(t, msg.Embeds[0].Fields[2].Value, "<#help-channel>")

	require.Len(t, msg.Components, 1)
	buttons := msg.Components[0].Components
	require.Len(t, buttons, 2)
	assert.Equal(t, CustomIDEmailButton, buttons[0].CustomID)
	assert.Equal(t, buttonStyleSuccess, buttons[0].Style)
	assert.Equal(t, CustomIDCodeButton, buttons[1].CustomID)
	assert.Equal(t, buttonStyleSecondary, buttons[1].Style)
}
