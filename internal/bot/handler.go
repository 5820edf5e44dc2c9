// Package bot is the Telegram surface: it routes the /start command and
// hands every other private text message to the interpreter.
package bot

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/schar1067/Payments-assistant-bot/internal/interpreter"
	applog "github.com/schar1067/Payments-assistant-bot/internal/log"
)

const welcomeText = `🤖 ¡Hola! Soy tu asistente de negocios.

Puedes pedirme:
- Registrar pagos (incluso de días anteriores)
- Consultar pagos realizados
- Registrar deudas
- Consultar deudas pendientes

Ejemplos:
✍️ "Pagué 50 mil pesos a Juan ayer por el almuerzo"
📊 "Dame los pagos a Simon de esta semana"
💰 "Le debo 100 mil pesos a María por el mercado"
📝 "Qué deudas tengo pendientes"`

type Handler struct {
	api    *tgbotapi.BotAPI
	interp *interpreter.Interpreter
	log    *applog.Logger
}

func NewHandler(api *tgbotapi.BotAPI, interp *interpreter.Interpreter, logger *applog.Logger) *Handler {
	return &Handler{api: api, interp: interp, log: logger.WithComponent("bot")}
}

// HandleUpdate processes one Telegram update. Every path replies with a
// string; nothing propagates to the polling loop.
func (h *Handler) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	msg := upd.Message
	if !msg.Chat.IsPrivate() {
		return
	}
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	if msg.IsCommand() {
		if msg.Command() == "start" {
			h.reply(msg.Chat.ID, welcomeText)
		}
		return
	}

	userID := strconv.FormatInt(msg.From.ID, 10)
	h.log.InfoContext(ctx, "message received", "user_id", userID)

	h.reply(msg.Chat.ID, h.interp.Handle(ctx, userID, text))
}

func (h *Handler) reply(chatID int64, text string) {
	if _, err := h.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.log.Error("send reply failed", "chat_id", chatID, "error", err)
	}
}
