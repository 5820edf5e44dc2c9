// Package openai implements the translator boundary with an OpenAI
// chat-completions call.
package openai

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/schar1067/Payments-assistant-bot/internal/core"
	"github.com/schar1067/Payments-assistant-bot/internal/translator"
)

const systemPrompt = `You are a Colombian business assistant. Convert user messages into structured commands.
Available commands:
1. add_payment: Register a payment to someone
2. add_debt: Register a debt
3. query_payments: Check payment history, supports time and recipient filters
4. query_debts: Check pending debts

IMPORTANT:
- For payments and debts, you MUST extract the reason or concept from the message and include it in the metadata field.
- Look for words after "por", "para", or any description of why the payment/debt exists.
- For dates, recognize words like "ayer", "hoy", "anteayer" and keep them as-is in the date field.
- Respond with a single JSON object and nothing else.

Required fields for add_payment:
- recipient: The person receiving the payment
- amount: The amount in pesos (convert text numbers to digits)
- metadata: REQUIRED - The reason for the payment (what it was for)
- date: Optional - relative date words like 'ayer', 'hoy'

Required fields for add_debt:
- debtor: The person involved in the debt
- amount: The amount in pesos (convert text numbers to digits)
- metadata: REQUIRED - The reason for the debt (what it was for)
- date: Optional - relative date words like 'ayer', 'hoy'

For query_payments and query_debts:
- recipient (or debtor): Optional - Filter by specific person
- time_frame: Optional - "today", "yesterday", "week", "month", "year"
Both filters can be combined.

Examples:
User: "Pagué 50 mil pesos a Juan ayer por el almuerzo"
Output: {"command": "add_payment", "params": {"recipient": "Juan", "amount": 50000, "metadata": "almuerzo", "date": "ayer"}}

User: "Dame los pagos a Simon de ayer"
Output: {"command": "query_payments", "params": {"recipient": "Simon", "time_frame": "yesterday"}}`

type Translator struct {
	client *openai.Client
	model  string
}

func New(apiKey, model string) *Translator {
	return &Translator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Translate implements translator.Translator. A reply the decoder rejects
// is reported as "no command" rather than an error; only the model call
// itself can fail.
func (t *Translator) Translate(ctx context.Context, text string) (*core.Command, error) {
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       t.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, nil
	}

	raw := resp.Choices[0].Message.Content
	cmd := translator.Decode(raw)
	if cmd == nil {
		slog.WarnContext(ctx, "model reply did not decode to a command", "model", t.model)
	}
	return cmd, nil
}
