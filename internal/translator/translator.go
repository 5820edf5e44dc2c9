// Package translator defines the boundary to the language model that turns
// free text into structured commands, plus the wire decoding shared by its
// implementations. The contract is deliberately soft: any failure to produce
// a usable command yields no command, never a user-visible fault, because
// producing a valid command is the translator's responsibility and the
// interpreter does not re-validate.
package translator

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/schar1067/Payments-assistant-bot/internal/core"
)

// Translator converts one user message into a structured command.
//
// A nil command with a nil error means the text could not be understood.
// A non-nil error reports a transport fault (the model call itself failed);
// callers present both the same way but log the error.
type Translator interface {
	Translate(ctx context.Context, text string) (*core.Command, error)
}

// Func adapts a plain function to the Translator interface. Tests use this
// to substitute fixture commands for the model call.
type Func func(ctx context.Context, text string) (*core.Command, error)

func (f Func) Translate(ctx context.Context, text string) (*core.Command, error) {
	return f(ctx, text)
}

type wireParams struct {
	Recipient string `json:"recipient"`
	Debtor    string `json:"debtor"`
	Amount    int64  `json:"amount"`
	Metadata  string `json:"metadata"`
	Date      string `json:"date"`
	TimeFrame string `json:"time_frame"`
}

type wireCommand struct {
	Command string     `json:"command"`
	Params  wireParams `json:"params"`
}

// Decode parses the model's JSON reply and checks the per-kind required
// fields. Malformed JSON, an unknown kind, or a missing required field all
// yield nil: a command that would fail downstream is no command at all.
func Decode(raw string) *core.Command {
	var w wireCommand
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil
	}

	cmd := &core.Command{
		Kind: core.CommandKind(w.Command),
		Params: core.CommandParams{
			Recipient: strings.TrimSpace(w.Params.Recipient),
			Debtor:    strings.TrimSpace(w.Params.Debtor),
			Amount:    w.Params.Amount,
			Metadata:  strings.TrimSpace(w.Params.Metadata),
			Date:      strings.TrimSpace(w.Params.Date),
			TimeFrame: core.TimeFrame(strings.TrimSpace(w.Params.TimeFrame)),
		},
	}

	switch cmd.Kind {
	case core.AddPayment, core.AddDebt:
		if cmd.Params.Counterparty() == "" || cmd.Params.Amount <= 0 {
			return nil
		}
	case core.QueryPayments, core.QueryDebts:
		// Both filters are optional.
	default:
		return nil
	}
	return cmd
}
