package interpreter

import (
	"fmt"
	"strings"

	"github.com/schar1067/Payments-assistant-bot/internal/core"
)

// Fixed user-facing messages shared by both record kinds.
const (
	MsgNotUnderstood = "❌ No pude entender el comando. Por favor intenta de nuevo."
	MsgUnsupported   = "❌ Comando no soportado"
	MsgIndexRequired = "❌ Se requiere crear un índice en la base de datos para esta consulta. " +
		"Por favor, contacta al administrador del sistema."
)

type messageSet struct {
	added       string
	addFailed   string
	empty       string
	header      string
	queryFailed string
}

var (
	paymentMessages = messageSet{
		added:       "✅ Pago registrado:",
		addFailed:   "❌ Error al registrar el pago. Por favor intenta de nuevo.",
		empty:       "No se encontraron pagos para los criterios especificados.",
		header:      "📊 Historial de pagos:",
		queryFailed: "❌ Error al consultar los pagos. Por favor intenta de nuevo.",
	}
	debtMessages = messageSet{
		added:       "✅ Deuda registrada:",
		addFailed:   "❌ Error al registrar la deuda. Por favor intenta de nuevo.",
		empty:       "No se encontraron deudas para los criterios especificados.",
		header:      "📊 Historial de deudas:",
		queryFailed: "❌ Error al consultar las deudas. Por favor intenta de nuevo.",
	}
)

func messagesFor(kind core.RecordKind) messageSet {
	if kind == core.KindDebt {
		return debtMessages
	}
	return paymentMessages
}

// formatConfirmation renders the reply to a successful insert: amount and
// counterparty, then the optional concept and the civil date.
func formatConfirmation(kind core.RecordKind, r core.Record) string {
	var b strings.Builder
	b.WriteString(messagesFor(kind).added)
	fmt.Fprintf(&b, "\n💰 %s COP a %s", core.FormatAmount(r.Amount), r.Counterparty)
	if r.Metadata != "" {
		fmt.Fprintf(&b, "\n📝 Concepto: %s", r.Metadata)
	}
	if r.CivilDate != "" {
		fmt.Fprintf(&b, "\n📅 Fecha: %s", r.CivilDate)
	}
	return b.String()
}

// formatHistory renders a query result: one line per record in the order
// received, then the total over everything listed. Rendering the same
// sequence twice yields identical output.
func formatHistory(kind core.RecordKind, records []core.Record) string {
	m := messagesFor(kind)
	if len(records) == 0 {
		return m.empty
	}

	var b strings.Builder
	b.WriteString(m.header)
	b.WriteString("\n\n")

	for _, r := range records {
		fmt.Fprintf(&b, "💰 %s COP a %s", core.FormatAmount(r.Amount), r.Counterparty)
		if r.Metadata != "" {
			fmt.Fprintf(&b, " (%s)", r.Metadata)
		}
		if r.CivilDate != "" {
			fmt.Fprintf(&b, " 📅 %s", r.CivilDate)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n💰 Total: %s COP", core.FormatAmount(core.SumAmounts(records)))
	return b.String()
}
