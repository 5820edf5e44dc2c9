package amqp

import "testing"

func TestRecordLoggedMessageRoundTrip(t *testing.T) {
	msg := NewRecordLoggedMessage("user-1", "42", "payment", 50000)
	if msg.Timestamp.IsZero() {
		t.Fatal("timestamp should be set")
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}

	got, err := RecordLoggedMessageFromJSON(body)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if got.UserID != "user-1" || got.RecordID != "42" || got.Kind != "payment" || got.Amount != 50000 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestRecordLoggedMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := RecordLoggedMessageFromJSON([]byte("not json")); err == nil {
		t.Fatal("expected error")
	}
}
