package amqp

import (
	"encoding/json"
	"time"
)

// RecordLoggedMessage is the audit event emitted after a record insert.
// It carries identifiers rather than the full record; a consumer fetches
// details from the store if it needs them.
type RecordLoggedMessage struct {
	UserID    string    `json:"user_id"`
	RecordID  string    `json:"record_id"`
	Kind      string    `json:"kind"`
	Amount    int64     `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

func NewRecordLoggedMessage(userID, recordID, kind string, amount int64) *RecordLoggedMessage {
	return &RecordLoggedMessage{
		UserID:    userID,
		RecordID:  recordID,
		Kind:      kind,
		Amount:    amount,
		Timestamp: time.Now(),
	}
}

func (m *RecordLoggedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func RecordLoggedMessageFromJSON(data []byte) (*RecordLoggedMessage, error) {
	var msg RecordLoggedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
