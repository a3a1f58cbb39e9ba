package httpdto

import (
	"time"

	"pulse-chat/internal/domain/message"
)

// AddMessageRequest is the body for POST /addMessage.
type AddMessageRequest struct {
	MessageToAdd MessageDTO `json:"messageToAdd"`
}

// MessageDTO carries the inbound message payload. MsgDateTime stays a
// string here; clients send either RFC 3339 timestamps or bare dates.
type MessageDTO struct {
	Msg         string `json:"msg"`
	MsgFrom     string `json:"msgFrom"`
	MsgDateTime string `json:"msgDateTime"`
}

// Valid reports whether all message fields were sent non-empty.
func (r AddMessageRequest) Valid() bool {
	m := r.MessageToAdd
	return m.Msg != "" && m.MsgFrom != "" && m.MsgDateTime != ""
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// ToDomain builds the domain message, parsing the timestamp.
func (r MessageDTO) ToDomain() (message.Message, error) {
	var (
		ts  time.Time
		err error
	)
	for _, layout := range dateTimeLayouts {
		ts, err = time.Parse(layout, r.MsgDateTime)
		if err == nil {
			break
		}
	}
	if err != nil {
		return message.Message{}, err
	}
	return message.Message{
		Msg:         r.Msg,
		MsgFrom:     r.MsgFrom,
		MsgDateTime: ts,
	}, nil
}
