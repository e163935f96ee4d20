package valueobjects

import "fmt"

// Sender identifies which side of a conversation authored a thread
// message.
type Sender string

const (
	SenderClient   Sender = "client"
	SenderProvider Sender = "provider"
)

func (s Sender) String() string {
	return string(s)
}

func (s Sender) IsValid() bool {
	return s == SenderClient || s == SenderProvider
}

func NewSender(s string) (Sender, error) {
	snd := Sender(s)
	if !snd.IsValid() {
		return "", fmt.Errorf("invalid sender: %s", s)
	}
	return snd, nil
}
