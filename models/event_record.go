package models

// EventRecord db model of a parsed event signature.
type EventRecord struct {
	ID        uint
	Contract  string
	Name      string
	Signature string
	Topic     string
	Anonymous bool
}

// NewEventRecord builds the db model of event declared by contract.
func NewEventRecord(contract string, event Event) *EventRecord {
	return &EventRecord{
		Contract:  contract,
		Name:      event.Name,
		Signature: event.Signature(),
		Topic:     event.Topic(),
		Anonymous: event.Anonymous,
	}
}
