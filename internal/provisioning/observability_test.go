package provisioning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsoleObserverFormatEvent(t *testing.T) {
	obs := NewConsoleObserver()

	tests := []struct {
		name     string
		event    Event
		expected string
	}{
		{
			name:     "type only",
			event:    Event{Type: EventResourceCreated},
			expected: "resource.created",
		},
		{
			name:     "with resource",
			event:    Event{Type: EventResourceExists, Resource: "site-a"},
			expected: "resource.exists resource=site-a",
		},
		{
			name:     "with message",
			event:    Event{Type: EventValidationWarning, Message: "no centers given"},
			expected: "validation.warning no centers given",
		},
		{
			name: "fields sorted",
			event: Event{
				Type:     EventResourceCreating,
				Resource: "fw://site-a/accepted",
				Fields:   map[string]string{"label": "ADRC Accepted", "group": "site-a"},
			},
			expected: "resource.creating resource=fw://site-a/accepted group=site-a label=ADRC Accepted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, obs.formatEvent(tt.event))
		})
	}
}

func TestConsoleObserverWithFields(t *testing.T) {
	obs := NewConsoleObserver()
	scoped, ok := obs.WithFields(map[string]string{"project": "ADRC"}).(*ConsoleObserver)
	assert.True(t, ok)

	// Context fields are merged into events that lack them.
	event := Event{Type: EventResourceCreated, Timestamp: time.Now(), Fields: map[string]string{}}
	for k, v := range scoped.contextFields {
		event.Fields[k] = v
	}
	assert.Equal(t, "ADRC", event.Fields["project"])

	// The original observer is unchanged.
	assert.Empty(t, obs.contextFields)
}
