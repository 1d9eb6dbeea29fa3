package scheduler

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TaskWarmRecentContacts = "salestips.warm_recent"

const TaskWarmContact = "salestips.warm_contact"

// WarmRecentContactsPayload bounds a periodic warmup run. A zero lookback
// falls back to the worker's configured window.
type WarmRecentContactsPayload struct {
	LookbackSeconds int64 `json:"lookbackSeconds,omitempty"`
}

type WarmContactPayload struct {
	ContactID      string `json:"contactId"`
	OrganizationID string `json:"organizationId"`
}

func (p WarmContactPayload) ids() (contactID, organizationID uuid.UUID, err error) {
	contactID, err = uuid.Parse(p.ContactID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid contact id %q: %w", p.ContactID, err)
	}
	organizationID, err = uuid.Parse(p.OrganizationID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid organization id %q: %w", p.OrganizationID, err)
	}
	return contactID, organizationID, nil
}

func NewWarmRecentContactsTask(payload WarmRecentContactsPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskWarmRecentContacts, data), nil
}

func ParseWarmRecentContactsPayload(task *asynq.Task) (WarmRecentContactsPayload, error) {
	var payload WarmRecentContactsPayload
	if len(task.Payload()) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return WarmRecentContactsPayload{}, err
	}
	return payload, nil
}

func NewWarmContactTask(payload WarmContactPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskWarmContact, data), nil
}

func ParseWarmContactPayload(task *asynq.Task) (WarmContactPayload, error) {
	var payload WarmContactPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return WarmContactPayload{}, err
	}
	return payload, nil
}
