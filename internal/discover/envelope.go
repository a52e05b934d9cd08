package discover

import (
	"encoding/json"
	"fmt"

	"github.com/jetscout/jetscout/internal/recent"
)

// Envelope kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
)

// ProductProjects pairs a catalog key with its resolved recent projects.
// On the wire it is a two-element array, [key, [project...]].
type ProductProjects struct {
	Key      string
	Projects []recent.Project
}

// MarshalJSON encodes the pair as [key, [project...]]. A nil project list
// encodes as [], never null: the consumer indexes into it unconditionally.
func (p ProductProjects) MarshalJSON() ([]byte, error) {
	projects := p.Projects
	if projects == nil {
		projects = []recent.Project{}
	}
	return json.Marshal([2]any{p.Key, projects})
}

// UnmarshalJSON decodes the [key, [project...]] pair form.
func (p *ProductProjects) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("product pair: %w", err)
	}
	if err := json.Unmarshal(pair[0], &p.Key); err != nil {
		return fmt.Errorf("product pair key: %w", err)
	}
	if err := json.Unmarshal(pair[1], &p.Projects); err != nil {
		return fmt.Errorf("product pair projects: %w", err)
	}
	return nil
}

// Envelope is the single top-level payload of one run: either the success
// variant carrying one pair per catalog product in catalog order, or the
// error variant carrying a message and a diagnostic trace. The JSON shape is
// a cross-boundary contract with the launcher integration.
type Envelope struct {
	Kind      string            `json:"kind"`
	Projects  []ProductProjects `json:"projects,omitempty"`
	Message   string            `json:"message,omitempty"`
	Traceback string            `json:"traceback,omitempty"`
}

// MarshalJSON emits exactly the fields of the active variant.
func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.Kind == KindError {
		return json.Marshal(struct {
			Kind      string `json:"kind"`
			Message   string `json:"message"`
			Traceback string `json:"traceback"`
		}{e.Kind, e.Message, e.Traceback})
	}
	projects := e.Projects
	if projects == nil {
		projects = []ProductProjects{}
	}
	return json.Marshal(struct {
		Kind     string            `json:"kind"`
		Projects []ProductProjects `json:"projects"`
	}{e.Kind, projects})
}

// UnmarshalJSON accepts either variant.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind      string            `json:"kind"`
		Projects  []ProductProjects `json:"projects"`
		Message   string            `json:"message"`
		Traceback string            `json:"traceback"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Envelope{Kind: raw.Kind, Projects: raw.Projects, Message: raw.Message, Traceback: raw.Traceback}
	return nil
}
