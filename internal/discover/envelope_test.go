package discover

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetscout/jetscout/internal/recent"
)

func TestEnvelope_SuccessShape(t *testing.T) {
	env := Envelope{
		Kind: KindSuccess,
		Projects: []ProductProjects{
			{Key: "idea", Projects: []recent.Project{{
				ID:      "jetbrains-search-provider-idea-/home/u/src/app",
				Name:    "app",
				Path:    "~/src/app",
				AbsPath: "/home/u/src/app",
			}}},
			{Key: "goland"},
		},
	}

	data, err := json.Marshal(env)
	require.NoError(t, err)

	// Pairs encode as two-element arrays; empty lists encode as [], not null.
	assert.JSONEq(t, `{
		"kind": "success",
		"projects": [
			["idea", [{
				"id": "jetbrains-search-provider-idea-/home/u/src/app",
				"name": "app",
				"path": "~/src/app",
				"abspath": "/home/u/src/app"
			}]],
			["goland", []]
		]
	}`, string(data))
}

func TestEnvelope_ErrorShape(t *testing.T) {
	env := Envelope{Kind: KindError, Message: "boom", Traceback: "trace line"}

	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"error","message":"boom","traceback":"trace line"}`, string(data))
	assert.NotContains(t, string(data), "projects")
}

func TestEnvelope_RoundTrip(t *testing.T) {
	in := Envelope{
		Kind: KindSuccess,
		Projects: []ProductProjects{
			{Key: "rider", Projects: []recent.Project{{ID: "x", Name: "n", Path: "p", AbsPath: "a"}}},
		},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Envelope
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, KindSuccess, out.Kind)
	require.Len(t, out.Projects, 1)
	assert.Equal(t, "rider", out.Projects[0].Key)
	assert.Equal(t, in.Projects[0].Projects, out.Projects[0].Projects)
}
