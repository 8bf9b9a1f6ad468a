// Package api provides the Hugging Face Hub REST API client for Spaces.
package api

import "time"

// Stage is the lifecycle phase of a Space's runtime.
type Stage string

const (
	StageNoAppFile    Stage = "NO_APP_FILE"
	StageBuilding     Stage = "BUILDING"
	StageBuildError   Stage = "BUILD_ERROR"
	StageRunning      Stage = "RUNNING"
	StageRuntimeError Stage = "RUNTIME_ERROR"
	StageStopped      Stage = "STOPPED"
	StagePaused       Stage = "PAUSED"
	StageSleeping     Stage = "SLEEPING"
	StageConfigError  Stage = "CONFIG_ERROR"
	StageDeleting     Stage = "DELETING"
)

// SDK is the application framework a Space is built with.
type SDK string

const (
	SDKGradio    SDK = "gradio"
	SDKStreamlit SDK = "streamlit"
	SDKDocker    SDK = "docker"
	SDKStatic    SDK = "static"
)

// Space is a hosted application on the Hub, identified by owner/name.
type Space struct {
	ID           string   `json:"id"`
	Author       string   `json:"author"`
	SHA          string   `json:"sha,omitempty"`
	Private      bool     `json:"private"`
	Likes        int      `json:"likes"`
	SDK          SDK      `json:"sdk,omitempty"`
	LastModified Time     `json:"lastModified,omitempty"`
	Runtime      *Runtime `json:"runtime,omitempty"`
}

// Visibility returns "private" or "public" for display.
func (s *Space) Visibility() string {
	if s.Private {
		return "private"
	}
	return "public"
}

// Runtime is the live runtime descriptor of a Space.
type Runtime struct {
	Stage     Stage    `json:"stage"`
	Hardware  Hardware `json:"hardware,omitempty"`
	GcTimeout int      `json:"gcTimeout,omitempty"` // sleep time in seconds, 0 = never
}

// Hardware describes the compute tier allocated and requested for a Space.
type Hardware struct {
	Current   string `json:"current,omitempty"`
	Requested string `json:"requested,omitempty"`
}

// User is the authenticated identity returned by whoami.
type User struct {
	Name     string `json:"name"`
	Fullname string `json:"fullname,omitempty"`
	Type     string `json:"type,omitempty"`
}

// Time wraps time.Time for the Hub's date formats.
type Time struct {
	time.Time
}

// UnmarshalJSON parses the Hub's ISO 8601 timestamps.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)

	if s == "null" || s == `""` || s == "" {
		return nil
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		parsed, err = time.Parse("2006-01-02T15:04:05.000Z", s)
		if err != nil {
			return err
		}
	}

	t.Time = parsed
	return nil
}

// MarshalJSON formats time in ISO 8601 format.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}
