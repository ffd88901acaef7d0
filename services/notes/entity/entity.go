package entity

import "fmt"

type Upload struct {
	Filename string
	Data     []byte
}

type GenerateNotesRequest struct {
	Upload Upload
	Style  string
}

type GenerateNotesResponse struct {
	Notes string `json:"notes"`
}

type ProcessAudioRequest struct {
	Upload Upload
	Style  string
}

type ProcessAudioResponse struct {
	Notes      string `json:"notes"`
	Transcript string `json:"transcript"`
	Style      string `json:"style"`
}

type StylesResponse struct {
	Styles  []string `json:"styles"`
	Default string   `json:"default"`
}

type Stage string

const (
	StageTranscription Stage = "Transcription"
	StageCompletion    Stage = "Completion"
)

// StageError reports a failed upstream call. Its message is returned to the
// caller as-is.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
