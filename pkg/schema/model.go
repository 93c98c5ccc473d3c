package schema

import "encoding/json"

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Model is a transcription model offered by a remote service
type Model struct {
	Id   string `json:"id" writer:",width:30"`
	Path string `json:"path,omitempty" writer:",width:20"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
