package gowhisper

import (
	// Packages
	openai "github.com/mutablelogic/go-subtitle/pkg/client/openai"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type TranslationRequest struct {
	openai.TranslationRequest
	Language *string `json:"language,omitempty"`
}

type TranscriptionRequest struct {
	openai.TranscriptionRequest
	Diarize *bool `json:"diarize,omitempty"`
}

/////////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Events streamed while a model downloads
const (
	DownloadStreamProgressType = "download.progress"
	DownloadStreamErrorType    = "download.error"
	DownloadStreamDoneType     = "download.done"
)
