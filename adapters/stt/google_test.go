package stt_test

import (
	"github.com/IamSagAr28/meditrack-health-app/adapters/stt"
	"github.com/IamSagAr28/meditrack-health-app/domain/repositories"
)

var (
	_ repositories.SpeechToText = &stt.GoogleSpeechToText{}
	_ repositories.SpeechToText = &stt.AssemblyAISpeechToText{}
	_ repositories.SpeechToText = &stt.WhisperSpeechToText{}
	_ repositories.SpeechToText = &stt.MockSpeechToText{}
)
