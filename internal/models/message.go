// ABOUTME: InfoMessage summary produced for each training.
// ABOUTME: Renders the fixed one-line report with three decimal places.
package models

import (
	"fmt"

	"github.com/google/uuid"
)

const messageTemplate = "Тип тренировки: %s;" +
	" Длительность: %.3f ч.;" +
	" Дистанция: %.3f км;" +
	" Ср. скорость: %.3f км/ч;" +
	" Потрачено ккал: %.3f."

// InfoMessage is the computed summary of one training.
type InfoMessage struct {
	TrainingType string  `json:"training_type" yaml:"training_type"`
	Duration     float64 `json:"duration" yaml:"duration"`
	Distance     float64 `json:"distance" yaml:"distance"`
	Speed        float64 `json:"speed" yaml:"speed"`
	Calories     float64 `json:"calories" yaml:"calories"`
}

// Message renders the summary line.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageTemplate, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// Summary pairs an InfoMessage with the package it was computed from.
type Summary struct {
	ID   uuid.UUID
	Code string
	Info InfoMessage
}

// ShortID returns the 8-character ID prefix used in listings and logs.
func (s Summary) ShortID() string {
	return s.ID.String()[:8]
}
