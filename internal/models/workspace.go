package models

import "time"

// Operation names one user-triggered action of the study assistant.
type Operation string

const (
	OperationFacts          Operation = "facts"
	OperationSummary        Operation = "summary"
	OperationFactOfTheDay   Operation = "fact_of_the_day"
	OperationCurrentAffairs Operation = "current_affairs"
	OperationExamInfo       Operation = "exam_info"
)

// Operations lists every operation in display order.
var Operations = []Operation{
	OperationFactOfTheDay,
	OperationFacts,
	OperationSummary,
	OperationCurrentAffairs,
	OperationExamInfo,
}

type OperationStatus string

const (
	StatusIdle    OperationStatus = "idle"
	StatusLoading OperationStatus = "loading"
	StatusSuccess OperationStatus = "success"
	StatusFailed  OperationStatus = "failed"
)

type OperationState struct {
	Operation  Operation       `json:"operation"`
	Status     OperationStatus `json:"status"`
	Generation uint64          `json:"generation"`
	Message    string          `json:"message,omitempty"`
	Result     interface{}     `json:"result,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type Workspace struct {
	ClientID   string                       `json:"client_id"`
	Language   Language                     `json:"language"`
	Operations map[Operation]OperationState `json:"operations"`
}

// WebSocket message types
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
