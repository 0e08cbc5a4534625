package dto

// DecisionAction is the reviewer verdict on a single record
type DecisionAction string

const (
	ActionApprove DecisionAction = "approve"
	ActionReject  DecisionAction = "reject"
)

// DecisionRequest asks for a single approval decision
type DecisionRequest struct {
	EntryType string         `json:"entry_type" binding:"required" example:"Conference"`
	ID        int64          `json:"id" binding:"required" example:"42"`
	Action    DecisionAction `json:"action" binding:"required,oneof=approve reject" example:"approve"`
}

// BulkDecisionRequest asks for several independent decisions in one call
type BulkDecisionRequest struct {
	Decisions []DecisionRequest `json:"decisions" binding:"required,min=1,dive"`
}

// DecisionFailure describes one failed entry of a bulk decision
type DecisionFailure struct {
	EntryType string `json:"entry_type" example:"Patent"`
	ID        int64  `json:"id" example:"42"`
	Error     string `json:"error" example:"academic record not found"`
}

// BulkDecisionResult is the best-effort summary of a bulk decision.
// Failed entries can be retried individually; succeeded ones must not be.
type BulkDecisionResult struct {
	Success  int               `json:"success" example:"2"`
	Failed   int               `json:"failed" example:"1"`
	Failures []DecisionFailure `json:"failures,omitempty"`
}
