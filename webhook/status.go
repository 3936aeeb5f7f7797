package webhook

import "fmt"

/* Status represents the state of one delivery attempt's audit log
 * Lifecycle: Pending -> Success/Failed, with Retrying as a transient marker
 * on a failed parent while its follow-up sits in the queue
 */
type Status int

const (
	Pending Status = iota + 1
	Success
	Failed
	Retrying
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Success:
		return "success"
	case Failed:
		return "failed"
	case Retrying:
		return "retrying"
	default:
		return "unknown"
	}
}

// NewStatus creates a Status from a string
func NewStatus(str string) Status {
	switch str {
	case "pending":
		return Pending
	case "success":
		return Success
	case "failed":
		return Failed
	case "retrying":
		return Retrying
	default:
		return Pending
	}
}

// Validate checks if the status is valid
func (s Status) Validate() error {
	if s < Pending || s > Retrying {
		return fmt.Errorf("invalid status: %d", s)
	}
	return nil
}

// IsFinal returns true if the status is a terminal state
func (s Status) IsFinal() bool {
	return s == Success || s == Failed
}

/* QueueStatus represents the state of a scheduled retry in the queue
 * Completed means "processed", not "succeeded": the send outcome lives in
 * the chained log, the queue row only tracks the claim lifecycle
 */
type QueueStatus int

const (
	QueuePending QueueStatus = iota + 1
	QueueProcessing
	QueueCompleted
	QueueFailed
)

// String returns the string representation of the queue status
func (s QueueStatus) String() string {
	switch s {
	case QueuePending:
		return "pending"
	case QueueProcessing:
		return "processing"
	case QueueCompleted:
		return "completed"
	case QueueFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// NewQueueStatus creates a QueueStatus from a string
func NewQueueStatus(str string) QueueStatus {
	switch str {
	case "pending":
		return QueuePending
	case "processing":
		return QueueProcessing
	case "completed":
		return QueueCompleted
	case "failed":
		return QueueFailed
	default:
		return QueuePending
	}
}

// Validate checks if the queue status is valid
func (s QueueStatus) Validate() error {
	if s < QueuePending || s > QueueFailed {
		return fmt.Errorf("invalid queue status: %d", s)
	}
	return nil
}
