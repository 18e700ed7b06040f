package statuses

// Статусы партии.
const (
	StatusWaitOpponent = "wait_opponent"
	StatusActive       = "active"
	StatusPaused       = "paused"
	StatusScoring      = "scoring"
	StatusCompleted    = "completed"
)

// Причины завершения.
const (
	ReasonNormal      = "normal"
	ReasonResignation = "resignation"
	ReasonTime        = "time"
	ReasonPasses      = "four_passes"
)
