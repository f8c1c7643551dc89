package entity

import "strings"

// Stage ids of the CRM default sales pipeline.
const (
	StageAppointmentScheduled  = "appointmentscheduled"
	StageQualifiedToBuy        = "qualifiedtobuy"
	StagePresentationScheduled = "presentationscheduled"
	StageDecisionMakerBoughtIn = "decisionmakerboughtin"
	StageContractSent          = "contractsent"
	StageClosedWon             = "closedwon"
	StageClosedLost            = "closedlost"

	DefaultStage = StageAppointmentScheduled
)

// stageByStatus maps job status labels (lower case) to stage ids.
var stageByStatus = map[string]string{
	"new":           StageAppointmentScheduled,
	"scheduled":     StageQualifiedToBuy,
	"in progress":   StagePresentationScheduled,
	"estimate sent": StageDecisionMakerBoughtIn,
	"invoiced":      StageContractSent,
	"completed":     StageClosedWon,
	"cancelled":     StageClosedLost,
	"canceled":      StageClosedLost,
}

var knownStages = map[string]struct{}{
	StageAppointmentScheduled:  {},
	StageQualifiedToBuy:        {},
	StagePresentationScheduled: {},
	StageDecisionMakerBoughtIn: {},
	StageContractSent:          {},
	StageClosedWon:             {},
	StageClosedLost:            {},
}

// ResolveStage maps a status label to a stage id. Stage ids pass through unchanged,
// anything else falls back to DefaultStage.
func ResolveStage(status string) string {
	status = strings.TrimSpace(status)

	if id, ok := stageByStatus[strings.ToLower(status)]; ok {
		return id
	}

	if _, ok := knownStages[status]; ok || isCustomStageID(status) {
		return status
	}

	return DefaultStage
}

// Custom pipeline stages get numeric ids.
func isCustomStageID(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
