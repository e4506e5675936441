package v1

import (
	"fmt"

	"github.com/pocketdiary/backend/internal/models"
)

// MatchRuleEditable represents all user configurable parameters
type MatchRuleEditable struct {
	Priority uint   `json:"priority" example:"1" default:"0"` // Lower values are applied first
	Match    string `json:"match" example:"REWE*"`            // Glob pattern matched against the expense description
	Category string `json:"category" example:"Food"`          // Category the rule assigns
}

func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		Priority: editable.Priority,
		Match:    editable.Match,
		Category: editable.Category,
	}
}

type MatchRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/match-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The match rule itself
}

type MatchRule struct {
	models.DefaultModel
	MatchRuleEditable
	Links MatchRuleLinks `json:"links"`
}

func newMatchRule(url string, model models.MatchRule) MatchRule {
	return MatchRule{
		DefaultModel: model.DefaultModel,
		MatchRuleEditable: MatchRuleEditable{
			Priority: model.Priority,
			Match:    model.Match,
			Category: model.Category,
		},
		Links: MatchRuleLinks{
			Self: fmt.Sprintf("%s/v1/match-rules/%s", url, model.ID),
		},
	}
}

type MatchRuleListResponse struct {
	Data  []MatchRule `json:"data"`                                                          // List of match rules
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MatchRuleCreateResponse struct {
	Data  []MatchRuleResponse `json:"data"`                                                          // List of the created match rules or their respective error
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *MatchRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, MatchRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MatchRuleResponse struct {
	Data  *MatchRule `json:"data"`                                                          // Data for the match rule
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
