package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pocketdiary/backend/internal/controllers/v1"
	"github.com/pocketdiary/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMatchRulesOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No match rule with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Match rule exists", createTestMatchRule(suite.T(), v1.MatchRuleEditable{Match: "REWE*", Category: "Food"}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/match-rules", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesCreate() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		Priority: 1,
		Match:    "REWE*",
		Category: "Food",
	})

	assert.Equal(suite.T(), "REWE*", rule.Data.Match)
	assert.Equal(suite.T(), "Food", rule.Data.Category)
	assert.NotEmpty(suite.T(), rule.Data.Links.Self)
}

// The list is returned in application order so clients can show and edit the
// rules the way they will be applied.
func (suite *TestSuiteStandard) TestMatchRulesGetOrdered() {
	third := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 5, Match: "Zulu*", Category: "Shopping"})
	first := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "Alpha*", Category: "Food"})
	second := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "Bravo*", Category: "Food"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/match-rules", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rules v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &r, &rules)

	require.Len(suite.T(), rules.Data, 3)
	assert.Equal(suite.T(), first.Data.ID, rules.Data[0].ID)
	assert.Equal(suite.T(), second.Data.ID, rules.Data[1].ID)
	assert.Equal(suite.T(), third.Data.ID, rules.Data[2].ID)
}

func (suite *TestSuiteStandard) TestMatchRulesUpdate() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "REWE*", Category: "Food"})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{
		"priority": 3,
		"category": "Shopping",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), uint(3), response.Data.Priority)
	assert.Equal(suite.T(), "Shopping", response.Data.Category)
	assert.Equal(suite.T(), "REWE*", response.Data.Match, "fields not in the request must not change")
}

func (suite *TestSuiteStandard) TestMatchRulesDelete() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Match: "REWE*", Category: "Food"})

	r := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMatchRulesCreateFails() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken body", `[{ "match": 2 }]`, http.StatusBadRequest},
		{"No body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/match-rules", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
