package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/pocketdiary/backend/internal/controllers/v1"
	"github.com/pocketdiary/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSettingsGetDefaults() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.False(suite.T(), response.Data.Configured, "a fresh database is not configured")
	assert.Equal(suite.T(), 1, response.Data.MonthStartDay)
	assert.Equal(suite.T(), "22:00", response.Data.SettlementTime)
	assert.NotEmpty(suite.T(), response.Data.FlexibleCategories)
	assert.NotEmpty(suite.T(), response.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestSettingsUpdate() {
	response := updateTestSettings(suite.T(), v1.SettingsEditable{
		TotalBudget:        decimal.NewFromInt(3800),
		FixedBudget:        decimal.NewFromInt(450),
		SavingsGoal:        decimal.NewFromInt(250),
		MonthStartDay:      5,
		SettlementTime:     "21:30",
		FixedCategories:    []string{"Rent"},
		FlexibleCategories: []string{"Food", "Transport"},
		IncomeCategories:   []string{"Salary"},
	})

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Configured)
	assert.Equal(suite.T(), 5, response.Data.MonthStartDay)
	assert.Equal(suite.T(), "21:30", response.Data.SettlementTime)

	// The replacement is persisted
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var reloaded v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &reloaded)
	assert.True(suite.T(), decimal.NewFromInt(3800).Equal(reloaded.Data.TotalBudget))
	assert.Equal(suite.T(), []string{"Food", "Transport"}, []string(reloaded.Data.FlexibleCategories))
}

func (suite *TestSuiteStandard) TestSettingsUpdateFails() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Negative budget", `{ "totalBudget": -100 }`, http.StatusBadRequest},
		{"Invalid settlement time", `{ "settlementTime": "9 in the evening" }`, http.StatusBadRequest},
		{"Broken JSON", `{ "totalBudget": `, http.StatusBadRequest},
		{"No body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, "http://example.com/v1/settings", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestSettingsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, PUT", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCategoryClassOptions() {
	tests := []struct {
		name   string
		class  string
		status int
	}{
		{"Fixed", "fixed", http.StatusNoContent},
		{"Flexible", "flexible", http.StatusNoContent},
		{"Income", "income", http.StatusNoContent},
		{"Unknown class", "savings", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/settings/categories/%s", tt.class), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "POST, PATCH, DELETE, PUT", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryAdd() {
	_ = updateTestSettings(suite.T(), v1.SettingsEditable{
		FlexibleCategories: []string{"Food"},
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/settings/categories/flexible", v1.CategoryAddRequest{Name: "Pets"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CategorySetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), []string{"Food", "Pets"}, response.Data, "new categories must be appended at the end")
}

func (suite *TestSuiteStandard) TestCategoryAddFails() {
	_ = updateTestSettings(suite.T(), v1.SettingsEditable{
		FlexibleCategories: []string{"Food"},
	})

	tests := []struct {
		name   string
		class  string
		body   any
		status int
	}{
		{"Duplicate name", "flexible", v1.CategoryAddRequest{Name: "Food"}, http.StatusBadRequest},
		{"Empty name", "flexible", v1.CategoryAddRequest{Name: "  "}, http.StatusBadRequest},
		{"Unknown class", "savings", v1.CategoryAddRequest{Name: "Pets"}, http.StatusBadRequest},
		{"No body", "flexible", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/settings/categories/%s", tt.class), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryRename() {
	_ = updateTestSettings(suite.T(), v1.SettingsEditable{
		FlexibleCategories: []string{"Food", "Transport"},
	})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings/categories/flexible", v1.CategoryRenameRequest{
		Name:    "Food",
		NewName: "Eating out",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategorySetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), []string{"Eating out", "Transport"}, response.Data, "renaming must keep the position")
}

func (suite *TestSuiteStandard) TestCategoryRenameFails() {
	_ = updateTestSettings(suite.T(), v1.SettingsEditable{
		FlexibleCategories: []string{"Food"},
	})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings/categories/flexible", v1.CategoryRenameRequest{
		Name:    "Pets",
		NewName: "Animals",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryRemove() {
	_ = updateTestSettings(suite.T(), v1.SettingsEditable{
		FlexibleCategories: []string{"Food", "Transport"},
	})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/settings/categories/flexible?name=Food", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategorySetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), []string{"Transport"}, response.Data)

	// Removing it again fails
	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/settings/categories/flexible?name=Food", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryReorder() {
	_ = updateTestSettings(suite.T(), v1.SettingsEditable{
		FlexibleCategories: []string{"Food", "Transport", "Shopping"},
	})

	tests := []struct {
		name   string
		names  []string
		status int
	}{
		{"Valid permutation", []string{"Shopping", "Food", "Transport"}, http.StatusOK},
		{"Missing category", []string{"Shopping", "Food"}, http.StatusBadRequest},
		{"Unknown category", []string{"Shopping", "Food", "Pets"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, "http://example.com/v1/settings/categories/flexible", v1.CategoryReorderRequest{Names: tt.names})
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.CategorySetResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, tt.names, response.Data)
			}
		})
	}
}
