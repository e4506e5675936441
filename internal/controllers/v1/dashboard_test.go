package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/pocketdiary/backend/internal/controllers/v1"
	"github.com/pocketdiary/backend/internal/types"
	"github.com/pocketdiary/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertAmount(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual.Round(2)), "expected %s, got %s", expected, actual)
}

// configureTestBudget sets up a flexible pool of 3100 with a cycle starting
// on the 5th.
func configureTestBudget(t *testing.T) {
	_ = updateTestSettings(t, v1.SettingsEditable{
		TotalBudget:        decimal.NewFromInt(3800),
		FixedBudget:        decimal.NewFromInt(450),
		SavingsGoal:        decimal.NewFromInt(250),
		MonthStartDay:      5,
		FlexibleCategories: []string{"Food"},
	})
}

func (suite *TestSuiteStandard) TestDashboard() {
	configureTestBudget(suite.T())

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Earlier in the cycle",
		Amount:      decimal.NewFromInt(200),
		Date:        types.NewDate(2024, 3, 10),
	})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Today",
		Amount:      decimal.NewFromInt(50),
		Date:        types.NewDate(2024, 3, 14),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?date=2024-03-14", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	breakdown := *response.Data

	assertAmount(suite.T(), "3100", breakdown.FlexiblePool)
	assertAmount(suite.T(), "131.82", breakdown.DailyBudget)
	assertAmount(suite.T(), "135.71", breakdown.TomorrowBudget)
	assertAmount(suite.T(), "50", breakdown.TodaySpent)
	assertAmount(suite.T(), "250", breakdown.TotalSpent)
	assertAmount(suite.T(), "50", breakdown.TodaySaved)
	assertAmount(suite.T(), "750", breakdown.TotalSaved)

	assert.True(suite.T(), types.NewDate(2024, 3, 5).Equal(breakdown.Cycle.Start))
	assert.True(suite.T(), types.NewDate(2024, 4, 4).Equal(breakdown.Cycle.End))

	require.Len(suite.T(), breakdown.TodayExpenses, 1)
	assert.Equal(suite.T(), "Today", breakdown.TodayExpenses[0].Description)
}

// Fixed expenses are covered by the fixed budget and must not reduce the
// daily figures.
func (suite *TestSuiteStandard) TestDashboardIgnoresFixed() {
	configureTestBudget(suite.T())

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Rent",
		Type:        "FIXED",
		Amount:      decimal.NewFromInt(800),
		Date:        types.NewDate(2024, 3, 10),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?date=2024-03-14", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assertAmount(suite.T(), "140.91", response.Data.DailyBudget)
	assertAmount(suite.T(), "0", response.Data.TotalSpent)
}

// Changed settings must be reflected right away even though the breakdown is
// cached.
func (suite *TestSuiteStandard) TestDashboardAfterSettingsChange() {
	configureTestBudget(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?date=2024-03-14", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assertAmount(suite.T(), "140.91", response.Data.DailyBudget)

	_ = updateTestSettings(suite.T(), v1.SettingsEditable{
		TotalBudget:   decimal.NewFromInt(2650),
		MonthStartDay: 5,
	})

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?date=2024-03-14", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assertAmount(suite.T(), "120.45", response.Data.DailyBudget)
}

func (suite *TestSuiteStandard) TestDashboardInvalidDate() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?date=18.03.2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "dates must be specified in YYYY-MM-DD format", *response.Error)
}

func (suite *TestSuiteStandard) TestDashboardOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}
