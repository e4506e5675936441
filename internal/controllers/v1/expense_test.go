package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pocketdiary/backend/internal/controllers/v1"
	"github.com/pocketdiary/backend/internal/models"
	"github.com/pocketdiary/backend/internal/types"
	"github.com/pocketdiary/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpensesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestExpense(t, v1.ExpenseEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/expenses", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.ExpenseListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestExpensesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestExpensesOptions() {
	tests := []struct {
		name   string
		id     string // path at the expenses endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No expense with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Expense exists", createTestExpense(suite.T(), v1.ExpenseEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/expenses", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesOptionsList() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExpensesCreate() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Groceries",
		Amount:      decimal.NewFromFloat(14.5),
		Category:    "Food",
		Date:        types.NewDate(2024, 3, 18),
	})

	assert.Equal(suite.T(), "Groceries", expense.Data.Description)
	assert.Equal(suite.T(), models.ExpenseFlexible, expense.Data.Type)
	assert.Equal(suite.T(), 1, expense.Data.Duration)
	assert.NotEmpty(suite.T(), expense.Data.Links.Self)
	assert.NotEmpty(suite.T(), expense.Data.Links.Convert)
}

// Creation is a batch operation. Every entry gets its own result so a single
// bad entry does not abort the rest.
func (suite *TestSuiteStandard) TestExpensesCreateBatch() {
	body := []v1.ExpenseEditable{
		{Description: "Valid", Amount: decimal.NewFromInt(10)},
		{Description: "Invalid", Amount: decimal.NewFromInt(-10)},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Nil(suite.T(), response.Data[0].Error)
	require.NotNil(suite.T(), response.Data[1].Error)
	assert.Equal(suite.T(), models.ErrExpenseAmountNegative.Error(), *response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestExpensesCreateFails() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken body", `[{ "description": 2 }]`, http.StatusBadRequest},
		{"No body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// An amortization in months is converted to days when the expense is created.
func (suite *TestSuiteStandard) TestExpensesCreateMonths() {
	tests := []struct {
		name     string
		body     string
		duration int
	}{
		{"A year", `[{ "amount": 1000, "date": "2024-03-10", "months": 12 }]`, 365},
		{"Clamped to a short month", `[{ "amount": 100, "date": "2023-01-31", "months": 1 }]`, 28},
		{"Explicit duration wins", `[{ "amount": 100, "date": "2024-03-10", "months": 12, "duration": 100 }]`, 100},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusCreated)

			var response v1.ExpenseCreateResponse
			test.DecodeResponse(t, &r, &response)

			require.Len(t, response.Data, 1)
			assert.Equal(t, tt.duration, response.Data[0].Data.Duration)
		})
	}
}

// Quick entries without a category get one from the match rules, and the
// category decides the type.
func (suite *TestSuiteStandard) TestExpensesCreateCategorized() {
	_ = updateTestSettings(suite.T(), v1.SettingsEditable{
		TotalBudget:     decimal.NewFromInt(3800),
		FixedCategories: []string{"Rent"},
	})

	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "REWE*", Category: "Food"})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 2, Match: "*Miete*", Category: "Rent"})

	tests := []struct {
		name        string
		description string
		category    string
		expenseType models.ExpenseType
	}{
		{"Flexible category", "REWE Bahnhof", "Food", models.ExpenseFlexible},
		{"Fixed category", "Miete April", "Rent", models.ExpenseFixed},
		{"No match", "Unmatched", "", models.ExpenseFlexible},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			expense := createTestExpense(t, v1.ExpenseEditable{
				Description: tt.description,
				Amount:      decimal.NewFromInt(10),
			})

			assert.Equal(t, tt.category, expense.Data.Category)
			assert.Equal(t, tt.expenseType, expense.Data.Type)
		})
	}
}

// TestExpensesGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestExpensesGetSingle() {
	e := createTestExpense(suite.T(), v1.ExpenseEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing expense", e.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No expense with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")

			var expense v1.ExpenseResponse
			test.DecodeResponse(t, &r, &expense)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetFilter() {
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Groceries at the usual place",
		Category:    "Food",
		Amount:      decimal.NewFromInt(20),
		Date:        types.NewDate(2024, 3, 10),
	})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Rent",
		Category:    "Rent",
		Type:        models.ExpenseFixed,
		Amount:      decimal.NewFromInt(800),
		Date:        types.NewDate(2024, 3, 1),
	})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Groceries again",
		Category:    "Food",
		Amount:      decimal.NewFromInt(30),
		Date:        types.NewDate(2024, 3, 18),
		Archived:    true,
		Duration:    30,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Category", "category=Food", 2},
		{"Unknown category", "category=Pets", 0},
		{"Type", "type=FIXED", 1},
		{"Archived", "archived=true", 1},
		{"From", "from=2024-03-09", 2},
		{"Until", "until=2024-03-09", 1},
		{"From and until", "from=2024-03-01&until=2024-03-10", 2},
		{"Search", "search=groceries", 2},
		{"Limit", "limit=1", 1},
		{"Offset", "offset=1", 2},
		{"Limit and offset", "limit=1&offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.ExpenseListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetFilterInvalidDate() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?from=18.03.2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "dates must be specified in YYYY-MM-DD format", *response.Error)
}

// TestExpensesGetSorted verifies that expenses are sorted by date, newest
// first.
func (suite *TestSuiteStandard) TestExpensesGetSorted() {
	middle := createTestExpense(suite.T(), v1.ExpenseEditable{Date: types.NewDate(2024, 3, 10)})
	newest := createTestExpense(suite.T(), v1.ExpenseEditable{Date: types.NewDate(2024, 3, 18)})
	oldest := createTestExpense(suite.T(), v1.ExpenseEditable{Date: types.NewDate(2024, 3, 1)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &expenses)

	require.Len(suite.T(), expenses.Data, 3)
	assert.Equal(suite.T(), newest.Data.ID, expenses.Data[0].ID)
	assert.Equal(suite.T(), middle.Data.ID, expenses.Data[1].ID)
	assert.Equal(suite.T(), oldest.Data.ID, expenses.Data[2].ID)
}

func (suite *TestSuiteStandard) TestExpensesPagination() {
	for i := 0; i < 10; i++ {
		createTestExpense(suite.T(), v1.ExpenseEditable{Description: fmt.Sprint(i)})
	}

	tests := []struct {
		name          string
		offset        uint
		limit         int
		expectedCount int
		expectedTotal int64
	}{
		{"All", 0, -1, 10, 10},
		{"First 5", 0, 5, 5, 10},
		{"Last 5", 5, -1, 5, 10},
		{"Offset 3", 3, -1, 7, 10},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?offset=%d&limit=%d", tt.offset, tt.limit), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var expenses v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &expenses)

			assert.Equal(t, tt.offset, expenses.Pagination.Offset)
			assert.Equal(t, tt.limit, expenses.Pagination.Limit)
			assert.Equal(t, tt.expectedCount, expenses.Pagination.Count)
			assert.Equal(t, tt.expectedTotal, expenses.Pagination.Total)
		})
	}
}

// Verify that updating expenses works as desired
func (suite *TestSuiteStandard) TestExpensesUpdate() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Original", Amount: decimal.NewFromInt(10)})

	tests := []struct {
		name     string
		expense  map[string]any                           // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, e v1.ExpenseResponse) // tests to perform against the updated expense resource
	}{
		{
			"Description and amount",
			map[string]any{
				"description": "Updated",
				"amount":      42,
			},
			func(t *testing.T, e v1.ExpenseResponse) {
				assert.Equal(t, "Updated", e.Data.Description)
				assert.True(t, decimal.NewFromInt(42).Equal(e.Data.Amount))
			},
		},
		{
			"Archived",
			map[string]any{
				"archived": true,
			},
			func(t *testing.T, e v1.ExpenseResponse) {
				assert.True(t, e.Data.Archived)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, expense.Data.Links.Self, tt.expense)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var e v1.ExpenseResponse
			test.DecodeResponse(t, &r, &e)

			if tt.testFunc != nil {
				tt.testFunc(t, e)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"description": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "description": 2" }`, http.StatusBadRequest},
		{"Non-existing expense", uuid.New().String(), `{"description": "Updated"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				expense := createTestExpense(suite.T(), v1.ExpenseEditable{})
				tt.id = expense.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestExpensesDelete verifies all cases for expense deletions.
func (suite *TestSuiteStandard) TestExpensesDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing expense", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				e := createTestExpense(t, v1.ExpenseEditable{})
				tt.id = e.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestExpensesConvert verifies the move of an expense to the income side.
func (suite *TestSuiteStandard) TestExpensesConvert() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Entered on the wrong side",
		Amount:      decimal.NewFromInt(100),
		Date:        types.NewDate(2024, 3, 18),
	})

	r := test.Request(suite.T(), http.MethodPost, expense.Data.Links.Convert, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var income v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &income)

	require.NotNil(suite.T(), income.Data)
	assert.Equal(suite.T(), expense.Data.ID, income.Data.ID, "the converted record must keep its ID")
	assert.Equal(suite.T(), "Entered on the wrong side", income.Data.Description)
	assert.True(suite.T(), decimal.NewFromInt(100).Equal(income.Data.Amount))

	// The expense is gone
	r = test.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The income exists
	r = test.Request(suite.T(), http.MethodGet, income.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestExpensesConvertFails() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Non-existing expense", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "notaUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/expenses/%s/convert", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
