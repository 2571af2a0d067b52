package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/crewplan/backend/internal/controllers/v1"
	"github.com/crewplan/backend/internal/types"
	"github.com/crewplan/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestResource(t *testing.T, c v1.ResourceEditable, expectedStatus ...int) v1.ResourceResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ResourceEditable{c}

	r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/v1/resources", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var resource v1.ResourceCreateResponse
	test.DecodeResponse(t, &r, &resource)

	if r.Code == http.StatusCreated {
		return resource.Data[0]
	}

	return v1.ResourceResponse{}
}

// TestResourcesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestResourcesOptions() {
	tests := []struct {
		name   string
		id     string // path at the Resources endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Resource with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Resource exists", suite.createTestResource(suite.T(), v1.ResourceEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/resources", tt.id)
			r := test.Request(t, suite.controller, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestResourcesGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestResourcesGetSingle() {
	c := suite.createTestResource(suite.T(), v1.ResourceEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Resource", c.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Resource with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodPatch},
		{"PATCH Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodPatch},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, tt.method, fmt.Sprintf("http://example.com/v1/resources/%s", tt.id), "")

			var resource v1.ResourceResponse
			test.DecodeResponse(t, &r, &resource)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestResourcesGetFilter() {
	_ = suite.createTestResource(suite.T(), v1.ResourceEditable{
		Name:    "Riley Tanaka",
		Role:    "Backend Developer",
		RateCAD: decimal.NewFromInt(132),
	})

	_ = suite.createTestResource(suite.T(), v1.ResourceEditable{
		Name:     "Avery Chen",
		Role:     "Frontend Developer",
		Location: "Offshore",
		RateCAD:  decimal.NewFromFloat(98.5),
	})

	_ = suite.createTestResource(suite.T(), v1.ResourceEditable{
		Name: "Sam Okafor",
		Role: "QA Engineer",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Name exact", "name=Riley Tanaka", 1},
		{"Name wildcard", "name=*a*", 2},
		{"Empty name", "name=", 0},
		{"Role suffix", "role=*Developer", 2},
		{"Role exact", "role=QA Engineer", 1},
		{"Empty role", "role=", 0},
		{"Location Onsite", "location=Onsite", 2},
		{"Location Offshore", "location=Offshore", 1},
		{"Location unknown", "location=Remote", 0},
		{"Location is matched exactly", "location=offshore", 0},
		{"Role and location", "role=*Developer&location=Offshore", 1},
		{"Offset 2", "offset=2", 1},
		{"Offset 0, limit 2", "offset=0&limit=2", 2},
		{"Limit 4", "limit=4", 3},
		{"Limit 0", "limit=0", 0},
		{"Limit -1", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.ResourceListResponse
			r := test.Request(t, suite.controller, http.MethodGet, fmt.Sprintf("/v1/resources?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestResourcesCreate() {
	r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/resources", []v1.ResourceEditable{
		{
			Name:     "Riley Tanaka",
			Role:     "Backend Developer",
			Location: "Offshore",
			RateCAD:  decimal.NewFromFloat(98.5),
		},
		{
			Name: "  Avery Chen  ",
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ResourceCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)

	riley := response.Data[0].Data
	require.NotNil(suite.T(), riley)

	assert.Equal(suite.T(), "Riley Tanaka", riley.Name)
	assert.Equal(suite.T(), "Backend Developer", riley.Role)
	assert.Equal(suite.T(), "Offshore", string(riley.Location))
	assert.True(suite.T(), decimal.NewFromFloat(98.5).Equal(riley.RateCAD), "Rate is wrong, is %s", riley.RateCAD)

	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/resources/%s", riley.ID), riley.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/allocations?resource=%s", riley.ID), riley.Links.Allocations)

	avery := response.Data[1].Data
	require.NotNil(suite.T(), avery)

	assert.Equal(suite.T(), "Avery Chen", avery.Name, "Whitespace around the name must be trimmed")
	assert.Equal(suite.T(), "Onsite", string(avery.Location), "The location must default to Onsite")
	assert.True(suite.T(), decimal.Zero.Equal(avery.RateCAD))
}

func (suite *TestSuiteStandard) TestResourcesCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int                                             // expected HTTP status
		testFunc func(t *testing.T, r v1.ResourceCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "role": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, r v1.ResourceCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field ResourceEditable.role of type string", *r.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, r v1.ResourceCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *r.Error)
			},
		},
		{
			"No name", `[{ "role": "Backend Developer" }]`, http.StatusBadRequest,
			func(t *testing.T, r v1.ResourceCreateResponse) {
				assert.Equal(t, "the name of the resource must not be empty", *r.Data[0].Error)
			},
		},
		{
			"Negative rate", `[{ "name": "Riley Tanaka", "rateCAD": -1 }]`, http.StatusBadRequest,
			func(t *testing.T, r v1.ResourceCreateResponse) {
				assert.Equal(t, "the hourly rate of the resource must not be negative", *r.Data[0].Error)
			},
		},
		{
			"Unknown location", `[{ "name": "Riley Tanaka", "location": "Hybrid" }]`, http.StatusBadRequest,
			func(t *testing.T, r v1.ResourceCreateResponse) {
				assert.Equal(t, "the location of the resource must be one of Onsite, Offshore", *r.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/v1/resources", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ResourceCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

// Verify that updating resources works as desired
func (suite *TestSuiteStandard) TestResourcesUpdate() {
	resource := suite.createTestResource(suite.T(), v1.ResourceEditable{
		Name:    "Riley Tanaka",
		Role:    "Backend Developer",
		RateCAD: decimal.NewFromInt(132),
	})

	tests := []struct {
		name     string                                    // name of the test
		body     map[string]any                            // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, r v1.ResourceResponse) // tests to perform against the updated resource
	}{
		{
			"Name, Role",
			map[string]any{
				"name": "Riley Tanaka-Smith",
				"role": "Staff Engineer",
			},
			func(t *testing.T, r v1.ResourceResponse) {
				assert.Equal(t, "Riley Tanaka-Smith", r.Data.Name)
				assert.Equal(t, "Staff Engineer", r.Data.Role)
				assert.True(t, decimal.NewFromInt(132).Equal(r.Data.RateCAD), "Updating the name must not change the rate")
			},
		},
		{
			"Location",
			map[string]any{
				"location": "Offshore",
			},
			func(t *testing.T, r v1.ResourceResponse) {
				assert.Equal(t, "Offshore", string(r.Data.Location))
			},
		},
		{
			"Rate",
			map[string]any{
				"rateCAD": 150,
			},
			func(t *testing.T, r v1.ResourceResponse) {
				assert.True(t, decimal.NewFromInt(150).Equal(r.Data.RateCAD), "Rate is wrong, is %s", r.Data.RateCAD)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPatch, resource.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ResourceResponse
			test.DecodeResponse(t, &r, &response)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestResourcesUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"role": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "name": 2" }`, http.StatusBadRequest},
		{"Non-existing Resource", uuid.New().String(), `{"name": "Nope"}`, http.StatusNotFound},
		{"Set name empty", "", v1.ResourceEditable{}, http.StatusBadRequest},
		{"Negative rate", "", `{"rateCAD": -12}`, http.StatusBadRequest},
		{"Unknown location", "", `{"location": "Hybrid"}`, http.StatusBadRequest},
		{"Lowercase location", "", `{"location": "offshore"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				resource := suite.createTestResource(suite.T(), v1.ResourceEditable{
					Name: "New resource",
				})

				tt.id = resource.Data.ID.String()
			}

			recorder = test.Request(t, suite.controller, http.MethodPatch, fmt.Sprintf("http://example.com/v1/resources/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestResourcesDelete verifies all cases for Resource deletions.
func (suite *TestSuiteStandard) TestResourcesDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Resource", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				r := suite.createTestResource(t, v1.ResourceEditable{})
				tt.id = r.Data.ID.String()
			}

			recorder = test.Request(t, suite.controller, http.MethodDelete, fmt.Sprintf("http://example.com/v1/resources/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestResourcesDeleteKeepsAllocations verifies that the bookings of a
// deleted resource stay, but no longer cost anything.
func (suite *TestSuiteStandard) TestResourcesDeleteKeepsAllocations() {
	release := suite.createTestRelease(suite.T(), v1.ReleaseEditable{
		Name:       "Atlas Phase 2",
		StartMonth: types.NewMonth(2024, 1),
		EndMonth:   types.NewMonth(2024, 1),
	})
	resource := suite.createTestResource(suite.T(), v1.ResourceEditable{RateCAD: decimal.NewFromInt(132)})

	suite.createTestAllocation(suite.T(), v1.AllocationEditable{
		ReleaseID:  release.Data.ID,
		ResourceID: resource.Data.ID,
		Month:      types.NewMonth(2024, 1),
		Percentage: decimal.NewFromInt(1),
	})

	r := test.Request(suite.T(), suite.controller, http.MethodDelete, resource.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/allocations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var allocations v1.AllocationListResponse
	test.DecodeResponse(suite.T(), &r, &allocations)
	require.Len(suite.T(), allocations.Data, 1, "The booking must survive the deletion of its resource")

	r = test.Request(suite.T(), suite.controller, http.MethodGet, release.Data.Links.Months, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var months v1.ReleaseMonthsResponse
	test.DecodeResponse(suite.T(), &r, &months)

	require.NotNil(suite.T(), months.Data)
	assert.True(suite.T(), decimal.Zero.Equal(months.Data.TotalUSD), "A booking of a deleted resource must not cost anything, total is %s", months.Data.TotalUSD)
	assert.NotContains(suite.T(), months.Data.ByResource, resource.Data.ID)
}

// TestResourcesGetSorted verifies that Resources are sorted by name.
func (suite *TestSuiteStandard) TestResourcesGetSorted() {
	r1 := suite.createTestResource(suite.T(), v1.ResourceEditable{
		Name: "Avery, alphabetically first",
	})

	r2 := suite.createTestResource(suite.T(), v1.ResourceEditable{
		Name: "Riley is second in creation, third in list",
	})

	r3 := suite.createTestResource(suite.T(), v1.ResourceEditable{
		Name: "Morgan is alphabetically second",
	})

	r4 := suite.createTestResource(suite.T(), v1.ResourceEditable{
		Name: "Zhang is the last one",
	})

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/resources", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var resources v1.ResourceListResponse
	test.DecodeResponse(suite.T(), &r, &resources)

	require.Len(suite.T(), resources.Data, 4, "Resource list has wrong length")

	assert.Equal(suite.T(), r1.Data.Name, resources.Data[0].Name)
	assert.Equal(suite.T(), r2.Data.Name, resources.Data[2].Name)
	assert.Equal(suite.T(), r3.Data.Name, resources.Data[1].Name)
	assert.Equal(suite.T(), r4.Data.Name, resources.Data[3].Name)
}

func (suite *TestSuiteStandard) TestResourcesPagination() {
	for i := 0; i < 10; i++ {
		suite.createTestResource(suite.T(), v1.ResourceEditable{Name: fmt.Sprint(i)})
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
			r := test.Request(suite.T(), suite.controller, http.MethodGet, fmt.Sprintf("http://example.com/v1/resources?offset=%d&limit=%d", tt.offset, tt.limit), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var resources v1.ResourceListResponse
			test.DecodeResponse(t, &r, &resources)

			assert.Equal(suite.T(), tt.offset, resources.Pagination.Offset)
			assert.Equal(suite.T(), tt.limit, resources.Pagination.Limit)
			assert.Equal(suite.T(), tt.expectedCount, resources.Pagination.Count)
			assert.Equal(suite.T(), tt.expectedTotal, resources.Pagination.Total)
		})
	}
}
