package v1_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/crewplan/backend/internal/controllers/v1"
	"github.com/crewplan/backend/internal/types"
	"github.com/crewplan/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestImport verifies that a planning file replaces the whole session.
func (suite *TestSuiteStandard) TestImport() {
	// This data must be gone after the import
	_ = suite.createTestAllocation(suite.T(), v1.AllocationEditable{})

	body, headers := test.LoadTestFile(suite.T(), "crewplan.csv")
	recorder := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), 2, response.Data.Releases)
	assert.Equal(suite.T(), 2, response.Data.Resources)
	assert.Equal(suite.T(), 5, response.Data.Allocations)
	assert.Len(suite.T(), response.Data.Warnings, 0, "Warnings: %v", response.Data.Warnings)

	// The releases from the file replace the previous session data
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/releases", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var releases v1.ReleaseListResponse
	test.DecodeResponse(suite.T(), &r, &releases)
	require.Len(suite.T(), releases.Data, 2)

	assert.Equal(suite.T(), "Atlas Phase 2", releases.Data[0].Name)
	assert.True(suite.T(), types.NewMonth(2024, 1).Equal(releases.Data[0].StartMonth), "Start month is wrong, is %s", releases.Data[0].StartMonth)
	assert.True(suite.T(), types.NewMonth(2024, 3).Equal(releases.Data[0].EndMonth), "End month is wrong, is %s", releases.Data[0].EndMonth)
	assert.Equal(suite.T(), "Borealis", releases.Data[1].Name)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/resources", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var resources v1.ResourceListResponse
	test.DecodeResponse(suite.T(), &r, &resources)
	require.Len(suite.T(), resources.Data, 2)

	assert.Equal(suite.T(), "Avery Chen", resources.Data[0].Name)
	assert.Equal(suite.T(), "Offshore", string(resources.Data[0].Location))
	assert.True(suite.T(), decimal.NewFromInt(99).Equal(resources.Data[0].RateCAD), "Rate is wrong, is %s", resources.Data[0].RateCAD)

	assert.Equal(suite.T(), "Riley Tanaka", resources.Data[1].Name)
	assert.Equal(suite.T(), "Backend Developer", resources.Data[1].Role)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/allocations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var allocations v1.AllocationListResponse
	test.DecodeResponse(suite.T(), &r, &allocations)
	require.Len(suite.T(), allocations.Data, 5)

	assert.True(suite.T(), types.NewMonth(2024, 1).Equal(allocations.Data[0].Month), "Month is wrong, is %s", allocations.Data[0].Month)
	assert.True(suite.T(), decimal.NewFromInt(1).Equal(allocations.Data[0].Percentage), "Percentage is wrong, is %s", allocations.Data[0].Percentage)
	assert.True(suite.T(), decimal.NewFromFloat(0.75).Equal(allocations.Data[1].Percentage), "Percentage is wrong, is %s", allocations.Data[1].Percentage)
	assert.True(suite.T(), types.NewMonth(2024, 4).Equal(allocations.Data[4].Month), "Month is wrong, is %s", allocations.Data[4].Month)
}

// TestImportWarnings verifies that lines that can not be imported cleanly
// are reported with their line number and do not abort the import.
func (suite *TestSuiteStandard) TestImportWarnings() {
	contents := `Release,Start Month,End Month,Resource,Role,Location,Rate (CAD),Month,Allocation,Cost (USD)
Atlas Phase 2,2024-01,2024-02,Riley Tanaka,Backend Developer,Onsite,132,2024-01,1,16800.00
Atlas Phase 2,2024-01,2024-03,Riley Tanaka,Backend Developer,Onsite,132,2024-02,0.5,8400.00
,2024-01,2024-02,Riley Tanaka,Backend Developer,Onsite,132,2024-03,1,
Atlas Phase 2,2024-01,2024-02,,Backend Developer,Onsite,132,2024-03,1,
Atlas Phase 2,2024-01,2024-02,Riley Tanaka,Backend Developer,Onsite,132,March,1,
Atlas Phase 2,2024-01,2024-02,Riley Tanaka,Backend Developer,Onsite,132,2024-03,half,
Atlas Phase 2,2024-01,2024-02,Riley Tanaka,Backend Developer,Onsite,abc,2024-03,1,
Atlas Phase 2,2024-01,2024-02,Riley Tanaka,Backend Developer,Remote,132,2024-03,1,
Atlas Phase 2,2024-01,2024-02,Riley Tanaka,Backend Developer,Onsite,132,2024-01,0.25,
broken,line,3
`

	body, headers := test.MultipartFile(suite.T(), "crewplan.csv", contents)
	recorder := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), 1, response.Data.Releases)
	assert.Equal(suite.T(), 1, response.Data.Resources)
	assert.Equal(suite.T(), 2, response.Data.Allocations)

	assert.Equal(suite.T(), []v1.ImportWarning{
		{Line: 3, Error: "the line defines the release differently than an earlier line, the first definition wins"},
		{Line: 4, Error: "the release name is empty, the line is skipped"},
		{Line: 5, Error: "the resource name is empty, the line is skipped"},
		{Line: 6, Error: "the month could not be parsed, it must be formatted as YYYY-MM"},
		{Line: 7, Error: "the allocation could not be parsed to a decimal"},
		{Line: 8, Error: "the rate could not be parsed to a decimal"},
		{Line: 9, Error: "the location of the resource must be one of Onsite, Offshore"},
		{Line: 10, Error: "the line books the same release, resource and month as an earlier line and replaces that booking"},
		{Line: 11, Error: "the line does not have the same number of fields as the header"},
	}, response.Data.Warnings)

	// The first definition of the release wins
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/releases", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var releases v1.ReleaseListResponse
	test.DecodeResponse(suite.T(), &r, &releases)
	require.Len(suite.T(), releases.Data, 1)
	assert.True(suite.T(), types.NewMonth(2024, 2).Equal(releases.Data[0].EndMonth), "End month is wrong, is %s", releases.Data[0].EndMonth)

	// The last line booking a cell wins
	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/allocations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var allocations v1.AllocationListResponse
	test.DecodeResponse(suite.T(), &r, &allocations)
	require.Len(suite.T(), allocations.Data, 2)

	assert.True(suite.T(), types.NewMonth(2024, 1).Equal(allocations.Data[0].Month), "Month is wrong, is %s", allocations.Data[0].Month)
	assert.True(suite.T(), decimal.NewFromFloat(0.25).Equal(allocations.Data[0].Percentage), "Percentage is wrong, is %s", allocations.Data[0].Percentage)
	assert.True(suite.T(), decimal.NewFromFloat(0.5).Equal(allocations.Data[1].Percentage), "Percentage is wrong, is %s", allocations.Data[1].Percentage)
}

func (suite *TestSuiteStandard) TestImportFails() {
	tests := []struct {
		name  string
		file  string // name of the file to send, no file is sent when empty
		body  string // contents of the file
		error string // expected error message
	}{
		{"No file", "", "", "you must send a file to this endpoint"},
		{"Wrong file suffix", "plan.json", "{}", "this endpoint only supports files of the following types: .csv"},
		{"Broken header", "crewplan.csv", `"broken`, "could not read the header line of the CSV"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.file == "" {
				recorder = test.Request(t, suite.controller, http.MethodPost, "http://example.com/v1/import", "")
			} else {
				body, headers := test.MultipartFile(t, tt.file, tt.body)
				recorder = test.Request(t, suite.controller, http.MethodPost, "http://example.com/v1/import", body, headers)
			}

			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.ImportResponse
			test.DecodeResponse(t, &recorder, &response)

			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.error)
		})
	}
}

// TestImportEmptyFile verifies that a file with no lines clears the session.
func (suite *TestSuiteStandard) TestImportEmptyFile() {
	_ = suite.createTestRelease(suite.T(), v1.ReleaseEditable{Name: "Atlas Phase 2"})

	body, headers := test.MultipartFile(suite.T(), "empty.csv", "")
	recorder := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), 0, response.Data.Releases)
	assert.Equal(suite.T(), 0, response.Data.Resources)
	assert.Equal(suite.T(), 0, response.Data.Allocations)
	assert.Len(suite.T(), response.Data.Warnings, 0)

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/releases", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var releases v1.ReleaseListResponse
	test.DecodeResponse(suite.T(), &r, &releases)
	assert.Len(suite.T(), releases.Data, 0)
}
