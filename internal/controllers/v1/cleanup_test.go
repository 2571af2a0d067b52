package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/crewplan/backend/internal/controllers/v1"
	"github.com/crewplan/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	_ = suite.createTestRelease(suite.T(), v1.ReleaseEditable{Name: "Atlas Phase 2"})
	_ = suite.createTestResource(suite.T(), v1.ResourceEditable{Name: "Riley Tanaka"})
	_ = suite.createTestAllocation(suite.T(), v1.AllocationEditable{})

	tests := []string{
		"releases",
		"resources",
		"allocations",
	}

	// Delete
	recorder := test.Request(suite.T(), suite.controller, http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)

	// Verify
	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(t, suite.controller, http.MethodGet, fmt.Sprintf("http://example.com/v1/%s", tt), "")

			var response struct {
				Data []any `json:"data"`
			}

			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0, "There are resources left for type %s", tt)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	_ = suite.createTestRelease(suite.T(), v1.ReleaseEditable{Name: "Must survive"})

	tests := []string{
		"confirm=2",
		"confirm=invalid-confirmation",
		"",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(t, suite.controller, http.MethodDelete, fmt.Sprintf("http://example.com/v1?%s", tt), "")
			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var response struct {
				Error string `json:"error"`
			}
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, "the confirmation for the cleanup API call was incorrect", response.Error)
		})
	}

	// The data must still be there
	recorder := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/releases", "")

	var releases v1.ReleaseListResponse
	test.DecodeResponse(suite.T(), &recorder, &releases)
	assert.Len(suite.T(), releases.Data, 1)
}
