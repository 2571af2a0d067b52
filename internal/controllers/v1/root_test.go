package v1_test

import (
	"net/http"

	v1 "github.com/crewplan/backend/internal/controllers/v1"
	"github.com/crewplan/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestV1Get() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.V1Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.V1Response{
		Links: v1.V1Links{
			Releases:    "http://example.com/v1/releases",
			Resources:   "http://example.com/v1/resources",
			Allocations: "http://example.com/v1/allocations",
			Import:      "http://example.com/v1/import",
			Export:      "http://example.com/v1/export",
			Overview:    "http://example.com/v1/overview",
		},
	}, response)
}
