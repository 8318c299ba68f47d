package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fairshare-aid/backend/internal/controllers/v1"
	"github.com/fairshare-aid/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestFamiliesCreate verifies that the vulnerability is computed and
// special needs are split.
func (suite *TestSuiteStandard) TestFamiliesCreate() {
	tests := []struct {
		name          string
		family        v1.FamilyEditable
		needs         []string
		vulnerability int
	}{
		{"Single", v1.FamilyEditable{FamilySize: 1}, []string{}, 1},
		{"Medium with need", v1.FamilyEditable{FamilySize: 4, SpecialNeeds: []string{"infant"}}, []string{"infant"}, 3},
		{"Large with split needs", v1.FamilyEditable{FamilySize: 8, SpecialNeeds: []string{"infant, diabetes", " ", "elderly"}}, []string{"infant", "diabetes", "elderly"}, 6},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			family := suite.createTestFamily(tt.family)
			assert.Equal(t, tt.vulnerability, family.Data.Vulnerability)
			assert.Equal(t, tt.needs, family.Data.SpecialNeeds)
			assert.Equal(t, fmt.Sprintf("http://example.com/v1/families/%s/distributions", family.Data.ID), family.Data.Links.Distributions)
		})
	}
}

func (suite *TestSuiteStandard) TestFamiliesCreateFails() {
	tests := []struct {
		name   string
		family v1.FamilyEditable
	}{
		{"Negative size", v1.FamilyEditable{FamilySize: -2}},
		{"Blank name", v1.FamilyEditable{Name: "   "}},
		{"Blank area", v1.FamilyEditable{Area: "  "}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.createTestFamily(tt.family, http.StatusBadRequest)
		})
	}
}

// TestFamiliesGetFilter verifies the filters of the family list, including
// the glob match on the area.
func (suite *TestSuiteStandard) TestFamiliesGetFilter() {
	suite.createTestFamily(v1.FamilyEditable{Name: "Haddad", Area: "North District", FamilySize: 5})
	suite.createTestFamily(v1.FamilyEditable{Name: "Khalil", Area: "North Hills", FamilySize: 2})
	suite.createTestFamily(v1.FamilyEditable{Name: "Saleh", Area: "South", FamilySize: 5})

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"All", "", 3, 3},
		{"Name", "name=had", 1, 1},
		{"Family size", "familySize=5", 2, 2},
		{"Area glob prefix", "area=north*", 2, 2},
		{"Area glob suffix", "area=*HILLS", 1, 1},
		{"Area exact", "area=South", 1, 1},
		{"Area no match", "area=East*", 0, 0},
		{"Area and size", "area=North*&familySize=5", 1, 1},
		{"Search area", "search=hill", 1, 1},
		{"Limit with area", "area=*&limit=1", 1, 3},
		{"Offset with area", "area=North*&offset=1", 1, 2},
		{"Offset past end", "offset=10", 0, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/families?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var families v1.FamilyListResponse
			test.DecodeResponse(t, &r, &families)
			assert.Len(t, families.Data, tt.len, "Request ID: %s", r.Header().Get("x-request-id"))
			assert.Equal(t, tt.total, families.Pagination.Total)
		})
	}
}

// TestFamiliesGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestFamiliesGetSingle() {
	f := suite.createTestFamily(v1.FamilyEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Family", f.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No Family with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH No Family with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"PATCH Invalid ID", "-56", http.StatusBadRequest, http.MethodPatch},
		{"DELETE No Family with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
		{"DELETE Invalid ID", "23", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/families/%s", tt.id), `{ "name": "Updated" }`)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestFamiliesUpdate verifies that the vulnerability is recomputed on updates.
func (suite *TestSuiteStandard) TestFamiliesUpdate() {
	f := suite.createTestFamily(v1.FamilyEditable{Name: "Haddad", FamilySize: 2})
	assert.Equal(suite.T(), 1, f.Data.Vulnerability)

	r := test.Request(suite.T(), http.MethodPatch, f.Data.Links.Self, map[string]any{
		"familySize":   7,
		"specialNeeds": []string{"infant,disability"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.FamilyResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "Haddad", updated.Data.Name)
	assert.Equal(suite.T(), 7, updated.Data.FamilySize)
	assert.Equal(suite.T(), []string{"infant", "disability"}, updated.Data.SpecialNeeds)
	assert.Equal(suite.T(), 5, updated.Data.Vulnerability)

	r = test.Request(suite.T(), http.MethodPatch, f.Data.Links.Self, `{ "familySize": 0 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, f.Data.Links.Self, `{ "familySize": "many" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestFamiliesDelete() {
	f := suite.createTestFamily(v1.FamilyEditable{})

	r := test.Request(suite.T(), http.MethodDelete, f.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, f.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var family v1.FamilyResponse
	test.DecodeResponse(suite.T(), &r, &family)
	assert.Equal(suite.T(), "there is no family matching your query", *family.Error)
}

// TestFamiliesDistributions verifies that the distribution history of a
// family is returned newest first.
func (suite *TestSuiteStandard) TestFamiliesDistributions() {
	user := suite.createTestUser(v1.UserEditable{})
	family := suite.createTestFamily(v1.FamilyEditable{})
	other := suite.createTestFamily(v1.FamilyEditable{})
	material := suite.createTestMaterial(v1.MaterialEditable{CurrentQuantity: decimal.NewFromInt(100)})

	for _, quantity := range []int64{10, 20} {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/distribution/execute", v1.ExecuteRequest{
			MaterialID: material.Data.ID,
			Distributions: []v1.ExecuteEntry{
				{FamilyID: family.Data.ID, Quantity: decimal.NewFromInt(quantity)},
				{FamilyID: other.Data.ID, Quantity: decimal.NewFromInt(1)},
			},
		}, actorHeader(user.Data.ID))
		test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	}

	r := test.Request(suite.T(), http.MethodGet, family.Data.Links.Distributions, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var distributions v1.DistributionListResponse
	test.DecodeResponse(suite.T(), &r, &distributions)
	suite.Require().Len(distributions.Data, 2)
	assert.True(suite.T(), decimal.NewFromInt(20).Equal(distributions.Data[0].Quantity))
	assert.True(suite.T(), decimal.NewFromInt(10).Equal(distributions.Data[1].Quantity))
	assert.Equal(suite.T(), family.Data.ID, distributions.Data[0].BeneficiaryID)
	assert.Equal(suite.T(), user.Data.ID, distributions.Data[0].DistributedByID)

	r = test.Request(suite.T(), http.MethodGet, family.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.FamilyResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.NotNil(suite.T(), updated.Data.LastDistributionAt)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/families/%s/distributions", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
