//go:build e2e
// +build e2e

package endtoend_test

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/meridianhq/meridian/asset"
	"github.com/meridianhq/meridian/internal/client"
	"github.com/meridianhq/meridian/quality"
)

var identifierPattern = regexp.MustCompile(`^A-\d{4}$`)

type RegisterEndToEndTestSuite struct {
	suite.Suite
	ctx    context.Context
	client *client.Client
}

func (r *RegisterEndToEndTestSuite) SetupSuite() {
	r.ctx = context.Background()
	r.client = newClient()
}

func (r *RegisterEndToEndTestSuite) TestAllNormalFlow() {
	// create 5 assets, list them back through the filter, view one,
	// replace one, then delete everything
	unique := uuid.NewString()

	regions := []string{"us-east", "eu-west", "us-east", "ap-south", "eu-west"}
	assetIDs := []string{}
	for i, region := range regions {
		ast := generateAsset(fmt.Sprintf("%s plant %d", unique, i+1), region, coordinate(float64(i)), coordinate(float64(i)+0.5))
		created, err := r.client.CreateAsset(r.ctx, ast)
		if err != nil {
			r.T().Fatal(err)
		}
		r.Regexp(identifierPattern, created.ID)
		assetIDs = append(assetIDs, created.ID)
	}
	defer func() { r.deleteAll(assetIDs) }()

	seen := map[string]bool{}
	for _, id := range assetIDs {
		r.False(seen[id], "identifier %s allocated twice", id)
		seen[id] = true
	}

	// search by the unique name fragment
	listed, err := r.client.ListAssets(r.ctx, asset.Filter{Search: unique})
	if err != nil {
		r.T().Fatal(err)
	}
	r.Len(listed, 5)

	// narrow by region
	listed, err = r.client.ListAssets(r.ctx, asset.Filter{Search: unique, Regions: []string{"us-east"}})
	if err != nil {
		r.T().Fatal(err)
	}
	r.Len(listed, 2)

	// view one
	stored, err := r.client.GetAsset(r.ctx, assetIDs[0])
	if err != nil {
		r.T().Fatal(err)
	}
	r.Equal(fmt.Sprintf("%s plant 1", unique), stored.Name)

	// replace it
	stored.Name = fmt.Sprintf("%s plant 1 renamed", unique)
	stored.Status = asset.StatusInactive
	replaced, err := r.client.ReplaceAsset(r.ctx, stored)
	if err != nil {
		r.T().Fatal(err)
	}
	r.Equal(stored.Name, replaced.Name)
	r.Equal(asset.StatusInactive, replaced.Status)
	r.True(replaced.CreatedAt.Equal(stored.CreatedAt))
	r.False(replaced.UpdatedAt.Before(replaced.CreatedAt))

	// delete one and verify it is gone
	if err := r.client.DeleteAsset(r.ctx, assetIDs[4]); err != nil {
		r.T().Fatal(err)
	}
	_, err = r.client.GetAsset(r.ctx, assetIDs[4])
	r.ErrorContains(err, "no such record")
	assetIDs = assetIDs[:4]
}

func (r *RegisterEndToEndTestSuite) TestQualityInspection() {
	unique := uuid.NewString()

	first, err := r.client.CreateAsset(r.ctx, generateAsset(unique+" tower east", "us-east", coordinate(51.5), coordinate(-0.12)))
	if err != nil {
		r.T().Fatal(err)
	}
	second, err := r.client.CreateAsset(r.ctx, generateAsset(unique+" tower west", "us-east", coordinate(51.5), coordinate(-0.12)))
	if err != nil {
		r.T().Fatal(err)
	}
	bare, err := r.client.CreateAsset(r.ctx, asset.Asset{Name: unique + " bare", Status: asset.StatusPlanned})
	if err != nil {
		r.T().Fatal(err)
	}
	defer r.deleteAll([]string{first.ID, second.ID, bare.ID})

	issues, err := r.client.ListIssues(r.ctx)
	if err != nil {
		r.T().Fatal(err)
	}

	byAsset := map[string][]quality.Issue{}
	for _, issue := range issues {
		byAsset[issue.AssetID] = append(byAsset[issue.AssetID], issue)
	}

	r.True(r.hasIssue(byAsset[first.ID], quality.CodeDuplicatePoint, second.ID))
	r.True(r.hasIssue(byAsset[second.ID], quality.CodeDuplicatePoint, first.ID))
	r.True(r.hasIssue(byAsset[bare.ID], quality.CodeMissingCoordinates, ""))
	r.True(r.hasIssue(byAsset[bare.ID], quality.CodeMissingFields, "region"))
}

func (r *RegisterEndToEndTestSuite) TestExportFlow() {
	unique := uuid.NewString()

	located, err := r.client.CreateAsset(r.ctx, generateAsset(unique+" located", "eu-west", coordinate(48.85), coordinate(2.35)))
	if err != nil {
		r.T().Fatal(err)
	}
	unlocated, err := r.client.CreateAsset(r.ctx, generateAsset(unique+" unlocated", "eu-west", nil, nil))
	if err != nil {
		r.T().Fatal(err)
	}
	defer r.deleteAll([]string{located.ID, unlocated.ID})

	payload, filename, err := r.client.Export(r.ctx, "csv", asset.Filter{Search: unique})
	if err != nil {
		r.T().Fatal(err)
	}
	r.True(strings.HasPrefix(filename, "spatial-assets-"))
	r.True(strings.HasSuffix(filename, ".csv"))

	lines := strings.Split(string(payload), "\n")
	r.Len(lines, 3)
	r.Equal(`"id","name","region","type","status","latitude","longitude","createdAt","updatedAt"`, lines[0])
	r.Contains(string(payload), fmt.Sprintf("%q", located.ID))
	r.Contains(string(payload), fmt.Sprintf("%q", unlocated.ID))

	payload, filename, err = r.client.Export(r.ctx, "geojson", asset.Filter{Search: unique})
	if err != nil {
		r.T().Fatal(err)
	}
	r.True(strings.HasSuffix(filename, ".geojson"))

	var collection struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties struct {
				ID string `json:"id"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(payload, &collection); err != nil {
		r.T().Fatal(err)
	}
	r.Equal("FeatureCollection", collection.Type)

	featureIDs := []string{}
	for _, feature := range collection.Features {
		featureIDs = append(featureIDs, feature.Properties.ID)
	}
	r.Contains(featureIDs, located.ID)
	r.NotContains(featureIDs, unlocated.ID)
}

func (r *RegisterEndToEndTestSuite) hasIssue(issues []quality.Issue, code quality.Code, messageFragment string) bool {
	for _, issue := range issues {
		if issue.Code != code {
			continue
		}
		if messageFragment == "" || strings.Contains(issue.Message, messageFragment) {
			return true
		}
	}
	return false
}

func (r *RegisterEndToEndTestSuite) deleteAll(ids []string) {
	for _, id := range ids {
		if err := r.client.DeleteAsset(r.ctx, id); err != nil {
			r.T().Logf("cleanup of %s failed: %v", id, err)
		}
	}
}

func TestRegisterEndToEnd(t *testing.T) {
	suite.Run(t, &RegisterEndToEndTestSuite{})
}
