package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naccdata/fwprov/internal/provisioning"
)

func summaryResult() *provisioning.Result {
	return &provisioning.Result{
		Resources: []provisioning.Resource{
			{Kind: provisioning.KindGroup, Ref: "site-a", Label: "Site A", Action: provisioning.ActionCreated},
			{Kind: provisioning.KindProject, Ref: "fw://site-a/accepted", Label: "ADRC Accepted", Action: provisioning.ActionExists},
			{Kind: provisioning.KindProject, Ref: "fw://site-a/ingest-form", Label: "ADRC Form Ingest", Action: provisioning.ActionPlanned},
		},
	}
}

func TestRenderRunSummary(t *testing.T) {
	out := renderRunSummary(summaryResult(), false)

	assert.Contains(t, out, "provisioning summary")
	assert.Contains(t, out, "site-a")
	assert.Contains(t, out, "fw://site-a/accepted")
	assert.Contains(t, out, "fw://site-a/ingest-form")
	assert.Contains(t, out, "created: 1  planned: 1  existing: 1")
	assert.NotContains(t, out, "dry-run")
}

func TestRenderRunSummaryDryRun(t *testing.T) {
	out := renderRunSummary(summaryResult(), true)
	assert.Contains(t, out, "(dry-run)")
}

func TestRenderRunSummaryEmpty(t *testing.T) {
	out := renderRunSummary(&provisioning.Result{}, false)
	assert.Contains(t, out, "created: 0  planned: 0  existing: 0")
	assert.NotContains(t, out, "Created\n")
}
