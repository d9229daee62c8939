package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saviour-frank/vault-chain/models"
)

func (e *env) approve(t *testing.T, assetID uint64, user string) {
	t.Helper()
	rr := e.do(t, "POST", "/compliance", e.authority, map[string]any{
		"asset_id":    assetID,
		"user":        user,
		"is_approved": true,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestTransferEndpoint(t *testing.T) {
	e := newEnv(t)
	alice, bob := newKey(), newKey()
	assetID := e.createAsset(t, alice)
	e.approve(t, assetID, bob)

	rr := e.do(t, "POST", "/transfers", alice, map[string]any{
		"asset_id": assetID,
		"to":       bob,
		"amount":   1000,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = e.do(t, "GET", fmt.Sprintf("/assets/%d/shares/%s", assetID, bob), "", nil)
	var balance models.ShareBalance
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &balance))
	assert.Equal(t, uint64(1000), balance.Shares)

	// Events 1..3: creation, compliance update, transfer.
	rr = e.do(t, "GET", "/events/3", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var event models.Event
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &event))
	assert.Equal(t, models.EventTransfer, event.Type)
	assert.Equal(t, alice, event.Principal.String())
}

func TestTransferComplianceRejection(t *testing.T) {
	e := newEnv(t)
	alice, carol := newKey(), newKey()
	assetID := e.createAsset(t, alice)

	rr := e.do(t, "POST", "/transfers", alice, map[string]any{
		"asset_id": assetID,
		"to":       carol,
		"amount":   10,
	})
	assert.Equal(t, http.StatusForbidden, rr.Code)

	var resp struct {
		Code uint32 `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, uint32(models.CodeComplianceCheckFailed), resp.Code)

	// The rejected transfer left no trace.
	rr = e.do(t, "GET", fmt.Sprintf("/assets/%d/shares/%s", assetID, alice), "", nil)
	var balance models.ShareBalance
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &balance))
	assert.Equal(t, uint64(1000), balance.Shares)
	rr = e.do(t, "GET", "/events/2", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestTransferInsufficientShares(t *testing.T) {
	e := newEnv(t)
	alice, bob := newKey(), newKey()
	assetID := e.createAsset(t, alice)
	e.approve(t, assetID, bob)

	rr := e.do(t, "POST", "/transfers", alice, map[string]any{
		"asset_id": assetID,
		"to":       bob,
		"amount":   5000,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestTransferUnknownAsset(t *testing.T) {
	e := newEnv(t)
	rr := e.do(t, "POST", "/transfers", newKey(), map[string]any{
		"asset_id": 9,
		"to":       newKey(),
		"amount":   10,
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSetComplianceStatusEndpoint(t *testing.T) {
	e := newEnv(t)
	alice, bob := newKey(), newKey()
	assetID := e.createAsset(t, alice)

	rr := e.do(t, "POST", "/compliance", e.authority, map[string]any{
		"asset_id":    assetID,
		"user":        bob,
		"is_approved": true,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp["is_approved"])

	rr = e.do(t, "GET", fmt.Sprintf("/compliance/%d/%s", assetID, bob), "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var rec models.ComplianceRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
	assert.True(t, rec.IsApproved)
	assert.Equal(t, e.authority, rec.ApprovedBy.String())
}

func TestSetComplianceStatusNonAuthority(t *testing.T) {
	e := newEnv(t)
	alice, bob := newKey(), newKey()
	assetID := e.createAsset(t, alice)

	rr := e.do(t, "POST", "/compliance", alice, map[string]any{
		"asset_id":    assetID,
		"user":        bob,
		"is_approved": true,
	})
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = e.do(t, "GET", fmt.Sprintf("/compliance/%d/%s", assetID, bob), "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetEventNotFound(t *testing.T) {
	e := newEnv(t)
	rr := e.do(t, "GET", "/events/1", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
