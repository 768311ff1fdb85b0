package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plandto "github.com/seyidturgut/certifix.ai-sub001/internal/application/plan/dto"
	planuc "github.com/seyidturgut/certifix.ai-sub001/internal/application/plan/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/handlers/testutil"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreatePlanUC struct {
	result *plandto.PlanDTO
	err    error
	got    planuc.CreatePlanCommand
}

func (m *mockCreatePlanUC) Execute(ctx context.Context, cmd planuc.CreatePlanCommand) (*plandto.PlanDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUpdatePlanUC struct {
	result *plandto.PlanDTO
	err    error
	got    planuc.UpdatePlanCommand
}

func (m *mockUpdatePlanUC) Execute(ctx context.Context, cmd planuc.UpdatePlanCommand) (*plandto.PlanDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetPlanUC struct {
	result *plandto.PlanDTO
	err    error
}

func (m *mockGetPlanUC) Execute(ctx context.Context, id string) (*plandto.PlanDTO, error) {
	return m.result, m.err
}

type mockListPlansUC struct {
	result     []*plandto.PlanDTO
	err        error
	onlyActive bool
}

func (m *mockListPlansUC) Execute(ctx context.Context, onlyActive bool) ([]*plandto.PlanDTO, error) {
	m.onlyActive = onlyActive
	return m.result, m.err
}

type mockDeletePlanUC struct {
	err error
}

func (m *mockDeletePlanUC) Execute(ctx context.Context, id string) error {
	return m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func createTestPlanDTO() *plandto.PlanDTO {
	return &plandto.PlanDTO{
		ID:          "profesyonel",
		Name:        "Profesyonel",
		BillingType: "subscription",
		Limits:      map[string]int64{"trainings": 20},
		Features:    map[string]bool{"qr_verification": true},
		IsActive:    true,
	}
}

type planHandlerMocks struct {
	create *mockCreatePlanUC
	update *mockUpdatePlanUC
	get    *mockGetPlanUC
	list   *mockListPlansUC
	delete *mockDeletePlanUC
}

func newTestPlanHandler() (*PlanHandler, *planHandlerMocks) {
	m := &planHandlerMocks{
		create: &mockCreatePlanUC{result: createTestPlanDTO()},
		update: &mockUpdatePlanUC{result: createTestPlanDTO()},
		get:    &mockGetPlanUC{result: createTestPlanDTO()},
		list:   &mockListPlansUC{result: []*plandto.PlanDTO{createTestPlanDTO()}},
		delete: &mockDeletePlanUC{},
	}
	return NewPlanHandler(m.create, m.update, m.get, m.list, m.delete, testutil.NewMockLogger()), m
}

// =====================================================================
// TestPlanHandler_CreatePlan
// =====================================================================

func TestPlanHandler_CreatePlan_Success(t *testing.T) {
	handler, mocks := newTestPlanHandler()

	reqBody := map[string]interface{}{
		"id":       "profesyonel",
		"name":     "Profesyonel",
		"limits":   `{"trainings": 20}`,
		"features": map[string]bool{"qr_verification": true},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/plans", reqBody)

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "profesyonel", mocks.create.got.ID)
	assert.JSONEq(t, `"{\"trainings\": 20}"`, string(mocks.create.got.Limits))

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var plan plandto.PlanDTO
	require.NoError(t, json.Unmarshal(resp.Data, &plan))
	assert.Equal(t, int64(20), plan.Limits["trainings"])
}

func TestPlanHandler_CreatePlan_MalformedBody(t *testing.T) {
	handler, _ := newTestPlanHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/plans", "not an object")

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanHandler_CreatePlan_UseCaseError(t *testing.T) {
	handler, mocks := newTestPlanHandler()
	mocks.create.err = errors.NewConflictError("plan already exists", "profesyonel")

	c, w := testutil.NewTestContext(http.MethodPost, "/plans", map[string]string{"id": "profesyonel", "name": "P"})

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "profesyonel", resp.Error.Details)
}

// =====================================================================
// TestPlanHandler_GetPlan
// =====================================================================

func TestPlanHandler_GetPlan_Success(t *testing.T) {
	handler, _ := newTestPlanHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/plans/profesyonel", nil)
	testutil.SetURLParam(c, "id", "profesyonel")

	handler.GetPlan(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlanHandler_GetPlan_NotFound(t *testing.T) {
	handler, mocks := newTestPlanHandler()
	mocks.get.err = errors.NewNotFoundError("plan not found")

	c, w := testutil.NewTestContext(http.MethodGet, "/plans/missing", nil)
	testutil.SetURLParam(c, "id", "missing")

	handler.GetPlan(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestPlanHandler_UpdatePlan
// =====================================================================

func TestPlanHandler_UpdatePlan_Sparse(t *testing.T) {
	handler, mocks := newTestPlanHandler()

	c, w := testutil.NewTestContext(http.MethodPatch, "/plans/profesyonel", map[string]interface{}{
		"name":   "Pro",
		"limits": map[string]int{"designs": 5},
	})
	testutil.SetURLParam(c, "id", "profesyonel")

	handler.UpdatePlan(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "profesyonel", mocks.update.got.ID)
	require.NotNil(t, mocks.update.got.Name)
	assert.Equal(t, "Pro", *mocks.update.got.Name)
	assert.Nil(t, mocks.update.got.Price)
	assert.Nil(t, mocks.update.got.Features)
	assert.JSONEq(t, `{"designs":5}`, string(mocks.update.got.Limits))
}

func TestPlanHandler_UpdatePlan_MissingID(t *testing.T) {
	handler, _ := newTestPlanHandler()

	c, w := testutil.NewTestContext(http.MethodPatch, "/plans/", map[string]string{"name": "x"})

	handler.UpdatePlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestPlanHandler_ListPlans / DeletePlan
// =====================================================================

func TestPlanHandler_ListPlans_ActiveFilter(t *testing.T) {
	handler, mocks := newTestPlanHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/plans", nil)
	testutil.SetQueryParams(c, map[string]string{"active": "true"})

	handler.ListPlans(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mocks.list.onlyActive)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var plans []plandto.PlanDTO
	require.NoError(t, json.Unmarshal(resp.Data, &plans))
	assert.Len(t, plans, 1)
}

func TestPlanHandler_DeletePlan_InUse(t *testing.T) {
	handler, mocks := newTestPlanHandler()
	mocks.delete.err = errors.NewConflictError("plan has active subscriptions")

	c, w := testutil.NewTestContext(http.MethodDelete, "/plans/profesyonel", nil)
	testutil.SetURLParam(c, "id", "profesyonel")

	handler.DeletePlan(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
