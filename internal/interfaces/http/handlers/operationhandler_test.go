package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	opdto "siloops/internal/application/operation/dto"
	opUsecases "siloops/internal/application/operation/usecases"
	subUsecases "siloops/internal/application/subscription/usecases"
	"siloops/internal/domain/subscription"
	"siloops/internal/interfaces/http/handlers/testutil"
	"siloops/internal/shared/constants"
	"siloops/internal/shared/errors"
)

type mockCreateOperationUC struct {
	result *opdto.OperationDTO
	err    error
}

func (m *mockCreateOperationUC) Execute(ctx context.Context, companyID string, req *opdto.CreateOperationDTO) (*opdto.OperationDTO, error) {
	return m.result, m.err
}

type mockListOperationsUC struct {
	items []*opdto.OperationDTO
	total int64
	err   error
}

func (m *mockListOperationsUC) Execute(ctx context.Context, companyID string, req *opdto.ListOperationsDTO) ([]*opdto.OperationDTO, int64, error) {
	return m.items, m.total, m.err
}

type mockGetOperationUC struct {
	result *opdto.OperationDTO
	err    error
}

func (m *mockGetOperationUC) Execute(ctx context.Context, companyID, operationSID string) (*opdto.OperationDTO, error) {
	return m.result, m.err
}

type mockDeleteOperationUC struct {
	err error
}

func (m *mockDeleteOperationUC) Execute(ctx context.Context, companyID, operationSID string) error {
	return m.err
}

func newTestOperationHandler(
	createUC createOperationUseCase,
	listUC listOperationsUseCase,
	getUC getOperationUseCase,
	deleteUC deleteOperationUseCase,
) *OperationHandler {
	return NewOperationHandler(createUC, listUC, getUC, deleteUC, testutil.NewMockLogger())
}

func testOperationDTO() *opdto.OperationDTO {
	return &opdto.OperationDTO{
		ID:         "op_abc123",
		CompanyID:  "cmp_test123",
		Type:       "delivery",
		Cereal:     "wheat",
		QuantityKG: 1500,
		OccurredAt: time.Now().UTC(),
		CreatedAt:  time.Now().UTC(),
	}
}

func TestOperationHandler_Create_Success(t *testing.T) {
	mockUC := &mockCreateOperationUC{result: testOperationDTO()}
	handler := newTestOperationHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/operations", opdto.CreateOperationDTO{
		Type:       "delivery",
		Cereal:     "wheat",
		QuantityKG: 1500,
	})
	testutil.SetAuthContext(c, "usr_1", "cmp_test123", constants.RoleMember)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestOperationHandler_Create_QuotaExceededBody(t *testing.T) {
	mockUC := &mockCreateOperationUC{err: &opUsecases.QuotaExceededError{
		Decision: &subUsecases.AdmissionDecision{
			CanCreate:    false,
			PlanID:       subscription.PlanFree,
			PlanName:     "Free",
			CurrentCount: 50,
			Limit:        50,
			Remaining:    0,
			ErrorMessage: "Monthly limit of 50 operations reached for plan free",
		},
	}}
	handler := newTestOperationHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/operations", opdto.CreateOperationDTO{
		Type:       "withdrawal",
		Cereal:     "corn",
		QuantityKG: 800,
	})
	testutil.SetAuthContext(c, "usr_1", "cmp_test123", constants.RoleMember)

	handler.Create(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body struct {
		Error        string `json:"error"`
		Subscription struct {
			Plan                string `json:"plan"`
			CurrentCount        int    `json:"currentCount"`
			Limit               int    `json:"limit"`
			RemainingOperations int    `json:"remainingOperations"`
		} `json:"subscription"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Monthly limit of 50 operations reached for plan free", body.Error)
	assert.Equal(t, "free", body.Subscription.Plan)
	assert.Equal(t, 50, body.Subscription.CurrentCount)
	assert.Equal(t, 50, body.Subscription.Limit)
	assert.Equal(t, 0, body.Subscription.RemainingOperations)

	// the quota rejection body has no envelope fields
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "success")
}

func TestOperationHandler_Create_MissingCompanyContext(t *testing.T) {
	handler := newTestOperationHandler(&mockCreateOperationUC{}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/operations", opdto.CreateOperationDTO{
		Type:       "delivery",
		Cereal:     "wheat",
		QuantityKG: 100,
	})

	handler.Create(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOperationHandler_Create_InvalidBody(t *testing.T) {
	handler := newTestOperationHandler(&mockCreateOperationUC{}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/operations", map[string]interface{}{
		"type":       "transfer",
		"cereal":     "wheat",
		"quantityKg": 100,
	})
	testutil.SetAuthContext(c, "usr_1", "cmp_test123", constants.RoleMember)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOperationHandler_Create_CheckerFailureIs500(t *testing.T) {
	mockUC := &mockCreateOperationUC{err: errors.NewInternalError("failed to load subscription state")}
	handler := newTestOperationHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/operations", opdto.CreateOperationDTO{
		Type:       "delivery",
		Cereal:     "soy",
		QuantityKG: 200,
	})
	testutil.SetAuthContext(c, "usr_1", "cmp_test123", constants.RoleMember)

	handler.Create(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestOperationHandler_List_Success(t *testing.T) {
	mockUC := &mockListOperationsUC{items: []*opdto.OperationDTO{testOperationDTO()}, total: 1}
	handler := newTestOperationHandler(nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/operations", nil)
	testutil.SetAuthContext(c, "usr_1", "cmp_test123", constants.RoleMember)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var list struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		PageSize   int   `json:"page_size"`
		TotalPages int   `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, int64(1), list.Total)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 20, list.PageSize)
	assert.Equal(t, 1, list.TotalPages)
}

func TestOperationHandler_Get_NotFound(t *testing.T) {
	mockUC := &mockGetOperationUC{err: errors.NewNotFoundError("operation not found")}
	handler := newTestOperationHandler(nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/operations/op_missing", nil)
	testutil.SetAuthContext(c, "usr_1", "cmp_test123", constants.RoleMember)
	testutil.SetURLParam(c, "id", "op_missing")

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOperationHandler_Delete_Success(t *testing.T) {
	handler := newTestOperationHandler(nil, nil, nil, &mockDeleteOperationUC{})

	c, w := testutil.NewTestContext(http.MethodDelete, "/operations/op_abc123", nil)
	testutil.SetAuthContext(c, "usr_1", "cmp_test123", constants.RoleMember)
	testutil.SetURLParam(c, "id", "op_abc123")

	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
