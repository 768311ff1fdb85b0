package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	subdto "github.com/seyidturgut/certifix.ai-sub001/internal/application/subscription/dto"
	subuc "github.com/seyidturgut/certifix.ai-sub001/internal/application/subscription/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/handlers/testutil"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockAssignSubscriptionUC struct {
	err error
	got subuc.AssignSubscriptionCommand
}

func (m *mockAssignSubscriptionUC) Execute(ctx context.Context, cmd subuc.AssignSubscriptionCommand) (*subdto.SubscriptionDTO, error) {
	m.got = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &subdto.SubscriptionDTO{ID: 1, UserID: cmd.UserID, PackageID: cmd.PackageID, Status: "ACTIVE"}, nil
}

type mockChangeStatusUC struct {
	got subuc.ChangeStatusCommand
}

func (m *mockChangeStatusUC) Execute(ctx context.Context, cmd subuc.ChangeStatusCommand) (*subdto.SubscriptionDTO, error) {
	m.got = cmd
	return &subdto.SubscriptionDTO{ID: cmd.ID, Status: cmd.Status}, nil
}

// =====================================================================
// TestSubscriptionHandler
// =====================================================================

func TestSubscriptionHandler_AssignSubscription(t *testing.T) {
	assign := &mockAssignSubscriptionUC{}
	handler := NewSubscriptionHandler(assign, &mockChangeStatusUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions", map[string]string{
		"user_id":    "user-1",
		"package_id": "kurumsal",
	})

	handler.AssignSubscription(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "kurumsal", assign.got.PackageID)
}

func TestSubscriptionHandler_AssignSubscription_UnknownPlan(t *testing.T) {
	assign := &mockAssignSubscriptionUC{err: errors.NewNotFoundError("plan not found")}
	handler := NewSubscriptionHandler(assign, &mockChangeStatusUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions", map[string]string{
		"user_id":    "user-1",
		"package_id": "nope",
	})

	handler.AssignSubscription(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubscriptionHandler_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       map[string]string
		wantStatus int
	}{
		{name: "cancel", id: "7", body: map[string]string{"status": "CANCELLED"}, wantStatus: http.StatusOK},
		{name: "unknown status", id: "7", body: map[string]string{"status": "PAUSED"}, wantStatus: http.StatusBadRequest},
		{name: "non-numeric id", id: "abc", body: map[string]string{"status": "ACTIVE"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := &mockChangeStatusUC{}
			handler := NewSubscriptionHandler(&mockAssignSubscriptionUC{}, change, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPatch, "/subscriptions/"+tt.id+"/status", tt.body)
			testutil.SetURLParam(c, "id", tt.id)

			handler.UpdateStatus(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, uint(7), change.got.ID)
				assert.Equal(t, "CANCELLED", change.got.Status)
			}
		})
	}
}
