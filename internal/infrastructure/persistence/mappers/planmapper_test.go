package mappers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
)

func TestDecodeLimits_Inputs(t *testing.T) {
	want := plan.Limits{"trainings": 1, "designs": 999999}

	tests := []struct {
		name string
		raw  interface{}
	}{
		{"raw bytes", []byte(`{"trainings":1,"designs":999999}`)},
		{"datatypes json", datatypes.JSON(`{"trainings":1,"designs":999999}`)},
		{"json string", `{"trainings":1,"designs":999999}`},
		{"double encoded", `"{\"trainings\":1,\"designs\":999999}"`},
		{"decoded map", map[string]interface{}{"trainings": float64(1), "designs": 999999}},
		{"string numbers", map[string]interface{}{"trainings": "1", "designs": "999999"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeLimits(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeLimits_Empty(t *testing.T) {
	for _, raw := range []interface{}{nil, []byte(nil), "", "null", []byte("  ")} {
		got, err := DecodeLimits(raw)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestDecodeLimits_Invalid(t *testing.T) {
	_, err := DecodeLimits(`{"trainings":1.5}`)
	assert.ErrorContains(t, err, "trainings")

	_, err = DecodeLimits(`[1,2]`)
	assert.Error(t, err)

	_, err = DecodeLimits(42)
	assert.ErrorContains(t, err, "unsupported type")
}

func TestDecodeFeatures(t *testing.T) {
	got, err := DecodeFeatures(`{"qr_verification":true,"pdf_export":false,"legacy":"true","flag":1}`)
	require.NoError(t, err)
	assert.Equal(t, plan.Features{"qr_verification": true, "pdf_export": false, "legacy": true, "flag": true}, got)
}

func TestPlanMapper_RoundTrip(t *testing.T) {
	m := NewPlanMapper()

	limits := plan.Limits{
		plan.LimitTrainings:               3,
		plan.LimitCertificatesPerTraining: 500,
		plan.LimitStorageMB:               plan.Unlimited,
	}
	features := plan.Features{"qr_verification": true, "custom_branding": false}
	entity, err := plan.NewPlan("profesyonel", "Profesyonel", plan.BillingSubscription, limits, features)
	require.NoError(t, err)
	price := 99.5
	require.NoError(t, entity.SetPrice(&price))

	model, err := m.ToModel(entity)
	require.NoError(t, err)

	var stored map[string]int64
	require.NoError(t, json.Unmarshal(model.Limits, &stored))
	assert.Equal(t, int64(500), stored[plan.LimitCertificatesPerTraining])

	back, err := m.ToEntity(model)
	require.NoError(t, err)
	assert.Equal(t, limits, back.Limits())
	assert.Equal(t, features, back.Features())
	assert.Equal(t, 99.5, *back.Price())
	assert.Equal(t, plan.BillingSubscription, back.BillingType())
}

func TestPlanMapper_ToEntity_BadJSON(t *testing.T) {
	_, err := NewPlanMapper().ToEntity(&models.PlanModel{ID: "x", Limits: datatypes.JSON(`{oops`)})
	assert.ErrorContains(t, err, "plan x")
}

func TestPlanMapper_Nil(t *testing.T) {
	m := NewPlanMapper()
	e, err := m.ToEntity(nil)
	assert.NoError(t, err)
	assert.Nil(t, e)
}
