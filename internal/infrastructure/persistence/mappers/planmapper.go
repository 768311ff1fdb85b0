package mappers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gorm.io/datatypes"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
)

// PlanMapper is the single place where limits and features are
// (de)serialized.
type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*plan.Plan, error)
	ToModel(entity *plan.Plan) (*models.PlanModel, error)
	ToEntities(models []*models.PlanModel) ([]*plan.Plan, error)
}

type planMapper struct{}

func NewPlanMapper() PlanMapper {
	return &planMapper{}
}

func (m *planMapper) ToEntity(model *models.PlanModel) (*plan.Plan, error) {
	if model == nil {
		return nil, nil
	}

	limits, err := DecodeLimits([]byte(model.Limits))
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", model.ID, err)
	}
	features, err := DecodeFeatures([]byte(model.Features))
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", model.ID, err)
	}

	return plan.ReconstructPlan(
		model.ID,
		model.Name,
		model.Price,
		model.YearlyPrice,
		plan.BillingType(model.BillingType),
		model.Description,
		limits,
		features,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *planMapper) ToModel(entity *plan.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	limitsJSON, err := json.Marshal(entity.Limits())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal limits: %w", err)
	}
	featuresJSON, err := json.Marshal(entity.Features())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal features: %w", err)
	}

	return &models.PlanModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Price:       entity.Price(),
		YearlyPrice: entity.YearlyPrice(),
		BillingType: string(entity.BillingType()),
		Description: entity.Description(),
		Limits:      datatypes.JSON(limitsJSON),
		Features:    datatypes.JSON(featuresJSON),
		IsActive:    entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *planMapper) ToEntities(planModels []*models.PlanModel) ([]*plan.Plan, error) {
	entities := make([]*plan.Plan, 0, len(planModels))
	for i, model := range planModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map plan at index %d: %w", i, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// DecodeLimits accepts raw JSON bytes, a JSON string (including a
// double-encoded one as written by older clients) or an already decoded
// map. Empty input yields an empty mapping.
func DecodeLimits(raw interface{}) (plan.Limits, error) {
	m, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid limits: %w", err)
	}
	limits := make(plan.Limits, len(m))
	for k, v := range m {
		n, err := toInt64(v)
		if err != nil {
			return nil, fmt.Errorf("invalid limits: %s: %w", k, err)
		}
		limits[k] = n
	}
	return limits, nil
}

// DecodeFeatures accepts the same inputs as DecodeLimits.
func DecodeFeatures(raw interface{}) (plan.Features, error) {
	m, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid features: %w", err)
	}
	features := make(plan.Features, len(m))
	for k, v := range m {
		b, err := toBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid features: %s: %w", k, err)
		}
		features[k] = b
	}
	return features, nil
}

func decodeObject(raw interface{}) (map[string]interface{}, error) {
	switch v := raw.(type) {
	case nil:
		return map[string]interface{}{}, nil
	case map[string]interface{}:
		return v, nil
	case plan.Limits:
		out := make(map[string]interface{}, len(v))
		for k, n := range v {
			out[k] = n
		}
		return out, nil
	case plan.Features:
		out := make(map[string]interface{}, len(v))
		for k, b := range v {
			out[k] = b
		}
		return out, nil
	case datatypes.JSON:
		return decodeBytes([]byte(v))
	case json.RawMessage:
		return decodeBytes([]byte(v))
	case []byte:
		return decodeBytes(v)
	case string:
		return decodeBytes([]byte(v))
	default:
		return nil, fmt.Errorf("unsupported type %T", raw)
	}
}

func decodeBytes(b []byte) (map[string]interface{}, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return map[string]interface{}{}, nil
	}

	// a JSON string holding the object
	if b[0] == '"' {
		var inner string
		if err := json.Unmarshal(b, &inner); err != nil {
			return nil, err
		}
		return decodeBytes([]byte(inner))
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var m map[string]interface{}
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]interface{}{}
	}
	return m, nil
}

func toInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, err
		}
		return floatToInt64(f)
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return floatToInt64(n)
	case string:
		return strconv.ParseInt(n, 10, 64)
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

func floatToInt64(f float64) (int64, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("not an integer: %v", f)
	}
	return int64(f), nil
}

func toBool(v interface{}) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case json.Number:
		return b.String() != "0", nil
	case int:
		return b != 0, nil
	case string:
		return strconv.ParseBool(b)
	default:
		return false, fmt.Errorf("not a boolean: %T", v)
	}
}
