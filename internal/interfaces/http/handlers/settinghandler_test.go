package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	settinguc "github.com/seyidturgut/certifix.ai-sub001/internal/application/setting/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/handlers/testutil"
)

type mockGetSettingsUC struct {
	result map[string]string
	err    error
}

func (m *mockGetSettingsUC) Execute(ctx context.Context) (map[string]string, error) {
	return m.result, m.err
}

type mockUpdateSettingsUC struct {
	err error
	got settinguc.UpdateSettingsCommand
}

func (m *mockUpdateSettingsUC) Execute(ctx context.Context, cmd settinguc.UpdateSettingsCommand) (map[string]string, error) {
	m.got = cmd
	return cmd.Settings, m.err
}

func TestSettingHandler_GetSettings(t *testing.T) {
	handler := NewSettingHandler(
		&mockGetSettingsUC{result: map[string]string{"site.name": "Certifix"}},
		&mockUpdateSettingsUC{},
		testutil.NewMockLogger(),
	)

	c, w := testutil.NewTestContext(http.MethodGet, "/settings", nil)

	handler.GetSettings(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.JSONEq(t, `{"site.name":"Certifix"}`, string(resp.Data))
}

func TestSettingHandler_UpdateSettings(t *testing.T) {
	update := &mockUpdateSettingsUC{}
	handler := NewSettingHandler(&mockGetSettingsUC{}, update, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/settings", map[string]interface{}{
		"settings": map[string]string{"site.name": "Certifix"},
	})

	handler.UpdateSettings(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Certifix", update.got.Settings["site.name"])
}

func TestSettingHandler_UpdateSettings_MissingMap(t *testing.T) {
	handler := NewSettingHandler(&mockGetSettingsUC{}, &mockUpdateSettingsUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/settings", map[string]interface{}{})

	handler.UpdateSettings(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
