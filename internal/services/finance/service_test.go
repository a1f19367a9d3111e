package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletgg/internal/services/finance"
	"walletgg/internal/services/servicetest"
	"walletgg/internal/store"
)

func TestProfile_SurvivesRestart(t *testing.T) {
	home := t.TempDir()

	svc := finance.New(store.NewFileKV(home), servicetest.Logger())
	require.NoError(t, svc.Load())
	assert.True(t, svc.Profile().Empty())

	require.NoError(t, svc.SaveUserInfo(map[string]any{"age": 31, "salary": 4200000}))
	require.NoError(t, svc.SaveAnalysis(map[string]any{"risk": "moderate"}))

	again := finance.New(store.NewFileKV(home), servicetest.Logger())
	require.NoError(t, again.Load())
	p := again.Profile()
	assert.Equal(t, float64(31), p.UserInfo["age"])
	assert.Equal(t, "moderate", p.AnalysisResult["risk"])
}

func TestSave_StorageFailureKeepsMemory(t *testing.T) {
	kv := servicetest.NewKV(nil)
	svc := finance.New(kv, servicetest.Logger())
	require.NoError(t, svc.SaveUserInfo(map[string]any{"age": 31}))

	kv.FailPut = true
	err := svc.SaveUserInfo(map[string]any{"age": 99})
	require.ErrorIs(t, err, servicetest.ErrInjected)
	assert.Equal(t, 31, svc.Profile().UserInfo["age"])
}

func TestProfile_ReturnsCopy(t *testing.T) {
	svc := finance.New(servicetest.NewKV(nil), servicetest.Logger())
	require.NoError(t, svc.SaveUserInfo(map[string]any{"age": 31}))

	p := svc.Profile()
	p.UserInfo["age"] = 0
	assert.Equal(t, 31, svc.Profile().UserInfo["age"])
}

func TestClear(t *testing.T) {
	kv := servicetest.NewKV(nil)
	svc := finance.New(kv, servicetest.Logger())
	require.NoError(t, svc.SaveAnalysis(map[string]any{"risk": "low"}))

	require.NoError(t, svc.Clear())
	assert.True(t, svc.Profile().Empty())
	_, ok, err := kv.Get(finance.KeyProfile)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoad_CorruptEntry(t *testing.T) {
	svc := finance.New(servicetest.NewKV(map[string]string{finance.KeyProfile: "{"}), servicetest.Logger())
	assert.Error(t, svc.Load())
}
