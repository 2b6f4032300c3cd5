package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkskyoregon/sqm-backend-go/internal/category"
	"github.com/darkskyoregon/sqm-backend-go/internal/models"
)

func TestParse_KnownKeys(t *testing.T) {
	for _, cfg := range category.All() {
		key, err := category.Parse(string(cfg.Key))
		require.NoError(t, err)
		assert.Equal(t, cfg.Key, key)
	}
}

func TestParse_UnknownKeyFailsFast(t *testing.T) {
	_, err := category.Parse("moon_phase")
	assert.ErrorIs(t, err, category.ErrUnknownCategory)

	_, err = category.Parse("")
	assert.ErrorIs(t, err, category.ErrUnknownCategory)
}

func TestAll_FixedPresentationOrder(t *testing.T) {
	all := category.All()
	require.Len(t, all, 5)
	assert.Equal(t, category.ClearNightsBrightness, all[0].Key)
	assert.Equal(t, category.CloudyNightsBrightness, all[1].Key)
	assert.Equal(t, category.LongTermTrends, all[2].Key)
	assert.Equal(t, category.MilkyWayVisibility, all[3].Key)
	assert.Equal(t, category.PercentClearNights, all[4].Key)
}

func TestConfigs_ScatterOnlyForBrightnessCategories(t *testing.T) {
	assert.NotNil(t, category.Get(category.ClearNightsBrightness).Scatter)
	assert.NotNil(t, category.Get(category.CloudyNightsBrightness).Scatter)
	assert.Nil(t, category.Get(category.LongTermTrends).Scatter)
	assert.Nil(t, category.Get(category.MilkyWayVisibility).Scatter)
	assert.Nil(t, category.Get(category.PercentClearNights).Scatter)
}

func TestConfigs_ClearNightsThresholdLine(t *testing.T) {
	clear := category.Get(category.ClearNightsBrightness)
	require.NotNil(t, clear.Scatter.ThresholdX)
	assert.Equal(t, category.DarkSkyQualifiedThreshold, *clear.Scatter.ThresholdX)

	cloudy := category.Get(category.CloudyNightsBrightness)
	assert.Nil(t, cloudy.Scatter.ThresholdX)
}

func TestConfigs_ColorScales(t *testing.T) {
	assert.Equal(t, category.ScaleBinTable, category.Get(category.ClearNightsBrightness).ColorScale)
	assert.Equal(t, models.ColMedianBrightness, category.Get(category.ClearNightsBrightness).ColorColumn)
	assert.Equal(t, category.ScaleDiverging, category.Get(category.LongTermTrends).ColorScale)
	assert.Equal(t, category.ScaleMono, category.Get(category.PercentClearNights).ColorScale)
}

func TestConfigs_TickModes(t *testing.T) {
	assert.Equal(t, "log", category.Get(category.ClearNightsBrightness).Bar.TickMode)
	assert.Equal(t, "linear", category.Get(category.LongTermTrends).Bar.TickMode)
	assert.Equal(t, "linear", category.Get(category.PercentClearNights).Bar.TickMode)
}
