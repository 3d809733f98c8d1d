package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jr/model"
	"jr/properties"
)

func testEnv() model.Env {
	return model.Env{
		FluidName:          "water",
		MaterialName:       "copper",
		InnerDiameter:      0.02,
		WallThickness:      0.002,
		PipeLength:         10.0,
		VolumeLiters:       200.0,
		InitialTemperature: 25.0,
		TargetTemperature:  80.0,
		TargetDuration:     1800.0,
		FlowRateLPM:        20.0,
		AmbientTemperature: 20.0,
	}
}

func TestCalculator(t *testing.T) {
	c := NewCalculator(properties.Load("", ""))
	require.NoError(t, c.SetEnv(testEnv()))
	require.NoError(t, c.Run())

	data := c.BuildData()
	assert.True(t, data.IdealPowerW > 0)
	assert.True(t, data.RequiredPowerW > data.IdealPowerW)
	assert.True(t, data.PipeLossW > 0)
	assert.True(t, data.Reynolds > 3000)
	assert.True(t, data.VelocityMS > 1.0)
	assert.True(t, data.DeltaTPerPass > 0)
	assert.True(t, data.TimeConstantS > 0)
	assert.True(t, len(data.Trace.Temps) > 1)
	// 功率留有裕量，仿真应到达目标温度
	assert.True(t, data.FinalTemperature >= 80.0)
}

func TestCalculatorUnknownFluid(t *testing.T) {
	c := NewCalculator(properties.Load("", ""))
	env := testEnv()
	env.FluidName = "mercury"
	assert.Error(t, c.SetEnv(env))
}

func TestCalculatorUnknownMaterial(t *testing.T) {
	c := NewCalculator(properties.Load("", ""))
	env := testEnv()
	env.MaterialName = "wood"
	assert.Error(t, c.SetEnv(env))
}

func TestCalculatorRunWithoutEnv(t *testing.T) {
	c := NewCalculator(properties.Load("", ""))
	assert.Error(t, c.Run())
}

func TestCalculatorZeroDuration(t *testing.T) {
	c := NewCalculator(properties.Load("", ""))
	env := testEnv()
	env.TargetDuration = 0
	require.NoError(t, c.SetEnv(env))
	assert.ErrorIs(t, c.Run(), ErrZeroDuration)
}

// 相同输入重复运行产生相同结果
func TestCalculatorRerun(t *testing.T) {
	c := NewCalculator(properties.Load("", ""))
	require.NoError(t, c.SetEnv(testEnv()))

	require.NoError(t, c.Run())
	first := c.BuildData()
	require.NoError(t, c.Run())
	second := c.BuildData()

	assert.Equal(t, first.RequiredPowerW, second.RequiredPowerW)
	assert.Equal(t, first.Trace.Temps, second.Trace.Temps)
}

// 流量为零时流速和单程温升为零，其余结果照常
func TestCalculatorZeroFlow(t *testing.T) {
	c := NewCalculator(properties.Load("", ""))
	env := testEnv()
	env.FlowRateLPM = 0
	require.NoError(t, c.SetEnv(env))
	require.NoError(t, c.Run())

	data := c.BuildData()
	assert.Equal(t, 0.0, data.VelocityMS)
	assert.Equal(t, 0.0, data.DeltaTPerPass)
	assert.True(t, data.IdealPowerW > 0)
}
