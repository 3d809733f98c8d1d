package calculator

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"jr/model"
)

var testWater = model.Fluid{
	Name: "water", Density: 993.0, SpecificHeat: 4186.0,
	ThermalConductivity: 0.628, Viscosity: 0.0007,
}

var testCopper = model.Material{Name: "copper", ThermalConductivity: 401.0}

func TestReynolds(t *testing.T) {
	// Re = 993·1.0·0.02 / 0.0007
	assert.InDelta(t, 28371.4, Reynolds(testWater, 1.0, 0.01), 0.5)
	assert.Equal(t, 0.0, Reynolds(testWater, 0, 0.01))
}

func TestPrandtl(t *testing.T) {
	// Pr = 4186·0.0007 / 0.628
	assert.InDelta(t, 4.6659, Prandtl(testWater), 1e-3)
}

func TestNusselt(t *testing.T) {
	re, pr := 28371.4, 4.6659
	want := 0.023 * math.Pow(re, 0.8) * math.Pow(pr, 0.4)
	assert.InDelta(t, want, Nusselt(re, pr), 1e-9)

	// Re 或 Pr 非正时取零，层流不建模
	assert.Equal(t, 0.0, Nusselt(0, pr))
	assert.Equal(t, 0.0, Nusselt(re, 0))
	assert.Equal(t, 0.0, Nusselt(-1, pr))
}

// 流速为零时 Re=0, Nu=0，h 收在正数下限，不是负数也不是 NaN
func TestHInsideZeroVelocity(t *testing.T) {
	h := HInside(testWater, 0, 0.01)
	assert.Equal(t, hInsideMin, h)
	assert.False(t, math.IsNaN(h))
}

func TestConductionResistanceInvertedRadii(t *testing.T) {
	g := model.Geometry{InnerRadius: 0.012, OuterRadius: 0.01, Length: 10.0}
	assert.True(t, math.IsInf(ConductionResistance(g, testCopper), 1))

	// 半径相等同样按开路处理
	g = model.Geometry{InnerRadius: 0.01, OuterRadius: 0.01, Length: 10.0}
	assert.True(t, math.IsInf(ConductionResistance(g, testCopper), 1))
}

func TestConductionResistance(t *testing.T) {
	g := model.Geometry{InnerRadius: 0.01, OuterRadius: 0.012, Length: 10.0}
	want := math.Log(1.2) / (2.0 * math.Pi * 401.0 * 10.0)
	assert.InDelta(t, want, ConductionResistance(g, testCopper), 1e-12)
}

func TestConvectionResistanceGuards(t *testing.T) {
	assert.True(t, math.IsInf(ConvectionResistance(0, 1.0), 1))
	assert.True(t, math.IsInf(ConvectionResistance(10.0, 0), 1))
	assert.InDelta(t, 0.1, ConvectionResistance(10.0, 1.0), 1e-12)
}

func TestPipeHeatTransferEqualTemperatures(t *testing.T) {
	g := NewGeometry(0.02, 0.002, 10.0)
	ht := PipeHeatTransfer(60.0, 60.0, g, 1.0, testCopper, testWater, 10.0)
	assert.Equal(t, 0.0, ht.LossW)
	assert.True(t, ht.Network.RTotal > 0)
}

// 流体比环境冷时损失为负（吸热），保留符号不截断
func TestPipeHeatTransferColdFluid(t *testing.T) {
	g := NewGeometry(0.02, 0.002, 10.0)
	ht := PipeHeatTransfer(10.0, 20.0, g, 1.0, testCopper, testWater, 10.0)
	assert.True(t, ht.LossW < 0)
}

// 几何倒置时总热阻无穷大，热流为零
func TestPipeHeatTransferOpenCircuit(t *testing.T) {
	g := model.Geometry{InnerRadius: 0.012, OuterRadius: 0.01, Length: 10.0}
	ht := PipeHeatTransfer(80.0, 20.0, g, 1.0, testCopper, testWater, 10.0)
	assert.True(t, math.IsInf(ht.Network.RTotal, 1))
	assert.Equal(t, 0.0, ht.LossW)
}

func TestPipeHeatTransferTypical(t *testing.T) {
	g := NewGeometry(0.02, 0.002, 10.0)
	ht := PipeHeatTransfer(80.0, 20.0, g, 1.061, testCopper, testWater, 10.0)
	fmt.Println("Re:", ht.Reynolds, "Nu:", ht.Nusselt, "RTotal:", ht.Network.RTotal, "Loss:", ht.LossW)
	assert.True(t, ht.Reynolds > 3000)
	assert.True(t, ht.LossW > 0)
	// 外侧对流热阻占主导
	assert.True(t, ht.Network.ROutside > ht.Network.RInside)
	assert.True(t, ht.Network.ROutside > ht.Network.RWall)
}
