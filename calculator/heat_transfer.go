package calculator

import (
	"math"

	"jr/model"
)

// 管壁传热计算
// 内侧对流 -> 管壁导热 -> 外侧对流，三个热阻串联
// 除零和几何倒置一律返回 +Inf 热阻，代数上传播为零热流，不会 panic

// 内侧对流换热系数下限，保证下游热阻有限
const hInsideMin = 1e-6

type ResistanceNetwork struct {
	RInside  float64 `json:"r_inside"`  // 内侧对流热阻, K/W
	RWall    float64 `json:"r_wall"`    // 管壁导热热阻, K/W
	ROutside float64 `json:"r_outside"` // 外侧对流热阻, K/W
	RTotal   float64 `json:"r_total"`   // 串联总热阻, K/W
}

type HeatTransfer struct {
	Reynolds float64 `json:"reynolds"`
	Prandtl  float64 `json:"prandtl"`
	Nusselt  float64 `json:"nusselt"`
	HInside  float64 `json:"h_inside"`  // W/(m²·K)
	HOutside float64 `json:"h_outside"` // W/(m²·K)

	Network ResistanceNetwork `json:"network"`

	// 热损失, W。流体温度低于环境时为负（吸热），保留符号
	LossW float64 `json:"loss_w"`
}

// 雷诺数 Re = ρ·v·D / μ
func Reynolds(f model.Fluid, velocity, innerRadius float64) float64 {
	if f.Viscosity <= 0 {
		return 0
	}
	return f.Density * velocity * 2.0 * innerRadius / f.Viscosity
}

// 普朗特数 Pr = cp·μ / k
func Prandtl(f model.Fluid) float64 {
	if f.ThermalConductivity <= 0 {
		return 0
	}
	return f.SpecificHeat * f.Viscosity / f.ThermalConductivity
}

// 努塞尔数，Dittus-Boelter 关联式 Nu = 0.023·Re^0.8·Pr^0.4
// 仅适用于湍流（Re > 3000 左右），层流工况不单独建模，Re 或 Pr 非正时取零
func Nusselt(re, pr float64) float64 {
	if re <= 0 || pr <= 0 {
		return 0
	}
	return 0.023 * math.Pow(re, 0.8) * math.Pow(pr, 0.4)
}

// 内侧对流换热系数 h = Nu·k / D，带正数下限
func HInside(f model.Fluid, velocity, innerRadius float64) float64 {
	d := 2.0 * innerRadius
	if d <= 0 {
		return hInsideMin
	}
	re := Reynolds(f, velocity, innerRadius)
	pr := Prandtl(f)
	h := Nusselt(re, pr) * f.ThermalConductivity / d
	if h < hInsideMin {
		return hInsideMin
	}
	return h
}

// 对流热阻 R = 1 / (h·A)
func ConvectionResistance(h, area float64) float64 {
	if h <= 0 || area <= 0 {
		return math.Inf(1)
	}
	return 1.0 / (h * area)
}

// 圆柱壁径向导热热阻 R = ln(r2/r1) / (2π·k·L)
// 几何倒置按开路处理
func ConductionResistance(g model.Geometry, m model.Material) float64 {
	if g.OuterRadius <= g.InnerRadius || g.InnerRadius <= 0 || g.Length <= 0 || m.ThermalConductivity <= 0 {
		return math.Inf(1)
	}
	return math.Log(g.OuterRadius/g.InnerRadius) / (2.0 * math.Pi * m.ThermalConductivity * g.Length)
}

// 管壁传热综合计算
// hOutside 为零或负时使用配置的默认值（环境空气自然对流量级）
func PipeHeatTransfer(fluidTemp, ambientTemp float64, g model.Geometry, velocity float64, mat model.Material, f model.Fluid, hOutside float64) HeatTransfer {
	if hOutside <= 0 {
		hOutside = calCfg.HOutside
	}

	ht := HeatTransfer{
		Reynolds: Reynolds(f, velocity, g.InnerRadius),
		Prandtl:  Prandtl(f),
		HOutside: hOutside,
	}
	ht.Nusselt = Nusselt(ht.Reynolds, ht.Prandtl)
	ht.HInside = HInside(f, velocity, g.InnerRadius)

	areaInside := 2.0 * math.Pi * g.InnerRadius * g.Length
	areaOutside := 2.0 * math.Pi * g.OuterRadius * g.Length

	ht.Network = ResistanceNetwork{
		RInside:  ConvectionResistance(ht.HInside, areaInside),
		RWall:    ConductionResistance(g, mat),
		ROutside: ConvectionResistance(hOutside, areaOutside),
	}
	ht.Network.RTotal = ht.Network.RInside + ht.Network.RWall + ht.Network.ROutside

	// 总热阻无穷大时热流为零，温差为零时同样为零
	delta := fluidTemp - ambientTemp
	if delta == 0 || math.IsInf(ht.Network.RTotal, 1) {
		return ht
	}
	ht.LossW = delta / ht.Network.RTotal
	return ht
}
