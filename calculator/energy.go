package calculator

import (
	"errors"

	"jr/model"
)

// 能量平衡计算
// 理想功率按目标温升一次算出，管道损失按目标温度下的工况取一次
// 损失为负（环境向流体传热）时不抵扣功率，下限取零

var ErrZeroDuration = errors.New("升温时长必须大于零")

type PowerBudget struct {
	EnergyJ   float64 `json:"energy_j"`   // 升温所需热量, J
	IdealW    float64 `json:"ideal_w"`    // 理想加热功率, W
	LossW     float64 `json:"loss_w"`     // 目标温度下的管道热损失, W
	RequiredW float64 `json:"required_w"` // 需求功率 = 理想功率 + max(0, 损失), W
}

// 体积换算质量 m = L/1000 · ρ
func MassFromLiters(liters float64, f model.Fluid) float64 {
	return liters / 1000.0 * f.Density
}

// 升温热量 Q = m·cp·ΔT
func HeatEnergy(mass, specificHeat, deltaT float64) float64 {
	return mass * specificHeat * deltaT
}

// 在指定时长内把液体加热到目标温度的功率需求
// duration 为零是唯一需要显式上报的配置错误，不做静默无穷大
func NewPowerBudget(liters, deltaT, duration float64, f model.Fluid, lossW float64) (PowerBudget, error) {
	if duration <= 0 {
		return PowerBudget{}, ErrZeroDuration
	}

	mass := MassFromLiters(liters, f)
	energy := HeatEnergy(mass, f.SpecificHeat, deltaT)

	budget := PowerBudget{
		EnergyJ: energy,
		IdealW:  energy / duration,
		LossW:   lossW,
	}
	budget.RequiredW = budget.IdealW
	if lossW > 0 {
		budget.RequiredW += lossW
	}
	return budget, nil
}

// 单程温升 ΔT = P / (ṁ·cp)，ṁ = 流量·ρ
// 流量为零时返回零，不做除法
func DeltaTPerPass(requiredW, flowM3S float64, f model.Fluid) (massFlow, deltaT float64) {
	massFlow = flowM3S * f.Density
	if massFlow <= 0 || f.SpecificHeat <= 0 {
		return 0, 0
	}
	return massFlow, requiredW / (massFlow * f.SpecificHeat)
}

// 一阶集总热容时间常数 τ = R·m·cp
// 集总假设不在这一层校验（不计算毕渥数）
func TimeConstant(rTotal, mass, specificHeat float64) float64 {
	return rTotal * mass * specificHeat
}
