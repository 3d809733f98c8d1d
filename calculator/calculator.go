package calculator

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"jr/model"
	"jr/properties"
)

// calculator 的接口定义

type Calculator interface {
	// 设置工艺参数
	SetEnv(env model.Env) error

	// 运行一次选型计算 + 升温仿真
	Run() error

	// 构建推送数据
	BuildData() *SizingData

	// 获取CalcHub
	GetCalcHub() *CalcHub
}

type calculator struct {
	tables *properties.Table
	env    model.Env

	// 每次 SetEnv 整体重建
	fluid    model.Fluid
	material model.Material
	geometry model.Geometry
	flow     model.FlowState

	// 每次 Run 整体重建
	transfer HeatTransfer
	budget   PowerBudget
	tau      float64
	trace    *Trace

	calcHub *CalcHub
}

func NewCalculator(tables *properties.Table) Calculator {
	return &calculator{
		tables:  tables,
		calcHub: NewCalcHub(),
	}
}

func (c *calculator) GetCalcHub() *CalcHub {
	return c.calcHub
}

func (c *calculator) SetEnv(env model.Env) error {
	fluid, ok := c.tables.Fluid(env.FluidName)
	if !ok {
		return fmt.Errorf("未知流体: %s", env.FluidName)
	}
	material, ok := c.tables.Material(env.MaterialName)
	if !ok {
		return fmt.Errorf("未知管材: %s", env.MaterialName)
	}

	c.env = env
	c.fluid = fluid
	c.material = material
	c.geometry = NewGeometry(env.InnerDiameter, env.WallThickness, env.PipeLength)
	c.flow = NewFlowState(env.FlowRateLPM, c.geometry)

	log.WithFields(log.Fields{
		"Fluid":              env.FluidName,
		"Material":           env.MaterialName,
		"InnerDiameter":      env.InnerDiameter,
		"WallThickness":      env.WallThickness,
		"PipeLength":         env.PipeLength,
		"VolumeLiters":       env.VolumeLiters,
		"InitialTemperature": env.InitialTemperature,
		"TargetTemperature":  env.TargetTemperature,
		"TargetDuration":     env.TargetDuration,
		"FlowRateLPM":        env.FlowRateLPM,
		"AmbientTemperature": env.AmbientTemperature,
	}).Info("设置工艺参数")
	return nil
}

// 一次完整求值：管壁传热 -> 能量平衡 -> 升温仿真
// 需求功率按目标温度下的损失取一次，仿真中不随当前温度更新
func (c *calculator) Run() error {
	if c.env.FluidName == "" {
		return errors.New("工艺参数未设置")
	}

	c.transfer = PipeHeatTransfer(
		c.env.TargetTemperature, c.env.AmbientTemperature,
		c.geometry, c.flow.Velocity, c.material, c.fluid, c.env.HOutside,
	)

	deltaT := c.env.TargetTemperature - c.env.InitialTemperature
	budget, err := NewPowerBudget(c.env.VolumeLiters, deltaT, c.env.TargetDuration, c.fluid, c.transfer.LossW)
	if err != nil {
		return err
	}
	c.budget = budget

	mass := MassFromLiters(c.env.VolumeLiters, c.fluid)
	capacity := mass * c.fluid.SpecificHeat
	c.tau = TimeConstant(c.transfer.Network.RTotal, mass, c.fluid.SpecificHeat)

	// 仿真时长放宽到名义升温时长的两倍，看得到逼近段，有配置上限封顶
	duration := c.env.TargetDuration * 2.0
	if duration > calCfg.MaxSimDuration {
		duration = calCfg.MaxSimDuration
	}

	c.calcHub.StartSignal()
	c.trace = RunSimulation(SimInput{
		InitialTemperature: c.env.InitialTemperature,
		TargetTemperature:  c.env.TargetTemperature,
		RequiredW:          budget.RequiredW,
		ThermalCapacity:    capacity,
		StepSize:           calCfg.StepSize,
		Duration:           duration,
	}, func(temp float64) float64 {
		ht := PipeHeatTransfer(
			temp, c.env.AmbientTemperature,
			c.geometry, c.flow.Velocity, c.material, c.fluid, c.env.HOutside,
		)
		return ht.LossW
	}, c.calcHub.Stop)

	log.WithFields(log.Fields{
		"RequiredW": budget.RequiredW,
		"Samples":   c.trace.Size(),
		"FinalTemp": c.trace.Final(),
	}).Info("计算完成")
	c.calcHub.PushSignal()
	return nil
}
