package properties

import (
	"os"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"jr/model"
)

// 流体和管材的物性参数表
// 内置一份常用参数，conf 目录下若存在 csv 表则以表中数据为准
// 表构建一次后只读，按名称注入计算层

type fluidRecord struct {
	Name                string  `csv:"name"`
	Density             float64 `csv:"density"`
	SpecificHeat        float64 `csv:"specific_heat"`
	ThermalConductivity float64 `csv:"thermal_conductivity"`
	Viscosity           float64 `csv:"viscosity"`
}

type materialRecord struct {
	Name                string  `csv:"name"`
	ThermalConductivity float64 `csv:"thermal_conductivity"`
}

type Table struct {
	fluids    map[string]model.Fluid
	materials map[string]model.Material
}

// 内置物性参数，水的参数取 37℃ 左右
func builtin() *Table {
	return &Table{
		fluids: map[string]model.Fluid{
			"water":  {Name: "water", Density: 993.0, SpecificHeat: 4186.0, ThermalConductivity: 0.628, Viscosity: 0.0007},
			"glycol": {Name: "glycol", Density: 1070.0, SpecificHeat: 3500.0, ThermalConductivity: 0.40, Viscosity: 0.0035},
			"oil":    {Name: "oil", Density: 870.0, SpecificHeat: 1900.0, ThermalConductivity: 0.14, Viscosity: 0.03},
		},
		materials: map[string]model.Material{
			"copper":    {Name: "copper", ThermalConductivity: 401.0},
			"steel":     {Name: "steel", ThermalConductivity: 50.0},
			"stainless": {Name: "stainless", ThermalConductivity: 16.0},
			"pvc":       {Name: "pvc", ThermalConductivity: 0.19},
		},
	}
}

// 加载物性参数表，csv 缺失时退回内置参数
func Load(fluidPath, materialPath string) *Table {
	t := builtin()

	if fluids, err := loadFluids(fluidPath); err != nil {
		log.WithFields(log.Fields{"path": fluidPath, "err": err}).Warn("流体物性表读取失败，使用内置参数")
	} else {
		for _, f := range fluids {
			t.fluids[f.Name] = f
		}
	}

	if materials, err := loadMaterials(materialPath); err != nil {
		log.WithFields(log.Fields{"path": materialPath, "err": err}).Warn("管材物性表读取失败，使用内置参数")
	} else {
		for _, m := range materials {
			t.materials[m.Name] = m
		}
	}

	return t
}

func loadFluids(path string) ([]model.Fluid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var records []*fluidRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, err
	}

	fluids := make([]model.Fluid, 0, len(records))
	for _, r := range records {
		fluids = append(fluids, model.Fluid{
			Name:                r.Name,
			Density:             r.Density,
			SpecificHeat:        r.SpecificHeat,
			ThermalConductivity: r.ThermalConductivity,
			Viscosity:           r.Viscosity,
		})
	}
	return fluids, nil
}

func loadMaterials(path string) ([]model.Material, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var records []*materialRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, err
	}

	materials := make([]model.Material, 0, len(records))
	for _, r := range records {
		materials = append(materials, model.Material{
			Name:                r.Name,
			ThermalConductivity: r.ThermalConductivity,
		})
	}
	return materials, nil
}

func (t *Table) Fluid(name string) (model.Fluid, bool) {
	f, ok := t.fluids[name]
	return f, ok
}

func (t *Table) Material(name string) (model.Material, bool) {
	m, ok := t.materials[name]
	return m, ok
}

// 前端下拉框用
func (t *Table) FluidNames() []string {
	names := make([]string, 0, len(t.fluids))
	for name := range t.fluids {
		names = append(names, name)
	}
	return names
}

func (t *Table) MaterialNames() []string {
	names := make([]string, 0, len(t.materials))
	for name := range t.materials {
		names = append(names, name)
	}
	return names
}
