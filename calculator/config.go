package calculator

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

var calCfg Config

type Config struct {
	StepSize       float64 // 仿真时间步长, s
	MaxSimDuration float64 // 仿真总时长上限, s
	HOutside       float64 // 默认外侧对流换热系数, W/(m²·K)
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		// 测试从包目录运行，再向上找一层
		file, err = ini.Load("../conf/config.ini")
	}
	if err != nil {
		log.WithField("err", err).Warn("配置文件读取失败，使用默认配置")
		calCfg = Config{StepSize: 1.0, MaxSimDuration: 7200.0, HOutside: 10.0}
		return
	}

	loadCfg(file)
}

func loadCfg(file *ini.File) {
	calCfg = Config{
		StepSize:       file.Section("calculator").Key("StepSize").MustFloat64(1.0),
		MaxSimDuration: file.Section("calculator").Key("MaxSimDuration").MustFloat64(7200.0),
		HOutside:       file.Section("calculator").Key("HOutside").MustFloat64(10.0),
	}
}
