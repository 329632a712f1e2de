package ioc

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/subpay/internal/fxrate"
	"github.com/gotomicro/ego/core/econf"
	"github.com/shopspring/decimal"
)

func initFxService(ec ecache.Cache) fxrate.Service {
	type Config struct {
		Endpoint string `yaml:"endpoint"`
		// FallbackRates 远程接口不可用时的兜底汇率表, key 形如 USD/CNY
		FallbackRates map[string]string `yaml:"fallbackRates"`
		// BackupEndpoint 兜底表也没有命中时的备用汇率接口, 可以不配
		BackupEndpoint string `yaml:"backupEndpoint"`
	}
	var cfg Config
	err := econf.UnmarshalKey("fx", &cfg)
	if err != nil {
		panic(err)
	}
	rates := make(map[string]decimal.Decimal, len(cfg.FallbackRates))
	for pair, rate := range cfg.FallbackRates {
		d, err := decimal.NewFromString(rate)
		if err != nil {
			panic(err)
		}
		rates[pair] = d
	}
	sources := []fxrate.RateSource{
		fxrate.NewHTTPRateSource(cfg.Endpoint),
		fxrate.NewFixedRateSource(rates),
	}
	if cfg.BackupEndpoint != "" {
		sources = append(sources, fxrate.NewHTTPRateSource(cfg.BackupEndpoint))
	}
	return fxrate.NewService(ec, sources...)
}
