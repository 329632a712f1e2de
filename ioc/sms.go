package ioc

import (
	"github.com/ecodeclub/subpay/internal/sms/client"
	"github.com/gotomicro/ego/core/econf"
)

func initSMSClient() client.Client {
	type Config struct {
		// Provider 为 console 时只把短信打到日志, 本地联调用
		Provider        string `yaml:"provider"`
		AccessKeyID     string `yaml:"accessKeyID"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		SignName        string `yaml:"signName"`
	}
	var cfg Config
	err := econf.UnmarshalKey("sms", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Provider == "console" {
		return client.NewConsoleClient()
	}
	aliClient, err := client.NewAliyunSMS(cfg.AccessKeyID, cfg.AccessKeySecret, cfg.SignName)
	if err != nil {
		panic(err)
	}
	return aliClient
}
