package client

import (
	"errors"
)

const (
	OK = "Ok"
)

var (
	ErrSendFailed       = errors.New("发送短信失败")
	ErrInvalidParameter = errors.New("参数无效")
)

// Client 短信客户端接口
//
//go:generate mockgen -source=./types.go -destination=./mocks/sms.mock.go -package=smsmocks -typed Client
type Client interface {
	// Send 发送短信
	Send(req SendReq) (SendResp, error)
}

type SendReq struct {
	PhoneNumbers  []string
	TemplateID    string
	TemplateParam map[string]string // key-value 形式的模板参数
}

type SendResp struct {
	RequestID string
	// PhoneNumbers key 是去掉 +86 后的手机号
	PhoneNumbers map[string]SendRespStatus
}

type SendRespStatus struct {
	Code    string
	Message string
}
