package email

import (
	"context"
	"errors"
)

var ErrSendMailFailed = errors.New("发送邮件失败")

//go:generate mockgen -source=./type.go -package=emailmocks -destination=./mocks/email.mock.go -typed Service
type Service interface {
	SendMail(ctx context.Context, mail Mail) error
}

type Mail struct {
	From    string // 发信人昵称
	To      string
	Subject string
	Body    []byte // HTML 正文
}
