package aliyun

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"

	"github.com/ecodeclub/subpay/internal/email"
)

var _ email.Service = (*DirectMailService)(nil)

// DirectMailService 阿里云邮件推送实现, 用来给买家发支付结果邮件
type DirectMailService struct {
	client *dm20151123.Client
	// accountName 控制台里配置好的发信地址, 例如 noreply@mailer.example.com
	accountName string
}

func NewDirectMailService(accessKeyID, accessKeySecret, accountName string) (*DirectMailService, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云凭据失败: %w", err)
	}

	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	})
	if err != nil {
		return nil, fmt.Errorf("创建邮件推送客户端失败: %w", err)
	}
	return &DirectMailService{
		client:      client,
		accountName: accountName,
	}, nil
}

func (s *DirectMailService) SendMail(_ context.Context, mail email.Mail) error {
	request := &dm20151123.SingleSendMailRequest{
		AccountName: tea.String(s.accountName),
		FromAlias:   tea.String(mail.From),
		// 1 表示随机账号
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	_, err := s.client.SingleSendMailWithOptions(request, &util.RuntimeOptions{})
	if err != nil {
		return s.wrapError(err)
	}
	return nil
}

func (s *DirectMailService) wrapError(err error) error {
	sdkErr, ok := err.(*tea.SDKError)
	if !ok {
		return fmt.Errorf("%w: %v", email.ErrSendMailFailed, err)
	}
	msg := fmt.Sprintf("阿里云邮件推送接口错误: %s", tea.StringValue(sdkErr.Message))
	if sdkErr.Data != nil {
		var data map[string]any
		if decodeErr := json.NewDecoder(strings.NewReader(tea.StringValue(sdkErr.Data))).Decode(&data); decodeErr == nil {
			if recommend, exists := data["Recommend"]; exists {
				msg += fmt.Sprintf(", 建议: %v", recommend)
			}
		}
	}
	return fmt.Errorf("%w: %s", email.ErrSendMailFailed, msg)
}
