package aliyun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"

	"github.com/ecodeclub/hirevue/internal/notification/internal/email"
)

// DirectMailAPI 阿里云邮件推送 API 客户端
type DirectMailAPI struct {
	client      *dm20151123.Client
	accountName string
}

// NewDirectMailAPI 创建阿里云邮件推送客户端。
// accountName 是控制台配置好的发信地址
func NewDirectMailAPI(accessKeyID, accessKeySecret, accountName string) (*DirectMailAPI, error) {
	config := &credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	}
	cred, err := credential.NewCredential(config)
	if err != nil {
		return nil, fmt.Errorf("创建凭据失败: %w", err)
	}
	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	})
	if err != nil {
		return nil, fmt.Errorf("创建 DirectMail 客户端失败: %w", err)
	}
	return &DirectMailAPI{
		client:      client,
		accountName: accountName,
	}, nil
}

func (a *DirectMailAPI) SendMail(ctx context.Context, mail email.Mail) error {
	request := &dm20151123.SingleSendMailAdvanceRequest{
		AccountName:    tea.String(a.accountName),
		FromAlias:      tea.String(mail.From),
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	_, err := a.client.SingleSendMailAdvance(request, &util.RuntimeOptions{})
	if err != nil {
		return a.handleError(err)
	}
	return nil
}

func (a *DirectMailAPI) handleError(err error) error {
	var sdkError *tea.SDKError
	if errors.As(err, &sdkError) {
		errorMsg := fmt.Sprintf("阿里云邮件推送 API 错误: %s", tea.StringValue(sdkError.Message))
		if sdkError.Data != nil {
			var errorData map[string]any
			decoder := json.NewDecoder(strings.NewReader(tea.StringValue(sdkError.Data)))
			if decodeErr := decoder.Decode(&errorData); decodeErr == nil {
				if recommend, exists := errorData["Recommend"]; exists {
					errorMsg += fmt.Sprintf(" | 建议: %v", recommend)
				}
				if requestID, exists := errorData["RequestId"]; exists {
					errorMsg += fmt.Sprintf(" | RequestId: %v", requestID)
				}
			}
		}
		return errors.New(errorMsg)
	}
	return fmt.Errorf("邮件发送失败: %w", err)
}
