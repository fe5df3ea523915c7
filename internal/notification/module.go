package notification

import (
	"github.com/ecodeclub/hirevue/internal/notification/internal/email"
	"github.com/ecodeclub/hirevue/internal/notification/internal/email/aliyun"
	"github.com/ecodeclub/hirevue/internal/notification/internal/event"
	"github.com/ecodeclub/hirevue/internal/notification/internal/service"
)

type EmailService = email.Service
type Mail = email.Mail

type Config = service.Config

type Service = service.NotificationService

type CandidateCompletedConsumer = event.CandidateCompletedConsumer

// NewAliyunEmailService 基于阿里云邮件推送的发信实现
func NewAliyunEmailService(accessKeyID, accessKeySecret, accountName string) (EmailService, error) {
	return aliyun.NewDirectMailAPI(accessKeyID, accessKeySecret, accountName)
}

type Module struct {
	Svc Service
	// Consumer 监听候选人完成事件并发送邮件
	Consumer *CandidateCompletedConsumer
}
