package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"gymdesk/internal/logger"
	"gymdesk/internal/metrics"
)

const queueKey = "emails"

type EmailJob struct {
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

// NewWithClient builds a service around an existing redis client. Used by tests.
func NewWithClient(client *redis.Client, fromEmail, fromName string) *Service {
	return &Service{
		redis:    client,
		from:     fromEmail,
		fromName: fromName,
	}
}

func (s *Service) Send(ctx context.Context, to, name, subject, body string) error {
	job := EmailJob{
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Tries:   0,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", to, err)
		metrics.RecordEmail("queued", "error")
		return err
	}

	logger.Infof("Email queued: %s to %s", subject, to)
	metrics.RecordEmail("queued", "ok")
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Email worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	job.Tries++
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send email to %s: %v", job.To, err)

		if job.Tries < 3 {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
		} else {
			logger.Errorf("Email to %s failed after 3 attempts", job.To)
			metrics.RecordEmail("sent", "failed")
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordEmail("sent", "ok")
	logger.Infof("Email sent to %s", job.To)
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), queueKey+":failed", data)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (s *Service) SendWelcome(ctx context.Context, to, name string) error {
	subject := "Welcome to the gym!"
	body := fmt.Sprintf(`Hi %s,

Your member profile has been created. Drop by the front desk to pick a plan
and start training.

- GymDesk Team`, name)

	return s.Send(ctx, to, name, subject, body)
}

func (s *Service) SendMembershipConfirmation(ctx context.Context, to, name, planName string, endDate time.Time) error {
	subject := "Membership Confirmed - " + planName
	body := fmt.Sprintf(`Hi %s,

Your %s membership is active until %s.

See you at the gym!

- GymDesk Team`, name, planName, endDate.Format("Jan 2, 2006"))

	return s.Send(ctx, to, name, subject, body)
}

func (s *Service) SendBookingConfirmation(ctx context.Context, to, name, sessionTitle string, start time.Time) error {
	subject := "Booking Confirmed - " + sessionTitle
	body := fmt.Sprintf(`Hi %s,

Your spot in %s is booked for %s.

See you there!

- GymDesk Team`, name, sessionTitle, start.Format("Jan 2, 2006 at 3:04 PM"))

	return s.Send(ctx, to, name, subject, body)
}

func (s *Service) SendBookingCancellation(ctx context.Context, to, name, sessionTitle string) error {
	subject := "Booking Cancelled - " + sessionTitle
	body := fmt.Sprintf(`Hi %s,

Your booking for %s has been cancelled.

- GymDesk Team`, name, sessionTitle)

	return s.Send(ctx, to, name, subject, body)
}
