package mail

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alissonmartineli/maintenance-tech/internal/config"
	"github.com/alissonmartineli/maintenance-tech/internal/entity"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

type Mailer interface {
	SendOverdueWorkOrderReminder(reminder *entity.ReminderWorkOrder) error
}

// MailService posts through the Mailtrap HTTP API. Outside prod it targets the
// sandbox inbox so reminder sweeps never reach real collaborators.
type MailService struct {
	DomainSender string
	MailtrapUrl  string
	MailAPI      string
}

func NewMailer(cfg *config.AppConfig) Mailer {
	if cfg.APP.State == "prod" {
		return &MailService{
			DomainSender: cfg.MAILTRAP.API.MailtrapDomain,
			MailtrapUrl:  cfg.MAILTRAP.API.MailtrapURL,
			MailAPI:      cfg.MAILTRAP.API.MailtrapTokenAPI,
		}
	}
	return &MailService{
		DomainSender: cfg.MAILTRAP.Sandbox.SandboxDomain,
		MailtrapUrl:  cfg.MAILTRAP.Sandbox.SandboxURL,
		MailAPI:      cfg.MAILTRAP.Sandbox.SandboxAPI,
	}
}

func (m *MailService) SendOverdueWorkOrderReminder(reminder *entity.ReminderWorkOrder) error {
	payload := map[string]any{
		"from": map[string]string{
			"email": m.DomainSender,
			"name":  "Maintenance Tech - Ordens Atrasadas",
		},
		"to": []map[string]string{
			{
				"email": reminder.ResponsibleEmail,
			},
		},
		"subject": fmt.Sprintf("⚠️ Work order overdue: %s", reminder.EquipmentDescription),
		"text": fmt.Sprintf(`
		Hi %s,

		A work order assigned to you has passed its scheduled date and is still open.

		Equipment	: %s
		Service  	: %s
		Scheduled	: %s

		Please take one of the following actions as soon as possible:
		- close the order with a report if the service has already been performed, or
		- reschedule the order if the service had to be postponed.

		Open overdue orders pull down the fleet availability numbers on the dashboard.

		— Maintenance Tech
		`, reminder.ResponsibleName, reminder.EquipmentDescription, reminder.Description, reminder.Date.Format("02 Jan 2006")),
		"category": "Work Order Reminder",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Error when marshalling payload body.")
		return err
	}

	req, err := http.NewRequest(http.MethodPost, m.MailtrapUrl, bytes.NewBuffer(body))
	if err != nil {
		log.Error().Err(err).Msg("Error when send the request.")
		return err
	}

	req.Header.Set("Authorization", "Bearer "+m.MailAPI)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Error when get response from server.")
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailtrap send failed: status=%d body=%s",
			resp.StatusCode,
			string(respBody))
	}

	return nil
}
