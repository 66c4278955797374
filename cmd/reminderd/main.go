package main

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
	"github.com/tallermanager/workshop-backend/internal/config"
	"github.com/tallermanager/workshop-backend/internal/db"
)

// reminderEvent is the payload published for each due appointment.
type reminderEvent struct {
	AppointmentID string    `json:"appointment_id"`
	ClientID      string    `json:"client_id"`
	WorkshopID    string    `json:"workshop_id"`
	ServiceID     string    `json:"service_id"`
	MechanicID    string    `json:"mechanic_id"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	appointments := &db.MongoAppointmentCollection{
		Collection: client.Database(cfg.MongoDB).Collection("appointments"),
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID("workshop-reminderd").
		SetAutoReconnect(true)
	broker := mqtt.NewClient(opts)
	if token := broker.Connect(); token.Wait() && token.Error() != nil {
		log.WithError(token.Error()).Fatal("failed to connect to MQTT broker")
	}
	defer broker.Disconnect(250)

	log.WithFields(log.Fields{
		"broker":   cfg.MQTTBroker,
		"topic":    cfg.MQTTTopic,
		"window":   cfg.ReminderWindow.String(),
		"interval": cfg.ReminderInterval.String(),
	}).Info("reminder daemon started")

	ticker := time.NewTicker(cfg.ReminderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down")
			return
		case <-ticker.C:
			publishDueReminders(ctx, appointments, broker, cfg)
		}
	}
}

// publishDueReminders sends one reminder per due appointment and marks
// the flag so a reminder is sent at most once per appointment.
func publishDueReminders(ctx context.Context, appointments db.AppointmentCollection, broker mqtt.Client, cfg config.Config) {
	now := time.Now()
	due, err := appointments.FindDueReminders(ctx, now, now.Add(cfg.ReminderWindow))
	if err != nil {
		log.WithError(err).Error("failed to query due reminders")
		return
	}

	for _, appointment := range due {
		event := reminderEvent{
			AppointmentID: appointment.ID.Hex(),
			ClientID:      appointment.Client.Hex(),
			WorkshopID:    appointment.Workshop.Hex(),
			ServiceID:     appointment.Service.Hex(),
			MechanicID:    appointment.Mechanic.Hex(),
			Date:          appointment.Date,
			Status:        string(appointment.Status),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			log.WithError(err).Error("failed to marshal reminder event")
			continue
		}

		token := broker.Publish(cfg.MQTTTopic, 1, false, payload)
		token.Wait()
		if token.Error() != nil {
			log.WithError(token.Error()).
				WithField("appointment", event.AppointmentID).
				Error("failed to publish reminder")
			continue
		}

		if err := appointments.MarkReminderSent(ctx, appointment.ID); err != nil {
			log.WithError(err).
				WithField("appointment", event.AppointmentID).
				Error("failed to mark reminder as sent")
			continue
		}
		log.WithField("appointment", event.AppointmentID).Info("reminder published")
	}
}
