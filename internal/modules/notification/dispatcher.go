package notification

import (
	"context"
	"errors"
	"fmt"

	"utilibook/internal/domain"
)

// Dispatcher fans one appointment event out to the in-app feed, SMS, and the
// websocket hub. The feed row is written first; the side channels are
// best-effort on top of it. Callers treat the returned error as advisory.
type Dispatcher struct {
	notifications NotificationRepository
	clients       ClientResolver
	sms           SMSSender
	hub           *Hub
}

func NewDispatcher(notifications NotificationRepository, clients ClientResolver, sms SMSSender, hub *Hub) *Dispatcher {
	return &Dispatcher{
		notifications: notifications,
		clients:       clients,
		sms:           sms,
		hub:           hub,
	}
}

func (d *Dispatcher) AppointmentConfirmed(ctx context.Context, appt *domain.Appointment) error {
	title := "Appointment confirmed"
	message := fmt.Sprintf("Your appointment %s is confirmed for %s at %s.",
		appt.AppointmentNumber, appt.Date, appt.Time)
	return d.dispatch(ctx, appt, domain.NotifAppointmentConfirmed, title, message)
}

func (d *Dispatcher) AppointmentCancelled(ctx context.Context, appt *domain.Appointment) error {
	title := "Appointment cancelled"
	message := fmt.Sprintf("Your appointment %s on %s at %s has been cancelled.",
		appt.AppointmentNumber, appt.Date, appt.Time)
	if appt.CancellationReason != "" {
		message += " Reason: " + appt.CancellationReason
	}
	return d.dispatch(ctx, appt, domain.NotifAppointmentCancelled, title, message)
}

func (d *Dispatcher) AppointmentReminder(ctx context.Context, appt *domain.Appointment) error {
	title := "Appointment reminder"
	message := fmt.Sprintf("Reminder: your appointment %s is tomorrow, %s at %s.",
		appt.AppointmentNumber, appt.Date, appt.Time)
	return d.dispatch(ctx, appt, domain.NotifAppointmentReminder, title, message)
}

func (d *Dispatcher) dispatch(ctx context.Context, appt *domain.Appointment, typ domain.NotificationType, title, message string) error {
	row := &domain.Notification{
		ClientID:      appt.ClientID,
		AppointmentID: appt.ID,
		Type:          typ,
		Title:         title,
		Message:       message,
	}
	if err := d.notifications.Create(ctx, row); err != nil {
		return fmt.Errorf("persist notification: %w", err)
	}

	var errs []error
	if d.sms != nil {
		client, err := d.clients.GetByID(ctx, appt.ClientID)
		if err != nil {
			errs = append(errs, fmt.Errorf("resolve client %d: %w", appt.ClientID, err))
		} else if err := d.sms.Send(client.Phone, message); err != nil {
			errs = append(errs, err)
		}
	}

	if d.hub != nil {
		d.hub.Push(appt.ClientID, row)
	}

	return errors.Join(errs...)
}
