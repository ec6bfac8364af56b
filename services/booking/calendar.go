package booking

import (
	"context"
	"fmt"
	"time"

	"atelier/models"

	"github.com/google/uuid"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// CalendarClient is the external calendar collaborator. The live calendar is
// always the source of truth for availability.
type CalendarClient interface {
	ListBusyIntervals(ctx context.Context, from, to time.Time) ([]models.TimeSlot, error)
	InsertEvent(ctx context.Context, b models.Booking) (eventID, joinLink, htmlLink string, err error)
}

// GoogleCalendarClient implements CalendarClient against the Google Calendar API.
type GoogleCalendarClient struct {
	svc        *calendar.Service
	calendarID string
}

// NewGoogleCalendarClient builds a client from a service-account credentials file.
func NewGoogleCalendarClient(ctx context.Context, credentialsFile, calendarID string) (*GoogleCalendarClient, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &GoogleCalendarClient{svc: svc, calendarID: calendarID}, nil
}

// ListBusyIntervals queries free/busy for the window [from, to).
func (g *GoogleCalendarClient) ListBusyIntervals(ctx context.Context, from, to time.Time) ([]models.TimeSlot, error) {
	req := &calendar.FreeBusyRequest{
		TimeMin: from.Format(time.RFC3339),
		TimeMax: to.Format(time.RFC3339),
		Items:   []*calendar.FreeBusyRequestItem{{Id: g.calendarID}},
	}
	resp, err := g.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query failed: %w", err)
	}

	cal, ok := resp.Calendars[g.calendarID]
	if !ok {
		return nil, fmt.Errorf("calendar %q missing from freebusy response", g.calendarID)
	}

	var busy []models.TimeSlot
	for _, p := range cal.Busy {
		start, err := time.Parse(time.RFC3339, p.Start)
		if err != nil {
			return nil, fmt.Errorf("bad busy interval start %q: %w", p.Start, err)
		}
		end, err := time.Parse(time.RFC3339, p.End)
		if err != nil {
			return nil, fmt.Errorf("bad busy interval end %q: %w", p.End, err)
		}
		busy = append(busy, models.TimeSlot{Start: start, End: end})
	}
	return busy, nil
}

// InsertEvent creates the calendar event with a Meet conference attached.
func (g *GoogleCalendarClient) InsertEvent(ctx context.Context, b models.Booking) (string, string, string, error) {
	description := b.Notes
	if b.MeetingType != "" {
		description = fmt.Sprintf("Meeting type: %s\n%s", b.MeetingType, b.Notes)
	}

	event := &calendar.Event{
		Summary:     fmt.Sprintf("Consultation: %s", b.Name),
		Description: description,
		Start:       &calendar.EventDateTime{DateTime: b.Start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: b.End.Format(time.RFC3339)},
		Attendees:   []*calendar.EventAttendee{{Email: b.Email}},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId:             uuid.New().String(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		},
	}

	created, err := g.svc.Events.Insert(g.calendarID, event).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return "", "", "", fmt.Errorf("event insert failed: %w", err)
	}
	return created.Id, created.HangoutLink, created.HtmlLink, nil
}
