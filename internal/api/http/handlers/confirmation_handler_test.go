package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nuansacp2025/ticketing/internal/api/dto"
	httptransport "github.com/nuansacp2025/ticketing/internal/api/http"
	"github.com/nuansacp2025/ticketing/internal/api/http/handlers"
	"github.com/nuansacp2025/ticketing/internal/auth"
	"github.com/nuansacp2025/ticketing/internal/config"
	"github.com/nuansacp2025/ticketing/internal/domain"
	"github.com/nuansacp2025/ticketing/internal/events"
	"github.com/nuansacp2025/ticketing/internal/mailer"
	"github.com/nuansacp2025/ticketing/internal/observability"
	"github.com/nuansacp2025/ticketing/internal/persistence"
	"github.com/nuansacp2025/ticketing/internal/service"
)

const testSecret = "internal-s3cret"

type fakeTicketRepo struct {
	tickets   []domain.Ticket
	email     string
	seats     []domain.Seat
	err       error
	findCalls int
}

func (f *fakeTicketRepo) FindByCode(ctx context.Context, code string) ([]domain.Ticket, error) {
	f.findCalls++
	if f.err != nil {
		return nil, f.err
	}
	var matches []domain.Ticket
	for _, ticket := range f.tickets {
		if ticket.Code == code {
			matches = append(matches, ticket)
		}
	}
	return matches, nil
}

func (f *fakeTicketRepo) HolderEmail(ctx context.Context, ref domain.TicketReference) (string, error) {
	return f.email, f.err
}

func (f *fakeTicketRepo) SeatsByTicket(ctx context.Context, ref domain.TicketReference) ([]domain.Seat, error) {
	return f.seats, f.err
}

type fakeMailer struct {
	err   error
	calls int
	last  mailer.Message
}

func (f *fakeMailer) Send(ctx context.Context, msg mailer.Message) error {
	f.calls++
	f.last = msg
	return f.err
}

func newTestApp(repo *fakeTicketRepo, m *fakeMailer) *fiber.App {
	logger := zap.NewNop()
	cfg := config.EventConfig{
		Name:      "NUANSA 2025",
		ShareLink: "https://tickets.nuansacp.org/share",
	}

	coordinator := service.NewDeliveryCoordinator(
		service.NewTicketResolver(repo, logger),
		service.NewSeatPDFGenerator(cfg),
		service.NewEmailComposer(cfg),
		m,
		events.NewInMemoryDispatcher(),
		logger,
	)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, observability.NewMetrics(), 5*time.Second)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Confirmation: handlers.NewConfirmationHandler(coordinator),
		Diag:         handlers.NewDiagHandler("test", "test", &persistence.Postgres{}, &persistence.Redis{}),
		Guard:        auth.NewCredentialGuard(config.AuthConfig{InternalAPICredentials: testSecret}),
	})
	return app
}

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func doRequest(t *testing.T, app *fiber.App, body string, withCreds bool) (int, apiResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/email/sendSeatConfirmation", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if withCreds {
		req.Header.Set(auth.InternalCredentialsHeader, testSecret)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestSendSeatConfirmationUnauthorized(t *testing.T) {
	repo := &fakeTicketRepo{}
	m := &fakeMailer{}
	app := newTestApp(repo, m)

	status, body := doRequest(t, app, `{"ticketCode":"ABC123"}`, false)

	assert.Equal(t, 401, status)
	assert.False(t, body.Success)
	assert.Equal(t, "Unauthorized", body.Message)
	assert.Equal(t, 0, repo.findCalls)
	assert.Equal(t, 0, m.calls)
}

func TestSendSeatConfirmationValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "empty payload",
			body:    `{}`,
			wantMsg: dto.MessageTicketCodeRequired,
		},
		{
			name:    "malformed json",
			body:    `{"ticketCode":`,
			wantMsg: dto.MessageFieldsRequired,
		},
		{
			name:    "seats not a list",
			body:    `{"email":"a@b.c","ticketCode":"ABC123","seats":"A1"}`,
			wantMsg: dto.MessageFieldsRequired,
		},
		{
			name:    "seat missing category",
			body:    `{"email":"a@b.c","ticketCode":"ABC123","seats":[{"label":"A1"}]}`,
			wantMsg: dto.MessageFieldsRequired,
		},
		{
			name:    "direct variant missing email",
			body:    `{"ticketCode":"ABC123","seats":[{"label":"A1","category":"VIP"}]}`,
			wantMsg: dto.MessageFieldsRequired,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeTicketRepo{}
			m := &fakeMailer{}
			app := newTestApp(repo, m)

			status, body := doRequest(t, app, tc.body, true)

			assert.Equal(t, 400, status)
			assert.False(t, body.Success)
			assert.Equal(t, tc.wantMsg, body.Message)
			// Validation runs before any I/O.
			assert.Equal(t, 0, repo.findCalls)
			assert.Equal(t, 0, m.calls)
		})
	}
}

func TestSendSeatConfirmationEndToEnd(t *testing.T) {
	repo := &fakeTicketRepo{
		tickets: []domain.Ticket{{ID: "t-1", Code: "ABC123"}},
		email:   "holder@example.com",
		seats:   []domain.Seat{{Label: "A1", Category: "VIP"}},
	}
	m := &fakeMailer{}
	app := newTestApp(repo, m)

	status, body := doRequest(t, app, `{"ticketCode":"ABC123"}`, true)

	assert.Equal(t, 200, status)
	assert.True(t, body.Success)

	require.Equal(t, 1, m.calls)
	assert.Equal(t, "holder@example.com", m.last.To)
	assert.Equal(t, "A1 (VIP)", m.last.Context["seat_num"])
	assert.Equal(t, "ABC123", m.last.Context["ticket_code"])
	require.Len(t, m.last.Attachments, 1)
	assert.Equal(t, "seat-a1-vip.pdf", m.last.Attachments[0].Filename)
}

func TestSendSeatConfirmationInvariantViolation(t *testing.T) {
	repo := &fakeTicketRepo{
		tickets: []domain.Ticket{
			{ID: "t-1", Code: "DUP"},
			{ID: "t-2", Code: "DUP"},
		},
	}
	m := &fakeMailer{}
	app := newTestApp(repo, m)

	status, body := doRequest(t, app, `{"ticketCode":"DUP"}`, true)

	// Data corruption is a server fault, not an upstream 502.
	assert.Equal(t, 500, status)
	assert.False(t, body.Success)
	assert.Equal(t, 0, m.calls)
}

func TestSendSeatConfirmationProviderFailure(t *testing.T) {
	repo := &fakeTicketRepo{}
	m := &fakeMailer{err: errors.New("connection reset")}
	app := newTestApp(repo, m)

	status, body := doRequest(t, app,
		`{"email":"holder@example.com","ticketCode":"ABC123","seats":[{"label":"A1","category":"VIP"}]}`, true)

	assert.Equal(t, 502, status)
	assert.False(t, body.Success)
	require.Equal(t, 1, m.calls)
}

func TestHelloEndpoint(t *testing.T) {
	app := newTestApp(&fakeTicketRepo{}, &fakeMailer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/python", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.True(t, parsed.Success)
	assert.Equal(t, "Hello, World!", parsed.Message)
}
