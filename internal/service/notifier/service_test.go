package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrabene/backoffice/internal/domain/client"
	"github.com/nutrabene/backoffice/internal/domain/settings"
	"github.com/nutrabene/backoffice/pkg/logger"
)

type fakeClientRepo struct {
	items   map[string]*client.Client
	stamped map[string]time.Time
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{
		items:   make(map[string]*client.Client),
		stamped: make(map[string]time.Time),
	}
}

func (r *fakeClientRepo) Create(_ context.Context, c *client.Client) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id string) (*client.Client, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, errors.New("cliente não encontrado")
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) List(_ context.Context, _, _ int) ([]*client.Client, error) {
	var out []*client.Client
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeClientRepo) Count(_ context.Context) (int, error) { return len(r.items), nil }

func (r *fakeClientRepo) Update(_ context.Context, c *client.Client) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeClientRepo) FindDueForReminder(_ context.Context, sleepSchedule string, startOfDay time.Time) ([]*client.Client, error) {
	var out []*client.Client
	for _, c := range r.items {
		if c.SleepSchedule != sleepSchedule {
			continue
		}
		if c.LastReminderSentAt != nil && !c.LastReminderSentAt.Before(startOfDay) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeClientRepo) StampReminderSent(_ context.Context, id string, sentAt time.Time) error {
	if c, ok := r.items[id]; ok {
		t := sentAt
		c.LastReminderSentAt = &t
	}
	r.stamped[id] = sentAt
	return nil
}

type fakeSettingsRepo struct {
	cfg *settings.ReminderSettings
}

func (r *fakeSettingsRepo) Get(_ context.Context, _ string) (*settings.ReminderSettings, error) {
	if r.cfg == nil {
		return nil, errors.New("configurações de lembrete não encontradas")
	}
	cp := *r.cfg
	return &cp, nil
}

func (r *fakeSettingsRepo) UpdateTemplate(_ context.Context, _, template string) error {
	if r.cfg == nil {
		r.cfg = &settings.ReminderSettings{Key: settings.DefaultKey}
	}
	r.cfg.MessageTemplate = template
	return nil
}

func (r *fakeSettingsRepo) UpdateMedia(_ context.Context, _, mediaURL string, mediaType settings.MediaType) error {
	if r.cfg == nil {
		r.cfg = &settings.ReminderSettings{Key: settings.DefaultKey}
	}
	r.cfg.MediaURL = mediaURL
	r.cfg.MediaType = mediaType
	return nil
}

type sentMessage struct {
	kind     string
	phone    string
	message  string
	mediaURL string
	filename string
}

type fakeGateway struct {
	sent    []sentMessage
	failFor map[string]error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{failFor: make(map[string]error)}
}

func (g *fakeGateway) SendText(_ context.Context, phone, message string) error {
	if err := g.failFor[phone]; err != nil {
		return err
	}
	g.sent = append(g.sent, sentMessage{kind: "text", phone: phone, message: message})
	return nil
}

func (g *fakeGateway) SendImage(_ context.Context, phone, imageURL, caption string) error {
	if err := g.failFor[phone]; err != nil {
		return err
	}
	g.sent = append(g.sent, sentMessage{kind: "image", phone: phone, message: caption, mediaURL: imageURL})
	return nil
}

func (g *fakeGateway) SendDocument(_ context.Context, phone, documentURL, filename, caption string) error {
	if err := g.failFor[phone]; err != nil {
		return err
	}
	g.sent = append(g.sent, sentMessage{kind: "document", phone: phone, message: caption, mediaURL: documentURL, filename: filename})
	return nil
}

func newTestService(t *testing.T, clients *fakeClientRepo, st *fakeSettingsRepo, gw *fakeGateway, now time.Time) *Service {
	t.Helper()
	s := NewService(clients, st, gw, time.UTC, logger.NewNopLogger())
	s.now = func() time.Time { return now }
	return s
}

func addClient(t *testing.T, repo *fakeClientRepo, name, whatsapp, schedule string, lastSent *time.Time) *client.Client {
	t.Helper()
	c := &client.Client{
		ID:                 uuid.New().String(),
		Name:               name,
		Email:              "cliente@example.com",
		WhatsApp:           whatsapp,
		SleepSchedule:      schedule,
		PurchaseLocation:   client.PurchaseSiteOficial,
		LastReminderSentAt: lastSent,
	}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func TestRunSendsToDueClients(t *testing.T) {
	clients := newFakeClientRepo()
	gw := newFakeGateway()
	now := time.Date(2025, 6, 10, 22, 30, 0, 0, time.UTC)

	c := addClient(t, clients, "Maria Silva", "(11) 98765-4321", "22:30", nil)
	addClient(t, clients, "João Souza", "(11) 91234-5678", "23:00", nil)

	st := &fakeSettingsRepo{cfg: &settings.ReminderSettings{
		Key:             settings.DefaultKey,
		MessageTemplate: "Oi {nome}, não esqueça do tônico!",
	}}

	svc := newTestService(t, clients, st, gw, now)
	result, err := svc.Run(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, "22:30", result.Time)
	assert.Equal(t, "2025-06-10", result.Date)
	require.Len(t, result.Details, 1)
	assert.Equal(t, StatusSuccess, result.Details[0].Status)
	assert.Equal(t, "Maria Silva", result.Details[0].User)

	require.Len(t, gw.sent, 1)
	assert.Equal(t, "text", gw.sent[0].kind)
	assert.Equal(t, "5511987654321", gw.sent[0].phone)
	assert.Equal(t, "Oi Maria, não esqueça do tônico!", gw.sent[0].message)

	_, stamped := clients.stamped[c.ID]
	assert.True(t, stamped)
}

func TestRunSkipsAlreadyNotifiedToday(t *testing.T) {
	clients := newFakeClientRepo()
	gw := newFakeGateway()
	now := time.Date(2025, 6, 10, 22, 30, 0, 0, time.UTC)

	earlier := now.Add(-2 * time.Hour)
	addClient(t, clients, "Maria Silva", "11987654321", "22:30", &earlier)

	svc := newTestService(t, clients, &fakeSettingsRepo{}, gw, now)
	result, err := svc.Run(context.Background(), "")
	require.NoError(t, err)

	assert.Zero(t, result.Processed)
	assert.Empty(t, gw.sent)
}

func TestRunManualTimeOverride(t *testing.T) {
	clients := newFakeClientRepo()
	gw := newFakeGateway()
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	addClient(t, clients, "Maria Silva", "11987654321", "22:30", nil)

	svc := newTestService(t, clients, &fakeSettingsRepo{}, gw, now)
	result, err := svc.Run(context.Background(), "22:30")
	require.NoError(t, err)

	assert.Equal(t, "22:30", result.Time)
	assert.Equal(t, 1, result.Processed)
}

func TestRunDefaultTemplateFallback(t *testing.T) {
	clients := newFakeClientRepo()
	gw := newFakeGateway()
	now := time.Date(2025, 6, 10, 22, 30, 0, 0, time.UTC)

	addClient(t, clients, "Maria Silva", "11987654321", "22:30", nil)

	// repositório sem registro de configurações
	svc := newTestService(t, clients, &fakeSettingsRepo{}, gw, now)
	result, err := svc.Run(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	require.Len(t, gw.sent, 1)
	assert.Equal(t, settings.DefaultMessageTemplate, gw.sent[0].message)
}

func TestRunSendsMediaBySettings(t *testing.T) {
	clients := newFakeClientRepo()
	gw := newFakeGateway()
	now := time.Date(2025, 6, 10, 22, 30, 0, 0, time.UTC)

	addClient(t, clients, "Maria Silva", "11987654321", "22:30", nil)

	st := &fakeSettingsRepo{cfg: &settings.ReminderSettings{
		Key:             settings.DefaultKey,
		MessageTemplate: "Dica do dia, {nome}!",
		MediaURL:        "https://cdn.example.com/dica.pdf",
		MediaType:       settings.MediaTypeFile,
	}}

	svc := newTestService(t, clients, st, gw, now)
	result, err := svc.Run(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	require.Len(t, gw.sent, 1)
	assert.Equal(t, "document", gw.sent[0].kind)
	assert.Equal(t, DocumentFilename, gw.sent[0].filename)
	assert.Equal(t, "https://cdn.example.com/dica.pdf", gw.sent[0].mediaURL)
}

func TestRunIsolatesGatewayFailures(t *testing.T) {
	clients := newFakeClientRepo()
	gw := newFakeGateway()
	now := time.Date(2025, 6, 10, 22, 30, 0, 0, time.UTC)

	failing := addClient(t, clients, "Ana Costa", "11911112222", "22:30", nil)
	ok := addClient(t, clients, "Maria Silva", "11987654321", "22:30", nil)
	addClient(t, clients, "Pedro Lima", "--", "22:30", nil)
	gw.failFor["5511911112222"] = errors.New("gateway indisponível")

	svc := newTestService(t, clients, &fakeSettingsRepo{}, gw, now)
	result, err := svc.Run(context.Background(), "")
	require.NoError(t, err)

	// processed conta todas as tentativas, não só os sucessos
	assert.Equal(t, 3, result.Processed)
	require.Len(t, result.Details, 3)

	statuses := map[string]DetailStatus{}
	for _, d := range result.Details {
		statuses[d.User] = d.Status
	}
	assert.Equal(t, StatusFailed, statuses["Ana Costa"])
	assert.Equal(t, StatusSuccess, statuses["Maria Silva"])
	assert.Equal(t, StatusError, statuses["Pedro Lima"])

	// o carimbo de envio só acontece em caso de sucesso
	_, stampedOK := clients.stamped[ok.ID]
	_, stampedFail := clients.stamped[failing.ID]
	assert.True(t, stampedOK)
	assert.False(t, stampedFail)
}
