package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starzcrm_backend/internal/salestips/domain"
	"starzcrm_backend/internal/salestips/engine"
	"starzcrm_backend/internal/salestips/repository"
	"starzcrm_backend/internal/salestips/transport"
	"starzcrm_backend/platform/apperr"
	"starzcrm_backend/platform/logger"
)

type phoneConfig string

func (p phoneConfig) GetPhoneDefaultRegion() string { return string(p) }

type fakeContacts struct {
	contacts map[uuid.UUID]repository.Contact
	err      error
}

func (f *fakeContacts) GetContact(_ context.Context, organizationID, id uuid.UUID) (repository.Contact, error) {
	if f.err != nil {
		return repository.Contact{}, f.err
	}
	c, ok := f.contacts[id]
	if !ok || c.OrganizationID != organizationID {
		return repository.Contact{}, apperr.NotFound("contact not found")
	}
	return c, nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]domain.Result
	sets    int
	getErr  error
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]domain.Result{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (domain.Result, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return domain.Result{}, false, f.getErr
	}
	r, ok := f.entries[key]
	return r, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, result domain.Result) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = result
	f.sets++
	return nil
}

var testNow = time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

func metroHVAC(orgID uuid.UUID) repository.Contact {
	return repository.Contact{
		ID:             uuid.New(),
		OrganizationID: orgID,
		FirstName:      "Dana",
		LastName:       "Reyes",
		Company:        "Metro HVAC",
		LeadSource:     "referral",
		Budget:         12000,
		Phone:          "(415) 555-2671",
		City:           "Austin",
		CreatedAt:      testNow.Add(-30 * time.Minute),
	}
}

func newTestService(contacts *fakeContacts, c *fakeCache) *Service {
	svc := New(engine.Default(), contacts, c, phoneConfig("US"), logger.Nop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestGenerateForContactCachesResult(t *testing.T) {
	orgID := uuid.New()
	contact := metroHVAC(orgID)
	contacts := &fakeContacts{contacts: map[uuid.UUID]repository.Contact{contact.ID: contact}}
	c := newFakeCache()
	svc := newTestService(contacts, c)
	ctx := context.Background()

	first, err := svc.GenerateForContact(ctx, orgID, contact.ID, transport.ContactTipsRequest{})
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 100, first.LeadAnalysis.LeadScore)
	assert.Equal(t, domain.UrgencyImmediate, first.LeadAnalysis.UrgencyLevel)
	assert.Equal(t, "hvac-emergency-calls", first.Tips[0].ID)
	require.NotNil(t, first.ContextualFactors.LeadAge)
	assert.InDelta(t, 0.5, *first.ContextualFactors.LeadAge, 1e-9)
	assert.Equal(t, 1, c.sets)

	svc.now = func() time.Time { return testNow.Add(15 * time.Minute) }
	second, err := svc.GenerateForContact(ctx, orgID, contact.ID, transport.ContactTipsRequest{})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Tips, second.Tips)
	assert.InDelta(t, 0.75, *second.ContextualFactors.LeadAge, 1e-9)
	assert.Equal(t, 1, c.sets)
}

func TestGenerateForContactNewBandMisses(t *testing.T) {
	orgID := uuid.New()
	contact := metroHVAC(orgID)
	c := newFakeCache()
	svc := newTestService(&fakeContacts{contacts: map[uuid.UUID]repository.Contact{contact.ID: contact}}, c)

	_, err := svc.GenerateForContact(context.Background(), orgID, contact.ID, transport.ContactTipsRequest{})
	require.NoError(t, err)

	svc.now = func() time.Time { return testNow.Add(2 * time.Hour) }
	later, err := svc.GenerateForContact(context.Background(), orgID, contact.ID, transport.ContactTipsRequest{})
	require.NoError(t, err)

	assert.False(t, later.Cached)
	assert.InDelta(t, 2.5, *later.ContextualFactors.LeadAge, 1e-9)
	assert.Equal(t, 2, c.sets)
}

func TestGenerateForContactSummaryAndPersonalization(t *testing.T) {
	orgID := uuid.New()
	contact := metroHVAC(orgID)
	svc := newTestService(&fakeContacts{contacts: map[uuid.UUID]repository.Contact{contact.ID: contact}}, newFakeCache())

	resp, err := svc.GenerateForContact(context.Background(), orgID, contact.ID, transport.ContactTipsRequest{
		Action:      "Calling",
		Personalize: true,
		RepName:     "Sam",
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Contact)
	assert.Equal(t, "Dana Reyes", resp.Contact.Name)
	assert.Equal(t, "+14155552671", resp.Contact.Phone)
	assert.Equal(t, "referral", resp.Contact.LeadSource)
	assert.Equal(t, "Dana, when a furnace dies at 9pm in January, who answers the phone at Metro HVAC?", resp.Tips[0].Script)
}

func TestGenerateForContactPersonalizationDoesNotLeakIntoCache(t *testing.T) {
	orgID := uuid.New()
	contact := metroHVAC(orgID)
	c := newFakeCache()
	svc := newTestService(&fakeContacts{contacts: map[uuid.UUID]repository.Contact{contact.ID: contact}}, c)

	_, err := svc.GenerateForContact(context.Background(), orgID, contact.ID, transport.ContactTipsRequest{Personalize: true})
	require.NoError(t, err)

	plain, err := svc.GenerateForContact(context.Background(), orgID, contact.ID, transport.ContactTipsRequest{})
	require.NoError(t, err)
	assert.True(t, plain.Cached)
	assert.Contains(t, plain.Tips[0].Script, "[Name]")
}

func TestGenerateForContactNotFound(t *testing.T) {
	svc := newTestService(&fakeContacts{}, newFakeCache())

	_, err := svc.GenerateForContact(context.Background(), uuid.New(), uuid.New(), transport.ContactTipsRequest{})

	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestGenerateForContactRepositoryFailure(t *testing.T) {
	boom := errors.New("connection refused")
	svc := newTestService(&fakeContacts{err: boom}, newFakeCache())

	_, err := svc.GenerateForContact(context.Background(), uuid.New(), uuid.New(), transport.ContactTipsRequest{})

	require.ErrorIs(t, err, boom)
	assert.True(t, apperr.Is(err, apperr.KindInternal))
	assert.Equal(t, "salestips.GenerateForContact: failed to load contact: connection refused", err.Error())
}

func TestGenerateForContactSurvivesCacheFailures(t *testing.T) {
	orgID := uuid.New()
	contact := metroHVAC(orgID)
	c := newFakeCache()
	c.getErr = errors.New("redis down")
	c.setErr = errors.New("redis down")
	svc := newTestService(&fakeContacts{contacts: map[uuid.UUID]repository.Contact{contact.ID: contact}}, c)

	resp, err := svc.GenerateForContact(context.Background(), orgID, contact.ID, transport.ContactTipsRequest{})

	require.NoError(t, err)
	assert.False(t, resp.Cached)
	assert.NotEmpty(t, resp.Tips)
}

func TestGenerateForContactConcurrentCallers(t *testing.T) {
	orgID := uuid.New()
	contact := metroHVAC(orgID)
	svc := newTestService(&fakeContacts{contacts: map[uuid.UUID]repository.Contact{contact.ID: contact}}, newFakeCache())

	const callers = 16
	results := make([]transport.GenerateResponse, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := svc.GenerateForContact(context.Background(), orgID, contact.ID, transport.ContactTipsRequest{Action: "closing"})
			assert.NoError(t, err)
			results[i] = resp
		}(i)
	}
	wg.Wait()

	for _, r := range results[1:] {
		assert.Equal(t, results[0].Tips, r.Tips)
	}
}

func TestWarmPrimesDefaultResult(t *testing.T) {
	orgID := uuid.New()
	contact := metroHVAC(orgID)
	c := newFakeCache()
	svc := newTestService(&fakeContacts{contacts: map[uuid.UUID]repository.Contact{contact.ID: contact}}, c)

	require.NoError(t, svc.Warm(context.Background(), contact))

	resp, err := svc.GenerateForContact(context.Background(), orgID, contact.ID, transport.ContactTipsRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Cached)
}

func TestWarmReportsCacheFailure(t *testing.T) {
	c := newFakeCache()
	c.setErr = errors.New("redis down")
	svc := newTestService(&fakeContacts{}, c)

	err := svc.Warm(context.Background(), metroHVAC(uuid.New()))

	assert.True(t, apperr.Is(err, apperr.KindInternal))
}

type fakeQueue struct {
	queued []uuid.UUID
	err    error
}

func (f *fakeQueue) EnqueueWarmContact(_ context.Context, _, contactID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.queued = append(f.queued, contactID)
	return nil
}

func TestRequestWarmRunsInlineWithoutQueue(t *testing.T) {
	orgID := uuid.New()
	contact := metroHVAC(orgID)
	c := newFakeCache()
	svc := newTestService(&fakeContacts{contacts: map[uuid.UUID]repository.Contact{contact.ID: contact}}, c)

	require.NoError(t, svc.RequestWarm(context.Background(), orgID, contact.ID))
	assert.Equal(t, 1, c.sets)

	err := svc.RequestWarm(context.Background(), uuid.New(), contact.ID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestRequestWarmUsesQueue(t *testing.T) {
	c := newFakeCache()
	svc := newTestService(&fakeContacts{err: errors.New("should not be called")}, c)
	q := &fakeQueue{}
	svc.SetWarmQueue(q)
	contactID := uuid.New()

	require.NoError(t, svc.RequestWarm(context.Background(), uuid.New(), contactID))
	assert.Equal(t, []uuid.UUID{contactID}, q.queued)
	assert.Zero(t, c.sets)

	q.err = errors.New("redis down")
	err := svc.RequestWarm(context.Background(), uuid.New(), contactID)
	assert.True(t, apperr.Is(err, apperr.KindInternal))
}

func TestGenerateAdHocLead(t *testing.T) {
	svc := newTestService(&fakeContacts{}, newFakeCache())

	resp, err := svc.Generate(context.Background(), transport.GenerateRequest{
		LeadSource: "BARK",
	})

	require.NoError(t, err)
	assert.Equal(t, 70, resp.LeadAnalysis.LeadScore)
	assert.Equal(t, domain.UrgencyHigh, resp.LeadAnalysis.UrgencyLevel)
	assert.Nil(t, resp.Contact)
	assert.False(t, resp.Cached)
	assert.Equal(t, testNow, resp.GeneratedAt)
}

func TestGenerateStripsMarkupFromPlaceholders(t *testing.T) {
	svc := newTestService(&fakeContacts{}, newFakeCache())

	resp, err := svc.Generate(context.Background(), transport.GenerateRequest{
		Company:     "Metro HVAC",
		ContactName: "<script>Dana</script>",
		Personalize: true,
	})

	require.NoError(t, err)
	for _, tip := range resp.Tips {
		assert.NotContains(t, tip.Script, "<script>")
	}
}

func TestGenerateRejectsNegativeInputs(t *testing.T) {
	svc := newTestService(&fakeContacts{}, newFakeCache())
	negative := -1.0

	_, err := svc.Generate(context.Background(), transport.GenerateRequest{LeadAgeHours: &negative})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = svc.Generate(context.Background(), transport.GenerateRequest{Budget: -5})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestCatalogListsEveryTip(t *testing.T) {
	svc := newTestService(&fakeContacts{}, newFakeCache())

	resp := svc.Catalog()

	assert.Equal(t, engine.DefaultCatalog().Len(), resp.Total)
	assert.Len(t, resp.Items, resp.Total)
}
