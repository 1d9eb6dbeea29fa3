package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"starzcrm_backend/internal/salestips/cache"
	"starzcrm_backend/internal/salestips/domain"
	"starzcrm_backend/internal/salestips/engine"
	"starzcrm_backend/internal/salestips/repository"
	"starzcrm_backend/internal/salestips/transport"
	"starzcrm_backend/platform/apperr"
	"starzcrm_backend/platform/config"
	"starzcrm_backend/platform/logger"
	"starzcrm_backend/platform/phone"
	"starzcrm_backend/platform/sanitize"
)

const (
	opGenerateForContact = "salestips.GenerateForContact"
	opRequestWarm        = "salestips.RequestWarm"
)

// WarmQueue hands a contact warmup to a background worker.
type WarmQueue interface {
	EnqueueWarmContact(ctx context.Context, organizationID, contactID uuid.UUID) error
}

// Service generates sales tips for ad-hoc leads and stored contacts.
type Service struct {
	engine      *engine.Engine
	contacts    repository.ContactReader
	cache       cache.Cache
	log         *logger.Logger
	phoneRegion string
	now         func() time.Time
	warmQueue   WarmQueue

	inflight singleflight.Group
}

// New creates a sales tips service. A nil cache disables caching.
func New(eng *engine.Engine, contacts repository.ContactReader, c cache.Cache, cfg config.PhoneConfig, log *logger.Logger) *Service {
	if c == nil {
		c = cache.Nop{}
	}
	return &Service{
		engine:      eng,
		contacts:    contacts,
		cache:       c,
		log:         log,
		phoneRegion: cfg.GetPhoneDefaultRegion(),
		now:         time.Now,
	}
}

// Generate runs the engine for a lead supplied in the request body. Nothing is cached.
func (s *Service) Generate(ctx context.Context, req transport.GenerateRequest) (transport.GenerateResponse, error) {
	if req.LeadAgeHours != nil && *req.LeadAgeHours < 0 {
		return transport.GenerateResponse{}, apperr.Validation("leadAgeHours must not be negative")
	}
	if req.Budget < 0 {
		return transport.GenerateResponse{}, apperr.Validation("budget must not be negative")
	}

	lead := domain.LeadRecord{
		Company:    strings.TrimSpace(req.Company),
		Notes:      req.Notes,
		Position:   strings.TrimSpace(req.Position),
		LeadSource: domain.ParseLeadSource(req.LeadSource),
		Budget:     req.Budget,
	}

	result := s.engine.Generate(lead, engine.Options{
		CurrentAction: domain.ParseAction(req.CurrentAction),
		LeadAgeHours:  req.LeadAgeHours,
		CallContext:   req.CallContext,
	})

	if req.Personalize {
		result.Tips = engine.Personalize(result.Tips, cleanPlaceholders(engine.Placeholders{
			Name:     req.ContactName,
			Company:  lead.Company,
			Industry: result.LeadAnalysis.Industry.Label(),
			RepName:  req.RepName,
		}))
	}

	s.logGenerated(ctx, "", result, false)
	return transport.GenerateResponse{Result: result, GeneratedAt: s.now().UTC()}, nil
}

// GenerateForContact loads a contact of the organization and returns tips for it.
// Results are cached per lead content, action and age band.
func (s *Service) GenerateForContact(ctx context.Context, organizationID, contactID uuid.UUID, req transport.ContactTipsRequest) (transport.GenerateResponse, error) {
	contact, err := s.contacts.GetContact(ctx, organizationID, contactID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return transport.GenerateResponse{}, err
		}
		s.log.WithContext(ctx).DatabaseError("get_contact", err)
		return transport.GenerateResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load contact", err).WithOp(opGenerateForContact)
	}

	result, cached := s.resultFor(ctx, contact, domain.ParseAction(req.Action))

	if req.Personalize {
		result.Tips = engine.Personalize(result.Tips, cleanPlaceholders(engine.Placeholders{
			Name:     contactName(contact),
			Company:  contact.Company,
			Industry: result.LeadAnalysis.Industry.Label(),
			RepName:  req.RepName,
			City:     contact.City,
		}))
	}

	s.logGenerated(ctx, contact.ID.String(), result, cached)
	summary := s.summarize(contact)
	return transport.GenerateResponse{
		Result:      result,
		Contact:     &summary,
		Cached:      cached,
		GeneratedAt: s.now().UTC(),
	}, nil
}

// Warm computes and stores the default result for a contact the caller has
// already loaded. Unlike request paths, a cache write failure is returned.
func (s *Service) Warm(ctx context.Context, contact repository.Contact) error {
	lead := LeadFromContact(contact)
	age := s.ageHours(contact.CreatedAt)
	key := cache.Key(lead, domain.ActionNone, engine.AgeBand(age))

	result := s.engine.Generate(lead, engine.Options{LeadAgeHours: age})
	if err := s.cache.Set(ctx, key, result); err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to store warmed result", err).WithOp("salestips.Warm")
	}
	return nil
}

// SetWarmQueue routes RequestWarm through a background queue. Without one the
// warmup runs inline.
func (s *Service) SetWarmQueue(q WarmQueue) {
	s.warmQueue = q
}

// RequestWarm schedules a cache warmup for one contact of the organization.
func (s *Service) RequestWarm(ctx context.Context, organizationID, contactID uuid.UUID) error {
	if s.warmQueue != nil {
		if err := s.warmQueue.EnqueueWarmContact(ctx, organizationID, contactID); err != nil {
			s.log.WithContext(ctx).Error("failed to enqueue warmup", "contactId", contactID, "error", err)
			return apperr.Wrap(apperr.KindInternal, "failed to queue warmup", err).WithOp(opRequestWarm)
		}
		return nil
	}

	contact, err := s.contacts.GetContact(ctx, organizationID, contactID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return err
		}
		s.log.WithContext(ctx).DatabaseError("get_contact", err)
		return apperr.Wrap(apperr.KindInternal, "failed to load contact", err).WithOp(opRequestWarm)
	}
	return s.Warm(ctx, contact)
}

// Catalog lists every tip in the engine's repository.
func (s *Service) Catalog() transport.CatalogResponse {
	tips := s.engine.Catalog().All()
	items := make([]transport.CatalogItem, 0, len(tips))
	for _, tip := range tips {
		items = append(items, transport.CatalogItem{
			ID:             tip.ID,
			Category:       tip.Category,
			Priority:       tip.Priority,
			Title:          tip.Title,
			Industry:       tip.Industry,
			LeadSource:     tip.LeadSource,
			Confidence:     tip.Confidence,
			ExpectedImpact: tip.ExpectedImpact,
		})
	}
	return transport.CatalogResponse{Items: items, Total: len(items)}
}

// resultFor returns the engine result for a contact, from cache when possible.
// Concurrent misses on the same key share one engine run.
func (s *Service) resultFor(ctx context.Context, contact repository.Contact, action domain.Action) (domain.Result, bool) {
	lead := LeadFromContact(contact)
	age := s.ageHours(contact.CreatedAt)
	key := cache.Key(lead, action, engine.AgeBand(age))

	if result, ok, err := s.cache.Get(ctx, key); err != nil {
		s.log.WithContext(ctx).CacheError("get", key, err)
	} else if ok {
		result.ContextualFactors.LeadAge = age
		return result, true
	}

	v, _, _ := s.inflight.Do(key, func() (any, error) {
		result := s.engine.Generate(lead, engine.Options{CurrentAction: action, LeadAgeHours: age})
		if err := s.cache.Set(ctx, key, result); err != nil {
			s.log.WithContext(ctx).CacheError("set", key, err)
		}
		return result, nil
	})

	result := v.(domain.Result)
	result.ContextualFactors.LeadAge = age
	return result, false
}

func (s *Service) ageHours(createdAt time.Time) *float64 {
	if createdAt.IsZero() {
		return nil
	}
	hours := s.now().Sub(createdAt).Hours()
	if hours < 0 {
		hours = 0
	}
	return &hours
}

func (s *Service) summarize(c repository.Contact) transport.ContactSummary {
	return transport.ContactSummary{
		ID:         c.ID,
		Name:       contactName(c),
		Company:    c.Company,
		Phone:      phone.NormalizeE164(c.Phone, s.phoneRegion),
		City:       c.City,
		LeadSource: string(domain.ParseLeadSource(c.LeadSource)),
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *Service) logGenerated(ctx context.Context, contactID string, r domain.Result, cached bool) {
	s.log.WithContext(ctx).TipsGenerated(
		contactID,
		string(r.LeadAnalysis.Industry),
		r.LeadAnalysis.LeadScore,
		string(r.LeadAnalysis.UrgencyLevel),
		len(r.Tips),
		cached,
	)
}

// LeadFromContact maps a stored contact onto engine input.
func LeadFromContact(c repository.Contact) domain.LeadRecord {
	return domain.LeadRecord{
		Company:    strings.TrimSpace(c.Company),
		Notes:      c.Notes,
		Position:   strings.TrimSpace(c.Position),
		LeadSource: domain.ParseLeadSource(c.LeadSource),
		Budget:     c.Budget,
	}
}

// maxPlaceholderRunes caps a substituted value so one field cannot swamp a script.
const maxPlaceholderRunes = 80

func cleanPlaceholders(p engine.Placeholders) engine.Placeholders {
	return engine.Placeholders{
		Name:     sanitize.Placeholder(p.Name, maxPlaceholderRunes),
		Company:  sanitize.Placeholder(p.Company, maxPlaceholderRunes),
		Industry: p.Industry,
		RepName:  sanitize.Placeholder(p.RepName, maxPlaceholderRunes),
		City:     sanitize.Placeholder(p.City, maxPlaceholderRunes),
		Service:  sanitize.Placeholder(p.Service, maxPlaceholderRunes),
	}
}

func contactName(c repository.Contact) string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
