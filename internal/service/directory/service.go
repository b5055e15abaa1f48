package directory

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/salonkit/scheduler-api/internal/model"
	"github.com/salonkit/scheduler-api/internal/repository"
)

// Service fronts the service/staff/client directory collaborators with a
// short TTL cache. Directory data changes rarely compared to how often the
// calendar reads it (every grid render lists staff, every booking resolves a
// service), so stale reads inside the TTL are acceptable.
type Service struct {
	services repository.ServiceRepository
	staff    repository.StaffRepository
	clients  repository.ClientRepository
	cache    *cache.Cache
}

func NewService(services repository.ServiceRepository, staff repository.StaffRepository, clients repository.ClientRepository, ttl time.Duration) *Service {
	return &Service{
		services: services,
		staff:    staff,
		clients:  clients,
		cache:    cache.New(ttl, 2*ttl),
	}
}

func (s *Service) GetService(ctx context.Context, id int64) (*model.Service, error) {
	key := fmt.Sprintf("service:%d", id)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*model.Service), nil
	}

	service, err := s.services.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, service)
	return service, nil
}

func (s *Service) ListServices(ctx context.Context) ([]*model.Service, error) {
	if cached, ok := s.cache.Get("services"); ok {
		return cached.([]*model.Service), nil
	}

	services, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault("services", services)
	return services, nil
}

func (s *Service) GetStaff(ctx context.Context, id int64) (*model.StaffMember, error) {
	key := fmt.Sprintf("staff:%d", id)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*model.StaffMember), nil
	}

	staff, err := s.staff.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, staff)
	return staff, nil
}

func (s *Service) ListStaff(ctx context.Context) ([]*model.StaffMember, error) {
	if cached, ok := s.cache.Get("staff"); ok {
		return cached.([]*model.StaffMember), nil
	}

	staff, err := s.staff.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault("staff", staff)
	return staff, nil
}

// GetClient and SearchClients skip the cache: client records carry contact
// details the front desk edits during the day.
func (s *Service) GetClient(ctx context.Context, id int64) (*model.Client, error) {
	return s.clients.Get(ctx, id)
}

func (s *Service) SearchClients(ctx context.Context, query string) ([]*model.Client, error) {
	return s.clients.Search(ctx, query)
}

// Flush drops all cached directory entries.
func (s *Service) Flush() {
	s.cache.Flush()
}
