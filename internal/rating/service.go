package rating

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Rating {
	return s.repo.List()
}

func (s *Service) ListByUser(userID string) []Rating {
	return s.repo.ListByUser(userID)
}

func (s *Service) Submit(r Rating) error {
	return s.repo.Upsert(r)
}
