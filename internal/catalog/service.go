package catalog

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

// Browse applies the query layer on top of the full catalog: filter first,
// then sort.
func (s *Service) Browse(c Criteria, sortKey string) []Product {
	return Sort(Filter(s.repo.List(), c), sortKey)
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Categories() []CategoryCount {
	return CategoriesWithCounts(s.repo.List())
}

func (s *Service) BestSellers(limit int) []Product {
	return BestSelling(s.repo.List(), limit)
}

func (s *Service) Create(p Product) (Product, error) {
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
