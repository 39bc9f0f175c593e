package service

import (
	"errors"

	"github.com/craviont/craviont-site-api/internal/dto"
	"github.com/craviont/craviont-site-api/internal/form"
	"github.com/craviont/craviont-site-api/internal/models"
)

// FAQPreviewSize is the number of questions shown before the list is expanded.
const FAQPreviewSize = 4

// ErrServiceCategoryNotFound indicates an unknown catalog slug.
var ErrServiceCategoryNotFound = errors.New("service category not found")

// ContentService serves the static marketing content of the site.
type ContentService interface {
	ListServices() []dto.ServiceCategoryResponse
	GetService(slug string) (dto.ServiceCategoryResponse, error)
	ListFAQs(all bool) dto.FAQListResponse
	ListCurrencies() []dto.CurrencyResponse
}

type contentService struct {
	services   []models.ServiceCategory
	faqs       []models.FAQ
	currencies []models.Currency
}

// NewContentService constructs the content service over the built-in catalog.
func NewContentService() ContentService {
	return &contentService{
		services:   serviceCatalog,
		faqs:       faqCatalog,
		currencies: currencyCatalog,
	}
}

func (s *contentService) ListServices() []dto.ServiceCategoryResponse {
	out := make([]dto.ServiceCategoryResponse, 0, len(s.services))
	for _, category := range s.services {
		out = append(out, toServiceCategoryResponse(category))
	}
	return out
}

func (s *contentService) GetService(slug string) (dto.ServiceCategoryResponse, error) {
	for _, category := range s.services {
		if category.Slug == slug {
			return toServiceCategoryResponse(category), nil
		}
	}
	return dto.ServiceCategoryResponse{}, ErrServiceCategoryNotFound
}

func (s *contentService) ListFAQs(all bool) dto.FAQListResponse {
	visible := s.faqs
	if !all && len(visible) > FAQPreviewSize {
		visible = visible[:FAQPreviewSize]
	}

	items := make([]dto.FAQResponse, 0, len(visible))
	for _, faq := range visible {
		items = append(items, dto.FAQResponse{Question: faq.Question, Answer: faq.Answer})
	}

	return dto.FAQListResponse{
		Items:   items,
		Total:   len(s.faqs),
		HasMore: len(items) < len(s.faqs),
	}
}

func (s *contentService) ListCurrencies() []dto.CurrencyResponse {
	out := make([]dto.CurrencyResponse, 0, len(s.currencies))
	for _, currency := range s.currencies {
		out = append(out, dto.CurrencyResponse{
			Code:    currency.Code,
			Symbol:  currency.Symbol,
			Default: currency.Code == form.DefaultCurrency,
		})
	}
	return out
}

func toServiceCategoryResponse(category models.ServiceCategory) dto.ServiceCategoryResponse {
	subServices := make([]string, len(category.SubServices))
	copy(subServices, category.SubServices)
	return dto.ServiceCategoryResponse{
		Slug:        category.Slug,
		Title:       category.Title,
		Description: category.Description,
		SubServices: subServices,
	}
}
