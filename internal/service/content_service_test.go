package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContentServiceListsCatalog(t *testing.T) {
	svc := NewContentService()

	services := svc.ListServices()
	require.Len(t, services, 5)
	require.Equal(t, "UI / UX & Frontend Engineering", services[0].Title)
	require.NotEmpty(t, services[0].SubServices)

	category, err := svc.GetService("cyber-security-services")
	require.NoError(t, err)
	require.Contains(t, category.SubServices, "Penetration testing")

	_, err = svc.GetService("unknown")
	require.ErrorIs(t, err, ErrServiceCategoryNotFound)
}

func TestContentServiceFAQPreview(t *testing.T) {
	svc := NewContentService()

	preview := svc.ListFAQs(false)
	require.Len(t, preview.Items, FAQPreviewSize)
	require.Equal(t, 8, preview.Total)
	require.True(t, preview.HasMore)

	all := svc.ListFAQs(true)
	require.Len(t, all.Items, 8)
	require.False(t, all.HasMore)
}

func TestContentServiceCurrencies(t *testing.T) {
	currencies := NewContentService().ListCurrencies()
	require.Len(t, currencies, 9)

	defaults := 0
	for _, currency := range currencies {
		if currency.Default {
			defaults++
			require.Equal(t, "USD", currency.Code)
		}
	}
	require.Equal(t, 1, defaults)
}
