package dto

import "github.com/GlebRadaev/invoicedash/internal/domain"

type RevenueChartDTO struct {
	Revenue     []domain.Revenue `json:"revenue"`
	YAxisLabels []string         `json:"yAxisLabels"`
	TopLabel    int64            `json:"topLabel" example:"5000"`
}

type SeedResponseDTO struct {
	Message string `json:"message" example:"Database seeded successfully"`
}
