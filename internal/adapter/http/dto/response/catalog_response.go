package response

import (
	"truckservice/internal/domain/entities"
	"truckservice/internal/usecase"
)

type CategoryResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Custom bool   `json:"custom"`
}

func FromCategories(cats []entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name, Custom: c.Custom})
	}
	return out
}

type MergeReportResponse struct {
	Added      int `json:"added"`
	Duplicates int `json:"duplicates"`
	Total      int `json:"total"`
}

func FromMergeReport(r usecase.MergeReport) MergeReportResponse {
	return MergeReportResponse{Added: r.Added, Duplicates: r.Duplicates, Total: r.Total}
}

type HeaderTemplateResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Customer       string `json:"customer"`
	Contractor     string `json:"contractor"`
	DefaultVehicle string `json:"default_vehicle,omitempty"`
}

func FromHeaderTemplates(ts []entities.HeaderTemplate) []HeaderTemplateResponse {
	out := make([]HeaderTemplateResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, HeaderTemplateResponse{
			ID:             t.ID,
			Name:           t.Name,
			Customer:       t.Customer.Company,
			Contractor:     t.Contractor.Company,
			DefaultVehicle: t.DefaultVehicle,
		})
	}
	return out
}
