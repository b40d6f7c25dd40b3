package request

import "truckservice/internal/domain/entities"

// HeaderTemplateRequest creates or replaces a header template.
type HeaderTemplateRequest struct {
	ID             string            `json:"id" binding:"required"`
	Name           string            `json:"name" binding:"required"`
	Customer       PartyPayload      `json:"customer" binding:"required"`
	Contractor     ContractorPayload `json:"contractor" binding:"required"`
	DefaultVehicle string            `json:"default_vehicle"`
}

type PartyPayload struct {
	Company string `json:"company" binding:"required"`
	Address string `json:"address"`
}

type ContractorPayload struct {
	Company string `json:"company" binding:"required"`
	Address string `json:"address"`
	INN     string `json:"inn"`
	OGRNIP  string `json:"ogrnip"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

func (r HeaderTemplateRequest) ToEntity() entities.HeaderTemplate {
	return entities.HeaderTemplate{
		ID:   r.ID,
		Name: r.Name,
		Customer: entities.Party{
			Company: r.Customer.Company,
			Address: r.Customer.Address,
		},
		Contractor: entities.Contractor{
			Company: r.Contractor.Company,
			Address: r.Contractor.Address,
			INN:     r.Contractor.INN,
			OGRNIP:  r.Contractor.OGRNIP,
			Email:   r.Contractor.Email,
			Phone:   r.Contractor.Phone,
		},
		DefaultVehicle: r.DefaultVehicle,
	}
}
