package entities

// HeaderTemplate is a reusable customer/contractor identification block
// stamped onto the generated workbook header. Created by the admin flow,
// consumed read-only by the order engine.

type HeaderTemplate struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Customer       Party      `json:"customer"`
	Contractor     Contractor `json:"contractor"`
	DefaultVehicle string     `json:"default_vehicle"`
}

type Party struct {
	Company string `json:"company"`
	Address string `json:"address"`
}

type Contractor struct {
	Company string `json:"company"`
	Address string `json:"address"`
	INN     string `json:"inn"`
	OGRNIP  string `json:"ogrnip"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// DefaultHeaderTemplateID is used when the user picked no template, and as
// the fallback when the picked one no longer exists.
const DefaultHeaderTemplateID = "bridge_town"
