package utils

import (
	"courierhub/config"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// RegistryResult is the company registry's answer for a tax number lookup.
type RegistryResult struct {
	TaxNumber   string `json:"tax_number"`
	CompanyName string `json:"company_name"`
	Active      bool   `json:"active"`
	ReferenceID string `json:"reference_id"`
}

// VerifyCompany checks a candidate's declared tax number against the
// external company registry.
func VerifyCompany(taxNumber string) (*RegistryResult, error) {
	client := resty.New().SetTimeout(10 * time.Second)

	var result RegistryResult
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Api-Key", config.AppConfig.RegistryApiKey).
		SetBody(map[string]string{"tax_number": taxNumber}).
		SetResult(&result).
		Post(config.AppConfig.RegistryApiURL + "companies/lookup")

	if err != nil {
		log.Printf("Error calling company registry: %v", err)
		return nil, err
	}

	if resp.StatusCode() != 200 {
		log.Printf("Company registry lookup failed: %d %s", resp.StatusCode(), resp.String())
		return nil, fmt.Errorf("registry lookup failed, code: %d", resp.StatusCode())
	}

	return &result, nil
}
