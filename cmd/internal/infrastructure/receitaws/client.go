package receitaws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://www.receitaws.com.br"

	statusError           = "ERROR"
	defaultRegistryErrMsg = "Invalid data returned by ReceitaWS"
)

// ErrRequestFailed means the registry could not be reached or did not answer
// with a usable payload.
var ErrRequestFailed = errors.New("receitaws request failed")

// RegistryError is returned when ReceitaWS answers with status ERROR.
type RegistryError struct {
	Message string
}

func (e *RegistryError) Error() string {
	return "receitaws: " + e.Message
}

type Client struct {
	baseURL    string
	httpClient *resty.Client
}

// NewClient builds a client without retries: a failed lookup is reported
// to the caller right away.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &Client{
		baseURL: baseURL,
		httpClient: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json"),
	}
}

// GetByCNPJ fetches the registry record of cnpj. Cancellation and
// deadlines come from ctx.
func (c *Client) GetByCNPJ(ctx context.Context, cnpj string) (*CompanyResponse, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("cnpj", cnpj).
		Get("/v1/cnpj/{cnpj}")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status code %d", ErrRequestFailed, resp.StatusCode())
	}

	var company CompanyResponse
	if err = json.Unmarshal(resp.Body(), &company); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	if strings.EqualFold(company.Status, statusError) {
		msg := company.Message
		if strings.TrimSpace(msg) == "" {
			msg = defaultRegistryErrMsg
		}
		return nil, &RegistryError{Message: msg}
	}
	return &company, nil
}
