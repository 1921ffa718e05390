package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"freight-quote-service/internal/ports"
)

const defaultViaCEPBaseURL = "https://viacep.com.br"

// ViaCEPClient resolves a postal code to its municipality and UF using the
// public ViaCEP service.
type ViaCEPClient struct {
	session *http.Client
	baseURL string
}

func NewViaCEPClient(baseURL string) *ViaCEPClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultViaCEPBaseURL
	}
	return &ViaCEPClient{
		session: newLookupClient(),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type viaCEPResponse struct {
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	// ViaCEP signals an unknown postal code with an "erro" field whose type
	// has varied across API versions (bool or string); presence is enough.
	Erro json.RawMessage `json:"erro"`
}

// Locate implements ports.PostalLocator. The postal code must already be
// normalized (digits only).
func (c *ViaCEPClient) Locate(ctx context.Context, postalCode string) (ports.Locality, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, postalCode)

	var decoded viaCEPResponse
	if err := getJSON(ctx, c.session, url, &decoded); err != nil {
		return ports.Locality{}, fmt.Errorf("viacep lookup %q: %w", postalCode, err)
	}

	if len(decoded.Erro) > 0 {
		return ports.Locality{}, fmt.Errorf("viacep lookup %q: postal code not found", postalCode)
	}

	if decoded.Localidade == "" || decoded.UF == "" {
		return ports.Locality{}, fmt.Errorf("viacep lookup %q: response missing municipality or UF", postalCode)
	}

	return ports.Locality{
		Municipality: decoded.Localidade,
		UF:           decoded.UF,
	}, nil
}
