package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/ports"
)

const defaultIBGEBaseURL = "https://servicodados.ibge.gov.br"

// IBGEClient wraps the IBGE locality APIs: the per-UF municipality catalog
// and the per-municipality detail document carrying coordinates.
type IBGEClient struct {
	session *http.Client
	baseURL string
}

func NewIBGEClient(baseURL string) *IBGEClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultIBGEBaseURL
	}
	return &IBGEClient{
		session: newLookupClient(),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type ibgeMunicipality struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// ListMunicipalities implements ports.MunicipalityCatalog.
func (c *IBGEClient) ListMunicipalities(ctx context.Context, uf string) ([]ports.Municipality, error) {
	url := fmt.Sprintf("%s/api/v1/localidades/estados/%s/municipios", c.baseURL, uf)

	var decoded []ibgeMunicipality
	if err := getJSON(ctx, c.session, url, &decoded); err != nil {
		return nil, fmt.Errorf("ibge municipalities for %q: %w", uf, err)
	}

	out := make([]ports.Municipality, 0, len(decoded))
	for _, m := range decoded {
		out = append(out, ports.Municipality{Name: m.Nome, Code: m.ID})
	}

	return out, nil
}

// municipalityDocument accepts the two coordinate shapes the IBGE API has
// served over time: a nested geometry with a [lon, lat] pair, or flat
// latitude/longitude fields (numbers or numeric strings).
type municipalityDocument struct {
	Geometria *struct {
		Coordenadas []float64 `json:"coordenadas"`
	} `json:"geometria"`
	Latitude  json.RawMessage `json:"latitude"`
	Longitude json.RawMessage `json:"longitude"`
}

func (d municipalityDocument) coordinate() (domain.Coordinate, error) {
	switch {
	case d.Geometria != nil && len(d.Geometria.Coordenadas) >= 2:
		// Geometry pairs come in [longitude, latitude] order.
		return domain.Coordinate{
			Lat: d.Geometria.Coordenadas[1],
			Lon: d.Geometria.Coordenadas[0],
		}, nil

	case len(d.Latitude) > 0 && len(d.Longitude) > 0:
		lat, err := parseLooseFloat(d.Latitude)
		if err != nil {
			return domain.Coordinate{}, fmt.Errorf("flat latitude: %w", err)
		}
		lon, err := parseLooseFloat(d.Longitude)
		if err != nil {
			return domain.Coordinate{}, fmt.Errorf("flat longitude: %w", err)
		}
		return domain.Coordinate{Lat: lat, Lon: lon}, nil

	default:
		return domain.Coordinate{}, fmt.Errorf("unrecognized coordinate shape")
	}
}

// ResolveCoordinate implements ports.CoordinateResolver.
func (c *IBGEClient) ResolveCoordinate(ctx context.Context, code int) (domain.Coordinate, error) {
	url := fmt.Sprintf("%s/api/v1/localidades/municipios/%d", c.baseURL, code)

	var decoded municipalityDocument
	if err := getJSON(ctx, c.session, url, &decoded); err != nil {
		return domain.Coordinate{}, fmt.Errorf("ibge coordinates for %d: %w", code, err)
	}

	coord, err := decoded.coordinate()
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("ibge coordinates for %d: %w", code, err)
	}

	return coord, nil
}

// Ping probes the locality API. Used by the health endpoint only; quote
// requests never depend on it.
func (c *IBGEClient) Ping(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var decoded []ibgeMunicipality
	err := getJSON(ctx, c.session, c.baseURL+"/api/v1/localidades/estados", &decoded)
	return err == nil
}

func parseLooseFloat(raw json.RawMessage) (float64, error) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	return strconv.ParseFloat(s, 64)
}
