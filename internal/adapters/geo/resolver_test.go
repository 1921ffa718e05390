package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-quote-service/internal/domain"
)

type fakeGeoBackend struct {
	viaCEPBody       string
	viaCEPStatus     int
	municipalities   string
	coordinateBody   string
	coordinateStatus int

	viaCEPCalls atomic.Int64
}

func (f *fakeGeoBackend) start(t *testing.T) (viacep *ViaCEPClient, ibge *IBGEClient) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/ws/"):
			f.viaCEPCalls.Add(1)
			status := f.viaCEPStatus
			if status == 0 {
				status = http.StatusOK
			}
			w.WriteHeader(status)
			fmt.Fprint(w, f.viaCEPBody)
		case r.URL.Path == "/api/v1/localidades/estados/RS/municipios":
			fmt.Fprint(w, f.municipalities)
		default:
			status := f.coordinateStatus
			if status == 0 {
				status = http.StatusOK
			}
			w.WriteHeader(status)
			fmt.Fprint(w, f.coordinateBody)
		}
	}))
	t.Cleanup(srv.Close)

	return NewViaCEPClient(srv.URL), NewIBGEClient(srv.URL)
}

func newTestResolver(t *testing.T, backend *fakeGeoBackend) *Resolver {
	t.Helper()
	viacep, ibge := backend.start(t)
	return NewResolver(viacep, ibge, ibge, nil, nil)
}

func TestNormalizePostalCode(t *testing.T) {
	assert.Equal(t, "93700000", NormalizePostalCode(" 93.700-000 "))
	assert.Equal(t, "90000000", NormalizePostalCode("90000000"))
}

func TestResolveGeometryShape(t *testing.T) {
	resolver := newTestResolver(t, &fakeGeoBackend{
		viaCEPBody:     `{"localidade": "Porto Alegre", "uf": "RS"}`,
		municipalities: `[{"id": 4314902, "nome": "Porto Alegre"}, {"id": 4305108, "nome": "Caxias do Sul"}]`,
		coordinateBody: `{"geometria": {"coordenadas": [-51.2177, -30.0346]}}`,
	})

	res, err := resolver.Resolve(context.Background(), "90000-000")
	require.NoError(t, err)

	assert.Equal(t, "Porto Alegre", res.Municipality)
	assert.Equal(t, "RS", res.UF)
	assert.Equal(t, 4314902, res.IBGECode)
	assert.InDelta(t, -30.0346, res.Location.Lat, 1e-9)
	assert.InDelta(t, -51.2177, res.Location.Lon, 1e-9)
}

func TestResolveFlatShapeWithStringFields(t *testing.T) {
	resolver := newTestResolver(t, &fakeGeoBackend{
		viaCEPBody:     `{"localidade": "Porto Alegre", "uf": "RS"}`,
		municipalities: `[{"id": 4314902, "nome": "Porto Alegre"}]`,
		coordinateBody: `{"latitude": "-30.0346", "longitude": "-51.2177"}`,
	})

	res, err := resolver.Resolve(context.Background(), "90000000")
	require.NoError(t, err)
	assert.InDelta(t, -30.0346, res.Location.Lat, 1e-9)
	assert.InDelta(t, -51.2177, res.Location.Lon, 1e-9)
}

func TestResolveFlatShapeWithNumberFields(t *testing.T) {
	resolver := newTestResolver(t, &fakeGeoBackend{
		viaCEPBody:     `{"localidade": "Porto Alegre", "uf": "RS"}`,
		municipalities: `[{"id": 4314902, "nome": "Porto Alegre"}]`,
		coordinateBody: `{"latitude": -30.0346, "longitude": -51.2177}`,
	})

	res, err := resolver.Resolve(context.Background(), "90000000")
	require.NoError(t, err)
	assert.InDelta(t, -30.0346, res.Location.Lat, 1e-9)
}

func TestResolveMatchIsCaseInsensitive(t *testing.T) {
	resolver := newTestResolver(t, &fakeGeoBackend{
		viaCEPBody:     `{"localidade": "PORTO ALEGRE", "uf": "RS"}`,
		municipalities: `[{"id": 4314902, "nome": "Porto Alegre"}]`,
		coordinateBody: `{"latitude": -30.0346, "longitude": -51.2177}`,
	})

	res, err := resolver.Resolve(context.Background(), "90000000")
	require.NoError(t, err)
	assert.Equal(t, 4314902, res.IBGECode)
}

func TestResolveCapitalFallbackOnNoMatch(t *testing.T) {
	resolver := newTestResolver(t, &fakeGeoBackend{
		viaCEPBody:     `{"localidade": "Vila Que Nao Existe", "uf": "RS"}`,
		municipalities: `[{"id": 4314902, "nome": "Porto Alegre"}]`,
	})

	res, err := resolver.Resolve(context.Background(), "99999000")
	require.NoError(t, err)

	assert.Equal(t, "Porto Alegre", res.Municipality)
	assert.Equal(t, "RS", res.UF)
	assert.Zero(t, res.IBGECode)
	assert.InDelta(t, -30.0346, res.Location.Lat, 1e-9)
}

func TestResolveUnknownPostalCode(t *testing.T) {
	resolver := newTestResolver(t, &fakeGeoBackend{
		viaCEPBody: `{"erro": true}`,
	})

	_, err := resolver.Resolve(context.Background(), "00000000")
	assert.ErrorContains(t, err, "not found")
}

func TestResolvePostalServiceError(t *testing.T) {
	resolver := newTestResolver(t, &fakeGeoBackend{
		viaCEPStatus: http.StatusInternalServerError,
	})

	_, err := resolver.Resolve(context.Background(), "90000000")
	assert.Error(t, err)
}

func TestResolveUnrecognizedCoordinateShape(t *testing.T) {
	// No fallback at the coordinate stage: a bad shape fails the resolution.
	resolver := newTestResolver(t, &fakeGeoBackend{
		viaCEPBody:     `{"localidade": "Porto Alegre", "uf": "RS"}`,
		municipalities: `[{"id": 4314902, "nome": "Porto Alegre"}]`,
		coordinateBody: `{"nome": "Porto Alegre"}`,
	})

	_, err := resolver.Resolve(context.Background(), "90000000")
	assert.ErrorContains(t, err, "coordinate shape")
}

func TestResolveEmptyPostalCode(t *testing.T) {
	resolver := newTestResolver(t, &fakeGeoBackend{})

	_, err := resolver.Resolve(context.Background(), " - ")
	assert.Error(t, err)
}

type memoryCache struct {
	entries map[string]domain.DestinationResolution
}

func (m *memoryCache) Get(_ context.Context, postalCode string) (domain.DestinationResolution, bool, error) {
	res, ok := m.entries[postalCode]
	return res, ok, nil
}

func (m *memoryCache) Put(_ context.Context, postalCode string, res domain.DestinationResolution) error {
	m.entries[postalCode] = res
	return nil
}

func TestResolveCacheHitSkipsLookups(t *testing.T) {
	backend := &fakeGeoBackend{
		viaCEPBody:     `{"localidade": "Porto Alegre", "uf": "RS"}`,
		municipalities: `[{"id": 4314902, "nome": "Porto Alegre"}]`,
		coordinateBody: `{"latitude": -30.0346, "longitude": -51.2177}`,
	}
	viacep, ibge := backend.start(t)

	cache := &memoryCache{entries: map[string]domain.DestinationResolution{}}
	resolver := NewResolver(viacep, ibge, ibge, cache, nil)

	first, err := resolver.Resolve(context.Background(), "90000-000")
	require.NoError(t, err)
	require.EqualValues(t, 1, backend.viaCEPCalls.Load())

	second, err := resolver.Resolve(context.Background(), "90000000")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, backend.viaCEPCalls.Load(), "cache hit must not call ViaCEP again")
}
