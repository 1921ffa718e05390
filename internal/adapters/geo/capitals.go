package geo

import "freight-quote-service/internal/domain"

type capital struct {
	Name     string
	Location domain.Coordinate
}

// Capital seat of every UF. Used when a municipality resolved from a postal
// code has no exact match in the IBGE catalog: the quote then prices against
// the state capital instead of failing.
var capitalsByUF = map[string]capital{
	"AC": {Name: "Rio Branco", Location: domain.Coordinate{Lat: -9.9754, Lon: -67.8249}},
	"AL": {Name: "Maceió", Location: domain.Coordinate{Lat: -9.6658, Lon: -35.7353}},
	"AP": {Name: "Macapá", Location: domain.Coordinate{Lat: 0.0389, Lon: -51.0664}},
	"AM": {Name: "Manaus", Location: domain.Coordinate{Lat: -3.1190, Lon: -60.0217}},
	"BA": {Name: "Salvador", Location: domain.Coordinate{Lat: -12.9714, Lon: -38.5014}},
	"CE": {Name: "Fortaleza", Location: domain.Coordinate{Lat: -3.7172, Lon: -38.5433}},
	"DF": {Name: "Brasília", Location: domain.Coordinate{Lat: -15.7939, Lon: -47.8828}},
	"ES": {Name: "Vitória", Location: domain.Coordinate{Lat: -20.3155, Lon: -40.3128}},
	"GO": {Name: "Goiânia", Location: domain.Coordinate{Lat: -16.6869, Lon: -49.2648}},
	"MA": {Name: "São Luís", Location: domain.Coordinate{Lat: -2.5387, Lon: -44.2825}},
	"MT": {Name: "Cuiabá", Location: domain.Coordinate{Lat: -15.6014, Lon: -56.0979}},
	"MS": {Name: "Campo Grande", Location: domain.Coordinate{Lat: -20.4697, Lon: -54.6201}},
	"MG": {Name: "Belo Horizonte", Location: domain.Coordinate{Lat: -19.9167, Lon: -43.9345}},
	"PA": {Name: "Belém", Location: domain.Coordinate{Lat: -1.4558, Lon: -48.5039}},
	"PB": {Name: "João Pessoa", Location: domain.Coordinate{Lat: -7.1195, Lon: -34.8450}},
	"PR": {Name: "Curitiba", Location: domain.Coordinate{Lat: -25.4284, Lon: -49.2733}},
	"PE": {Name: "Recife", Location: domain.Coordinate{Lat: -8.0476, Lon: -34.8770}},
	"PI": {Name: "Teresina", Location: domain.Coordinate{Lat: -5.0892, Lon: -42.8016}},
	"RJ": {Name: "Rio de Janeiro", Location: domain.Coordinate{Lat: -22.9068, Lon: -43.1729}},
	"RN": {Name: "Natal", Location: domain.Coordinate{Lat: -5.7945, Lon: -35.2110}},
	"RS": {Name: "Porto Alegre", Location: domain.Coordinate{Lat: -30.0346, Lon: -51.2177}},
	"RO": {Name: "Porto Velho", Location: domain.Coordinate{Lat: -8.7612, Lon: -63.9004}},
	"RR": {Name: "Boa Vista", Location: domain.Coordinate{Lat: 2.8235, Lon: -60.6758}},
	"SC": {Name: "Florianópolis", Location: domain.Coordinate{Lat: -27.5954, Lon: -48.5480}},
	"SP": {Name: "São Paulo", Location: domain.Coordinate{Lat: -23.5505, Lon: -46.6333}},
	"SE": {Name: "Aracaju", Location: domain.Coordinate{Lat: -10.9472, Lon: -37.0731}},
	"TO": {Name: "Palmas", Location: domain.Coordinate{Lat: -10.2491, Lon: -48.3243}},
}

// capitalFallback returns the capital resolution for a UF. The second
// return is false only for an unknown UF code.
func capitalFallback(uf string) (domain.DestinationResolution, bool) {
	c, ok := capitalsByUF[uf]
	if !ok {
		return domain.DestinationResolution{}, false
	}
	return domain.DestinationResolution{
		Municipality: c.Name,
		UF:           uf,
		Location:     c.Location,
	}, true
}
