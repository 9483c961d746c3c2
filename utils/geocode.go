package utils

import (
	"fmt"
	"math"

	"janseva/config"

	"github.com/go-resty/resty/v2"
)

// OpenCageClient resolves addresses through the OpenCage forward geocoding
// API. It satisfies the workflow's geocoder interface.
type OpenCageClient struct {
	client *resty.Client
}

func NewOpenCageClient() *OpenCageClient {
	return &OpenCageClient{client: resty.New()}
}

type openCageResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
}

func (g *OpenCageClient) Coordinates(country, state, district, talukaTehsil string) (float64, float64, error) {
	// Combine full address for better accuracy
	location := fmt.Sprintf("%s, %s, %s, %s", talukaTehsil, district, state, country)

	var parsed openCageResponse
	resp, err := g.client.R().
		SetQueryParams(map[string]string{
			"q":   location,
			"key": config.AppConfig.GeocodingApiKey,
		}).
		SetResult(&parsed).
		Get(config.AppConfig.GeocodingApiURL)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return 0, 0, fmt.Errorf("geocoding failed, code: %d", resp.StatusCode())
	}
	if len(parsed.Results) == 0 {
		return 0, 0, fmt.Errorf("location not found: %s", location)
	}

	return parsed.Results[0].Geometry.Lat, parsed.Results[0].Geometry.Lng, nil
}

// DistanceKm computes the great-circle distance between two points with the
// haversine formula, rounded to two decimals.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371

	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*100) / 100
}
