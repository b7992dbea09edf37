package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Asteroid is a normalized near-Earth object record built from the first
// close-approach entry of a NeoWs response.
type Asteroid struct {
	ID                string
	Name              string
	DiameterMinKM     float64
	DiameterMaxKM     float64
	VelocityKMS       float64
	VelocityKMH       float64
	MissKM            float64
	MissLunar         float64
	CloseApproachDate time.Time
	Hazardous         bool
	Orbital           *OrbitalData
}

// OrbitalData holds the osculating orbital elements NeoWs reports on
// single-object lookups.
type OrbitalData struct {
	Eccentricity           float64
	SemiMajorAxis          float64
	Inclination            float64
	AscendingNodeLongitude float64
	PerihelionArgument     float64
	MeanAnomaly            float64
	OrbitalPeriod          float64
	EpochOsculation        float64
}

type feedResponse struct {
	NearEarthObjects map[string][]neoObject `json:"near_earth_objects"`
}

type neoObject struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Hazardous         bool   `json:"is_potentially_hazardous_asteroid"`
	EstimatedDiameter struct {
		Kilometers struct {
			Min float64 `json:"estimated_diameter_min"`
			Max float64 `json:"estimated_diameter_max"`
		} `json:"kilometers"`
	} `json:"estimated_diameter"`
	CloseApproachData []struct {
		CloseApproachDate string `json:"close_approach_date"`
		RelativeVelocity  struct {
			KilometersPerSecond string `json:"kilometers_per_second"`
			KilometersPerHour   string `json:"kilometers_per_hour"`
		} `json:"relative_velocity"`
		MissDistance struct {
			Kilometers string `json:"kilometers"`
			Lunar      string `json:"lunar"`
		} `json:"miss_distance"`
	} `json:"close_approach_data"`
	OrbitalData *struct {
		Eccentricity           string `json:"eccentricity"`
		SemiMajorAxis          string `json:"semi_major_axis"`
		Inclination            string `json:"inclination"`
		AscendingNodeLongitude string `json:"ascending_node_longitude"`
		PerihelionArgument     string `json:"perihelion_argument"`
		MeanAnomaly            string `json:"mean_anomaly"`
		OrbitalPeriod          string `json:"orbital_period"`
		EpochOsculation        string `json:"epoch_osculation"`
	} `json:"orbital_data"`
}

// Client talks to the NASA NeoWs REST API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchFeed returns the normalized asteroids approaching between the two
// dates (inclusive, YYYY-MM-DD).
func (c *Client) FetchFeed(ctx context.Context, startDate, endDate string) ([]*Asteroid, error) {
	u := fmt.Sprintf("%s/feed?start_date=%s&end_date=%s&api_key=%s",
		c.baseURL, url.QueryEscape(startDate), url.QueryEscape(endDate), url.QueryEscape(c.apiKey))

	var feed feedResponse
	if err := c.getJSON(ctx, u, &feed); err != nil {
		return nil, err
	}

	var asteroids []*Asteroid
	for _, neos := range feed.NearEarthObjects {
		for _, neo := range neos {
			a, err := normalize(neo)
			if err != nil {
				continue // objects without close-approach data are unusable
			}
			asteroids = append(asteroids, a)
		}
	}
	return asteroids, nil
}

// Lookup fetches a single object by its NeoWs id, including orbital data.
func (c *Client) Lookup(ctx context.Context, id string) (*Asteroid, error) {
	u := fmt.Sprintf("%s/neo/%s?api_key=%s", c.baseURL, url.PathEscape(id), url.QueryEscape(c.apiKey))

	var neo neoObject
	if err := c.getJSON(ctx, u, &neo); err != nil {
		return nil, err
	}
	return normalize(neo)
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d - status: %s", resp.StatusCode, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding resp.Body: %w", err)
	}
	return nil
}

func normalize(neo neoObject) (*Asteroid, error) {
	if len(neo.CloseApproachData) == 0 {
		return nil, fmt.Errorf("asteroid %s has no close approach data", neo.ID)
	}
	approach := neo.CloseApproachData[0]

	approachDate, err := time.Parse("2006-01-02", approach.CloseApproachDate)
	if err != nil {
		return nil, fmt.Errorf("asteroid %s has invalid approach date %q: %w", neo.ID, approach.CloseApproachDate, err)
	}

	a := &Asteroid{
		ID:                neo.ID,
		Name:              neo.Name,
		DiameterMinKM:     neo.EstimatedDiameter.Kilometers.Min,
		DiameterMaxKM:     neo.EstimatedDiameter.Kilometers.Max,
		VelocityKMS:       parseFloat(approach.RelativeVelocity.KilometersPerSecond),
		VelocityKMH:       parseFloat(approach.RelativeVelocity.KilometersPerHour),
		MissKM:            parseFloat(approach.MissDistance.Kilometers),
		MissLunar:         parseFloat(approach.MissDistance.Lunar),
		CloseApproachDate: approachDate,
		Hazardous:         neo.Hazardous,
	}

	if neo.OrbitalData != nil {
		a.Orbital = &OrbitalData{
			Eccentricity:           parseFloat(neo.OrbitalData.Eccentricity),
			SemiMajorAxis:          parseFloat(neo.OrbitalData.SemiMajorAxis),
			Inclination:            parseFloat(neo.OrbitalData.Inclination),
			AscendingNodeLongitude: parseFloat(neo.OrbitalData.AscendingNodeLongitude),
			PerihelionArgument:     parseFloat(neo.OrbitalData.PerihelionArgument),
			MeanAnomaly:            parseFloat(neo.OrbitalData.MeanAnomaly),
			OrbitalPeriod:          parseFloat(neo.OrbitalData.OrbitalPeriod),
			EpochOsculation:        parseFloat(neo.OrbitalData.EpochOsculation),
		}
	}

	return a, nil
}

// NeoWs reports numeric fields as strings
func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
