package nasa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const feedBody = `{
	"near_earth_objects": {
		"2026-08-29": [
			{
				"id": "3542519",
				"name": "(2010 PK9)",
				"is_potentially_hazardous_asteroid": true,
				"estimated_diameter": {
					"kilometers": {"estimated_diameter_min": 0.11, "estimated_diameter_max": 0.26}
				},
				"close_approach_data": [
					{
						"close_approach_date": "2026-08-29",
						"relative_velocity": {"kilometers_per_second": "15.3", "kilometers_per_hour": "55080"},
						"miss_distance": {"kilometers": "4500000.5", "lunar": "11.7"}
					}
				]
			},
			{
				"id": "9999999",
				"name": "no approach data",
				"is_potentially_hazardous_asteroid": false,
				"estimated_diameter": {
					"kilometers": {"estimated_diameter_min": 0.01, "estimated_diameter_max": 0.02}
				},
				"close_approach_data": []
			}
		]
	}
}`

const lookupBody = `{
	"id": "2000433",
	"name": "433 Eros",
	"is_potentially_hazardous_asteroid": false,
	"estimated_diameter": {
		"kilometers": {"estimated_diameter_min": 15.5, "estimated_diameter_max": 34.8}
	},
	"close_approach_data": [
		{
			"close_approach_date": "2026-11-30",
			"relative_velocity": {"kilometers_per_second": "5.57", "kilometers_per_hour": "20052"},
			"miss_distance": {"kilometers": "54000000", "lunar": "140.5"}
		}
	],
	"orbital_data": {
		"eccentricity": "0.2227",
		"semi_major_axis": "1.458",
		"inclination": "10.83",
		"ascending_node_longitude": "304.27",
		"perihelion_argument": "178.9",
		"mean_anomaly": "310.5",
		"orbital_period": "643.1",
		"epoch_osculation": "2461000.5"
	}
}`

func TestFetchFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/feed" {
			t.Errorf("path = %s, want /feed", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("start_date") != "2026-08-29" || q.Get("end_date") != "2026-08-30" {
			t.Errorf("date range = %s..%s", q.Get("start_date"), q.Get("end_date"))
		}
		if q.Get("api_key") != "test_key" {
			t.Errorf("api_key = %s, want test_key", q.Get("api_key"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(feedBody))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test_key")
	asteroids, err := client.FetchFeed(context.Background(), "2026-08-29", "2026-08-30")
	if err != nil {
		t.Fatalf("FetchFeed() error = %v", err)
	}

	// The record without close-approach data is dropped.
	if len(asteroids) != 1 {
		t.Fatalf("got %d asteroids, want 1", len(asteroids))
	}

	a := asteroids[0]
	if a.ID != "3542519" || a.Name != "(2010 PK9)" {
		t.Errorf("identity = %s/%s", a.ID, a.Name)
	}
	if !a.Hazardous {
		t.Error("Hazardous = false, want true")
	}
	if a.VelocityKMS != 15.3 {
		t.Errorf("VelocityKMS = %v, want 15.3", a.VelocityKMS)
	}
	if a.MissKM != 4500000.5 || a.MissLunar != 11.7 {
		t.Errorf("miss distance = %v km / %v lunar", a.MissKM, a.MissLunar)
	}
	if got := a.CloseApproachDate.Format("2006-01-02"); got != "2026-08-29" {
		t.Errorf("CloseApproachDate = %s", got)
	}
	if a.Orbital != nil {
		t.Error("feed records carry no orbital data")
	}
}

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/neo/2000433" {
			t.Errorf("path = %s, want /neo/2000433", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(lookupBody))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test_key")
	a, err := client.Lookup(context.Background(), "2000433")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	if a.Name != "433 Eros" {
		t.Errorf("Name = %s", a.Name)
	}
	if a.Orbital == nil {
		t.Fatal("Orbital = nil, want parsed elements")
	}
	if a.Orbital.Eccentricity != 0.2227 || a.Orbital.OrbitalPeriod != 643.1 {
		t.Errorf("orbital elements = %+v", a.Orbital)
	}
}

func TestFetchFeedUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "OVER_RATE_LIMIT", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test_key")
	if _, err := client.FetchFeed(context.Background(), "2026-08-29", "2026-08-29"); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestFetchFeedContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, "test_key")
	if _, err := client.FetchFeed(ctx, "2026-08-29", "2026-08-29"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
