package models

import (
	"encoding/json"
	"strings"
)

type Gym struct {
	ID          string         `json:"_id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Address     Address        `json:"address"`
	Location    Coordinate     `json:"location"`
	Facilities  []string       `json:"facilities,omitempty"`
	Pricing     Pricing        `json:"pricing"`
	Hours       []OpeningHours `json:"openingHours,omitempty"`
	Rating      Rating         `json:"rating"`
	Images      []Image        `json:"images,omitempty"`
}

// GymRef is the denormalized gym snapshot embedded in slots and bookings.
type GymRef struct {
	ID      string   `json:"_id"`
	Name    string   `json:"name"`
	Address *Address `json:"address,omitempty"`
}

type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Format joins the non-empty address parts with commas.
func (a Address) Format() string {
	parts := []string{a.Street, a.City, a.State, a.PostalCode, a.Country}
	filled := parts[:0]
	for _, p := range parts {
		if p != "" {
			filled = append(filled, p)
		}
	}
	if len(filled) == 0 {
		return "N/A"
	}
	return strings.Join(filled, ", ")
}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Pricing struct {
	Standard *float64 `json:"standard,omitempty"`
	Premium  *float64 `json:"premium,omitempty"`
}

type OpeningHours struct {
	Days  string `json:"days"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

type Image struct {
	URL string `json:"url"`
}

// Rating is resolved once at the ingestion boundary: the backend sends
// either a bare number or an {average, count} object.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	var simple float64
	if err := json.Unmarshal(data, &simple); err == nil {
		r.Average = simple
		r.Count = 0
		return nil
	}

	type aggregated Rating
	var agg aggregated
	if err := json.Unmarshal(data, &agg); err != nil {
		return err
	}
	*r = Rating(agg)
	return nil
}
