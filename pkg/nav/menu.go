package nav

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Menu is the resolved navigation state of one location.
type Menu struct {
	// Location is the path the menu was resolved for.
	Location string `json:"location"`

	// Classification is the classifier result for Location.
	Classification Classification `json:"classification"`

	// Entries is the ordered list of links with their active flag resolved.
	Entries []Entry `json:"entries"`
}

// Resolve runs classification, link building and active resolution for location
// using DefaultSite.
func Resolve(location string) Menu {
	return DefaultSite.Resolve(location)
}

// Resolve runs classification, link building and active resolution for location.
func (s Site) Resolve(location string) Menu {
	c := s.Classify(location)
	return Menu{
		Location:       location,
		Classification: c,
		Entries:        ResolveActive(location, c, BuildLinks(c)),
	}
}

// Handler returns an HTTP handler that responds with the menu resolved for the
// "path" query parameter as JSON.
func (s Site) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		location := r.URL.Query().Get("path")

		slog.Debug("handling nav request",
			"method", r.Method,
			"location", location,
		)

		m := s.Resolve(location)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(m); err != nil {
			slog.Error("failed to encode menu", "error", err)
			return
		}

		slog.Debug("nav response sent",
			"location", location,
			"variant", m.Classification.Variant.String(),
			"active", Active(m.Entries),
		)
	})
}
