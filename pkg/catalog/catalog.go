package catalog

import "strings"

// Operation is one thing a user can do inside a service, with its official
// link and the plain-language guide shown before leaving the portal.
type Operation struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Url         string   `json:"url"`
	Description string   `json:"description"`
	Tips        []string `json:"tips"`
}

// Service is one public-body entry of the catalog.
type Service struct {
	Id          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon,omitempty"`
	Operations  []Operation `json:"operations"`
}

// Catalog is the read-only service directory.
type Catalog struct {
	services []Service
}

func New(services []Service) *Catalog {
	return &Catalog{services: services}
}

// Services returns every entry in authored order.
func (c *Catalog) Services() []Service {
	return c.services
}

// Service looks up one entry by id.
func (c *Catalog) Service(id string) (Service, bool) {
	for _, s := range c.services {
		if s.Id == id {
			return s, true
		}
	}
	return Service{}, false
}

// NormalizeQuery rewrites everyday words into catalog vocabulary so a search
// for "dottore" lands on the health service.
func NormalizeQuery(query string) string {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "dottore") || strings.Contains(q, "medico"):
		return "sanità prenotazione"
	case strings.Contains(q, "soldi") || strings.Contains(q, "denaro"):
		return "pensioni inps"
	case strings.Contains(q, "tasse") || strings.Contains(q, "730"):
		return "agenzia entrate"
	}
	return query
}

// Search matches services whose id, name, description or operation names
// contain any word of the normalized query.
func (c *Catalog) Search(query string) []Service {
	words := strings.Fields(strings.ToLower(NormalizeQuery(query)))
	if len(words) == 0 {
		return nil
	}
	var out []Service
	for _, s := range c.services {
		if serviceMatches(s, words) {
			out = append(out, s)
		}
	}
	return out
}

func serviceMatches(s Service, words []string) bool {
	haystack := strings.ToLower(s.Id + " " + s.Name + " " + s.Description)
	for _, op := range s.Operations {
		haystack += " " + strings.ToLower(op.Name)
	}
	for _, w := range words {
		if strings.Contains(haystack, w) {
			return true
		}
	}
	return false
}
