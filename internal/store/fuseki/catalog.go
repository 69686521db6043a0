package fuseki

import (
	"context"
	"fmt"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/entity"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
)

const (
	rdfPrefix  = "PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>"
	rdfsPrefix = "PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>"
)

// Catalog reads tourism entities out of the ontology. It implements
// entity.Catalog on top of the raw SPARQL client.
type Catalog struct {
	client *Client
	ns     string
	log    *logger.Logger
}

// NewCatalog creates a catalog bound to the given ontology namespace
func NewCatalog(client *Client, ontologyNS string, log *logger.Logger) *Catalog {
	return &Catalog{
		client: client,
		ns:     ontologyNS,
		log:    log,
	}
}

// Activities returns all tourist activities with their ontology class
func (c *Catalog) Activities(ctx context.Context) ([]entity.Entity, error) {
	query := fmt.Sprintf(`PREFIX eco: <%s>
%s
%s
SELECT ?activite ?nom ?type ?description
WHERE {
  ?activite rdf:type ?type .
  ?activite eco:nom ?nom .
  OPTIONAL { ?activite eco:description ?description }
  ?type rdfs:subClassOf+ eco:ActiviteTouristique .
}
LIMIT 50`, c.ns, rdfPrefix, rdfsPrefix)

	return c.fetch(ctx, query, entity.KindActivity)
}

// Accommodations returns all lodgings with sustainability score and price
func (c *Catalog) Accommodations(ctx context.Context) ([]entity.Entity, error) {
	query := fmt.Sprintf(`PREFIX eco: <%s>
%s
%s
SELECT ?hebergement ?nom ?type ?description ?scoreDurabilite ?certifications ?prix
WHERE {
  ?hebergement rdf:type ?type .
  ?hebergement eco:nom ?nom .
  OPTIONAL { ?hebergement eco:description ?description }
  OPTIONAL { ?hebergement eco:scoreDurabilite ?scoreDurabilite }
  OPTIONAL { ?hebergement eco:certifications ?certifications }
  OPTIONAL { ?hebergement eco:prix ?prix }
  ?type rdfs:subClassOf+ eco:Hebergement .
}
LIMIT 30`, c.ns, rdfPrefix, rdfsPrefix)

	return c.fetch(ctx, query, entity.KindAccommodation)
}

// Transports returns all transport options ordered by footprint
func (c *Catalog) Transports(ctx context.Context) ([]entity.Entity, error) {
	query := fmt.Sprintf(`PREFIX eco: <%s>
%s
%s
SELECT ?transport ?nom ?empreinte ?kgCO2
WHERE {
  ?transport rdf:type ?type .
  ?transport eco:nom ?nom .
  OPTIONAL {
    ?transport eco:aEmpreinte ?empreinte .
    ?empreinte eco:kgCO2 ?kgCO2 .
  }
  ?type rdfs:subClassOf+ eco:Transport .
}
ORDER BY ?kgCO2`, c.ns, rdfPrefix, rdfsPrefix)

	return c.fetch(ctx, query, entity.KindTransport)
}

// Destinations returns all destinations ordered by sustainability score
func (c *Catalog) Destinations(ctx context.Context) ([]entity.Entity, error) {
	query := fmt.Sprintf(`PREFIX eco: <%s>
%s
%s
SELECT DISTINCT ?dest ?nom ?type ?description ?scoreDurabilite ?certifications ?region
WHERE {
  ?dest rdf:type ?type .
  FILTER(?type IN (eco:Destination, eco:Montagne, eco:Plage, eco:PatrimoineCulturel, eco:Ville))
  ?dest rdfs:label ?nom .
  OPTIONAL { ?dest eco:description ?description }
  OPTIONAL { ?dest eco:scoreDurabilite ?scoreDurabilite }
  OPTIONAL { ?dest eco:certifications ?certifications }
  OPTIONAL { ?dest eco:localiseDans ?region }
}
ORDER BY DESC(?scoreDurabilite) ?nom`, c.ns, rdfPrefix, rdfsPrefix)

	return c.fetch(ctx, query, entity.KindDestination)
}

func (c *Catalog) fetch(ctx context.Context, query string, kind entity.Kind) ([]entity.Entity, error) {
	result, err := c.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	rows := ParseResults(result)
	entities := make([]entity.Entity, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, entity.FromBinding(row, kind))
	}

	c.log.Debugf("fetched %d %s entities from store", len(entities), kind)
	return entities, nil
}
