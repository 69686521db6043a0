package fuseki

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Contribution is a community contribution inserted into the ontology
type Contribution struct {
	Utilisateur string
	Description string
	Type        string
	Quantite    float64
	Unite       string
}

// AddContribution inserts a contribution into the store and returns its
// generated identifier.
func (c *Catalog) AddContribution(ctx context.Context, contrib Contribution) (string, error) {
	now := time.Now()
	id := fmt.Sprintf("contribution_%d", now.UnixNano())

	unite := contrib.Unite
	if unite == "" {
		unite = "unité"
	}

	update := fmt.Sprintf(`PREFIX eco: <%s>
PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
%s
INSERT DATA {
  eco:%s rdf:type eco:Contribution ;
    eco:utilisateur "%s" ;
    eco:description "%s" ;
    eco:dateCreation "%s"^^xsd:dateTime ;
    eco:quantite %g ;
    eco:unite "%s" .
}`, c.ns, rdfPrefix, id,
		escapeLiteral(contrib.Utilisateur),
		escapeLiteral(contrib.Description),
		now.Format(time.RFC3339),
		contrib.Quantite,
		escapeLiteral(unite))

	if err := c.client.Update(ctx, update); err != nil {
		return "", err
	}
	return id, nil
}

// escapeLiteral makes a string safe for embedding in a quoted SPARQL literal
func escapeLiteral(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
	)
	return r.Replace(s)
}
