package driver

const (
	SaveLocationQuery = `
		MERGE (l:Location {zip: $zip})
		SET l.display_name = $display_name,
			l.tips = $tips,
			l.sources_analyzed = $sources_analyzed,
			l.materials_found = $materials_found,
			l.updated_at = $updated_at
		RETURN l.zip AS zip
	`

	ClearLocationRulesQuery = `
		MATCH (l:Location {zip: $zip})-[e:ACCEPTS|REJECTS|CITED]->()
		DELETE e
	`

	SaveAcceptedEdgeQuery = `
		MATCH (l:Location {zip: $zip})
		MERGE (m:Material {name: $name})
		MERGE (l)-[e:ACCEPTS]->(m)
		SET e.uuid = $uuid,
			e.notes = $notes,
			e.confidence = $confidence,
			e.source_count = $source_count
		RETURN e.uuid AS uuid
	`

	SaveRejectedEdgeQuery = `
		MATCH (l:Location {zip: $zip})
		MERGE (m:Material {name: $name})
		MERGE (l)-[e:REJECTS]->(m)
		SET e.uuid = $uuid,
			e.notes = $notes,
			e.confidence = $confidence,
			e.source_count = $source_count
		RETURN e.uuid AS uuid
	`

	SaveCitedSourceQuery = `
		MATCH (l:Location {zip: $zip})
		MERGE (s:Source {url: $url})
		SET s.title = $title
		MERGE (l)-[e:CITED]->(s)
		SET e.uuid = $uuid
		RETURN s.url AS url
	`

	GetLocationQuery = `
		MATCH (l:Location {zip: $zip})
		RETURN l.display_name AS display_name,
			l.tips AS tips,
			l.sources_analyzed AS sources_analyzed,
			l.materials_found AS materials_found,
			l.updated_at AS updated_at
	`

	GetAcceptedQuery = `
		MATCH (l:Location {zip: $zip})-[e:ACCEPTS]->(m:Material)
		RETURN m.name AS name, e.notes AS notes, e.confidence AS confidence, e.source_count AS source_count
		ORDER BY e.source_count DESC, m.name ASC
	`

	GetRejectedQuery = `
		MATCH (l:Location {zip: $zip})-[e:REJECTS]->(m:Material)
		RETURN m.name AS name, e.notes AS notes, e.confidence AS confidence, e.source_count AS source_count
		ORDER BY e.source_count DESC, m.name ASC
	`

	GetCitedSourcesQuery = `
		MATCH (l:Location {zip: $zip})-[:CITED]->(s:Source)
		RETURN s.title AS title, s.url AS url
		ORDER BY s.url ASC
	`
)
