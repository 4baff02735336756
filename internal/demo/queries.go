package demo

// Bolt demo statements
const (
	boltHelloQuery = "RETURN 'Hello from Neptune!' as message"

	boltCreateQuery = `CREATE (p1:Person {name: 'Alice', age: 30})
CREATE (p2:Person {name: 'Bob', age: 25})
CREATE (c:Company {name: 'TechCorp'})
CREATE (p1)-[:WORKS_FOR]->(c)
CREATE (p2)-[:WORKS_FOR]->(c)
RETURN p1.name as person1, p2.name as person2, c.name as company`

	boltPersonsQuery = "MATCH (p:Person) RETURN p.name as name, p.age as age ORDER BY p.name"

	boltRelationshipsQuery = `MATCH (p:Person)-[r:WORKS_FOR]->(c:Company)
RETURN p.name as person, type(r) as relationship, c.name as company`
)

// Data API demo statements
const (
	dataAPIHelloQuery = "RETURN 'Hello Neptune!' as message"

	dataAPIPersonsQuery = "MATCH (p:Person) RETURN p.name as name, p.age as age"

	dataAPIRelationshipsQuery = "MATCH (p1:Person)-[r]->(p2) RETURN p1.name as person1, type(r) as relationship, p2.name as person2"
)

// dataAPICreateStatements build the sample graph one statement at a time.
var dataAPICreateStatements = []string{
	"CREATE (p:Person {name: 'Alice', age: 30})",
	"CREATE (p:Person {name: 'Bob', age: 25})",
	"CREATE (c:Company {name: 'TechCorp'})",
	"MATCH (a:Person {name: 'Alice'}), (c:Company {name: 'TechCorp'}) CREATE (a)-[:WORKS_FOR]->(c)",
	"MATCH (a:Person {name: 'Alice'}), (b:Person {name: 'Bob'}) CREATE (a)-[:KNOWS]->(b)",
}

// cleanupQuery removes the sample data of both demos and nothing else. The Data API
// demo uses it too instead of deleting every node in the graph.
const cleanupQuery = `MATCH (n)
WHERE n:Person OR n:Company
DETACH DELETE n`
