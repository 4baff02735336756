// Package graph runs OpenCypher against Neptune over the Bolt protocol.
//
// GraphClient is the common surface of both access paths; the Data API client in
// internal/dataapi implements it as well, so demo code depends only on this interface.
//
//   - GraphClient: Connect, Close, Health, Query (read transaction), Execute (write transaction)
//   - BoltClient: implementation on top of the Neo4j Go driver
//   - MockGraphClient: scripted implementation for unit tests
//
// Neptune speaks Bolt with the same driver used for Neo4j. Authentication is supplied by
// a token manager: neo4j.NoAuth() for clusters without IAM, or the SigV4 token manager
// from internal/sigv4, which re-signs as pooled connections are opened.
//
//	cfg := graph.DefaultConfig()
//	cfg.URI = "bolt+s://my-cluster.cluster-xyz.us-east-1.neptune.amazonaws.com:8182"
//	cfg.Auth = neo4j.NoAuth()
//
//	client, err := graph.NewBoltClient(cfg)
//	if err != nil {
//	    return err
//	}
//	if err := client.Connect(ctx); err != nil {
//	    return err
//	}
//	defer client.Close(ctx)
//
//	result, err := client.Query(ctx, "MATCH (p:Person) RETURN p.name as name", nil)
package graph
