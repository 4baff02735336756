// Package sigv4 signs Neptune Bolt connections with AWS Signature Version 4.
//
// Neptune accepts IAM authentication over Bolt through the driver's generic auth
// token: the credentials field carries a JSON object with the headers of a signed
// GET request for https://host:port/opencypher. The Signer builds that object and
// exposes it either as a single token or as a token manager that re-signs before
// the signature goes stale.
//
//	signer, err := sigv4.NewSigner("us-east-1", "https://cluster:8182", provider)
//	if err != nil {
//	    return err
//	}
//	driver, err := neo4j.NewDriverWithContext("bolt+s://cluster:8182", signer.TokenManager())
package sigv4
