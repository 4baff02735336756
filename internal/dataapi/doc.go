// Package dataapi runs openCypher through the Neptune Data API (HTTPS REST).
//
// Client implements graph.GraphClient on top of the aws-sdk-go-v2 neptunedata client,
// with its base endpoint pointed at the cluster. Requests are SigV4 signed by the SDK
// when IAM authentication is enabled and sent anonymously otherwise.
package dataapi
