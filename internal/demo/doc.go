// Package demo runs the fixed sample-query sequences against Neptune.
//
// A Demo is an ordered list of steps; a Runner connects the client, records its
// health, runs the steps and always closes the client. The first failing required
// step aborts the run. Every step is traced and timed, and the run produces a Report.
//
// Two demos exist, one per access path:
//
//   - bolt: hello query, create sample graph, find persons, find relationships, cleanup
//   - data-api: cluster status, hello query, five create statements, persons and
//     relationships queries, cleanup
package demo
