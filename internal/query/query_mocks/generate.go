package query_mocks

//go:generate mockgen -source=../planner.go -destination=query_mocks.go -package=query_mocks

// This file contains the go:generate directive to generate mocks for the
// planner collaborator interfaces. To regenerate the mocks, run:
//   go generate ./internal/query/query_mocks
