package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the use case layer
var (
	ErrInvalidRisk       = goerr.New("invalid risk")
	ErrRiskNotFound      = goerr.New("risk not found")
	ErrFindingNotFound   = goerr.New("finding not found")
	ErrRoadmapOutOfRange = goerr.New("roadmap index out of range")
)
