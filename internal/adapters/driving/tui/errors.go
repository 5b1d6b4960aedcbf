package tui

import "errors"

// ErrMissingAnalysisService is returned when the analysis service is not provided.
var ErrMissingAnalysisService = errors.New("tui: analysis service is required")

// ErrMissingInteractionService is returned when the interaction service is not provided.
var ErrMissingInteractionService = errors.New("tui: interaction service is required")
