package config

import (
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/schmitt/pkg/spec"
)

// Config holds the default design inputs and daemon settings.
type Config interface {
	VCC() float64
	LowTarget() float64
	HighTarget() float64
	TolerancePercent() float64
	Scales() []float64
	Workers() int
	AllowNonRootAccess() bool

	SetVCC(float64)
	SetLowTarget(float64)
	SetHighTarget(float64)
	SetTolerancePercent(float64)
	SetScales([]float64)
	SetWorkers(int)
	SetAllowNonRootAccess(bool)

	// Spec assembles the four design inputs.
	Spec() spec.Spec

	LogrusFields() logrus.Fields

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}
