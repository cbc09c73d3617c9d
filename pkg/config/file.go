package config

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/schmitt/pkg/eseries"
	"github.com/charlie0129/schmitt/pkg/spec"
	"github.com/charlie0129/schmitt/pkg/utils/ptr"
)

var (
	defaultFileConfig = &RawFileConfig{
		VCC:                ptr.To(5.0),
		LowTarget:          ptr.To(0.555),
		HighTarget:         ptr.To(0.575),
		TolerancePercent:   ptr.To(1.0),
		Scales:             append([]float64(nil), eseries.DefaultScales...),
		Workers:            ptr.To(1),
		AllowNonRootAccess: ptr.To(false),
	}
)

var _ Config = &File{}

type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

// NewFile loads the config at configPath. A missing or empty file yields
// the defaults. An empty configPath is never read or written.
func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

func NewFileFromConfig(c *RawFileConfig, configPath string) *File {
	if c == nil {
		c = &RawFileConfig{}
	}

	f := &File{
		c:        c,
		mu:       &sync.RWMutex{},
		filepath: configPath,
	}

	return f
}

type RawFileConfig struct {
	VCC                *float64  `json:"vcc,omitempty"`
	LowTarget          *float64  `json:"lowTarget,omitempty"`
	HighTarget         *float64  `json:"highTarget,omitempty"`
	TolerancePercent   *float64  `json:"tolerancePercent,omitempty"`
	Scales             []float64 `json:"scales,omitempty"`
	Workers            *int      `json:"workers,omitempty"`
	AllowNonRootAccess *bool     `json:"allowNonRootAccess,omitempty"`
}

func NewRawFileConfigFromConfig(c Config) (*RawFileConfig, error) {
	if c == nil {
		return nil, pkgerrors.New("config is nil")
	}

	rawConfig := &RawFileConfig{
		VCC:                ptr.To(c.VCC()),
		LowTarget:          ptr.To(c.LowTarget()),
		HighTarget:         ptr.To(c.HighTarget()),
		TolerancePercent:   ptr.To(c.TolerancePercent()),
		Scales:             c.Scales(),
		Workers:            ptr.To(c.Workers()),
		AllowNonRootAccess: ptr.To(c.AllowNonRootAccess()),
	}

	return rawConfig, nil
}

func orDefault[T any](v, def *T) T {
	if v != nil {
		return *v
	}
	return *def
}

func (f *File) VCC() float64 {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	return orDefault(f.c.VCC, defaultFileConfig.VCC)
}

func (f *File) LowTarget() float64 {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	return orDefault(f.c.LowTarget, defaultFileConfig.LowTarget)
}

func (f *File) HighTarget() float64 {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	return orDefault(f.c.HighTarget, defaultFileConfig.HighTarget)
}

func (f *File) TolerancePercent() float64 {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	return orDefault(f.c.TolerancePercent, defaultFileConfig.TolerancePercent)
}

// Scales returns a copy of the configured scales.
func (f *File) Scales() []float64 {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	scales := f.c.Scales
	if len(scales) == 0 {
		scales = defaultFileConfig.Scales
	}

	return append([]float64(nil), scales...)
}

func (f *File) Workers() int {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	return orDefault(f.c.Workers, defaultFileConfig.Workers)
}

func (f *File) AllowNonRootAccess() bool {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	return orDefault(f.c.AllowNonRootAccess, defaultFileConfig.AllowNonRootAccess)
}

func (f *File) Spec() spec.Spec {
	return spec.Spec{
		VCC:              f.VCC(),
		LowTarget:        f.LowTarget(),
		HighTarget:       f.HighTarget(),
		TolerancePercent: f.TolerancePercent(),
	}
}

func (f *File) SetVCC(v float64) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.VCC = &v
}

func (f *File) SetLowTarget(v float64) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.LowTarget = &v
}

func (f *File) SetHighTarget(v float64) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.HighTarget = &v
}

func (f *File) SetTolerancePercent(v float64) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.TolerancePercent = &v
}

func (f *File) SetScales(s []float64) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Scales = append([]float64(nil), s...)
}

func (f *File) SetWorkers(i int) {
	if f.c == nil {
		panic("config is nil")
	}
	if i < 0 {
		panic("workers must not be negative")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Workers = &i
}

func (f *File) SetAllowNonRootAccess(b bool) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.c.AllowNonRootAccess = &b
}

func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.filepath == "" {
		f.c = &RawFileConfig{}
		return nil
	}

	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// If the file does not exist, return the empty config.
			// Do not make f.c a nil.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	// Since we want to tell if the file is empty, using json.Decoder will
	// not work.
	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}

	if strings.TrimSpace(string(b)) == "" {
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	err = json.Unmarshal(b, &conf)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}
	f.c = &conf

	return nil
}

func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		return pkgerrors.New("config is nil")
	}
	if f.filepath == "" {
		return pkgerrors.New("config has no file path")
	}

	fp, err := os.OpenFile(f.filepath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	enc := json.NewEncoder(fp)
	enc.SetIndent("", "  ")
	err = enc.Encode(f.c)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to encode config to file %s", f.filepath)
	}

	return nil
}

func (f *File) LogrusFields() logrus.Fields {
	if f.c == nil {
		panic("config is nil")
	}

	return logrus.Fields{
		"vcc":                f.VCC(),
		"lowTarget":          f.LowTarget(),
		"highTarget":         f.HighTarget(),
		"tolerancePercent":   f.TolerancePercent(),
		"scales":             f.Scales(),
		"workers":            f.Workers(),
		"allowNonRootAccess": f.AllowNonRootAccess(),
	}
}
